// Package dataset builds the integer sequences the search kernels run over.
package dataset

import (
	"errors"
	"fmt"
	"slices"
)

// ReferenceSize is the length of the dataset the interactive drivers search.
const ReferenceSize = 100

// MaxSize caps Build so a request is refused before allocation rather than
// exhausting memory.
const MaxSize = 1 << 26

// ErrSize is returned when a dataset length is outside [1, MaxSize].
var ErrSize = errors.New("dataset size out of range")

// ErrUnsorted is returned by FromValues for a sequence that is not
// non-decreasing.
var ErrUnsorted = errors.New("dataset values are not sorted")

// Sequence is an ordered, read-only-by-convention run of integers.
type Sequence []int

// Build returns a sequence of length n whose i-th element is 2*i.
func Build(n int) (Sequence, error) {
	if n < 1 || n > MaxSize {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrSize, n, MaxSize)
	}
	seq := make(Sequence, n)
	for i := range seq {
		seq[i] = 2 * i
	}
	return seq, nil
}

// FromValues copies values into a Sequence, rejecting anything that is not
// sorted non-decreasing.
func FromValues(values []int) (Sequence, error) {
	if len(values) > MaxSize {
		return nil, fmt.Errorf("%w: %d (want at most %d)", ErrSize, len(values), MaxSize)
	}
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return nil, fmt.Errorf("%w: %d at index %d follows %d", ErrUnsorted, values[i], i, values[i-1])
		}
	}
	return Sequence(slices.Clone(values)), nil
}

// Len returns the number of elements.
func (s Sequence) Len() int { return len(s) }

// Distinct reports whether no value repeats. Sequence must be sorted.
func (s Sequence) Distinct() bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] == s[i] {
			return false
		}
	}
	return true
}
