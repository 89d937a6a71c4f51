package search

import "strconv"

// Position is the optional result of a search: either a zero-based index into
// the searched sequence or Absent.
type Position struct {
	index int
	found bool
}

// Absent is the Position reported when the key does not occur.
var Absent = Position{}

// Found returns a present Position at index i.
func Found(i int) Position {
	return Position{index: i, found: true}
}

// Index returns the position and whether it is present.
func (p Position) Index() (int, bool) {
	return p.index, p.found
}

// IsFound reports whether the key was located.
func (p Position) IsFound() bool {
	return p.found
}

// String renders the index in decimal, or "absent".
func (p Position) String() string {
	if !p.found {
		return "absent"
	}
	return strconv.Itoa(p.index)
}
