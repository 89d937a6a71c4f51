package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Reference(t *testing.T) {
	seq, err := Build(ReferenceSize)
	require.NoError(t, err)
	require.Equal(t, ReferenceSize, seq.Len())

	assert.Equal(t, 0, seq[0])
	assert.Equal(t, 198, seq[ReferenceSize-1])
	for i, v := range seq {
		require.Equal(t, 2*i, v)
	}
	assert.True(t, seq.Distinct())
}

func TestBuild_SizeBounds(t *testing.T) {
	t.Run("single element", func(t *testing.T) {
		seq, err := Build(1)
		require.NoError(t, err)
		assert.Equal(t, Sequence{0}, seq)
	})

	for _, n := range []int{0, -1, MaxSize + 1} {
		_, err := Build(n)
		require.ErrorIs(t, err, ErrSize, "n=%d", n)
	}
}

func TestFromValues(t *testing.T) {
	t.Run("copies sorted input", func(t *testing.T) {
		in := []int{-3, 0, 0, 4}
		seq, err := FromValues(in)
		require.NoError(t, err)
		assert.Equal(t, Sequence{-3, 0, 0, 4}, seq)
		assert.False(t, seq.Distinct())

		in[0] = 100
		assert.Equal(t, -3, seq[0])
	})

	t.Run("empty input", func(t *testing.T) {
		seq, err := FromValues(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, seq.Len())
		assert.True(t, seq.Distinct())
	})

	t.Run("rejects unsorted input", func(t *testing.T) {
		_, err := FromValues([]int{1, 5, 2})
		require.ErrorIs(t, err, ErrUnsorted)
		assert.Contains(t, err.Error(), "2 at index 2 follows 5")
	})
}
