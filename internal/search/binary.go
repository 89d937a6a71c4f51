package search

// Binary searches the inclusive window [low, high] of seq for key.
//
// seq must be sorted non-decreasing on the window. If it is not, the returned
// position is unspecified, but the call still terminates and never indexes
// outside seq. The window is clamped to the bounds of seq first. When the key
// occurs more than once any matching index may be returned.
func Binary(seq []int, key, low, high int) Position {
	pos, _ := BinaryProbe(seq, key, low, high)
	return pos
}

// BinaryAll searches the whole of seq.
func BinaryAll(seq []int, key int) Position {
	return Binary(seq, key, 0, len(seq)-1)
}

// BinaryProbe is Binary that also reports how many elements it compared. For a
// window of n elements the count never exceeds ceil(log2(n+1)).
func BinaryProbe(seq []int, key, low, high int) (Position, int) {
	if low < 0 {
		low = 0
	}
	if high > len(seq)-1 {
		high = len(seq) - 1
	}

	// Indices are signed: high may drop to -1 when mid is 0.
	comparisons := 0
	for low <= high {
		mid := low + (high-low)/2
		comparisons++

		switch v := seq[mid]; {
		case key == v:
			return Found(mid), comparisons
		case key < v:
			high = mid - 1
		default:
			low = mid + 1
		}
	}
	return Absent, comparisons
}
