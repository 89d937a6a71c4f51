package search

// Linear returns the smallest index i with seq[i] == key, or Absent.
// The sequence does not need to be sorted.
func Linear(seq []int, key int) Position {
	pos, _ := LinearProbe(seq, key)
	return pos
}

// LinearProbe is Linear that also reports how many elements it compared.
func LinearProbe(seq []int, key int) (Position, int) {
	for i, v := range seq {
		if v == key {
			return Found(i), i + 1
		}
	}
	return Absent, len(seq)
}
