package search

// BoyerMoore uses the bad-character rule only. The shift table is rebuilt on
// every call.
type BoyerMoore struct{}

func NewBoyerMoore() *BoyerMoore {
	return new(BoyerMoore)
}

func (bm *BoyerMoore) String() string {
	return "BOYER-MOORE"
}

func (bm *BoyerMoore) FindIndex(text, pattern []byte) int {
	return boyerMooreFinder(text, pattern)
}

func (bm *BoyerMoore) FindIndexRunes(text, pattern []rune) int {
	return boyerMooreFinder(text, pattern)
}

func (bm *BoyerMoore) FindIndexString(text, pattern string) int {
	return boyerMooreFinder(runes(text), runes(pattern))
}

// buildShiftTable maps every symbol but the last to its distance from the end
// of the pattern, keeping the rightmost occurrence. The last symbol gets the
// full pattern length unless it already occurred earlier.
func buildShiftTable[S symbol](pattern []S) map[S]int {
	m := len(pattern)
	table := make(map[S]int, m)
	for i, c := range pattern[:m-1] {
		table[c] = m - i - 1
	}
	if _, ok := table[pattern[m-1]]; !ok {
		table[pattern[m-1]] = m
	}
	return table
}

func boyerMooreFinder[S symbol](text, pattern []S) int {
	if !searchable(text, pattern) {
		return NotFound
	}
	shift := buildShiftTable(pattern)
	n, m := len(text), len(pattern)
	for i := 0; i <= n-m; {
		j := m - 1
		for j >= 0 && text[i+j] == pattern[j] {
			j--
		}
		if j < 0 {
			return i
		}
		skip, ok := shift[text[i+m-1]]
		if !ok {
			skip = m
		}
		i += skip
	}
	return NotFound
}
