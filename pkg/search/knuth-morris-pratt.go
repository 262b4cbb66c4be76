package search

// KnuthMorrisPratt algorithm is oftentimes only the best performing when it's used on shorter texts or
// if you are pre-computing the search tables beforehand. Otherwise, Boyer-Moore (and even Rabin-Karp) will
// beat it almost out most of the time.
type KnuthMorrisPratt struct{}

func NewKnuthMorrisPratt() *KnuthMorrisPratt {
	return new(KnuthMorrisPratt)
}

func (kmp *KnuthMorrisPratt) String() string {
	return "KNUTH-MORRIS-PRATT"
}

func (kmp *KnuthMorrisPratt) FindIndex(text, pattern []byte) int {
	return knuthMorrisPrattFinder(text, pattern)
}

func (kmp *KnuthMorrisPratt) FindIndexRunes(text, pattern []rune) int {
	return knuthMorrisPrattFinder(text, pattern)
}

func (kmp *KnuthMorrisPratt) FindIndexString(text, pattern string) int {
	return knuthMorrisPrattFinder(runes(text), runes(pattern))
}

// prefixTable returns, for every i, the length of the longest proper prefix
// of pattern that is also a suffix of pattern[:i+1].
func prefixTable[S symbol](pattern []S) []int {
	table := make([]int, len(pattern))
	length := 0
	for i := 1; i < len(pattern); {
		if pattern[i] == pattern[length] {
			length++
			table[i] = length
			i++
			continue
		}
		if length != 0 {
			length = table[length-1]
			continue
		}
		table[i] = 0
		i++
	}
	return table
}

func knuthMorrisPrattFinder[S symbol](text, pattern []S) int {
	if !searchable(text, pattern) {
		return NotFound
	}
	table := prefixTable(pattern)
	m := len(pattern)
	i, j := 0, 0
	for i < len(text) {
		if pattern[j] == text[i] {
			i++
			j++
			if j == m {
				return i - j
			}
			continue
		}
		if j != 0 {
			j = table[j-1]
		} else {
			i++
		}
	}
	return NotFound
}
