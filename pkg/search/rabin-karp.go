package search

// RabinKarp algorithm is inferior for single pattern searching to Knuth–Morris–Pratt algorithm or the
// Boyer–Moore string search algorithm because of its slow worst case behavior. The small modulus used
// here makes collisions frequent, so every hash hit is checked against the pattern.
type RabinKarp struct{}

func NewRabinKarp() *RabinKarp {
	return new(RabinKarp)
}

func (rk *RabinKarp) String() string {
	return "RABIN-KARP"
}

func (rk *RabinKarp) FindIndex(text, pattern []byte) int {
	return rabinKarpFinder(text, pattern)
}

func (rk *RabinKarp) FindIndexRunes(text, pattern []rune) int {
	return rabinKarpFinder(text, pattern)
}

func (rk *RabinKarp) FindIndexString(text, pattern string) int {
	return rabinKarpFinder(runes(text), runes(pattern))
}

const (
	// Base is the polynomial multiplier of the rolling hash.
	Base = 256
	// Modulus is the prime every hash is reduced by.
	Modulus = 101
)

// hashOf returns the polynomial hash of s reduced modulo Modulus.
func hashOf[S symbol](s []S) int {
	h := 0
	for _, c := range s {
		h = (h*Base + int(c)) % Modulus
	}
	return h
}

// leadingWeight returns Base^(m-1) mod Modulus, the weight of the symbol
// leaving the window.
func leadingWeight(m int) int {
	w := 1
	for i := 1; i < m; i++ {
		w = (w * Base) % Modulus
	}
	return w
}

// roll drops out from the front of the window and appends in at the back.
func roll(h, out, in, weight int) int {
	h = (h - (out%Modulus)*weight%Modulus + Modulus) % Modulus
	return (h*Base + in) % Modulus
}

func rabinKarpFinder[S symbol](text, pattern []S) int {
	if !searchable(text, pattern) {
		return NotFound
	}
	n, m := len(text), len(pattern)
	weight := leadingWeight(m)
	hp := hashOf(pattern)
	ht := hashOf(text[:m])
	for i := 0; i <= n-m; i++ {
		if ht == hp && equal(text[i:i+m], pattern) {
			return i
		}
		if i < n-m {
			ht = roll(ht, int(text[i]), int(text[i+m]), weight)
		}
	}
	return NotFound
}
