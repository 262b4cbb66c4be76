package search

import (
	"errors"
	"unicode/utf8"
)

var (
	ErrEmptyPattern   = errors.New("search: empty pattern")
	ErrPatternTooLong = errors.New("search: pattern longer than text")
)

// NotFound is returned by every finder when the pattern does not occur in the text.
const NotFound = -1

// Searcher finds the leftmost occurrence of a pattern in a text. FindIndex
// works on bytes and returns a byte offset, FindIndexRunes and FindIndexString
// work on characters and return a character offset. FindIndexString counts
// every byte of invalid UTF-8 as one character of its own.
type Searcher interface {
	String() string
	FindIndex(text, pattern []byte) int
	FindIndexRunes(text, pattern []rune) int
	FindIndexString(text, pattern string) int
}

// Searchers returns one of each implementation, in the order they are compared.
func Searchers() []Searcher {
	return []Searcher{
		NewBoyerMoore(),
		NewKnuthMorrisPratt(),
		NewRabinKarp(),
	}
}

// Check reports whether a pattern of length m can be searched for in a text
// of length n. The finders do not return an error, they return NotFound for
// the same conditions.
func Check(n, m int) error {
	if m == 0 {
		return ErrEmptyPattern
	}
	if m > n {
		return ErrPatternTooLong
	}
	return nil
}

// runes decodes s into code points. A byte that is not part of valid UTF-8
// becomes 0xDC00|b, so two different invalid bytes never compare equal.
func runes(s string) []rune {
	rs := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = 0xDC00 | rune(s[i])
		}
		rs = append(rs, r)
		i += size
	}
	return rs
}

type symbol interface {
	~byte | ~rune
}

func searchable[S symbol](text, pattern []S) bool {
	return Check(len(text), len(pattern)) == nil
}

func equal[S symbol](a, b []S) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Boyer-Moore:
// Works by pre-analyzing the pattern and comparing from right-to-left. If a mismatch occurs, the
// shift table is used to determine how far the pattern can be shifted w.r.t. the text being
// searched. It can be sublinear, as you do not need to read every single character of your text.

// Knuth-Morris-Pratt:
// Also works by pre-analyzing the pattern, but re-uses whatever was already matched in the
// initial part of the pattern to avoid having to rematch that. Best suited for texts that have
// a lot of tight repetition.

// Rabin-Karp:
// Works by utilizing a rolling hash of the successive windows of the text, which it then uses
// for comparing matches. Every hash hit is confirmed by comparing the window directly.
