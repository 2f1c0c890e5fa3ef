package typo

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxAttempts bounds every sampling loop so a mutation always terminates.
const maxAttempts = 3

// --- Word-level mutations ---

// runeBounds returns the byte offset of every rune in word followed by
// len(word). Invalid bytes count as one rune each, so splicing at these
// offsets leaves every untouched byte as it was.
func runeBounds(word string) []int {
	bounds := make([]int, 0, len(word)+1)
	for i := 0; i < len(word); {
		bounds = append(bounds, i)
		_, size := utf8.DecodeRuneInString(word[i:])
		i += size
	}
	return append(bounds, len(word))
}

// DropLetter removes one rune at a uniformly chosen position.
// Words of length 0 or 1 are returned unchanged.
func DropLetter(rng Source, word string) string {
	bounds := runeBounds(word)
	n := len(bounds) - 1
	if n <= 1 {
		return word
	}
	pos := rng.Intn(n)
	return word[:bounds[pos]] + word[bounds[pos+1]:]
}

// KeyboardAdjacent replaces one rune with a neighboring key, simulating a
// mis-press. Up to three positions are sampled; the first one that is a key of
// the layout is replaced. The case of the original rune is kept.
func KeyboardAdjacent(rng Source, layout Layout, word string) string {
	bounds := runeBounds(word)
	n := len(bounds) - 1
	if n == 0 {
		return word
	}
	for i := 0; i < maxAttempts; i++ {
		pos := rng.Intn(n)
		start, end := bounds[pos], bounds[pos+1]
		original, _ := utf8.DecodeRuneInString(word[start:end])
		neighbors, ok := layout.Neighbors(original)
		if !ok {
			continue
		}
		typoChar := neighbors[rng.Intn(len(neighbors))]
		if unicode.IsUpper(original) {
			typoChar = unicode.ToUpper(typoChar)
		}
		return word[:start] + string(typoChar) + word[end:]
	}
	return word
}

// Transpose swaps two adjacent runes. A pair qualifies when either rune is a
// key of the layout; up to three pairs are sampled. The bytes of both runes
// are moved verbatim.
func Transpose(rng Source, layout Layout, word string) string {
	bounds := runeBounds(word)
	n := len(bounds) - 1
	if n < 2 {
		return word
	}
	for i := 0; i < maxAttempts; i++ {
		pos := rng.Intn(n - 1)
		a, b, c := bounds[pos], bounds[pos+1], bounds[pos+2]
		first, _ := utf8.DecodeRuneInString(word[a:b])
		second, _ := utf8.DecodeRuneInString(word[b:c])
		if layout.Has(first) || layout.Has(second) {
			return word[:a] + word[b:c] + word[a:b] + word[c:]
		}
	}
	return word
}

// DigraphSwap applies the first table entry whose pattern occurs in the word,
// compared case-insensitively. The replacement itself is case-sensitive and
// only touches the first literal occurrence, so "The" matches "th" but is
// left as is.
func DigraphSwap(table DigraphTable, word string) string {
	lower := strings.ToLower(word)
	for _, d := range table {
		if strings.Contains(lower, d.Pattern) {
			return strings.Replace(word, d.Pattern, d.Swap, 1)
		}
	}
	return word
}

// --- Text-level mutations ---

// DoubleSpace doubles the space at one uniformly chosen word boundary.
func DoubleSpace(rng Source, text string) string {
	parts := strings.Split(text, " ")
	if len(parts) < 2 {
		return text
	}
	pos := rng.Intn(len(parts)-1) + 1
	parts = append(parts[:pos], append([]string{""}, parts[pos:]...)...)
	return strings.Join(parts, " ")
}

// RemoveSpace deletes the first space in text, if any.
func RemoveSpace(text string) string {
	return strings.Replace(text, " ", "", 1)
}
