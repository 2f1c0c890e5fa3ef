package typo

import "unicode"

// Layout maps a lowercase key to its physical neighbors, in a fixed order.
type Layout map[rune][]rune

// QWERTY is the adjacency graph used for keyboard-adjacent mistakes.
// Only letters are keys; punctuation appears as a neighbor of p and l.
var QWERTY = Layout{
	'q': {'w', 'a'},
	'w': {'q', 'e', 's'},
	'e': {'w', 'r', 'd'},
	'r': {'e', 't', 'f'},
	't': {'r', 'y', 'g'},
	'y': {'t', 'u', 'h'},
	'u': {'y', 'i', 'j'},
	'i': {'u', 'o', 'k'},
	'o': {'i', 'p', 'l'},
	'p': {'o', '['},
	'a': {'q', 's', 'z'},
	's': {'w', 'a', 'd', 'x'},
	'd': {'e', 's', 'f', 'c'},
	'f': {'r', 'd', 'g', 'v'},
	'g': {'t', 'f', 'h', 'b'},
	'h': {'y', 'g', 'j', 'n'},
	'j': {'u', 'h', 'k', 'm'},
	'k': {'i', 'j', 'l'},
	'l': {'o', 'k', ';'},
	'z': {'a', 'x'},
	'x': {'s', 'z', 'c'},
	'c': {'d', 'x', 'v'},
	'v': {'f', 'c', 'b'},
	'b': {'g', 'v', 'n'},
	'n': {'h', 'b', 'm'},
	'm': {'j', 'n'},
}

// Neighbors returns the neighbors of r, looked up case-insensitively.
func (l Layout) Neighbors(r rune) ([]rune, bool) {
	n, ok := l[unicode.ToLower(r)]
	return n, ok && len(n) > 0
}

// Has reports whether r (case-insensitively) is a key of the layout.
func (l Layout) Has(r rune) bool {
	_, ok := l[unicode.ToLower(r)]
	return ok
}

// Digraph is a two-letter pattern and the transposed form it is typed as.
type Digraph struct {
	Pattern string
	Swap    string
}

// DigraphTable is scanned in order; the first matching pattern wins.
type DigraphTable []Digraph

// CommonDigraphs lists letter pairs that are frequently typed in reverse.
var CommonDigraphs = DigraphTable{
	{Pattern: "th", Swap: "ht"}, // the -> hte
	{Pattern: "ch", Swap: "hc"}, // which -> whihc
	{Pattern: "ph", Swap: "hp"},
	{Pattern: "sh", Swap: "hs"},
	{Pattern: "wh", Swap: "hw"}, // what -> hwat
	{Pattern: "ck", Swap: "kc"}, // back -> bakc
	{Pattern: "re", Swap: "er"},
	{Pattern: "es", Swap: "se"},
	{Pattern: "on", Swap: "no"},
	{Pattern: "in", Swap: "ni"},
}
