package model

import (
	"strings"
	"unicode"
)

// Dictionary is an immutable, ordered set of attacker-known candidate
// strings. The order is the construction order; the small and large attacker
// dictionaries are prefixes of the same master set, so Prefix must be stable
// across runs for reruns to reproduce identical outcomes.
//
// Design decision: We keep both a slice (order, file output) and a map
// (membership). The slice is the source of truth; the map is a derived
// index built once at construction.
type Dictionary struct {
	words []string
	index map[string]struct{}
}

// NewDictionary builds a Dictionary from words, deduplicating while
// preserving the first occurrence of each word.
func NewDictionary(words []string) *Dictionary {
	d := &Dictionary{
		words: make([]string, 0, len(words)),
		index: make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		if _, ok := d.index[w]; ok {
			continue
		}
		d.index[w] = struct{}{}
		d.words = append(d.words, w)
	}
	return d
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.words) }

// Words returns the words in construction order. The returned slice is a
// copy; callers cannot mutate the dictionary through it.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// Prefix returns a new Dictionary containing the first n words of d.
// If n exceeds the dictionary size, the whole dictionary is returned.
func (d *Dictionary) Prefix(n int) *Dictionary {
	if n > len(d.words) {
		n = len(d.words)
	}
	return NewDictionary(d.words[:n])
}

// Contains reports whether the attacker knows the password: either the raw
// string or its normalized form is in the dictionary. Normalization makes
// the membership check case-insensitive and alphanumeric-only, so
// "Password123!" matches the entry "password123".
func (d *Dictionary) Contains(raw string) bool {
	if _, ok := d.index[raw]; ok {
		return true
	}
	_, ok := d.index[Normalize(raw)]
	return ok
}

// Normalize lowercases s and strips every non-alphanumeric character.
// This models an attacker running basic mangling rules rather than testing
// only literal dictionary entries.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
