package generator

import (
	"testing"

	"github.com/nao1215/hashsim/internal/config"
)

// TestBuildDictionaryContents tests seeds, suffix combinations, and fillers.
func TestBuildDictionaryContents(t *testing.T) {
	t.Parallel()

	d := BuildDictionary(config.DefaultFillerWords)

	// 17 seeds + 17*3 suffix combos + 5000 fillers, all distinct.
	expected := len(seedWords)*(1+len(seedSuffixes)) + config.DefaultFillerWords
	if d.Len() != expected {
		t.Fatalf("dictionary has %d words, expected %d", d.Len(), expected)
	}

	for _, probe := range []string{
		"password", "iloveu",
		"password123", "dragon2020", "qwerty!",
		"word0", "word4999",
	} {
		if !d.Contains(probe) {
			t.Errorf("expected dictionary to contain %q", probe)
		}
	}
	if d.Contains("word5000") {
		t.Error("dictionary contains filler beyond the configured count")
	}
}

// TestBuildDictionaryOrder tests that seeds come first and prefixes are
// stable, which the small/large attacker dictionaries rely on.
func TestBuildDictionaryOrder(t *testing.T) {
	t.Parallel()

	d := BuildDictionary(100)
	words := d.Words()

	for i, seed := range seedWords {
		if words[i] != seed {
			t.Errorf("words[%d] = %q, expected seed %q", i, words[i], seed)
		}
	}

	// Deterministic construction: two builds agree position by position.
	again := BuildDictionary(100).Words()
	for i := range words {
		if words[i] != again[i] {
			t.Fatalf("construction order diverged at %d: %q vs %q", i, words[i], again[i])
		}
	}
}

// TestBuildDictionaryPrefixNesting tests that the small dictionary is a
// prefix of the large one.
func TestBuildDictionaryPrefixNesting(t *testing.T) {
	t.Parallel()

	d := BuildDictionary(config.DefaultFillerWords)
	small := d.Prefix(config.DefaultSmallDictSize)
	large := d.Prefix(config.DefaultLargeDictSize)

	if small.Len() != config.DefaultSmallDictSize {
		t.Fatalf("small dictionary has %d words, expected %d", small.Len(), config.DefaultSmallDictSize)
	}
	if large.Len() != config.DefaultLargeDictSize {
		t.Fatalf("large dictionary has %d words, expected %d", large.Len(), config.DefaultLargeDictSize)
	}

	largeWords := large.Words()
	for i, w := range small.Words() {
		if largeWords[i] != w {
			t.Fatalf("small dictionary is not a prefix of large at %d: %q vs %q", i, w, largeWords[i])
		}
	}
}
