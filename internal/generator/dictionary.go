package generator

import (
	"strconv"

	"github.com/nao1215/hashsim/internal/model"
)

// seedWords is the attacker's base word list. It covers every weak base and
// medium base the password generator uses, so dictionary hits are common by
// construction.
var seedWords = []string{
	"password", "123456", "qwerty", "letmein", "welcome",
	"admin", "iloveyou", "sunshine", "monkey", "dragon",
	"football", "baseball", "computer", "coffee",
	"flower", "purple", "iloveu",
}

// seedSuffixes are the mangling suffixes applied to every seed word.
var seedSuffixes = []string{"123", "2020", "!"}

// BuildDictionary builds the master attacker dictionary: the seed words,
// each seed combined with the common suffixes, then fillerWords synthetic
// "wordN" entries. Construction is pure and fully ordered, so prefixes of
// the result are stable across runs; the small and large attacker
// dictionaries are taken as prefixes of this master set.
func BuildDictionary(fillerWords int) *model.Dictionary {
	words := make([]string, 0, len(seedWords)*(1+len(seedSuffixes))+fillerWords)

	for _, w := range seedWords {
		words = append(words, w)
	}
	for _, w := range seedWords {
		for _, suffix := range seedSuffixes {
			words = append(words, w+suffix)
		}
	}
	for i := 0; i < fillerWords; i++ {
		words = append(words, "word"+strconv.Itoa(i))
	}

	return model.NewDictionary(words)
}
