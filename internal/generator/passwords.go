package generator

import (
	"math/rand"
	"strconv"

	"github.com/nao1215/hashsim/internal/model"
)

// weakBases are the stock weak passwords the weak branch draws from.
// They are the perennial top of every real breach list.
var weakBases = []string{
	"password", "123456", "qwerty", "letmein", "welcome",
	"admin", "iloveyou", "sunshine", "monkey", "dragon",
}

// mediumBases are the common words the medium branch builds on.
var mediumBases = []string{
	"football", "baseball", "computer", "coffee", "iloveu", "flower", "purple",
}

// mediumSuffixes and mediumTails are the two suffix pools combined onto a
// medium base word.
var (
	mediumSuffixes = []string{"2020", "!", "$", "123", "_"}
	mediumTails    = []string{"1", "99", "x"}
)

// strongAlphabet is the character pool for the strong branch.
const strongAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()-_=+"

// Strong-branch length bounds.
const (
	strongMinLen = 12
	strongMaxLen = 20
)

// Branch probabilities: 50% weak, 35% medium, 15% strong. The skew toward
// weak passwords mirrors the composition of real-world credential dumps.
const (
	weakCutoff   = 0.5
	mediumCutoff = 0.85
)

// Passwords generates n password records from r. The strength label of each
// record is exactly the generation branch that produced it.
func Passwords(r *rand.Rand, n int) []model.Password {
	passwords := make([]model.Password, 0, n)
	for i := 0; i < n; i++ {
		var pw string
		var strength model.Strength

		switch draw := r.Float64(); {
		case draw < weakCutoff:
			pw = weakBases[r.Intn(len(weakBases))] + strconv.Itoa(r.Intn(1000))
			strength = model.StrengthWeak
		case draw < mediumCutoff:
			pw = mediumBases[r.Intn(len(mediumBases))] +
				mediumSuffixes[r.Intn(len(mediumSuffixes))] +
				mediumTails[r.Intn(len(mediumTails))]
			strength = model.StrengthMedium
		default:
			pw = randomString(r, strongMinLen+r.Intn(strongMaxLen-strongMinLen+1))
			strength = model.StrengthStrong
		}

		passwords = append(passwords, model.Password{
			ID:        i,
			Plaintext: pw,
			Strength:  strength,
		})
	}
	return passwords
}

// randomString draws length characters from the strong alphabet.
func randomString(r *rand.Rand, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = strongAlphabet[r.Intn(len(strongAlphabet))]
	}
	return string(b)
}
