package model

import "fmt"

// Strength classifies a generated password by the policy branch that
// produced it.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and map keys. The String() method provides
// the lowercase labels used in the CSV artifacts.
type Strength int

const (
	// StrengthWeak marks passwords drawn from the weak base list plus a
	// numeric suffix. These dominate real-world breach corpora, which is
	// why the generator produces them with probability 0.5.
	StrengthWeak Strength = iota

	// StrengthMedium marks passwords built from a common word plus a
	// symbol/number suffix combination.
	StrengthMedium

	// StrengthStrong marks fully random passwords of 12-20 characters
	// drawn from the large alphabet.
	StrengthStrong
)

// String returns the lowercase label used in artifacts ("weak", "medium",
// "strong").
func (s Strength) String() string {
	switch s {
	case StrengthWeak:
		return "weak"
	case StrengthMedium:
		return "medium"
	case StrengthStrong:
		return "strong"
	default:
		return "unknown"
	}
}

// ParseStrength converts a label back into a Strength.
// It returns an error for anything outside {weak, medium, strong}.
func ParseStrength(label string) (Strength, error) {
	switch label {
	case "weak":
		return StrengthWeak, nil
	case "medium":
		return StrengthMedium, nil
	case "strong":
		return StrengthStrong, nil
	default:
		return 0, fmt.Errorf("unknown strength label %q", label)
	}
}
