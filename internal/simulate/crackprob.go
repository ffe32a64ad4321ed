package simulate

import (
	"math"

	"github.com/nao1215/hashsim/internal/config"
	"github.com/nao1215/hashsim/internal/model"
)

// CrackProbability returns the modeled likelihood that an offline dictionary
// attacker recovers pw under scheme s with the given salting flag and
// attacker dictionary. The result is always clamped to [0,1].
//
// The model: if the password (raw or normalized) is in the attacker
// dictionary, the base probability starts high and decays with the scheme's
// cost knob; if it is absent, a small residual probability keyed only by
// strength remains. Salting multiplies the base by a damping factor below
// one, damped harder for fast digests because salting defeats the
// precomputed-table attacks that only ever helped fast schemes.
//
// CrackProbability is pure: the same inputs always yield the same value.
// The boolean cracked outcome of a trial is sampled exactly once from this
// value by the trial runner; it is not a threshold function callers may
// re-derive later.
func CrackProbability(pw model.Password, s model.Scheme, salted bool, dict *model.Dictionary, probs config.Probabilities) float64 {
	var base float64

	if dict.Contains(pw.Plaintext) {
		switch v := s.(type) {
		case model.FastDigest:
			switch pw.Strength {
			case model.StrengthWeak:
				base = probs.FastDigestWeak
			case model.StrengthMedium:
				base = probs.FastDigestMedium
			default:
				base = probs.FastDigestStrong
			}
		case model.Iterated:
			base = probs.IteratedBase * math.Exp(-probs.IteratedDecay*float64(v.Iterations-1000))
		case model.AdaptiveCost:
			base = probs.AdaptiveBase * math.Pow(probs.AdaptiveRatio, float64(v.Cost-8))
		case model.MemoryHard:
			base = probs.MemoryBase * math.Pow(probs.MemoryRatio, math.Log2(float64(v.MemoryKB)+1))
		}
	} else {
		switch pw.Strength {
		case model.StrengthWeak:
			base = probs.MissWeak
		case model.StrengthMedium:
			base = probs.MissMedium
		default:
			base = probs.MissStrong
		}
	}

	if salted {
		if _, fast := s.(model.FastDigest); fast {
			base *= probs.SaltDampingFast
		} else {
			base *= probs.SaltDampingSlow
		}
	}

	return clamp01(base)
}

// clamp01 clamps v to [0,1].
func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
