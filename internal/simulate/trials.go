package simulate

import (
	"math/rand"

	"github.com/nao1215/hashsim/internal/config"
	"github.com/nao1215/hashsim/internal/model"
)

// dictChoice pairs a dictionary size label with its candidate set for the
// trial loop.
type dictChoice struct {
	label string
	dict  *model.Dictionary
}

// RunTrials evaluates every (password x scheme configuration x salting flag
// x dictionary choice) combination exactly once and returns the flat
// outcome table.
//
// Row count is deterministic: len(schemes) * 2 * 2 * len(passwords), in a
// fixed iteration order (scheme, then salted, then dictionary, then
// password). For each trial the crack probability is evaluated, clamped,
// and compared against a single uniform draw from r: cracked is true iff
// the draw is strictly below the probability. The draw happens once per
// trial; the stored boolean is the outcome of that sample.
func RunTrials(r *rand.Rand, passwords []model.Password, schemes []model.Scheme,
	small, large *model.Dictionary, probs config.Probabilities) []model.Trial {
	dicts := []dictChoice{
		{label: model.DictSmall, dict: small},
		{label: model.DictLarge, dict: large},
	}

	trials := make([]model.Trial, 0, len(schemes)*2*len(dicts)*len(passwords))
	for _, scheme := range schemes {
		hashTime := HashTimeMS(scheme)
		for _, salted := range []bool{false, true} {
			for _, dc := range dicts {
				for _, pw := range passwords {
					prob := CrackProbability(pw, scheme, salted, dc.dict, probs)
					trials = append(trials, model.Trial{
						Algorithm:  scheme.Algorithm(),
						Param:      scheme.ParamLabel(),
						Salted:     salted,
						Dict:       dc.label,
						Strength:   pw.Strength,
						HashTimeMS: hashTime,
						Cracked:    cracked(r.Float64(), prob),
					})
				}
			}
		}
	}
	return trials
}

// cracked decides one trial outcome from a single uniform draw: the
// attacker succeeds iff the draw falls strictly below the clamped
// probability.
func cracked(draw, prob float64) bool {
	return draw < prob
}
