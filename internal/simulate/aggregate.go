package simulate

import "github.com/nao1215/hashsim/internal/model"

// groupKey identifies one aggregation group.
type groupKey struct {
	algorithm string
	param     string
	salted    bool
	dict      string
}

// Aggregate reduces the trial table into one SummaryRow per (algorithm,
// param, salted, dict) group: total count, cracked count, crack rate, and
// mean modeled hash time. Groups appear in first-occurrence order, which
// for RunTrials output means the trial loop's fixed iteration order.
//
// Purely a reduction; there are no error states.
func Aggregate(trials []model.Trial) []model.SummaryRow {
	type accumulator struct {
		total       int
		crackedSum  int
		hashTimeSum float64
	}

	order := make([]groupKey, 0, 48)
	groups := make(map[groupKey]*accumulator, 48)

	for _, t := range trials {
		key := groupKey{
			algorithm: t.Algorithm,
			param:     t.Param,
			salted:    t.Salted,
			dict:      t.Dict,
		}
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{}
			groups[key] = acc
			order = append(order, key)
		}
		acc.total++
		if t.Cracked {
			acc.crackedSum++
		}
		acc.hashTimeSum += t.HashTimeMS
	}

	summary := make([]model.SummaryRow, 0, len(order))
	for _, key := range order {
		acc := groups[key]
		summary = append(summary, model.SummaryRow{
			Algorithm:     key.algorithm,
			Param:         key.param,
			Salted:        key.salted,
			Dict:          key.dict,
			Total:         acc.total,
			CrackedSum:    acc.crackedSum,
			CrackedRate:   float64(acc.crackedSum) / float64(acc.total),
			AvgHashTimeMS: acc.hashTimeSum / float64(acc.total),
		})
	}
	return summary
}
