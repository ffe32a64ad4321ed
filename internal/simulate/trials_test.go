package simulate

import (
	"math/rand"
	"testing"

	"github.com/nao1215/hashsim/internal/config"
	"github.com/nao1215/hashsim/internal/generator"
	"github.com/nao1215/hashsim/internal/model"
)

// trialFixture builds a small but complete trial input set.
func trialFixture(t *testing.T, passwordCount int) ([]model.Password, *model.Dictionary, *model.Dictionary) {
	t.Helper()
	passwords := generator.Passwords(rand.New(rand.NewSource(42)), passwordCount)
	master := generator.BuildDictionary(200)
	return passwords, master.Prefix(50), master.Prefix(150)
}

// TestRunTrialsRowCount tests the deterministic trial multiplicity:
// |schemes| x 2 salt flags x 2 dictionaries x |passwords|.
func TestRunTrialsRowCount(t *testing.T) {
	t.Parallel()

	passwords, small, large := trialFixture(t, 50)
	schemes := model.DefaultSchemes()

	trials := RunTrials(rand.New(rand.NewSource(1)), passwords, schemes, small, large, config.DefaultProbabilities())

	expected := len(schemes) * 2 * 2 * len(passwords)
	if len(trials) != expected {
		t.Fatalf("got %d trials, expected %d", len(trials), expected)
	}

	// Exactly one row per (password, config, salted, dict) tuple: counting
	// per group key must give |passwords| everywhere.
	perGroup := make(map[string]int)
	for _, tr := range trials {
		key := tr.Algorithm + "|" + tr.Param + "|" + tr.Dict
		if tr.Salted {
			key += "|salted"
		}
		perGroup[key]++
	}
	if len(perGroup) != len(schemes)*2*2 {
		t.Fatalf("got %d groups, expected %d", len(perGroup), len(schemes)*2*2)
	}
	for key, n := range perGroup {
		if n != len(passwords) {
			t.Errorf("group %s has %d rows, expected %d", key, n, len(passwords))
		}
	}
}

// TestRunTrialsDrawConsistency tests that each stored cracked boolean is
// exactly the outcome of one uniform draw against the pure probability, by
// replaying the run with an identical source.
func TestRunTrialsDrawConsistency(t *testing.T) {
	t.Parallel()

	passwords, small, large := trialFixture(t, 30)
	schemes := model.DefaultSchemes()
	probs := config.DefaultProbabilities()

	trials := RunTrials(rand.New(rand.NewSource(99)), passwords, schemes, small, large, probs)

	// Replay with the same seed, consuming draws in the same order.
	replay := rand.New(rand.NewSource(99))
	i := 0
	dicts := []dictChoice{{model.DictSmall, small}, {model.DictLarge, large}}
	for _, scheme := range schemes {
		for _, salted := range []bool{false, true} {
			for _, dc := range dicts {
				for _, pw := range passwords {
					prob := CrackProbability(pw, scheme, salted, dc.dict, probs)
					want := cracked(replay.Float64(), prob)
					if trials[i].Cracked != want {
						t.Fatalf("trial %d cracked = %v, replay expected %v", i, trials[i].Cracked, want)
					}
					i++
				}
			}
		}
	}
}

// TestRunTrialsDeterministic tests seed-for-seed reproducibility of the
// whole table.
func TestRunTrialsDeterministic(t *testing.T) {
	t.Parallel()

	passwords, small, large := trialFixture(t, 20)
	schemes := model.DefaultSchemes()
	probs := config.DefaultProbabilities()

	first := RunTrials(rand.New(rand.NewSource(5)), passwords, schemes, small, large, probs)
	second := RunTrials(rand.New(rand.NewSource(5)), passwords, schemes, small, large, probs)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("trials diverged at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

// TestAggregate tests the reduction's totals, rates, and group ordering.
func TestAggregate(t *testing.T) {
	t.Parallel()

	passwords, small, large := trialFixture(t, 40)
	schemes := model.DefaultSchemes()

	trials := RunTrials(rand.New(rand.NewSource(3)), passwords, schemes, small, large, config.DefaultProbabilities())
	summary := Aggregate(trials)

	if len(summary) != len(schemes)*2*2 {
		t.Fatalf("got %d summary rows, expected %d", len(summary), len(schemes)*2*2)
	}

	for _, row := range summary {
		if row.Total != len(passwords) {
			t.Errorf("group %s total = %d, expected %d", row.Label(), row.Total, len(passwords))
		}
		if row.CrackedRate != float64(row.CrackedSum)/float64(row.Total) {
			t.Errorf("group %s rate %g != crackedSum/total %g",
				row.Label(), row.CrackedRate, float64(row.CrackedSum)/float64(row.Total))
		}
		if row.CrackedSum < 0 || row.CrackedSum > row.Total {
			t.Errorf("group %s crackedSum %d outside [0,%d]", row.Label(), row.CrackedSum, row.Total)
		}
		if row.AvgHashTimeMS <= 0 {
			t.Errorf("group %s has non-positive mean hash time %g", row.Label(), row.AvgHashTimeMS)
		}
	}

	// First-occurrence order: the first group must match the first trial.
	if summary[0].Algorithm != trials[0].Algorithm || summary[0].Salted != trials[0].Salted {
		t.Errorf("first summary group %+v does not match first trial %+v", summary[0], trials[0])
	}
}

// TestAggregateHandMade tests exact arithmetic on a hand-built table.
func TestAggregateHandMade(t *testing.T) {
	t.Parallel()

	trials := []model.Trial{
		{Algorithm: "MD5", Salted: false, Dict: model.DictSmall, HashTimeMS: 0.05, Cracked: true},
		{Algorithm: "MD5", Salted: false, Dict: model.DictSmall, HashTimeMS: 0.05, Cracked: false},
		{Algorithm: "MD5", Salted: false, Dict: model.DictSmall, HashTimeMS: 0.05, Cracked: true},
		{Algorithm: "MD5", Salted: false, Dict: model.DictSmall, HashTimeMS: 0.05, Cracked: false},
		{Algorithm: "bcrypt", Param: "cost=8", Salted: true, Dict: model.DictLarge, HashTimeMS: 4.8, Cracked: true},
	}

	summary := Aggregate(trials)
	if len(summary) != 2 {
		t.Fatalf("got %d groups, expected 2", len(summary))
	}

	md5 := summary[0]
	if md5.Total != 4 || md5.CrackedSum != 2 || md5.CrackedRate != 0.5 {
		t.Errorf("MD5 group = %+v, expected total 4, crackedSum 2, rate 0.5", md5)
	}
	if md5.AvgHashTimeMS != 0.05 {
		t.Errorf("MD5 mean hash time = %g, expected 0.05", md5.AvgHashTimeMS)
	}

	bc := summary[1]
	if bc.Total != 1 || bc.CrackedSum != 1 || bc.CrackedRate != 1.0 {
		t.Errorf("bcrypt group = %+v, expected total 1, crackedSum 1, rate 1", bc)
	}
}
