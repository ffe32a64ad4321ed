package model

import "time"

// SimulationReport accumulates everything one simulation run produces.
// It is threaded through the pipeline steps: the generator fills Passwords,
// the dictionary step fills the dictionaries, the trial runner fills Trials,
// and the aggregator fills Summary. Report writers consume it read-only.
//
// Design decision: A single accumulating report object rather than values
// passed between steps keeps every step signature identical, which is what
// lets the pipeline treat steps uniformly for logging and cancellation.
type SimulationReport struct {
	// Seed is the RNG seed this run was generated from. Two runs with the
	// same seed produce byte-identical artifacts.
	Seed int64

	// Passwords is the generated password corpus.
	Passwords []Password

	// Master is the full attacker dictionary; SmallDict and LargeDict are
	// prefixes of it.
	Master    *Dictionary
	SmallDict *Dictionary
	LargeDict *Dictionary

	// Trials is the flat per-trial outcome table.
	Trials []Trial

	// Summary is the aggregated per-group table.
	Summary []SummaryRow

	// StartedAt records when the run began, for the markdown report header.
	StartedAt time.Time

	// PerformedSteps lists the names of pipeline steps that ran, in order.
	PerformedSteps []string
}

// NewSimulationReport creates an empty report for the given seed.
func NewSimulationReport(seed int64) *SimulationReport {
	return &SimulationReport{
		Seed:      seed,
		StartedAt: time.Now(),
	}
}

// CrackedTotal returns the total number of cracked trials across all groups.
func (r *SimulationReport) CrackedTotal() int {
	var n int
	for _, t := range r.Trials {
		if t.Cracked {
			n++
		}
	}
	return n
}
