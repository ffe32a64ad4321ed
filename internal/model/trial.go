package model

// DictLabel names one of the two attacker dictionary size variants.
const (
	// DictSmall labels the small attacker dictionary (a short prefix of
	// the master set).
	DictSmall = "small"

	// DictLarge labels the large attacker dictionary.
	DictLarge = "large"
)

// Trial is one evaluation of (password x scheme configuration x salting
// flag x dictionary choice). It records the modeled hash time and the
// sampled cracked outcome.
//
// The Cracked boolean is drawn exactly once, when the trial is generated,
// by comparing a uniform draw against the clamped crack probability.
// Consumers must treat it as the outcome of that single draw: re-deriving
// it later from a stored probability would silently turn a sample into a
// threshold function.
type Trial struct {
	// Algorithm is the scheme display name (Scheme.Algorithm()).
	Algorithm string

	// Param is the scheme parameter label (Scheme.ParamLabel()), empty for
	// fast digests.
	Param string

	// Salted reports whether per-password salting was modeled.
	Salted bool

	// Dict is the dictionary size label, DictSmall or DictLarge.
	Dict string

	// Strength is the password's strength label.
	Strength Strength

	// HashTimeMS is the modeled single-hash computation time in
	// milliseconds. It comes from the closed-form hash-time model, not
	// from measurement.
	HashTimeMS float64

	// Cracked reports whether the simulated attacker recovered the
	// password in this trial.
	Cracked bool
}

// SummaryRow aggregates the trials of one (algorithm, param, salted, dict)
// group. Derived once by the aggregator, then read-only.
type SummaryRow struct {
	// Algorithm, Param, Salted, and Dict identify the group.
	Algorithm string
	Param     string
	Salted    bool
	Dict      string

	// Total is the number of trials in the group.
	Total int

	// CrackedSum is the number of cracked trials in the group.
	CrackedSum int

	// CrackedRate is exactly CrackedSum / Total.
	CrackedRate float64

	// AvgHashTimeMS is the mean modeled hash time over the group.
	AvgHashTimeMS float64
}

// Label returns the chart label for the group: the algorithm name plus the
// parameter label when one exists ("bcrypt cost=12", "MD5").
func (r SummaryRow) Label() string {
	if r.Param == "" {
		return r.Algorithm
	}
	return r.Algorithm + " " + r.Param
}
