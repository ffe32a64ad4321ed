package config

import "fmt"

// Default configuration values. These reproduce the original demo's
// parameters where one existed.
const (
	// DefaultPasswordCount is the size of the generated password corpus.
	// 2000 is large enough for group crack rates to be stable to a couple
	// of percentage points while keeping a full run under a second.
	DefaultPasswordCount = 2000

	// DefaultSmallDictSize is the prefix length of the master dictionary
	// used as the "small" attacker dictionary.
	DefaultSmallDictSize = 500

	// DefaultLargeDictSize is the prefix length used as the "large"
	// attacker dictionary.
	DefaultLargeDictSize = 4000

	// DefaultFillerWords is the number of synthetic "wordN" filler entries
	// appended to the master dictionary. The fillers exist so the two
	// prefix sizes actually differ in coverage: the seeds and their
	// suffix combinations alone number well under 500.
	DefaultFillerWords = 5000

	// DefaultSeed seeds the run's random source. Reruns with the same seed
	// must reproduce identical password lists, dictionaries, and outcomes.
	DefaultSeed = 42

	// DefaultOutputDir is the fixed artifact directory, created if absent.
	// All artifacts in it are overwritten unconditionally on each run.
	DefaultOutputDir = "results"

	// DefaultSweepConcurrency bounds concurrent per-seed pipelines during
	// a multi-seed sweep. Runs are CPU-bound, so there is little point
	// going far beyond the core count.
	DefaultSweepConcurrency = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "hashsim"

	// DefaultConfigFile is the configuration file name searched for in the
	// working directory.
	DefaultConfigFile = ".hashsim"
)

// Probabilities holds every constant of the crack-probability model.
//
// These are synthetic, illustrative values carried over from the demo this
// tool reimplements. They are not measurements and must not be read as
// real-world cracking-time guidance; they exist to make the simulated curves
// behave plausibly (salting helps, cost parameters decay success, weak
// passwords fall first).
type Probabilities struct {
	// FastDigestWeak, FastDigestMedium, and FastDigestStrong are the base
	// crack probabilities for a dictionary-matched password under a fast
	// unsalted digest, by password strength.
	FastDigestWeak   float64 `yaml:"fastDigestWeak"`
	FastDigestMedium float64 `yaml:"fastDigestMedium"`
	FastDigestStrong float64 `yaml:"fastDigestStrong"`

	// IteratedBase and IteratedDecay shape the iterated scheme's curve:
	// base * exp(-decay * (iterations - 1000)).
	IteratedBase  float64 `yaml:"iteratedBase"`
	IteratedDecay float64 `yaml:"iteratedDecay"`

	// AdaptiveBase and AdaptiveRatio shape the adaptive-cost scheme's
	// curve: base * ratio^(cost - 8).
	AdaptiveBase  float64 `yaml:"adaptiveBase"`
	AdaptiveRatio float64 `yaml:"adaptiveRatio"`

	// MemoryBase and MemoryRatio shape the memory-hard scheme's curve:
	// base * ratio^log2(memKB + 1).
	MemoryBase  float64 `yaml:"memoryBase"`
	MemoryRatio float64 `yaml:"memoryRatio"`

	// MissWeak, MissMedium, and MissStrong are the residual probabilities
	// for passwords absent from the attacker dictionary, by strength.
	MissWeak   float64 `yaml:"missWeak"`
	MissMedium float64 `yaml:"missMedium"`
	MissStrong float64 `yaml:"missStrong"`

	// SaltDampingFast and SaltDampingSlow multiply the base probability
	// when salting is enabled. Fast digests are damped harder because
	// salting defeats precomputed-table attacks, which only help fast
	// schemes; against slow schemes the attacker was hashing per password
	// anyway.
	SaltDampingFast float64 `yaml:"saltDampingFast"`
	SaltDampingSlow float64 `yaml:"saltDampingSlow"`
}

// DefaultProbabilities returns the model constants of the original demo.
func DefaultProbabilities() Probabilities {
	return Probabilities{
		FastDigestWeak:   0.95,
		FastDigestMedium: 0.7,
		FastDigestStrong: 0.2,
		IteratedBase:     0.9,
		IteratedDecay:    0.00004,
		AdaptiveBase:     0.9,
		AdaptiveRatio:    0.85,
		MemoryBase:       0.8,
		MemoryRatio:      0.9,
		MissWeak:         0.05,
		MissMedium:       0.02,
		MissStrong:       0.001,
		SaltDampingFast:  0.4,
		SaltDampingSlow:  0.7,
	}
}

// Validate checks that the constants describe a coherent model.
func (p Probabilities) Validate() error {
	inUnit := map[string]float64{
		"fastDigestWeak":   p.FastDigestWeak,
		"fastDigestMedium": p.FastDigestMedium,
		"fastDigestStrong": p.FastDigestStrong,
		"iteratedBase":     p.IteratedBase,
		"adaptiveBase":     p.AdaptiveBase,
		"memoryBase":       p.MemoryBase,
		"missWeak":         p.MissWeak,
		"missMedium":       p.MissMedium,
		"missStrong":       p.MissStrong,
	}
	for name, v := range inUnit {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s = %g is outside [0,1]", ErrInvalidConfig, name, v)
		}
	}

	// Damping factors must stay below 1 so salting never increases the
	// crack probability.
	if p.SaltDampingFast <= 0 || p.SaltDampingFast >= 1 {
		return fmt.Errorf("%w: saltDampingFast = %g must be in (0,1)", ErrInvalidConfig, p.SaltDampingFast)
	}
	if p.SaltDampingSlow <= 0 || p.SaltDampingSlow >= 1 {
		return fmt.Errorf("%w: saltDampingSlow = %g must be in (0,1)", ErrInvalidConfig, p.SaltDampingSlow)
	}

	// Decay ratios below 1 make increasing cost monotonically decrease
	// the crack probability.
	if p.IteratedDecay <= 0 {
		return fmt.Errorf("%w: iteratedDecay = %g must be positive", ErrInvalidConfig, p.IteratedDecay)
	}
	if p.AdaptiveRatio <= 0 || p.AdaptiveRatio >= 1 {
		return fmt.Errorf("%w: adaptiveRatio = %g must be in (0,1)", ErrInvalidConfig, p.AdaptiveRatio)
	}
	if p.MemoryRatio <= 0 || p.MemoryRatio >= 1 {
		return fmt.Errorf("%w: memoryRatio = %g must be in (0,1)", ErrInvalidConfig, p.MemoryRatio)
	}
	return nil
}

// Config holds all configuration for a hashsim run.
// It is populated from CLI flags plus the optional .hashsim file and passed
// down via dependency injection rather than global state.
//
// Design decision: A single flat struct: the option count is small enough
// that nesting would only add indirection. Probabilities is the one nested
// block because it is the unit that the YAML file overrides wholesale.
type Config struct {
	// OutputDir is the artifact directory for the simulation.
	OutputDir string

	// PasswordCount is the size of the generated password corpus.
	PasswordCount int

	// SmallDictSize and LargeDictSize are the attacker dictionary prefix
	// lengths.
	SmallDictSize int
	LargeDictSize int

	// Seed seeds the run's random source.
	Seed int64

	// Seeds, when it has more than one entry, switches simulate into a
	// sweep: one independent pipeline per seed, each writing into a
	// seed-<n> subdirectory of OutputDir.
	Seeds []int64

	// SweepConcurrency bounds concurrent pipelines during a sweep.
	SweepConcurrency int

	// Verbose enables slog.LevelDebug output.
	Verbose bool

	// ConfigFilePath is the explicit path to a .hashsim file, if the user
	// provided one. Empty means search the default locations.
	ConfigFilePath string

	// Probabilities holds the crack-model constants.
	Probabilities Probabilities
}

// NewConfig returns a Config with all defaults applied.
func NewConfig() *Config {
	return &Config{
		OutputDir:        DefaultOutputDir,
		PasswordCount:    DefaultPasswordCount,
		SmallDictSize:    DefaultSmallDictSize,
		LargeDictSize:    DefaultLargeDictSize,
		Seed:             DefaultSeed,
		SweepConcurrency: DefaultSweepConcurrency,
		Probabilities:    DefaultProbabilities(),
	}
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory must not be empty", ErrInvalidConfig)
	}
	if c.PasswordCount <= 0 {
		return fmt.Errorf("%w: password count must be positive, got %d", ErrInvalidConfig, c.PasswordCount)
	}
	if c.SmallDictSize <= 0 || c.LargeDictSize <= 0 {
		return fmt.Errorf("%w: dictionary sizes must be positive", ErrInvalidConfig)
	}
	if c.SmallDictSize > c.LargeDictSize {
		return fmt.Errorf("%w: small dictionary (%d) larger than large dictionary (%d)",
			ErrInvalidConfig, c.SmallDictSize, c.LargeDictSize)
	}
	if c.SweepConcurrency <= 0 {
		return fmt.Errorf("%w: sweep concurrency must be positive, got %d", ErrInvalidConfig, c.SweepConcurrency)
	}
	if err := c.Probabilities.Validate(); err != nil {
		return err
	}
	return nil
}
