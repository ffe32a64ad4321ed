package pipeline

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/nao1215/hashsim/internal/config"
	"github.com/nao1215/hashsim/internal/generator"
	"github.com/nao1215/hashsim/internal/model"
	"github.com/nao1215/hashsim/internal/report"
	"github.com/nao1215/hashsim/internal/simulate"
)

// GeneratePasswordsStep fills the report with the synthetic password corpus.
type GeneratePasswordsStep struct {
	// rng is the run's shared random source. The same source later feeds
	// the trial runner; drawing from it in a fixed step order is what
	// makes the whole run reproducible from one seed.
	rng *rand.Rand

	// count is the corpus size.
	count int
}

// NewGeneratePasswordsStep creates the password generation step.
func NewGeneratePasswordsStep(rng *rand.Rand, count int) *GeneratePasswordsStep {
	return &GeneratePasswordsStep{rng: rng, count: count}
}

// Name returns the step name.
func (s *GeneratePasswordsStep) Name() string { return "generate_passwords" }

// Do generates the corpus.
func (s *GeneratePasswordsStep) Do(_ context.Context, r *model.SimulationReport) error {
	r.Passwords = generator.Passwords(s.rng, s.count)
	return nil
}

// BuildDictionaryStep builds the master attacker dictionary and its two
// size variants.
type BuildDictionaryStep struct {
	fillerWords int
	smallSize   int
	largeSize   int
}

// NewBuildDictionaryStep creates the dictionary step.
func NewBuildDictionaryStep(fillerWords, smallSize, largeSize int) *BuildDictionaryStep {
	return &BuildDictionaryStep{
		fillerWords: fillerWords,
		smallSize:   smallSize,
		largeSize:   largeSize,
	}
}

// Name returns the step name.
func (s *BuildDictionaryStep) Name() string { return "build_dictionary" }

// Do builds the master set and takes the two prefixes.
func (s *BuildDictionaryStep) Do(_ context.Context, r *model.SimulationReport) error {
	r.Master = generator.BuildDictionary(s.fillerWords)
	r.SmallDict = r.Master.Prefix(s.smallSize)
	r.LargeDict = r.Master.Prefix(s.largeSize)
	return nil
}

// RunTrialsStep evaluates every trial combination and fills the outcome
// table.
type RunTrialsStep struct {
	rng     *rand.Rand
	schemes []model.Scheme
	probs   config.Probabilities
}

// NewRunTrialsStep creates the trial runner step.
func NewRunTrialsStep(rng *rand.Rand, schemes []model.Scheme, probs config.Probabilities) *RunTrialsStep {
	return &RunTrialsStep{rng: rng, schemes: schemes, probs: probs}
}

// Name returns the step name.
func (s *RunTrialsStep) Name() string { return "run_trials" }

// Do runs the trials. It requires the corpus and dictionaries from the
// earlier steps.
func (s *RunTrialsStep) Do(_ context.Context, r *model.SimulationReport) error {
	if len(r.Passwords) == 0 {
		return fmt.Errorf("no passwords generated; run %s first", (&GeneratePasswordsStep{}).Name())
	}
	if r.SmallDict == nil || r.LargeDict == nil {
		return fmt.Errorf("no dictionaries built; run %s first", (&BuildDictionaryStep{}).Name())
	}
	r.Trials = simulate.RunTrials(s.rng, r.Passwords, s.schemes, r.SmallDict, r.LargeDict, s.probs)
	return nil
}

// AggregateStep reduces the trial table into the summary table.
type AggregateStep struct{}

// NewAggregateStep creates the aggregation step.
func NewAggregateStep() *AggregateStep { return &AggregateStep{} }

// Name returns the step name.
func (s *AggregateStep) Name() string { return "aggregate" }

// Do aggregates the trials.
func (s *AggregateStep) Do(_ context.Context, r *model.SimulationReport) error {
	if len(r.Trials) == 0 {
		return fmt.Errorf("no trials to aggregate; run %s first", (&RunTrialsStep{}).Name())
	}
	r.Summary = simulate.Aggregate(r.Trials)
	return nil
}

// WriteArtifactsStep renders every output file into the output directory.
type WriteArtifactsStep struct {
	outputDir string
}

// NewWriteArtifactsStep creates the artifact-writing step.
func NewWriteArtifactsStep(outputDir string) *WriteArtifactsStep {
	return &WriteArtifactsStep{outputDir: outputDir}
}

// Name returns the step name.
func (s *WriteArtifactsStep) Name() string { return "write_artifacts" }

// Do writes the artifacts.
func (s *WriteArtifactsStep) Do(_ context.Context, r *model.SimulationReport) error {
	_, err := report.NewArtifacts(s.outputDir).WriteAll(r)
	return err
}

// DefaultPipeline assembles the standard five-step run for one seed,
// writing artifacts into outputDir. One *rand.Rand is constructed from the
// seed and shared by the generation and trial steps, so the run is fully
// determined by (cfg, seed).
func DefaultPipeline(cfg *config.Config, seed int64, outputDir string, opts ...Option) *Pipeline {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // Reproducibility requires a seeded PRNG

	p := New(opts...)
	p.AddSteps(
		NewGeneratePasswordsStep(rng, cfg.PasswordCount),
		NewBuildDictionaryStep(config.DefaultFillerWords, cfg.SmallDictSize, cfg.LargeDictSize),
		NewRunTrialsStep(rng, model.DefaultSchemes(), cfg.Probabilities),
		NewAggregateStep(),
		NewWriteArtifactsStep(outputDir),
	)
	return p
}
