package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/hashsim/internal/model"
)

// Step is one stage of a simulation run. Steps execute in sequence, each
// reading from and writing to the accumulated report.
//
// Design decision: We use an interface rather than function types because
// steps carry configuration state (counts, sizes, random sources) and a
// Name() method keeps the logging uniform.
type Step interface {
	// Do executes the step against the report. Errors returned here are
	// fatal to the run unless the pipeline was configured to continue.
	Do(ctx context.Context, report *model.SimulationReport) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps in order.
type Pipeline struct {
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// continueOnError determines whether to keep executing steps after
	// one fails. The default is to stop: every later step depends on the
	// output of the earlier ones, so a failed generation step leaves
	// nothing for the trial runner to do.
	continueOnError bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError configures the pipeline to continue after a failed
// step. Mostly useful in tests that want to observe how later steps behave
// against a partial report.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates an empty Pipeline. Add steps with AddSteps.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{steps: make([]Step, 0)}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// AddSteps appends steps in execution order.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// StepCount returns the number of steps.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the step names in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}

// Execute runs all steps in sequence against report.
//
// Cancellation is checked between steps, not during them: every step is a
// bounded CPU-bound computation or a file write, so the latency until the
// next check is small and steps stay free of cancellation plumbing.
func (p *Pipeline) Execute(ctx context.Context, report *model.SimulationReport) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"seed", report.Seed,
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step", "step", step.Name(), "seed", report.Seed)

		if err := step.Do(ctx, report); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"seed", report.Seed,
				"error", err,
			)
			if !p.continueOnError {
				return err
			}
		}
		report.PerformedSteps = append(report.PerformedSteps, step.Name())
	}
	return nil
}
