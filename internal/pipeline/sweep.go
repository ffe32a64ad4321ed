package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/nao1215/hashsim/internal/model"
	"golang.org/x/sync/errgroup"
)

// Sweep runs one independent pipeline per seed, concurrently. Each seed
// gets its own random source, its own report, and its own seed-<n>
// subdirectory under the base output directory, so the runs share nothing
// and their artifacts never collide.
//
// Design decision: The sweep is a separate type rather than a pipeline
// feature because a single run stays strictly sequential; concurrency
// exists only between runs, which are independent by construction once the
// random source stopped being process-global state.
type Sweep struct {
	// factory creates a fresh pipeline for one seed writing into outDir.
	// A factory rather than a shared pipeline ensures no step state (in
	// particular no *rand.Rand) leaks between seeds.
	factory func(seed int64, outDir string) *Pipeline

	// concurrency is the maximum number of simultaneously running seeds.
	concurrency int

	logger *slog.Logger

	results []*model.SimulationReport
	mu      sync.Mutex
}

// SweepOption configures a Sweep.
type SweepOption func(*Sweep)

// WithSweepLogger sets a custom logger for the sweep.
func WithSweepLogger(logger *slog.Logger) SweepOption {
	return func(s *Sweep) {
		s.logger = logger
	}
}

// WithSweepConcurrency bounds the number of concurrently running seeds.
// Values below 1 are ignored.
func WithSweepConcurrency(n int) SweepOption {
	return func(s *Sweep) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewSweep creates a Sweep with the given pipeline factory.
func NewSweep(factory func(seed int64, outDir string) *Pipeline, opts ...SweepOption) *Sweep {
	s := &Sweep{
		factory:     factory,
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// SeedDir returns the per-seed artifact directory under baseDir.
func SeedDir(baseDir string, seed int64) string {
	return filepath.Join(baseDir, fmt.Sprintf("seed-%d", seed))
}

// Run executes one pipeline per seed and returns the reports in seed order.
// The first pipeline error cancels the remaining seeds.
func (s *Sweep) Run(ctx context.Context, seeds []int64, baseDir string) ([]*model.SimulationReport, error) {
	s.logger.Debug("starting sweep",
		"seeds", len(seeds),
		"concurrency", s.concurrency,
	)
	startTime := time.Now()

	s.results = make([]*model.SimulationReport, len(seeds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, seed := range seeds {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report := model.NewSimulationReport(seed)
			p := s.factory(seed, SeedDir(baseDir, seed))
			if err := p.Execute(ctx, report); err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}

			s.mu.Lock()
			s.results[i] = report
			s.mu.Unlock()

			s.logger.Debug("seed completed", "seed", seed)
			return nil
		})
	}

	err := g.Wait()
	s.logger.Debug("sweep complete",
		"seeds", len(seeds),
		"elapsed", time.Since(startTime),
	)
	return s.results, err
}
