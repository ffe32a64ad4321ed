package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nao1215/hashsim/internal/config"
	"github.com/nao1215/hashsim/internal/log"
	"github.com/nao1215/hashsim/internal/model"
	"github.com/nao1215/hashsim/internal/pipeline"
	"github.com/spf13/cobra"
)

// NewSimulateCmd creates the simulate command.
func NewSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the probabilistic dictionary-attack simulation",
		Long: `Simulate generates a synthetic password corpus, builds attacker
dictionaries, and evaluates a probabilistic crack model over every
combination of hashing scheme, salting, and dictionary size.

Artifacts written into the output directory:
  passwords.csv            the generated corpus with strength labels
  dictionary.txt           the master attacker dictionary
  results.csv              one row per trial
  summary.csv              cracked rates and mean hash times per group
  summary.md               human-readable markdown summary
  hash_time_by_algo.png    bar chart of simulated hash times
  cracked_rate_by_algo.png bar chart of cracked rates

The crack probabilities are illustrative constants, not measurements.

Examples:
  # Default run (seed 42, 2000 passwords, into ./results)
  hashsim simulate

  # Reproducible small run into a custom directory
  hashsim simulate --seed 7 --count 200 --output /tmp/demo

  # Sweep three seeds concurrently, one seed-<n> directory each
  hashsim simulate --seeds 1,2,3

  # Use a custom configuration file
  hashsim simulate -c myconfig.yaml`,
		RunE: runSimulateCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultOutputDir,
		"Output directory for artifacts")
	cmd.Flags().IntP("count", "n", config.DefaultPasswordCount,
		"Number of passwords to generate")
	cmd.Flags().Int64("seed", config.DefaultSeed,
		"Random seed for a single run")
	cmd.Flags().Int64Slice("seeds", nil,
		"Comma-separated seeds for a sweep (overrides --seed)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .hashsim in current directory)")
	cmd.Flags().Int("sweep-concurrency", config.DefaultSweepConcurrency,
		"Maximum number of concurrently running seeds during a sweep")

	return cmd
}

// runSimulateCmd executes the simulate command.
func runSimulateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runSimulation(ctx, cmd, cfg, logger)
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Precedence is defaults, then file, then flags the
// user actually set.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user explicitly specified a config file path, error if not
	// found. If no path was specified, silently run on defaults.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if cmd.Flags().Changed("output") {
		if cfg.OutputDir, err = cmd.Flags().GetString("output"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("count") {
		if cfg.PasswordCount, err = cmd.Flags().GetInt("count"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("seed") {
		if cfg.Seed, err = cmd.Flags().GetInt64("seed"); err != nil {
			return nil, err
		}
	}
	if cfg.Seeds, err = cmd.Flags().GetInt64Slice("seeds"); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("sweep-concurrency") {
		if cfg.SweepConcurrency, err = cmd.Flags().GetInt("sweep-concurrency"); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// runSimulation executes the pipeline, or one pipeline per seed when a
// sweep was requested.
func runSimulation(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	out := cmd.OutOrStdout()
	startTime := time.Now()

	if len(cfg.Seeds) > 1 {
		return runSweep(ctx, cmd, cfg, logger)
	}

	seed := cfg.Seed
	if len(cfg.Seeds) == 1 {
		seed = cfg.Seeds[0]
	}

	logger.Info("starting simulation",
		"seed", seed,
		"passwordCount", cfg.PasswordCount,
		"outputDir", cfg.OutputDir,
	)

	report := model.NewSimulationReport(seed)
	p := pipeline.DefaultPipeline(cfg, seed, cfg.OutputDir, pipeline.WithLogger(logger))
	if err := p.Execute(ctx, report); err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	fmt.Fprintf(out, "Simulation complete in %s (seed %d)\n",
		time.Since(startTime).Round(time.Millisecond), seed)
	fmt.Fprintf(out, "  passwords: %d, trials: %d, cracked: %d\n",
		len(report.Passwords), len(report.Trials), report.CrackedTotal())
	fmt.Fprintf(out, "  artifacts: %s\n", cfg.OutputDir)
	return nil
}

// runSweep executes one independent pipeline per seed.
func runSweep(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting sweep of %d seeds (concurrency: %d)...\n",
		len(cfg.Seeds), cfg.SweepConcurrency)
	startTime := time.Now()

	sweep := pipeline.NewSweep(
		func(seed int64, outDir string) *pipeline.Pipeline {
			return pipeline.DefaultPipeline(cfg, seed, outDir, pipeline.WithLogger(logger))
		},
		pipeline.WithSweepLogger(logger),
		pipeline.WithSweepConcurrency(cfg.SweepConcurrency),
	)

	reports, err := sweep.Run(ctx, cfg.Seeds, cfg.OutputDir)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("sweep failed: %w", err)
	}

	for _, r := range reports {
		fmt.Fprintf(out, "  seed %d: trials %d, cracked %d -> %s\n",
			r.Seed, len(r.Trials), r.CrackedTotal(), pipeline.SeedDir(cfg.OutputDir, r.Seed))
	}
	fmt.Fprintf(out, "Sweep complete in %s\n", time.Since(startTime).Round(time.Millisecond))
	return nil
}
