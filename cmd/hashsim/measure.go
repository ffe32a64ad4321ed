package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nao1215/hashsim/internal/log"
	"github.com/nao1215/hashsim/internal/probe"
	"github.com/spf13/cobra"
)

// NewMeasureCmd creates the measure command.
func NewMeasureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Time real hash primitives on this machine",
		Long: `Measure times real hash primitives on the local machine and prints the
mean and standard deviation per computation in milliseconds.

The probed configurations are the three fast digests (MD5, SHA-1, SHA-256),
PBKDF2-HMAC-SHA256 at 1000 and 50000 iterations, bcrypt at cost 12, and a
light Argon2id sample. Slow schemes are repeated fewer times so a full
probe finishes in seconds.

Examples:
  # Measure everything with the default repeat counts
  hashsim measure

  # Repeat every target 30 times
  hashsim measure --repeats 30

  # Skip the slow KDFs
  hashsim measure --skip bcrypt --skip argon2`,
		RunE: runMeasureCmd,
	}

	cmd.Flags().IntP("repeats", "r", 0,
		"Override the per-target repeat count (0 keeps the defaults)")
	cmd.Flags().StringSliceP("skip", "s", nil,
		"Scheme names to skip (md5, sha1, sha256, pbkdf2, bcrypt, argon2)")

	return cmd
}

// runMeasureCmd executes the measure command.
func runMeasureCmd(cmd *cobra.Command, _ []string) error {
	repeats, err := cmd.Flags().GetInt("repeats")
	if err != nil {
		return err
	}
	skipList, err := cmd.Flags().GetStringSlice("skip")
	if err != nil {
		return err
	}

	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	skip := make(map[string]bool, len(skipList))
	for _, name := range skipList {
		skip[probe.SchemeKey(name)] = true
	}

	out := cmd.OutOrStdout()
	for _, capability := range probe.Detect(skip) {
		if !capability.Available {
			fmt.Fprintf(out, "%s: unavailable (%s)\n", capability.Target.Name, capability.Hint)
			continue
		}

		target := capability.Target
		if repeats > 0 {
			target.Repeats = repeats
		}

		logger.Debug("measuring target", "name", target.Name, "repeats", target.Repeats)
		m := target.Run()
		fmt.Fprintf(out, "%s: mean %.3f ms (sd %.3f)\n", m.Name, m.MeanMS, m.StddevMS)
	}
	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}
