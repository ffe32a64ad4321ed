// Package main provides the entry point for the hashsim CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for hashsim.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hashsim",
		Short: "Password hashing demo: timing probe and attack simulation",
		Long: `hashsim is an educational demo around password hashing.

The measure command times real hash primitives (MD5, SHA-1, SHA-256,
PBKDF2, bcrypt, Argon2id) on the local machine. The simulate command runs
a probabilistic simulation of dictionary attacks against a synthetic
password corpus and writes CSV tables, a markdown summary, and charts.

The simulated crack probabilities are illustrative constants, not
measurements. Do not read the outputs as real-world cracking-time
guidance.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewMeasureCmd())
	cmd.AddCommand(NewSimulateCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
