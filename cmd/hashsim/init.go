package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/hashsim/internal/config"
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new hashsim configuration file",
		Long: `Initialize creates a new .hashsim configuration file in the current
directory, carrying the default run parameters and crack-model constants.

The generated file documents every crack-model constant; edit it to
explore how the simulated curves react to different assumptions.

Examples:
  # Create .hashsim in current directory
  hashsim init

  # Create config file at a specific path
  hashsim init -o myconfig.yaml`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := config.WriteDefault(outputPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit this file to adjust settings such as:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Corpus size and dictionary prefix lengths")
	fmt.Fprintln(cmd.OutOrStdout(), "  - The random seed")
	fmt.Fprintln(cmd.OutOrStdout(), "  - The crack-model probability constants")

	return nil
}
