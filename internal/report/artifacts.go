package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nao1215/hashsim/internal/model"
)

// Artifact file names inside the output directory.
const (
	PasswordsFile     = "passwords.csv"
	DictionaryFile    = "dictionary.txt"
	TrialsFile        = "results.csv"
	SummaryFile       = "summary.csv"
	SummaryReportFile = "summary.md"
	HashTimeChart     = "hash_time_by_algo.png"
	CrackRateChart    = "cracked_rate_by_algo.png"
)

// Artifacts writes every output file of a simulation run into one
// directory. The directory is created if absent; existing files are
// overwritten unconditionally, with no append and no versioning.
type Artifacts struct {
	// OutputDir is the target directory.
	OutputDir string
}

// NewArtifacts creates an Artifacts writer for dir.
func NewArtifacts(dir string) *Artifacts {
	return &Artifacts{OutputDir: dir}
}

// WriteAll renders all seven artifacts and returns the written paths in
// write order. It stops at the first failure; partially written runs are
// acceptable because every rerun overwrites from scratch.
func (a *Artifacts) WriteAll(report *model.SimulationReport) ([]string, error) {
	if err := os.MkdirAll(a.OutputDir, 0750); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", a.OutputDir, err)
	}

	writers := []struct {
		name string
		fn   func(io.Writer) error
	}{
		{PasswordsFile, func(w io.Writer) error { return WritePasswordsCSV(w, report.Passwords) }},
		{DictionaryFile, func(w io.Writer) error { return WriteDictionary(w, report.Master) }},
		{TrialsFile, func(w io.Writer) error { return WriteTrialsCSV(w, report.Trials) }},
		{SummaryFile, func(w io.Writer) error { return WriteSummaryCSV(w, report.Summary) }},
		{SummaryReportFile, func(w io.Writer) error {
			_, err := NewMarkdownWriter(w).Write(report)
			return err
		}},
		{HashTimeChart, func(w io.Writer) error { return RenderHashTimeChart(w, report.Summary) }},
		{CrackRateChart, func(w io.Writer) error { return RenderCrackRateChart(w, report.Summary) }},
	}

	paths := make([]string, 0, len(writers))
	for _, wr := range writers {
		path := filepath.Join(a.OutputDir, wr.name)
		if err := a.writeFile(path, wr.fn); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// writeFile creates (or truncates) path and runs fn against it.
func (a *Artifacts) writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path) //nolint:gosec // Paths are fixed names under the configured output dir
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		_ = f.Close() //nolint:errcheck // Render error takes precedence
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
