package report

import (
	"bytes"
	"encoding/csv"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/hashsim/internal/config"
	"github.com/nao1215/hashsim/internal/generator"
	"github.com/nao1215/hashsim/internal/model"
	"github.com/nao1215/hashsim/internal/simulate"
)

// createTestReport builds a small but complete simulation report.
func createTestReport(t *testing.T) *model.SimulationReport {
	t.Helper()

	report := model.NewSimulationReport(42)
	r := rand.New(rand.NewSource(report.Seed))

	report.Passwords = generator.Passwords(r, 25)
	report.Master = generator.BuildDictionary(200)
	report.SmallDict = report.Master.Prefix(50)
	report.LargeDict = report.Master.Prefix(150)
	report.Trials = simulate.RunTrials(r, report.Passwords, model.DefaultSchemes(),
		report.SmallDict, report.LargeDict, config.DefaultProbabilities())
	report.Summary = simulate.Aggregate(report.Trials)
	return report
}

// TestWritePasswordsCSV tests header and row shape of the password table.
func TestWritePasswordsCSV(t *testing.T) {
	t.Parallel()

	report := createTestReport(t)
	var buf bytes.Buffer
	if err := WritePasswordsCSV(&buf, report.Passwords); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != len(report.Passwords)+1 {
		t.Fatalf("got %d records, expected %d", len(records), len(report.Passwords)+1)
	}

	header := strings.Join(records[0], ",")
	if header != "id,password,strength" {
		t.Errorf("header = %q, expected id,password,strength", header)
	}
	if records[1][0] != "0" {
		t.Errorf("first row id = %q, expected 0", records[1][0])
	}
	if _, err := model.ParseStrength(records[1][2]); err != nil {
		t.Errorf("first row strength %q is not a valid label", records[1][2])
	}
}

// TestWriteTrialsCSV tests the raw trial table.
func TestWriteTrialsCSV(t *testing.T) {
	t.Parallel()

	report := createTestReport(t)
	var buf bytes.Buffer
	if err := WriteTrialsCSV(&buf, report.Trials); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != len(report.Trials)+1 {
		t.Fatalf("got %d records, expected %d", len(records), len(report.Trials)+1)
	}
	header := strings.Join(records[0], ",")
	if header != "algorithm,param,salted,dict,strength,hash_time_ms,cracked" {
		t.Errorf("unexpected header %q", header)
	}
}

// TestWriteSummaryCSV tests the aggregated table.
func TestWriteSummaryCSV(t *testing.T) {
	t.Parallel()

	report := createTestReport(t)
	var buf bytes.Buffer
	if err := WriteSummaryCSV(&buf, report.Summary); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != len(report.Summary)+1 {
		t.Fatalf("got %d records, expected %d", len(records), len(report.Summary)+1)
	}
	header := strings.Join(records[0], ",")
	if header != "algorithm,param,salted,dict,total,cracked_sum,cracked_rate,avg_hash_time_ms" {
		t.Errorf("unexpected header %q", header)
	}
}

// TestWriteDictionary tests the newline-delimited dictionary file.
func TestWriteDictionary(t *testing.T) {
	t.Parallel()

	report := createTestReport(t)
	var buf bytes.Buffer
	if err := WriteDictionary(&buf, report.Master); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != report.Master.Len() {
		t.Fatalf("got %d lines, expected %d", len(lines), report.Master.Len())
	}
	if lines[0] != "password" {
		t.Errorf("first line = %q, expected the first seed word", lines[0])
	}
}

// TestMarkdownWriter tests the human-readable summary.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	report := createTestReport(t)
	var buf bytes.Buffer
	n, err := NewMarkdownWriter(&buf).Write(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero byte count")
	}

	output := buf.String()
	for _, want := range []string{
		"# Password Hashing Simulation",
		"## Password Corpus",
		"## Crack Rates by Configuration",
		"Weak", "Medium", "Strong",
		"bcrypt cost=12",
		"illustrative constants",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

// TestRenderCharts tests that both charts produce PNG output over the
// unsalted/large slice.
func TestRenderCharts(t *testing.T) {
	t.Parallel()

	report := createTestReport(t)
	pngMagic := []byte{0x89, 'P', 'N', 'G'}

	t.Run("hash time chart", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if err := RenderHashTimeChart(&buf, report.Summary); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
			t.Error("output is not a PNG")
		}
	})

	t.Run("crack rate chart", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if err := RenderCrackRateChart(&buf, report.Summary); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
			t.Error("output is not a PNG")
		}
	})

	t.Run("empty summary fails", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if err := RenderHashTimeChart(&buf, nil); err == nil {
			t.Error("expected error for empty summary")
		}
	})
}

// TestChartSlice tests slice selection and ordering.
func TestChartSlice(t *testing.T) {
	t.Parallel()

	report := createTestReport(t)
	rows := chartSlice(report.Summary)

	// One bar per scheme configuration: 12 in the default grid.
	if len(rows) != 12 {
		t.Fatalf("got %d chart rows, expected 12", len(rows))
	}
	for i, row := range rows {
		if row.Salted || row.Dict != model.DictLarge {
			t.Errorf("row %d is not from the unsalted/large slice: %+v", i, row)
		}
		if i > 0 && rows[i-1].AvgHashTimeMS > row.AvgHashTimeMS {
			t.Errorf("rows not sorted by mean hash time at %d", i)
		}
	}
}

// TestArtifactsWriteAll tests the full artifact set on disk.
func TestArtifactsWriteAll(t *testing.T) {
	t.Parallel()

	report := createTestReport(t)
	dir := filepath.Join(t.TempDir(), "results")

	paths, err := NewArtifacts(dir).WriteAll(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 7 {
		t.Fatalf("got %d artifacts, expected 7", len(paths))
	}

	for _, name := range []string{
		PasswordsFile, DictionaryFile, TrialsFile, SummaryFile,
		SummaryReportFile, HashTimeChart, CrackRateChart,
	} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("artifact %s missing: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("artifact %s is empty", name)
		}
	}

	t.Run("overwrites on rerun", func(t *testing.T) {
		t.Parallel()
		if _, err := NewArtifacts(dir).WriteAll(report); err != nil {
			t.Errorf("rerun into existing directory failed: %v", err)
		}
	})
}
