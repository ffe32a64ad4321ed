package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/hashsim/internal/model"
)

// formatFloat renders a float the shortest way that round-trips, so CSV
// consumers see 0.05 rather than 0.050000.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WritePasswordsCSV writes the generated password list with columns
// id, password, strength.
func WritePasswordsCSV(w io.Writer, passwords []model.Password) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "password", "strength"}); err != nil {
		return fmt.Errorf("write passwords header: %w", err)
	}
	for _, p := range passwords {
		record := []string{strconv.Itoa(p.ID), p.Plaintext, p.Strength.String()}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write password record %d: %w", p.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTrialsCSV writes the raw per-trial table with columns
// algorithm, param, salted, dict, strength, hash_time_ms, cracked.
func WriteTrialsCSV(w io.Writer, trials []model.Trial) error {
	cw := csv.NewWriter(w)
	header := []string{"algorithm", "param", "salted", "dict", "strength", "hash_time_ms", "cracked"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write trials header: %w", err)
	}
	for i, t := range trials {
		record := []string{
			t.Algorithm,
			t.Param,
			strconv.FormatBool(t.Salted),
			t.Dict,
			t.Strength.String(),
			formatFloat(t.HashTimeMS),
			strconv.FormatBool(t.Cracked),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write trial row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummaryCSV writes the aggregated table with columns
// algorithm, param, salted, dict, total, cracked_sum, cracked_rate,
// avg_hash_time_ms.
func WriteSummaryCSV(w io.Writer, summary []model.SummaryRow) error {
	cw := csv.NewWriter(w)
	header := []string{"algorithm", "param", "salted", "dict", "total", "cracked_sum", "cracked_rate", "avg_hash_time_ms"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}
	for _, row := range summary {
		record := []string{
			row.Algorithm,
			row.Param,
			strconv.FormatBool(row.Salted),
			row.Dict,
			strconv.Itoa(row.Total),
			strconv.Itoa(row.CrackedSum),
			formatFloat(row.CrackedRate),
			formatFloat(row.AvgHashTimeMS),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write summary row %s: %w", row.Label(), err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDictionary writes the attacker dictionary as one word per line.
func WriteDictionary(w io.Writer, dict *model.Dictionary) error {
	for _, word := range dict.Words() {
		if _, err := io.WriteString(w, word+"\n"); err != nil {
			return fmt.Errorf("write dictionary: %w", err)
		}
	}
	return nil
}
