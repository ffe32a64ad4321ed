package report

import (
	"fmt"
	"io"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/nao1215/hashsim/internal/model"
)

// Chart dimensions, matching the original demo's 8x5 inch figures.
const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 5 * vg.Inch
)

// chartSlice selects and orders the summary rows that the bar charts show:
// the unsalted, large-dictionary slice sorted by ascending mean hash time.
// One slice for both charts keeps the bar order identical between them.
func chartSlice(summary []model.SummaryRow) []model.SummaryRow {
	rows := make([]model.SummaryRow, 0, len(summary))
	for _, row := range summary {
		if !row.Salted && row.Dict == model.DictLarge {
			rows = append(rows, row)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AvgHashTimeMS < rows[j].AvgHashTimeMS
	})
	return rows
}

// RenderHashTimeChart renders the mean-hash-time-by-scheme bar chart as PNG.
func RenderHashTimeChart(w io.Writer, summary []model.SummaryRow) error {
	rows := chartSlice(summary)
	values := make(plotter.Values, 0, len(rows))
	for _, row := range rows {
		values = append(values, row.AvgHashTimeMS)
	}
	return renderBarChart(w, "Hash Time by Algorithm", "Avg hash time (ms)", rows, values)
}

// RenderCrackRateChart renders the crack-rate-by-scheme bar chart as PNG.
func RenderCrackRateChart(w io.Writer, summary []model.SummaryRow) error {
	rows := chartSlice(summary)
	values := make(plotter.Values, 0, len(rows))
	for _, row := range rows {
		values = append(values, row.CrackedRate)
	}
	return renderBarChart(w, "Cracked Rate by Algorithm", "Cracked rate", rows, values)
}

// renderBarChart draws one bar chart over the prepared slice and writes it
// to w in PNG format.
func renderBarChart(w io.Writer, title, yLabel string, rows []model.SummaryRow, values plotter.Values) error {
	if len(rows) == 0 {
		return fmt.Errorf("render %q: empty summary slice", title)
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("build bar chart %q: %w", title, err)
	}
	p.Add(bars)

	labels := make([]string, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Label())
	}
	p.NominalX(labels...)

	// Rotated tick labels, since "PBKDF2 iters=50000" does not fit upright.
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	wt, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return fmt.Errorf("render chart %q: %w", title, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write chart %q: %w", title, err)
	}
	return nil
}
