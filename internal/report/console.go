// Package report renders the console summary of an analysis run.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/KaramelBytes/regress-cli/internal/analysis"
	"github.com/KaramelBytes/regress-cli/internal/dataset"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorHeading = lipgloss.Color("#20B9B4")
	colorMuted   = lipgloss.Color("#2C4A54")
	colorWarning = lipgloss.Color("#F4D03F")
)

type styles struct {
	heading lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
	value   lipgloss.Style
}

// newStyles binds styles to w so that colour is dropped when w is not a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		heading: r.NewStyle().Bold(true).Foreground(colorHeading),
		muted:   r.NewStyle().Foreground(colorMuted),
		warning: r.NewStyle().Foreground(colorWarning),
		value:   r.NewStyle().Bold(true),
	}
}

// Write renders res as a sectioned text summary.
func Write(w io.Writer, res *analysis.Result) error {
	st := newStyles(w)
	var b strings.Builder

	section(&b, st, "DATA")
	b.WriteString(fmt.Sprintf("File: %s\n", res.Original.Name))
	b.WriteString(fmt.Sprintf("Loaded: %d data points\n", res.Original.Len()))
	b.WriteString("\n")
	b.WriteString(summaryTable(res.Original))
	b.WriteString("\n")

	if rep := res.Outliers; rep != nil {
		section(&b, st, "OUTLIER REMOVAL")
		b.WriteString(fmt.Sprintf("Original data points: %d\n", rep.Total))
		b.WriteString(fmt.Sprintf("Outliers in X: %d (%.1f%%) %s\n", rep.XOutliers, rep.Pct(rep.XOutliers), st.muted.Render("fences "+rep.XBounds.String())))
		b.WriteString(fmt.Sprintf("Outliers in Y: %d (%.1f%%) %s\n", rep.YOutliers, rep.Pct(rep.YOutliers), st.muted.Render("fences "+rep.YBounds.String())))
		removed := fmt.Sprintf("Total outliers removed: %d (%.1f%%)", rep.Union, rep.Pct(rep.Union))
		if rep.Union > 0 {
			removed = st.warning.Render(removed)
		}
		b.WriteString(removed + "\n")
		b.WriteString(fmt.Sprintf("Remaining data points: %d\n", rep.Remaining))
		b.WriteString("\n")
		section(&b, st, "FILTERED SUMMARY")
		b.WriteString(summaryTable(res.Data))
		b.WriteString("\n")
	}

	fit := res.Fit
	section(&b, st, "LINEAR REGRESSION")
	b.WriteString(fmt.Sprintf("Slope (coefficient): %.6f\n", fit.Slope))
	b.WriteString(fmt.Sprintf("Intercept: %.6f\n", fit.Intercept))
	b.WriteString(fmt.Sprintf("R² Score: %s\n", st.value.Render(fmt.Sprintf("%.6f", fit.R2))))
	b.WriteString(fmt.Sprintf("Mean Squared Error: %.2f\n", fit.MSE))
	b.WriteString(fmt.Sprintf("Root Mean Squared Error: %.2f\n", fit.RMSE))
	b.WriteString(fmt.Sprintf("Equation: %s\n", fit.Equation()))
	b.WriteString("\n")

	section(&b, st, "ADDITIONAL STATISTICS")
	corr := "undefined (Y is constant)"
	if !math.IsNaN(fit.Correlation) {
		corr = fmt.Sprintf("%.6f", fit.Correlation)
	}
	b.WriteString(fmt.Sprintf("Correlation coefficient: %s\n", corr))
	xs, ys := res.Data.Summaries()
	b.WriteString(fmt.Sprintf("Data range - X: [%.0f, %.0f]\n", xs.Min, xs.Max))
	b.WriteString(fmt.Sprintf("Data range - Y: [%.0f, %.0f]\n", ys.Min, ys.Max))

	_, err := io.WriteString(w, b.String())
	return err
}

func section(b *strings.Builder, st styles, name string) {
	b.WriteString(st.heading.Render("[" + name + "]"))
	b.WriteString("\n")
}

// summaryTable renders count/mean/std/min/quartiles/max for both columns.
func summaryTable(ds *dataset.Dataset) string {
	x, y := ds.Summaries()
	rows := []struct {
		label string
		pick  func(dataset.Summary) float64
	}{
		{"mean", func(s dataset.Summary) float64 { return s.Mean }},
		{"std", func(s dataset.Summary) float64 { return s.Std }},
		{"min", func(s dataset.Summary) float64 { return s.Min }},
		{"25%", func(s dataset.Summary) float64 { return s.Q25 }},
		{"50%", func(s dataset.Summary) float64 { return s.Median }},
		{"75%", func(s dataset.Summary) float64 { return s.Q75 }},
		{"max", func(s dataset.Summary) float64 { return s.Max }},
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "X", "Y").
		Row("count", fmt.Sprintf("%d", x.Count), fmt.Sprintf("%d", y.Count))
	for _, r := range rows {
		t.Row(r.label, formatStat(r.pick(x)), formatStat(r.pick(y)))
	}
	return t.String() + "\n"
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.6g", v)
}
