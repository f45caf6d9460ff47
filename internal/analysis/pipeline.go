// Package analysis runs the load, clean and fit stages over one input file.
package analysis

import (
	"fmt"

	"github.com/KaramelBytes/regress-cli/internal/dataset"
	"github.com/KaramelBytes/regress-cli/internal/outlier"
	"github.com/KaramelBytes/regress-cli/internal/regression"
)

// Result bundles everything a single run produces.
type Result struct {
	// Original is the dataset as loaded.
	Original *dataset.Dataset
	// Data is the snapshot the model was fitted on: Original, or its filtered copy.
	Data *dataset.Dataset
	// Outliers is nil when outlier removal was disabled.
	Outliers *outlier.Report
	Fit      regression.Result
}

// R2 returns the coefficient of determination of the fit.
func (r *Result) R2() float64 { return r.Fit.R2 }

// Filtered reports whether outlier removal ran.
func (r *Result) Filtered() bool { return r.Outliers != nil }

// Analyze loads path, optionally removes outliers and fits a line.
func Analyze(path string, removeOutliers bool) (*Result, error) {
	ds, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	return AnalyzeDataset(ds, removeOutliers)
}

// AnalyzeDataset runs the clean and fit stages on an already loaded dataset.
func AnalyzeDataset(ds *dataset.Dataset, removeOutliers bool) (*Result, error) {
	data, rep := outlier.Filter(ds, removeOutliers)
	fit, err := regression.Fit(data)
	if err != nil {
		if rep != nil {
			return nil, fmt.Errorf("fit after removing %d outliers: %w", rep.Union, err)
		}
		return nil, fmt.Errorf("fit: %w", err)
	}
	return &Result{Original: ds, Data: data, Outliers: rep, Fit: fit}, nil
}
