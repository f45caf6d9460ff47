// Package regression fits a single-variable ordinary least-squares line.
package regression

import (
	"fmt"
	"math"

	"github.com/KaramelBytes/regress-cli/internal/dataset"
	"gonum.org/v1/gonum/stat"
)

// MinSamples is the smallest dataset Fit accepts.
const MinSamples = 2

// Result is a fitted line and its goodness-of-fit metrics.
type Result struct {
	Slope       float64
	Intercept   float64
	R2          float64
	MSE         float64
	RMSE        float64
	Correlation float64 // NaN when Y has no spread
	N           int
}

// Predict evaluates the fitted line at x.
func (r Result) Predict(x float64) float64 {
	return r.Intercept + r.Slope*x
}

// Equation renders the line as "Y = aX + b" with six decimals.
func (r Result) Equation() string {
	if r.Intercept >= 0 {
		return fmt.Sprintf("Y = %.6fX + %.6f", r.Slope, r.Intercept)
	}
	return fmt.Sprintf("Y = %.6fX - %.6f", r.Slope, math.Abs(r.Intercept))
}

// Fit computes the least-squares line of Y on X for ds.
func Fit(ds *dataset.Dataset) (Result, error) {
	n := ds.Len()
	if n < MinSamples {
		return Result{}, &InsufficientDataError{N: n, Reason: fmt.Sprintf("need at least %d samples", MinSamples)}
	}
	xs, ys := ds.XS(), ds.YS()
	if !hasSpread(xs) {
		return Result{}, &InsufficientDataError{N: n, Reason: "all X values are identical"}
	}

	for _, col := range []struct {
		name string
		vals []float64
	}{{"X", xs}, {"Y", ys}} {
		if v := stat.Variance(col.vals, nil); math.IsInf(v, 0) || math.IsNaN(v) {
			return Result{}, &OverflowError{Quantity: "variance of " + col.name}
		}
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	res := Result{Slope: slope, Intercept: intercept, N: n}

	var ssRes float64
	for i := range xs {
		d := ys[i] - res.Predict(xs[i])
		ssRes += d * d
	}
	res.MSE = ssRes / float64(n)
	res.RMSE = math.Sqrt(res.MSE)

	if hasSpread(ys) {
		res.R2 = stat.RSquared(xs, ys, nil, intercept, slope)
		res.Correlation = stat.Correlation(xs, ys, nil)
	} else {
		// Constant Y: a flat line explains it fully, correlation is undefined.
		res.R2 = 0
		if ssRes == 0 {
			res.R2 = 1
		}
		res.Correlation = math.NaN()
	}
	for name, v := range map[string]float64{"slope": res.Slope, "intercept": res.Intercept, "mse": res.MSE, "r2": res.R2} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return Result{}, &OverflowError{Quantity: name}
		}
	}
	return res, nil
}

func hasSpread(vals []float64) bool {
	for _, v := range vals[1:] {
		if v != vals[0] {
			return true
		}
	}
	return false
}
