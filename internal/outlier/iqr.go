// Package outlier flags and removes samples that fall outside Tukey fences.
package outlier

import (
	"fmt"

	"github.com/KaramelBytes/regress-cli/internal/dataset"
)

// FenceMultiplier scales the IQR when deriving the fences.
const FenceMultiplier = 1.5

// Bounds is an inclusive [Lower, Upper] interval. Values strictly outside are outliers.
type Bounds struct {
	Q1, Q3       float64
	Lower, Upper float64
}

// IQR returns Q3 - Q1.
func (b Bounds) IQR() float64 { return b.Q3 - b.Q1 }

// Contains reports whether v lies within the fences.
func (b Bounds) Contains(v float64) bool { return v >= b.Lower && v <= b.Upper }

func (b Bounds) String() string {
	return fmt.Sprintf("[%.6g, %.6g]", b.Lower, b.Upper)
}

// ComputeBounds derives the fences from values.
// An empty input yields NaN bounds, which flag nothing.
func ComputeBounds(values []float64) Bounds {
	sorted := dataset.Sorted(values)
	q1 := dataset.Quantile(sorted, 0.25)
	q3 := dataset.Quantile(sorted, 0.75)
	iqr := q3 - q1
	return Bounds{
		Q1:    q1,
		Q3:    q3,
		Lower: q1 - FenceMultiplier*iqr,
		Upper: q3 + FenceMultiplier*iqr,
	}
}

// Mask flags every value outside b.
func Mask(values []float64, b Bounds) []bool {
	out := make([]bool, len(values))
	for i, v := range values {
		out[i] = v < b.Lower || v > b.Upper
	}
	return out
}

// Report describes what a filter pass flagged.
type Report struct {
	Total     int
	XOutliers int
	YOutliers int
	Union     int
	Remaining int
	XBounds   Bounds
	YBounds   Bounds
}

// Pct returns n as a percentage of Total.
func (r *Report) Pct(n int) float64 {
	if r == nil || r.Total == 0 {
		return 0
	}
	return float64(n) / float64(r.Total) * 100
}

// Filter drops every sample that is an outlier in X or in Y, with fences
// computed from ds itself. When enabled is false, ds is returned unchanged
// together with a nil Report.
func Filter(ds *dataset.Dataset, enabled bool) (*dataset.Dataset, *Report) {
	if !enabled {
		return ds, nil
	}
	return Apply(ds, ComputeBounds(ds.XS()), ComputeBounds(ds.YS()))
}

// Apply filters ds against precomputed fences. Applying the fences of a
// dataset to its own filtered output removes nothing further.
func Apply(ds *dataset.Dataset, xb, yb Bounds) (*dataset.Dataset, *Report) {
	xm := Mask(ds.XS(), xb)
	ym := Mask(ds.YS(), yb)
	union := make([]bool, len(xm))
	rep := &Report{Total: ds.Len(), XBounds: xb, YBounds: yb}
	for i := range xm {
		if xm[i] {
			rep.XOutliers++
		}
		if ym[i] {
			rep.YOutliers++
		}
		union[i] = xm[i] || ym[i]
		if union[i] {
			rep.Union++
		}
	}
	out := ds.Without(union)
	rep.Remaining = out.Len()
	return out, rep
}
