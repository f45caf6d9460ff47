// Package dataset loads two-column numeric samples and describes them.
package dataset

// Sample is one (X, Y) observation.
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dataset is an ordered, read-only collection of samples.
// Filtering never mutates a Dataset; it produces a new one.
type Dataset struct {
	Name    string
	Samples []Sample
}

// New copies samples into a fresh Dataset.
func New(name string, samples []Sample) *Dataset {
	cp := make([]Sample, len(samples))
	copy(cp, samples)
	return &Dataset{Name: name, Samples: cp}
}

// Len returns the number of samples. A nil Dataset is empty.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Samples)
}

// XS returns the X column in sample order.
func (d *Dataset) XS() []float64 {
	out := make([]float64, d.Len())
	for i, s := range d.Samples {
		out[i] = s.X
	}
	return out
}

// YS returns the Y column in sample order.
func (d *Dataset) YS() []float64 {
	out := make([]float64, d.Len())
	for i, s := range d.Samples {
		out[i] = s.Y
	}
	return out
}

// Without returns a new Dataset that omits every sample whose drop flag is set.
// drop must be nil or have one entry per sample.
func (d *Dataset) Without(drop []bool) *Dataset {
	out := &Dataset{Name: d.Name, Samples: make([]Sample, 0, d.Len())}
	for i, s := range d.Samples {
		if i < len(drop) && drop[i] {
			continue
		}
		out.Samples = append(out.Samples, s)
	}
	return out
}

// Summaries describes the X and Y columns.
func (d *Dataset) Summaries() (x, y Summary) {
	return Describe(d.XS()), Describe(d.YS())
}
