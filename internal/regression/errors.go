package regression

import "fmt"

// InsufficientDataError indicates the dataset cannot support a line fit:
// too few samples, or no spread in X.
type InsufficientDataError struct {
	N      int
	Reason string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data for regression (n=%d): %s", e.N, e.Reason)
}

// OverflowError indicates the input magnitudes exceed float64 range during
// the fit, so no finite line can be reported.
type OverflowError struct {
	Quantity string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("regression overflow: %s is not finite; rescale the input values", e.Quantity)
}
