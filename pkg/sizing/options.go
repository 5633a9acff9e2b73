package sizing

import (
	"fmt"
	"math"
)

// Options controls geometry limits and the equality tolerance.
type Options struct {
	// Equality band half-width, in percent of the literal target (default: 1)
	TolerancePercent float64
	// Rows with W'/L at or below this value are dropped (default: 0.5)
	WidthOverLengthMin float64
	// Rows with W' at or above this value are dropped (default: 100u)
	WidthMax float64
}

// DefaultOptions returns 1% tolerance, W/L > 0.5 and W < 100u.
func DefaultOptions() Options {
	return Options{
		TolerancePercent:   1.0,
		WidthOverLengthMin: 0.5,
		WidthMax:           100e-6,
	}
}

// Validate checks the options for errors.
func (o Options) Validate() error {
	if !finite(o.TolerancePercent) || o.TolerancePercent < 0 {
		return fmt.Errorf("sizing: tolerance percent must be >= 0, got %g", o.TolerancePercent)
	}
	if !finite(o.WidthOverLengthMin) || o.WidthOverLengthMin < 0 {
		return fmt.Errorf("sizing: W/L minimum must be >= 0, got %g", o.WidthOverLengthMin)
	}
	if math.IsNaN(o.WidthMax) || o.WidthMax <= 0 {
		return fmt.Errorf("sizing: width maximum must be > 0, got %g", o.WidthMax)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DefaultConditions is the condition set the sizing flow starts from when
// none are given.
func DefaultConditions() []string {
	return []string{
		"rout > 40e3",
		"region = 2",
		"VSB > 0.2",
		"VSB < 0.4",
		"gm > 1.44e-3",
		"VDS < 1",
	}
}
