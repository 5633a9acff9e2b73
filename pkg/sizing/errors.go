package sizing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInsufficientConditions matches InsufficientConditionsError with errors.Is.
var ErrInsufficientConditions = errors.New("sizing: the conditions are not sufficient")

// InsufficientConditionsError reports a request in which no condition names a
// width-dependent column, so no rows can be produced.
type InsufficientConditionsError struct {
	Conditions []string
}

func (e *InsufficientConditionsError) Error() string {
	if len(e.Conditions) == 0 {
		return "sizing: no conditions given; at least one sizing condition is required"
	}
	return fmt.Sprintf("sizing: no sizing condition among [%s]; at least one must name a proportional or inverse column",
		strings.Join(e.Conditions, ", "))
}

// Is reports whether target is ErrInsufficientConditions.
func (e *InsufficientConditionsError) Is(target error) bool {
	return target == ErrInsufficientConditions
}
