package lut

import "fmt"

// MissingColumnError reports a reference to a column that the table lacks.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("lut: missing column %q", e.Column)
}
