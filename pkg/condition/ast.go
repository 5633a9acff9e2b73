package condition

// expression is the raw grammar shape of a condition.
// Example: rout > 40e3
type expression struct {
	Variable string `parser:"@Token"`
	Operator string `parser:"@Op"`
	Value    string `parser:"@Token"`
}
