// Package si converts between plain floating point values and the
// SI-suffixed text used in LUT files and reports ("2.5u", "10k", "1.44m").
package si

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Suffix is one SI magnitude prefix and its scale.
type Suffix struct {
	Symbol string
	Scale  float64
}

// suffixes is ordered from the largest to the smallest scale. Encode relies
// on this order.
var suffixes = []Suffix{
	{"T", 1e12},
	{"G", 1e9},
	{"M", 1e6},
	{"k", 1e3},
	{"", 1},
	{"m", 1e-3},
	{"u", 1e-6},
	{"n", 1e-9},
	{"p", 1e-12},
	{"f", 1e-15},
}

var mantissaPattern = regexp.MustCompile(`^([-+]?\d*\.?\d+)(.*)$`)

// FormatError reports text that is not a number with an optional SI suffix.
type FormatError struct {
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("si: invalid value %q: %s", e.Text, e.Reason)
}

// Suffixes returns the recognized suffixes, largest scale first.
func Suffixes() []Suffix {
	out := make([]Suffix, len(suffixes))
	copy(out, suffixes)
	return out
}

// Scale returns the multiplier for a suffix symbol.
func Scale(symbol string) (float64, bool) {
	for _, s := range suffixes {
		if s.Symbol == symbol {
			return s.Scale, true
		}
	}
	return 0, false
}

// Decode parses a signed decimal mantissa followed by at most one SI suffix.
func Decode(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	m := mantissaPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return 0, &FormatError{Text: text, Reason: "no numeric prefix"}
	}

	mantissa, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, &FormatError{Text: text, Reason: err.Error()}
	}

	scale, ok := Scale(m[2])
	if !ok {
		return 0, &FormatError{Text: text, Reason: fmt.Sprintf("unknown suffix %q", m[2])}
	}
	return mantissa * scale, nil
}

// Encode renders v with two decimals and the largest suffix whose scale does
// not exceed |v|. Values below 1f use the femto suffix.
func Encode(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	abs := math.Abs(v)
	for _, s := range suffixes {
		if abs >= s.Scale || s.Symbol == "f" {
			return fmt.Sprintf("%.2f%s", v/s.Scale, s.Symbol)
		}
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ParseNumber accepts either a plain float ("40e3", "-0.2") or SI text
// ("40k"). Plain float syntax is tried first.
func ParseNumber(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return v, nil
	}
	return Decode(trimmed)
}
