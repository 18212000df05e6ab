// Package units converts between the canonical base unit (inches) and
// the display unit systems, and formats measurements for dimension
// labels. All geometry elsewhere in the program is stored in inches;
// a Unit only ever affects formatting and input conversion.
package units

import (
	"fmt"
	"math"
)

// Unit selects the display unit system.
type Unit int

const (
	Imperial Unit = iota // inches, feet-inches engineering notation
	Metric               // millimeters
)

const mmPerInch = 25.4

// Precision bounds for formatted output (fractional digits).
const (
	MinPrecision = 0
	MaxPrecision = 4
)

func (u Unit) String() string {
	switch u {
	case Metric:
		return "metric"
	default:
		return "imperial"
	}
}

// Suffix returns the label suffix for the unit (`"` or ` mm`).
func (u Unit) Suffix() string {
	if u == Metric {
		return " mm"
	}
	return "\""
}

// ToDisplay converts a base-unit (inch) measurement to the display unit.
func ToDisplay(base float64, u Unit) float64 {
	if u == Metric {
		return base * mmPerInch
	}
	return base
}

// FromDisplay converts a display-unit value back to inches. Non-finite
// input never enters the data model; fallback is returned instead.
func FromDisplay(value float64, u Unit, fallback float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fallback
	}
	if u == Metric {
		return value / mmPerInch
	}
	return value
}

// ClampPrecision restricts precision to the supported range.
func ClampPrecision(precision int) int {
	if precision < MinPrecision {
		return MinPrecision
	}
	if precision > MaxPrecision {
		return MaxPrecision
	}
	return precision
}

// FormatDecimal renders a base-unit measurement in the display unit
// with the given number of fractional digits, e.g. `1.00"` or `25.4 mm`.
func FormatDecimal(base float64, u Unit, precision int) string {
	precision = ClampPrecision(precision)
	return fmt.Sprintf("%.*f%s", precision, ToDisplay(base, u), u.Suffix())
}

// FormatEngineering renders a base-unit measurement in feet-inches
// notation, e.g. `0'-10.00"` or `-1'-3.00"`. The sign applies once to
// the whole expression. The inch remainder is rounded to the requested
// precision before the foot count is finalized, so a remainder that
// rounds up to 12 carries into the feet instead of printing `12.00"`.
func FormatEngineering(base float64, precision int) string {
	precision = ClampPrecision(precision)

	sign := ""
	abs := base
	if abs < 0 {
		sign = "-"
		abs = -abs
	}

	feet := math.Floor(abs / 12)
	remainder := abs - feet*12

	scale := math.Pow(10, float64(precision))
	remainder = math.Round(remainder*scale) / scale
	if remainder >= 12 {
		feet++
		remainder = 0
	}

	return fmt.Sprintf("%s%d'-%.*f\"", sign, int(feet), precision, remainder)
}
