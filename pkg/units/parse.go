package units

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// measurementLexer tokenizes measurement entry text. Accepted forms:
//
//	10.5        bare decimal, interpreted in the current display unit
//	10.5"       inches
//	267 mm      millimeters
//	3'-4.5"     feet-inches engineering notation
//	-1' 3"      negative engineering notation, space separator
var measurementLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Unit", Pattern: `(?i)\b(?:mm|in(?:ch(?:es)?)?)\b`},
	{Name: "Number", Pattern: `\d+(?:\.\d+)?|\.\d+`},
	{Name: "Feet", Pattern: `'`},
	{Name: "Quote", Pattern: `"`},
	{Name: "Plus", Pattern: `\+`},
	{Name: "Dash", Pattern: `-`},
})

type measurement struct {
	Neg bool              `parser:"( Plus | @Dash )?"`
	Eng *engineeringValue `parser:"( @@"`
	Dec *decimalValue     `parser:"| @@ )"`
}

type engineeringValue struct {
	Feet   float64  `parser:"@Number Feet"`
	Inches *float64 `parser:"( Dash? @Number Quote? )?"`
}

type decimalValue struct {
	Value float64 `parser:"@Number"`
	Unit  string  `parser:"( @Unit"`
	Inch  bool    `parser:"| @Quote )?"`
}

var measurementParser = participle.MustBuild[measurement](
	participle.Lexer(measurementLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// ParseMeasurement parses a measurement entry and returns its value in
// base units (inches). An explicit suffix (`"`, `mm`, `in`) or
// feet-inches notation overrides the current display unit; a bare
// number is interpreted in the display unit u.
func ParseMeasurement(input string, u Unit) (float64, error) {
	m, err := measurementParser.ParseString("", input)
	if err != nil {
		return 0, fmt.Errorf("invalid measurement %q: %w", input, err)
	}

	var inches float64
	switch {
	case m.Eng != nil:
		inches = m.Eng.Feet * 12
		if m.Eng.Inches != nil {
			inches += *m.Eng.Inches
		}
	case m.Dec != nil:
		switch {
		case strings.EqualFold(m.Dec.Unit, "mm"):
			inches = m.Dec.Value / mmPerInch
		case m.Dec.Unit != "" || m.Dec.Inch:
			// "in", "inch", "inches" or a trailing quote
			inches = m.Dec.Value
		default:
			inches = FromDisplay(m.Dec.Value, u, 0)
		}
	}

	if m.Neg {
		inches = -inches
	}
	return inches, nil
}
