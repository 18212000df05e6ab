package units

import (
	"math"
	"testing"
)

func TestParseMeasurement(t *testing.T) {
	tests := []struct {
		input string
		unit  Unit
		want  float64
	}{
		{"10", Imperial, 10},
		{"10.5", Imperial, 10.5},
		{"254", Metric, 10},
		{"10\"", Metric, 10},
		{"25.4 mm", Imperial, 1},
		{"25.4mm", Imperial, 1},
		{"10 in", Metric, 10},
		{"2 inches", Metric, 2},
		{"3'-4.5\"", Imperial, 40.5},
		{"3' 4.5\"", Imperial, 40.5},
		{"1'", Metric, 12},
		{"-15", Imperial, -15},
		{"-1'-3\"", Imperial, -15},
		{"+2.5", Imperial, 2.5},
		{".5", Imperial, 0.5},
	}
	for _, tt := range tests {
		got, err := ParseMeasurement(tt.input, tt.unit)
		if err != nil {
			t.Errorf("ParseMeasurement(%q, %v): %v", tt.input, tt.unit, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ParseMeasurement(%q, %v) = %v, want %v",
				tt.input, tt.unit, got, tt.want)
		}
	}
}

func TestParseMeasurementInvalid(t *testing.T) {
	inputs := []string{"", "abc", "10..5", "'", "10 furlongs", "--3"}
	for _, in := range inputs {
		if _, err := ParseMeasurement(in, Imperial); err == nil {
			t.Errorf("ParseMeasurement(%q) succeeded, want error", in)
		}
	}
}
