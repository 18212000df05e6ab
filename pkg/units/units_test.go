package units

import (
	"math"
	"testing"
)

func TestToDisplay(t *testing.T) {
	if got := ToDisplay(1, Imperial); got != 1 {
		t.Errorf("ToDisplay(1, Imperial) = %v, want 1", got)
	}
	if got := ToDisplay(1, Metric); got != 25.4 {
		t.Errorf("ToDisplay(1, Metric) = %v, want 25.4", got)
	}
}

func TestRoundTrip(t *testing.T) {
	values := []float64{0, 0.1, 1, 2.5, 10, 36}
	for _, u := range []Unit{Imperial, Metric} {
		for _, v := range values {
			got := FromDisplay(ToDisplay(v, u), u, -1)
			if math.Abs(got-v) > 1e-12 {
				t.Errorf("round trip %v via %v = %v", v, u, got)
			}
		}
	}
}

func TestFromDisplayNonFinite(t *testing.T) {
	cases := []float64{math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, v := range cases {
		if got := FromDisplay(v, Imperial, 7.5); got != 7.5 {
			t.Errorf("FromDisplay(%v) = %v, want fallback 7.5", v, got)
		}
	}
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		base      float64
		unit      Unit
		precision int
		want      string
	}{
		{1, Imperial, 2, "1.00\""},
		{1, Metric, 1, "25.4 mm"},
		{2.5, Imperial, 2, "2.50\""},
		{10, Metric, 0, "254 mm"},
		{0.1, Metric, 3, "2.540 mm"},
	}
	for _, tt := range tests {
		if got := FormatDecimal(tt.base, tt.unit, tt.precision); got != tt.want {
			t.Errorf("FormatDecimal(%v, %v, %d) = %q, want %q",
				tt.base, tt.unit, tt.precision, got, tt.want)
		}
	}
}

func TestFormatEngineering(t *testing.T) {
	tests := []struct {
		inches    float64
		precision int
		want      string
	}{
		{0, 2, "0'-0.00\""},
		{10, 2, "0'-10.00\""},
		{-15, 2, "-1'-3.00\""},
		{12, 2, "1'-0.00\""},
		{36.5, 1, "3'-0.5\""},
		{25, 0, "2'-1\""},
	}
	for _, tt := range tests {
		if got := FormatEngineering(tt.inches, tt.precision); got != tt.want {
			t.Errorf("FormatEngineering(%v, %d) = %q, want %q",
				tt.inches, tt.precision, got, tt.want)
		}
	}
}

// A remainder that rounds up to a full foot must carry into the foot
// count instead of printing 12".
func TestFormatEngineeringCarry(t *testing.T) {
	tests := []struct {
		inches    float64
		precision int
		want      string
	}{
		{35.999, 0, "3'-0\""},
		{11.996, 2, "1'-0.00\""},
		{-23.9999, 2, "-2'-0.00\""},
	}
	for _, tt := range tests {
		if got := FormatEngineering(tt.inches, tt.precision); got != tt.want {
			t.Errorf("FormatEngineering(%v, %d) = %q, want %q",
				tt.inches, tt.precision, got, tt.want)
		}
	}
}

func TestClampPrecision(t *testing.T) {
	if got := ClampPrecision(-1); got != 0 {
		t.Errorf("ClampPrecision(-1) = %d, want 0", got)
	}
	if got := ClampPrecision(9); got != 4 {
		t.Errorf("ClampPrecision(9) = %d, want 4", got)
	}
	if got := ClampPrecision(3); got != 3 {
		t.Errorf("ClampPrecision(3) = %d, want 3", got)
	}
}
