package density

import (
	"math"
	"testing"
)

func almostEq(x, y, eps float64) bool {
	return math.Abs(x-y) < eps
}

func TestParseBandwidth(t *testing.T) {
	table := []struct {
		str  string
		rule Rule
		val  float64
	}{
		{"scott", Scott, 0},
		{"Silverman", Silverman, 0},
		{" scott ", Scott, 0},
		{"0.25", Fixed, 0.25},
		{" 1e-2 ", Fixed, 0.01},
	}

	for i, test := range table {
		bw, err := ParseBandwidth(test.str)
		if err != nil {
			t.Errorf("%d) ParseBandwidth(%q) error: %v", i, test.str, err)
		} else if bw.Rule != test.rule {
			t.Errorf("%d) ParseBandwidth(%q).Rule = %d, not %d.",
				i, test.str, bw.Rule, test.rule)
		} else if bw.Rule == Fixed && bw.Value != test.val {
			t.Errorf("%d) ParseBandwidth(%q).Value = %g, not %g.",
				i, test.str, bw.Value, test.val)
		}
	}
}

func TestParseBandwidthErrors(t *testing.T) {
	table := []string{"meow", "", "-1", "0", "inf", "NaN"}
	for i, str := range table {
		if _, err := ParseBandwidth(str); err == nil {
			t.Errorf("%d) ParseBandwidth(%q) did not fail.", i, str)
		}
	}
}

func TestFactor(t *testing.T) {
	n, dim := 100, 3

	scott := Bandwidth{Rule: Scott}.Factor(n, dim)
	if !almostEq(scott, math.Pow(100, -1.0/7), 1e-10) {
		t.Errorf("Scott factor = %g, not %g.",
			scott, math.Pow(100, -1.0/7))
	}

	silverman := Bandwidth{Rule: Silverman}.Factor(n, dim)
	if !almostEq(silverman, math.Pow(125, -1.0/7), 1e-10) {
		t.Errorf("Silverman factor = %g, not %g.",
			silverman, math.Pow(125, -1.0/7))
	}

	if FixedBandwidth(0.3).Factor(n, dim) != 0.3 {
		t.Errorf("Fixed factor did not pass through.")
	}
}

func TestBandwidthString(t *testing.T) {
	table := []struct {
		bw  Bandwidth
		str string
	}{
		{Bandwidth{Rule: Scott}, "scott"},
		{Bandwidth{Rule: Silverman}, "silverman"},
		{FixedBandwidth(0.25), "0.25"},
	}

	for i, test := range table {
		if test.bw.String() != test.str {
			t.Errorf("%d) String() = %q, not %q.",
				i, test.bw.String(), test.str)
		}
	}
}

func TestMarginalBandwidth(t *testing.T) {
	xs := []float64{
		-1.2, -0.8, -0.5, -0.3, -0.1, 0.0, 0.1, 0.3, 0.5, 0.8, 1.2,
	}
	h := MarginalBandwidth(xs)
	if h <= 0 {
		t.Errorf("MarginalBandwidth() = %g, not positive.", h)
	}

	// More points means less smoothing.
	wide := make([]float64, 0, 4*len(xs))
	for i := 0; i < 4; i++ {
		for j, x := range xs {
			wide = append(wide, x+1e-3*float64(i*len(xs)+j))
		}
	}
	if hWide := MarginalBandwidth(wide); hWide >= h {
		t.Errorf("Bandwidth grew from %g to %g with sample size.",
			h, hWide)
	}
}
