package density

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/grb-tools/grbfit/math/sort"
)

// Rule identifies how a Bandwidth computes its global smoothing factor.
type Rule int

const (
	Fixed Rule = iota
	Scott
	Silverman
)

// Bandwidth is the global smoothing factor of a kernel density estimate. It
// is either a fixed positive number or a rule of thumb that is evaluated
// against the fitted sample's size and dimension.
type Bandwidth struct {
	Rule  Rule
	Value float64
}

// FixedBandwidth returns a Bandwidth with the given fixed factor.
func FixedBandwidth(h float64) Bandwidth {
	return Bandwidth{Rule: Fixed, Value: h}
}

// ParseBandwidth converts a bandwidth specifier to a Bandwidth. Valid
// specifiers are "scott", "silverman", and positive numbers.
func ParseBandwidth(s string) (Bandwidth, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scott":
		return Bandwidth{Rule: Scott}, nil
	case "silverman":
		return Bandwidth{Rule: Silverman}, nil
	}

	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Bandwidth{}, fmt.Errorf(
			"Bandwidth '%s' is neither 'scott', 'silverman', "+
				"nor a number.", s,
		)
	}
	if h <= 0 || math.IsInf(h, 0) || math.IsNaN(h) {
		return Bandwidth{}, fmt.Errorf(
			"Bandwidth '%s' is not positive and finite.", s,
		)
	}

	return FixedBandwidth(h), nil
}

// Factor evaluates the Bandwidth against a sample of n points in dim
// dimensions.
func (bw Bandwidth) Factor(n, dim int) float64 {
	switch bw.Rule {
	case Scott:
		return math.Pow(float64(n), -1/(float64(dim)+4))
	case Silverman:
		return math.Pow(
			float64(n)*(float64(dim)+2)/4, -1/(float64(dim)+4),
		)
	}
	return bw.Value
}

func (bw Bandwidth) String() string {
	switch bw.Rule {
	case Scott:
		return "scott"
	case Silverman:
		return "silverman"
	}
	return strconv.FormatFloat(bw.Value, 'g', -1, 64)
}

// MarginalBandwidth is a one-dimensional rule of thumb for a single
// coordinate of a sample. It uses the smaller of the standard deviation and
// the rescaled interquartile range, which keeps the rule from oversmoothing
// multimodal coordinates.
func MarginalBandwidth(xs []float64) float64 {
	n := float64(len(xs))
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= n

	variance := 0.0
	for _, x := range xs {
		dx := x - mean
		variance += dx * dx
	}
	std := math.Sqrt(variance / (n - 1))

	// Percentile ranks from the largest element down, so the upper
	// quartile is p = 0.25.
	buf := make([]float64, len(xs))
	iqr := sort.Percentile(xs, 0.25, buf) - sort.Percentile(xs, 0.75, buf)

	width := std
	if iqr/1.34 < width {
		width = iqr / 1.34
	}

	return 0.9 * width * math.Pow(n, -0.2)
}
