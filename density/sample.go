/*package density implements adaptive-width Gaussian kernel density
estimation and the k-fold cross validation search used to select the
estimator's global bandwidth and local sensitivity parameters.*/
package density

import (
	"fmt"
)

// Sample is a set of points in dim-dimensional space. Points are stored in
// row-major order, so the coordinates of point i are
// Points[i*Dim: (i+1)*Dim].
type Sample struct {
	Points []float64
	N, Dim int
}

// NewSample creates a Sample from a slice of points. Every point must have
// the same number of coordinates.
func NewSample(points [][]float64) (Sample, error) {
	if len(points) == 0 {
		return Sample{}, fmt.Errorf("Sample contains no points.")
	}

	dim := len(points[0])
	if dim == 0 {
		return Sample{}, fmt.Errorf("Sample points have zero dimensions.")
	}

	flat := make([]float64, 0, len(points)*dim)
	for i := range points {
		if len(points[i]) != dim {
			return Sample{}, fmt.Errorf(
				"Point %d has %d coordinates, but point 0 has %d.",
				i, len(points[i]), dim,
			)
		}
		flat = append(flat, points[i]...)
	}

	return Sample{Points: flat, N: len(points), Dim: dim}, nil
}

// SampleFromCols creates a Sample from per-coordinate columns, the layout
// that text tables are read in as. Every column must have the same length.
func SampleFromCols(cols [][]float64) (Sample, error) {
	if len(cols) == 0 {
		return Sample{}, fmt.Errorf("Sample points have zero dimensions.")
	}

	n := len(cols[0])
	if n == 0 {
		return Sample{}, fmt.Errorf("Sample contains no points.")
	}

	dim := len(cols)
	flat := make([]float64, n*dim)
	for j := range cols {
		if len(cols[j]) != n {
			return Sample{}, fmt.Errorf(
				"Column %d has %d values, but column 0 has %d.",
				j, len(cols[j]), n,
			)
		}
		for i := 0; i < n; i++ {
			flat[i*dim+j] = cols[j][i]
		}
	}

	return Sample{Points: flat, N: n, Dim: dim}, nil
}

// Row returns the coordinates of point i. The returned slice aliases the
// Sample's internal buffer.
func (s Sample) Row(i int) []float64 {
	return s.Points[i*s.Dim : (i+1)*s.Dim]
}

// Subset returns a new Sample containing only the points at the given
// indices. The returned Sample does not alias the original's buffer.
func (s Sample) Subset(idxs []int) Sample {
	flat := make([]float64, 0, len(idxs)*s.Dim)
	for _, i := range idxs {
		flat = append(flat, s.Row(i)...)
	}
	return Sample{Points: flat, N: len(idxs), Dim: s.Dim}
}
