package density

import (
	"fmt"
	"math"

	"github.com/gonum/matrix/mat64"
)

// KDE is an adaptive-width Gaussian kernel density estimate. The kernel
// covariance is the sample covariance scaled by a global smoothing factor,
// and each kernel is additionally widened or narrowed by a local factor
// computed from a pilot estimate of the density at that point. The local
// factors are (p_i / g)^-alpha, where g is the geometric mean of the pilot
// densities, so alpha = 0 reduces to a fixed-width estimate and larger
// alpha values widen the kernels in low-density regions.
type KDE struct {
	sample Sample
	alpha  float64
	h      float64   // global smoothing factor
	lambda []float64 // per-point local factors
	covInv *mat64.Dense
	norm   float64 // (2 pi)^(dim/2) sqrt(det cov)
}

// Fit fits an adaptive KDE to a sample. alpha must be in [0, 1], and the
// sample must contain at least two points with a non-singular covariance
// matrix.
func Fit(s Sample, bw Bandwidth, alpha float64) (*KDE, error) {
	if s.N < 2 {
		return nil, fmt.Errorf(
			"Cannot estimate a density from %d points.", s.N,
		)
	}
	if alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf(
			"Sensitivity parameter alpha = %g is outside [0, 1].", alpha,
		)
	}

	h := bw.Factor(s.N, s.Dim)
	if h <= 0 || math.IsInf(h, 0) || math.IsNaN(h) {
		return nil, fmt.Errorf(
			"Bandwidth '%s' evaluates to the invalid factor %g.", bw, h,
		)
	}

	cov := mat64.NewDense(s.Dim, s.Dim, covariance(s))
	det := mat64.Det(cov)
	if det <= 0 || math.IsInf(det, 0) || math.IsNaN(det) {
		return nil, fmt.Errorf(
			"Sample covariance matrix is singular. This usually means " +
				"the sample has linearly dependent coordinates or " +
				"repeated points.",
		)
	}
	covInv := mat64.NewDense(s.Dim, s.Dim, nil)
	if err := covInv.Inverse(cov); err != nil {
		return nil, fmt.Errorf("Sample covariance matrix is singular.")
	}

	kde := &KDE{
		sample: s,
		alpha:  alpha,
		h:      h,
		lambda: make([]float64, s.N),
		covInv: covInv,
		norm: math.Pow(2*math.Pi, float64(s.Dim)/2) *
			math.Sqrt(det),
	}
	for i := range kde.lambda {
		kde.lambda[i] = 1
	}

	if alpha == 0 {
		return kde, nil
	}

	// Pilot densities are evaluated with all local factors still at 1,
	// i.e. with the plain fixed-width estimate.
	pilots := make([]float64, s.N)
	logSum := 0.0
	for i := range pilots {
		pilots[i] = kde.Predict(s.Row(i))
		logSum += math.Log(pilots[i])
	}
	g := math.Exp(logSum / float64(s.N))

	for i := range kde.lambda {
		kde.lambda[i] = math.Pow(pilots[i]/g, -alpha)
	}

	return kde, nil
}

// Predict returns the estimated probability density at the point q. It
// panics if q has the wrong number of coordinates.
func (kde *KDE) Predict(q []float64) float64 {
	s := kde.sample
	if len(q) != s.Dim {
		panic(fmt.Sprintf(
			"Point has %d coordinates, but the fitted sample has %d.",
			len(q), s.Dim,
		))
	}

	diff := make([]float64, s.Dim)
	sum := 0.0
	for i := 0; i < s.N; i++ {
		x := s.Row(i)
		for j := range diff {
			diff[j] = q[j] - x[j]
		}

		// Mahalanobis distance squared with respect to the sample
		// covariance.
		m := 0.0
		for j := 0; j < s.Dim; j++ {
			row := 0.0
			for k := 0; k < s.Dim; k++ {
				row += kde.covInv.At(j, k) * diff[k]
			}
			m += diff[j] * row
		}

		width := kde.h * kde.lambda[i]
		sum += math.Exp(-0.5*m/(width*width)) /
			(kde.norm * math.Pow(width, float64(s.Dim)))
	}

	return sum / float64(s.N)
}

// PredictAll returns the estimated probability density at every point of a
// sample.
func (kde *KDE) PredictAll(s Sample) []float64 {
	out := make([]float64, s.N)
	for i := range out {
		out[i] = kde.Predict(s.Row(i))
	}
	return out
}

// LogLikelihood returns the sum of the logarithms of the predicted
// densities over the points of a sample. Points where the predicted density
// underflows to zero contribute -Inf, which propagates through the sum.
func (kde *KDE) LogLikelihood(s Sample) float64 {
	sum := 0.0
	for i := 0; i < s.N; i++ {
		sum += math.Log(kde.Predict(s.Row(i)))
	}
	return sum
}

// covariance returns the row-major sample covariance matrix of a Sample,
// normalized by n - 1.
func covariance(s Sample) []float64 {
	means := make([]float64, s.Dim)
	for i := 0; i < s.N; i++ {
		x := s.Row(i)
		for j := range means {
			means[j] += x[j]
		}
	}
	for j := range means {
		means[j] /= float64(s.N)
	}

	cov := make([]float64, s.Dim*s.Dim)
	for i := 0; i < s.N; i++ {
		x := s.Row(i)
		for j := 0; j < s.Dim; j++ {
			for k := 0; k < s.Dim; k++ {
				cov[j*s.Dim+k] += (x[j] - means[j]) * (x[k] - means[k])
			}
		}
	}
	for i := range cov {
		cov[i] /= float64(s.N - 1)
	}

	return cov
}
