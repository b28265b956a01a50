package density

import (
	"fmt"
	"log"
	"math"

	"github.com/grb-tools/grbfit/catalog"
	"github.com/grb-tools/grbfit/logging"
	"github.com/grb-tools/grbfit/math/rand"
)

// Fold is one train/test partition of the indices of a sample.
type Fold struct {
	Train, Test []int
}

// KFold shuffles the indices of a sample and partitions them into K folds
// of near-equal size. The shuffle is drawn from Gen, so two KFolds with
// identically seeded generators produce identical partitions.
type KFold struct {
	K   int
	Gen *rand.Generator
}

// Split partitions the indices [0, n) into K folds. K must be at least 2
// and no larger than n. When n does not divide evenly, the first n % K
// folds receive one extra test point.
func (kf *KFold) Split(n int) ([]Fold, error) {
	if kf.K < 2 {
		return nil, fmt.Errorf(
			"Fold count %d is smaller than 2.", kf.K,
		)
	}
	if kf.K > n {
		return nil, fmt.Errorf(
			"Fold count %d is larger than the sample size %d.", kf.K, n,
		)
	}

	gen := kf.Gen
	if gen == nil {
		gen = rand.NewTimeSeed(rand.Xorshift)
	}
	idx := gen.Permute(n)

	folds := make([]Fold, kf.K)
	start := 0
	for i := range folds {
		size := n / kf.K
		if i < n%kf.K {
			size++
		}

		folds[i].Test = idx[start : start+size]
		folds[i].Train = make([]int, 0, n-size)
		folds[i].Train = append(folds[i].Train, idx[:start]...)
		folds[i].Train = append(folds[i].Train, idx[start+size:]...)

		start += size
	}

	return folds, nil
}

// Grid is the set of candidate bandwidths and sensitivity parameters that
// SelectBandwidth searches over. Every (bandwidth, alpha) pair is scored.
type Grid struct {
	Bandwidths []Bandwidth
	Alphas     []float64
}

// DefaultGrid returns the standard search grid: the Scott and Silverman
// rules of thumb followed by ten log-spaced fixed bandwidths in [0.01, 1],
// each paired with alpha = 1.
func DefaultGrid() Grid {
	bws := []Bandwidth{{Rule: Scott}, {Rule: Silverman}}
	bws = append(bws, LogSpacedBandwidths(0.01, 1, 10)...)
	return Grid{Bandwidths: bws, Alphas: []float64{1}}
}

// LogSpacedBandwidths returns n fixed bandwidths spaced evenly in log
// between low and high, inclusive on both ends.
func LogSpacedBandwidths(low, high float64, n int) []Bandwidth {
	if n == 1 {
		return []Bandwidth{FixedBandwidth(low)}
	}

	logLow, logHigh := math.Log10(low), math.Log10(high)
	bws := make([]Bandwidth, n)
	for i := range bws {
		exp := logLow + (logHigh-logLow)*float64(i)/float64(n-1)
		bws[i] = FixedBandwidth(math.Pow(10, exp))
	}
	return bws
}

// Score is the cross validation result for one grid point. Mean is the
// held-out log likelihood averaged over folds; it is -Inf when the
// estimate assigns zero density to any held-out point.
type Score struct {
	Bandwidth Bandwidth
	Alpha     float64
	Mean      float64
}

// SelectBandwidth scores every grid point by k-fold cross validation and
// returns the best one along with the full score table. Each grid point's
// score is the mean over folds of the summed log density of the held-out
// points under an estimate fitted to the remaining points. Ties keep the
// earlier grid point, with bandwidths ordered before alphas.
//
// All grid points are scored against the same fold partition.
func SelectBandwidth(s Sample, grid Grid, kf *KFold) (
	Score, []Score, error,
) {
	if len(grid.Bandwidths) == 0 || len(grid.Alphas) == 0 {
		return Score{}, nil, fmt.Errorf("Search grid is empty.")
	}

	folds, err := kf.Split(s.N)
	if err != nil {
		return Score{}, nil, err
	}

	scores := make([]Score, 0, len(grid.Bandwidths)*len(grid.Alphas))
	best := -1
	for _, bw := range grid.Bandwidths {
		for _, alpha := range grid.Alphas {
			mean, err := scoreGridPoint(s, folds, bw, alpha)
			if err != nil {
				return Score{}, nil, err
			}

			scores = append(scores, Score{
				Bandwidth: bw, Alpha: alpha, Mean: mean,
			})
			if best == -1 || mean > scores[best].Mean {
				best = len(scores) - 1
			}

			if logging.Mode == logging.Debug {
				log.Printf(
					"crossval: h = %s, alpha = %g, mean log L = %g",
					bw, alpha, mean,
				)
			}
		}
	}

	return scores[best], scores, nil
}

func scoreGridPoint(
	s Sample, folds []Fold, bw Bandwidth, alpha float64,
) (float64, error) {
	sum := 0.0
	for i := range folds {
		kde, err := Fit(s.Subset(folds[i].Train), bw, alpha)
		if err != nil {
			return 0, err
		}
		sum += kde.LogLikelihood(s.Subset(folds[i].Test))
	}
	return sum / float64(len(folds)), nil
}

// FormatScores renders a score table as the text lines of a catalog,
// headed by a column comment.
func FormatScores(scores []Score) []string {
	idxs := make([]int, len(scores))
	bws := make([]string, len(scores))
	alphas := make([]float64, len(scores))
	means := make([]float64, len(scores))
	for i := range scores {
		idxs[i] = i
		bws[i] = scores[i].Bandwidth.String()
		alphas[i] = scores[i].Alpha
		means[i] = scores[i].Mean
	}

	order := []int{0, 3, 1, 2}
	lines := []string{catalog.CommentString(
		[]string{"Index"}, []string{"Alpha", "MeanLogL"},
		[]string{"Bandwidth"}, order,
	)}

	return append(lines, catalog.FormatCols(
		[][]int{idxs}, [][]float64{alphas, means}, [][]string{bws}, order,
	)...)
}
