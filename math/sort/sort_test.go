package sort

import (
	"math/rand"
	"sort"
	"testing"
)

func randSlice(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = rand.Float64()
	}
	return xs
}

func isSorted(xs []float64) bool {
	for i := 0; i < len(xs)-1; i++ {
		if xs[i] > xs[i+1] {
			return false
		}
	}
	return true
}

func TestShell(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10, 100} {
		xs := randSlice(n)
		if !isSorted(Shell(xs)) {
			t.Errorf("Shell did not sort a slice of length %d.", n)
		}
	}
}

func TestQuick(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10, 100, 1000} {
		xs := randSlice(n)
		if !isSorted(Quick(xs)) {
			t.Errorf("Quick did not sort a slice of length %d.", n)
		}
	}
}

func TestNthLargest(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10, 100} {
		xs := randSlice(n)
		sorted := make([]float64, n)
		copy(sorted, xs)
		sort.Float64s(sorted)

		for i := 1; i <= n; i++ {
			got := NthLargest(xs, i)
			want := sorted[n-i]
			if got != want {
				t.Errorf("NthLargest(xs, %d) = %g, but the sorted slice "+
					"gives %g for n = %d.", i, got, want, n)
			}
		}
	}
}

func TestPercentile(t *testing.T) {
	xs := []float64{5, 1, 4, 2, 3}
	table := []struct {
		p    float64
		want float64
	}{
		{0, 5},
		{0.2, 5},
		{0.5, 4},
		{1, 1},
	}

	for i := range table {
		got := Percentile(xs, table[i].p)
		if got != table[i].want {
			t.Errorf("%d) Percentile(xs, %g) = %g, not %g.",
				i, table[i].p, got, table[i].want)
		}
	}
}

func TestMedian(t *testing.T) {
	if med := Median([]float64{4, 1, 3, 2}); med != 3 {
		t.Errorf("Median of {4, 1, 3, 2} = %g, not 3.", med)
	}
}

func BenchmarkQuick1000(b *testing.B) {
	xs := randSlice(1000)
	buf := make([]float64, 1000)
	for i := 0; i < b.N; i++ {
		copy(buf, xs)
		Quick(buf)
	}
}

func BenchmarkNthLargest1000(b *testing.B) {
	xs := randSlice(1000)
	buf := make([]float64, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NthLargest(xs, 500, buf)
	}
}
