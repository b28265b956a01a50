package rand

import (
	"testing"
)

func TestSameSeedSameSequence(t *testing.T) {
	gts := []GeneratorType{Xorshift, Golang, Tausworthe}
	for _, gt := range gts {
		gen1, gen2 := New(gt, 41891), New(gt, 41891)
		for i := 0; i < 1000; i++ {
			x1, x2 := gen1.Uniform(0, 1), gen2.Uniform(0, 1)
			if x1 != x2 {
				t.Errorf("Generator type %d diverged at draw %d "+
					"for identical seeds.", gt, i)
				break
			}
		}
	}
}

func TestUniformRange(t *testing.T) {
	gen := New(Xorshift, 1337)
	for i := 0; i < 10000; i++ {
		x := gen.Uniform(3, 7)
		if x < 3 || x >= 7 {
			t.Errorf("Uniform(3, 7) returned %g.", x)
			break
		}
	}
}

func TestUniformIntRange(t *testing.T) {
	gen := New(Xorshift, 1337)
	counts := make([]int, 4)
	for i := 0; i < 10000; i++ {
		n := gen.UniformInt(3, 7)
		if n < 3 || n >= 7 {
			t.Errorf("UniformInt(3, 7) returned %d.", n)
			return
		}
		counts[n-3]++
	}
	for i := range counts {
		if counts[i] == 0 {
			t.Errorf("UniformInt(3, 7) never returned %d.", i+3)
		}
	}
}

func TestPermute(t *testing.T) {
	gen := New(Xorshift, 1337)
	ns := []int{1, 2, 3, 10, 100}
	for _, n := range ns {
		idx := gen.Permute(n)
		if len(idx) != n {
			t.Errorf("Permute(%d) returned %d indices.", n, len(idx))
			continue
		}
		seen := make([]bool, n)
		for _, i := range idx {
			if i < 0 || i >= n || seen[i] {
				t.Errorf("Permute(%d) is not a permutation: %v", n, idx)
				break
			}
			seen[i] = true
		}
	}
}

func TestPermuteSeeded(t *testing.T) {
	idx1 := New(Xorshift, 41891).Permute(50)
	idx2 := New(Xorshift, 41891).Permute(50)
	for i := range idx1 {
		if idx1[i] != idx2[i] {
			t.Errorf("Identically seeded Permute calls disagree at %d.", i)
			break
		}
	}
}

func benchmarkUniform(gt GeneratorType, b *testing.B) {
	gen := NewTimeSeed(gt)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = gen.Uniform(0, 13)
	}
}

func benchmarkUniformAt(gt GeneratorType, tLen int, b *testing.B) {
	gen := NewTimeSeed(gt)
	b.ResetTimer()

	target := make([]float64, tLen)

	n := 0
	for n < b.N {
		if n+tLen > b.N {
			target = target[0 : b.N-n]
		}
		gen.UniformAt(0, 13, target)
		n += tLen
	}
}

func BenchmarkUniformGolang(b *testing.B)     { benchmarkUniform(Golang, b) }
func BenchmarkUniformXorshift(b *testing.B)   { benchmarkUniform(Xorshift, b) }
func BenchmarkUniformTausworthe(b *testing.B) { benchmarkUniform(Tausworthe, b) }

func BenchmarkUniformAtGolang(b *testing.B)     { benchmarkUniformAt(Golang, 1024, b) }
func BenchmarkUniformAtXorshift(b *testing.B)   { benchmarkUniformAt(Xorshift, 1024, b) }
func BenchmarkUniformAtTausworthe(b *testing.B) { benchmarkUniformAt(Tausworthe, 1024, b) }

func BenchmarkPermute1000(b *testing.B) {
	gen := NewTimeSeed(Xorshift)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gen.Permute(1000)
	}
}
