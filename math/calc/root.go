/*package calc provides some basic scalar numerical routines.
*/
package calc

import (
	"math"
)

const (
	bracketGrowth  = 1.6
	bracketMaxIter = 60

	brentTol     = 1e-12
	brentMaxIter = 100

	scanRefine  = 4
	scanMinStep = 1e-4
)

// BracketRoot expands an interval outwards from x0 until the function
// changes sign across it. step sets the initial half-width of the interval.
// The returned flag is false if no sign change was found.
func BracketRoot(
	f func(float64) float64, x0, step float64,
) (a, b float64, ok bool) {
	if step <= 0 {
		panic("step in BracketRoot(f, x0, step) must be positive.")
	}

	a, b = x0-step, x0+step
	fa, fb := f(a), f(b)
	for i := 0; i < bracketMaxIter; i++ {
		if fa == 0 {
			return a, a, true
		} else if fb == 0 {
			return b, b, true
		} else if (fa < 0) != (fb < 0) {
			return a, b, true
		}

		// Grow the side with the smaller function value, since the root is
		// more likely to be there.
		if math.Abs(fa) < math.Abs(fb) {
			a += bracketGrowth * (a - b)
			fa = f(a)
		} else {
			b += bracketGrowth * (b - a)
			fb = f(b)
		}
	}
	return a, b, false
}

// Brent finds a root of f within [a, b] via Brent's method. The function
// values at a and b must have opposite signs.
//
// Brent panics if the interval does not bracket a root.
func Brent(f func(float64) float64, a, b float64) float64 {
	fa, fb := f(a), f(b)
	if fa == 0 {
		return a
	} else if fb == 0 {
		return b
	} else if (fa < 0) == (fb < 0) {
		panic("Interval given to Brent(f, a, b) does not bracket a root.")
	}

	if math.Abs(fa) < math.Abs(fb) {
		a, b = b, a
		fa, fb = fb, fa
	}

	c, fc := a, fa
	var d float64
	mflag := true

	for i := 0; i < brentMaxIter; i++ {
		if fb == 0 || math.Abs(b-a) < brentTol {
			return b
		}

		var s float64
		if fa != fc && fb != fc {
			// Inverse quadratic interpolation.
			s = a*fb*fc/((fa-fb)*(fa-fc)) +
				b*fa*fc/((fb-fa)*(fb-fc)) +
				c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			// Secant step.
			s = b - fb*(b-a)/(fb-fa)
		}

		lo, hi := (3*a+b)/4, b
		if lo > hi {
			lo, hi = hi, lo
		}
		cond := s < lo || s > hi ||
			(mflag && math.Abs(s-b) >= math.Abs(b-c)/2) ||
			(!mflag && math.Abs(s-b) >= math.Abs(c-d)/2) ||
			(mflag && math.Abs(b-c) < brentTol) ||
			(!mflag && math.Abs(c-d) < brentTol)
		if cond {
			s = (a + b) / 2
			mflag = true
		} else {
			mflag = false
		}

		fs := f(s)
		d = c
		c, fc = b, fb

		if (fa < 0) != (fs < 0) {
			b, fb = s, fs
		} else {
			a, fa = s, fs
		}

		if math.Abs(fa) < math.Abs(fb) {
			a, b = b, a
			fa, fb = fb, fa
		}
	}

	return b
}

// Root finds a root of f near the initial guess x0 by bracketing outwards
// from x0 and polishing with Brent's method. The returned flag is false if
// no root could be bracketed.
func Root(f func(float64) float64, x0, step float64) (float64, bool) {
	a, b, ok := BracketRoot(f, x0, step)
	if !ok {
		return 0, false
	}
	if a == b {
		return a, true
	}
	return Brent(f, a, b), true
}

// RootNear finds the root of f closest to x0 within [lo, hi]. It scans
// outwards from x0 for a sign change, refining the scan step whenever a
// pass finds none, and polishes the bracket with Brent's method. Unlike
// Root, it cannot jump past a root that sits in a narrow dip of f, which
// makes it the right choice for functions with several roots where the one
// nearest the guess is wanted. The returned flag is false if no sign
// change was found down to the finest scan step.
func RootNear(
	f func(float64) float64, x0, lo, hi, step float64,
) (float64, bool) {
	if step <= 0 {
		panic("step in RootNear(f, x0, lo, hi, step) must be positive.")
	} else if lo > hi {
		panic("lo > hi in RootNear(f, x0, lo, hi, step).")
	}

	if x0 < lo {
		x0 = lo
	} else if x0 > hi {
		x0 = hi
	}

	for ; step >= scanMinStep; step /= scanRefine {
		if x, ok := scanOut(f, x0, lo, hi, step); ok {
			return x, true
		}
	}
	return 0, false
}

// scanOut walks outwards from x0 in alternating directions until it
// crosses a sign change of f or runs out of room on both sides.
func scanOut(
	f func(float64) float64, x0, lo, hi, step float64,
) (float64, bool) {
	f0 := f(x0)
	if f0 == 0 {
		return x0, true
	}

	upX, upF := x0, f0
	downX, downF := x0, f0
	upDone, downDone := upX >= hi, downX <= lo

	for k := 1; !upDone || !downDone; k++ {
		if !upDone {
			x := x0 + float64(k)*step
			if x >= hi {
				x, upDone = hi, true
			}
			fx := f(x)
			if fx == 0 {
				return x, true
			}
			if (fx < 0) != (upF < 0) {
				return Brent(f, upX, x), true
			}
			upX, upF = x, fx
		}

		if !downDone {
			x := x0 - float64(k)*step
			if x <= lo {
				x, downDone = lo, true
			}
			fx := f(x)
			if fx == 0 {
				return x, true
			}
			if (fx < 0) != (downF < 0) {
				return Brent(f, x, downX), true
			}
			downX, downF = x, fx
		}
	}

	return 0, false
}
