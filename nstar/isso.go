/*package nstar computes the neutron star and black hole quantities needed
to model disruptive compact binary mergers: innermost stable spherical
orbit (ISSO) radii in the Perez-Giz formalism of Stone, Loeb, and Berger
(PRD 87, 084053), and interpolation along non-rotating neutron star
equilibrium sequences.*/
package nstar

import (
	"fmt"
	"math"

	"github.com/grb-tools/grbfit/math/calc"
)

// ISCOEq evaluates the polynomial whose root is the Kerr innermost stable
// circular orbit (ISCO) radius. r is the radial coordinate in units of the
// black hole mass and chi is the dimensionless spin.
func ISCOEq(r, chi float64) float64 {
	return sqr(r*(r-6)) - chi*chi*(2*r*(3*r+14)-9*chi*chi)
}

// ISSOEqAtPole evaluates the polynomial whose root is the polar ISSO
// radius, the innermost stable spherical orbit of an orbit over the black
// hole's poles. Physical solutions are between 6 and
// 1 + sqrt(3) + sqrt(3 + 2 sqrt(3)).
func ISSOEqAtPole(r, chi float64) float64 {
	chi2 := chi * chi
	return r*r*r*(r*r*(r-6)+chi2*(3*r+4)) +
		chi2*chi2*(3*r*(r-2)+chi2)
}

// ISSOEq evaluates the polynomial whose root is the ISSO radius of an
// orbit inclined by incl radians with respect to the black hole spin.
// Physical solutions are between the equatorial ISSO (i.e. ISCO) radius
// and the polar ISSO radius.
func ISSOEq(r, chi, incl float64) float64 {
	chi2 := chi * chi
	chi4 := chi2 * chi2
	r2 := r * r
	r4 := r2 * r2
	sinIncl2 := sqr(math.Sin(incl))

	x := chi2*(chi2*(3*chi2+4*r*(2*r-3))+r2*(15*r*(r-4)+28)) -
		6*r4*(r2-4)
	y := chi4*(chi4+r2*(7*r*(3*r-4)+36)) +
		6*r*(r-2)*(chi4*chi2+2*r2*r*(chi2*(3*r+2)+3*r2*(r-2)))
	z := ISCOEq(r, chi)

	return r4*r4*z + chi2*sinIncl2*(chi2*sinIncl2*y-2*r4*x)
}

func sqr(x float64) float64 { return x * x }

// The physical roots of the orbit polynomials all live in [1, 9]. The
// polynomials carry unphysical roots outside that range (r = 0 among
// them), so the solves scan for the sign change nearest the initial guess
// within a slightly padded interval.
const (
	orbitRootLo   = 0.5
	orbitRootHi   = 10.5
	orbitRootStep = 0.1
)

// ISCORadius returns the ISCO radius, in units of the black hole mass, for
// the dimensionless spin chi. Positive chi is an orbit prograde with the
// spin, negative chi retrograde.
func ISCORadius(chi float64) (float64, error) {
	// The chi = 0 polynomial is (r (r - 6))^2, which touches zero at
	// r = 6 without crossing it, so no sign-change search can find it.
	if chi == 0 {
		return 6, nil
	}

	guess := 5.0
	if chi > 0.99 {
		guess = 2
	} else if chi < 0 {
		guess = 9
	}

	r, ok := calc.RootNear(
		func(r float64) float64 { return ISCOEq(r, chi) },
		guess, orbitRootLo, orbitRootHi, orbitRootStep,
	)
	if !ok {
		return 0, fmt.Errorf(
			"Cannot find the ISCO radius for spin %g.", chi,
		)
	}
	return r, nil
}

// ISSORadiusAtPole returns the polar ISSO radius, in units of the black
// hole mass, for the dimensionless spin chi.
func ISSORadiusAtPole(chi float64) (float64, error) {
	guess := 6.0
	if chi < 0 {
		guess = 9
	}

	r, ok := calc.RootNear(
		func(r float64) float64 { return ISSOEqAtPole(r, chi) },
		guess, orbitRootLo, orbitRootHi, orbitRootStep,
	)
	if !ok {
		return 0, fmt.Errorf(
			"Cannot find the polar ISSO radius for spin %g.", chi,
		)
	}
	return r, nil
}

// ISSORadius returns the ISSO radius, in units of the black hole mass, for
// the dimensionless spin chi and an orbit inclined by incl radians with
// respect to the spin axis.
func ISSORadius(chi, incl float64) (float64, error) {
	// An equatorial retrograde orbit is a prograde orbit with the spin
	// flipped, so the ISCO solve uses the spin projected onto the
	// orbital angular momentum.
	cosIncl := math.Cos(incl)
	sgnchi := 0.0
	if cosIncl > 0 {
		sgnchi = chi
	} else if cosIncl < 0 {
		sgnchi = -chi
	}

	rISCO, err := ISCORadius(sgnchi)
	if err != nil {
		return 0, err
	}
	// A Schwarzschild orbit has no inclination dependence, and for an
	// equatorial orbit the ISSO is the ISCO.
	if chi == 0 || incl == 0 || incl == math.Pi {
		return rISCO, nil
	}

	rPole, err := ISSORadiusAtPole(chi)
	if err != nil {
		return 0, err
	}
	if incl == math.Pi/2 {
		return rPole, nil
	}

	f := func(r float64) float64 { return ISSOEq(r, chi, incl) }

	// The generic solution is bounded by the equatorial and polar ones.
	// Try the outer bound first and fall back to the inner one if the
	// solve wanders out of the physical range.
	r, ok := calc.RootNear(
		f, math.Max(rISCO, rPole), orbitRootLo, orbitRootHi,
		orbitRootStep,
	)
	if !ok || r < 1 || r > 9 {
		r, ok = calc.RootNear(
			f, math.Min(rISCO, rPole), orbitRootLo, orbitRootHi,
			orbitRootStep,
		)
	}
	if !ok || r < 1 || r > 9 {
		return 0, fmt.Errorf(
			"Cannot find the ISSO radius for spin %g and "+
				"inclination %g.", chi, incl,
		)
	}

	return r, nil
}

// ISSORadii evaluates ISSORadius over paired spin and inclination slices.
func ISSORadii(chis, incls []float64) ([]float64, error) {
	if len(chis) != len(incls) {
		return nil, fmt.Errorf(
			"Got %d spins, but %d inclinations.", len(chis), len(incls),
		)
	}

	out := make([]float64, len(chis))
	var err error
	for i := range out {
		out[i], err = ISSORadius(chis[i], incls[i])
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
