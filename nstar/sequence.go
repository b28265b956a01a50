package nstar

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/grb-tools/grbfit/catalog"
	"github.com/grb-tools/grbfit/math/interpolate"
)

// EOSNames lists the equations of state with bundled equilibrium sequence
// files. 2H is a stiff two-piecewise polytrope that yields neutron stars
// with 15 - 16 km radii.
var EOSNames = []string{"2H"}

// Sequence is a non-rotating neutron star equilibrium sequence: the
// baryonic mass and compactness of the equilibrium star at each
// gravitational mass, up to the maximum mass the equation of state
// supports.
type Sequence struct {
	gMass, bMass, compactness []float64
	bMassInterp               *interpolate.Linear
	compInterp                *interpolate.Linear
}

// NewSequence creates a Sequence from parallel slices of gravitational
// mass, baryonic mass, and compactness. Gravitational masses must be
// strictly increasing, with at least two entries.
func NewSequence(gMass, bMass, compactness []float64) (*Sequence, error) {
	if len(gMass) != len(bMass) || len(gMass) != len(compactness) {
		return nil, fmt.Errorf(
			"Sequence columns have lengths %d, %d, and %d.",
			len(gMass), len(bMass), len(compactness),
		)
	}
	if len(gMass) < 2 {
		return nil, fmt.Errorf(
			"Sequence contains %d points, but interpolation "+
				"needs at least 2.", len(gMass),
		)
	}
	for i := 1; i < len(gMass); i++ {
		if gMass[i] <= gMass[i-1] {
			return nil, fmt.Errorf(
				"Gravitational masses are not strictly increasing "+
					"at entry %d.", i,
			)
		}
	}

	return &Sequence{
		gMass: gMass, bMass: bMass, compactness: compactness,
		bMassInterp: interpolate.NewLinear(gMass, bMass),
		compInterp:  interpolate.NewLinear(gMass, compactness),
	}, nil
}

// LoadSequence reads a Sequence from a text table with columns of
// gravitational mass (solar masses), baryonic mass (solar masses), and
// compactness.
func LoadSequence(fname string) (*Sequence, error) {
	_, fcols, err := catalog.ReadFile(fname, []int{}, []int{0, 1, 2})
	if err != nil {
		return nil, err
	}
	return NewSequence(fcols[0], fcols[1], fcols[2])
}

// LoadEOS loads the bundled equilibrium sequence of a named equation of
// state from the given directory. The sequence file for an equation of
// state EOS is named equil_EOS.dat.
func LoadEOS(dir, name string) (*Sequence, error) {
	supported := false
	for _, eos := range EOSNames {
		if eos == name {
			supported = true
			break
		}
	}
	if !supported {
		return nil, fmt.Errorf(
			"Equation of state '%s' does not have an equilibrium "+
				"sequence file. Supported choices are: %s.",
			name, strings.Join(EOSNames, ", "),
		)
	}

	return LoadSequence(filepath.Join(dir, "equil_"+name+".dat"))
}

// MaxMass returns the maximum gravitational mass of the sequence in solar
// masses, the mass of the most massive stable star.
func (seq *Sequence) MaxMass() float64 {
	return seq.gMass[len(seq.gMass)-1]
}

// BaryonicMass returns the baryonic mass, in solar masses, of the
// equilibrium star with the given gravitational mass.
func (seq *Sequence) BaryonicMass(gMass float64) (float64, error) {
	if err := seq.checkMass(gMass); err != nil {
		return 0, err
	}
	return seq.bMassInterp.Eval(gMass), nil
}

// Compactness returns the dimensionless compactness of the equilibrium
// star with the given gravitational mass.
func (seq *Sequence) Compactness(gMass float64) (float64, error) {
	if err := seq.checkMass(gMass); err != nil {
		return 0, err
	}
	return seq.compInterp.Eval(gMass), nil
}

func (seq *Sequence) checkMass(gMass float64) error {
	if gMass < seq.gMass[0] || gMass > seq.MaxMass() {
		return fmt.Errorf(
			"Gravitational mass %g Msun is outside the sequence "+
				"range [%g, %g] Msun.",
			gMass, seq.gMass[0], seq.MaxMass(),
		)
	}
	return nil
}
