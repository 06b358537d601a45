// SPDX-License-Identifier: MIT

package eos

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gaseos/gas"
)

// UnitBase selects the basis of extensive results.
type UnitBase int

const (
	// Molar: volume m³/mol, density mol/m³, enthalpy J/mol.
	Molar UnitBase = iota
	// Mass: volume m³/kg, density kg/m³, enthalpy kJ/kg.
	Mass
)

// String implements fmt.Stringer.
func (u UnitBase) String() string {
	switch u {
	case Molar:
		return "molar"
	case Mass:
		return "mass"
	default:
		return fmt.Sprintf("UnitBase(%d)", int(u))
	}
}

// ParseUnitBase maps "molar" and "mass" to their UnitBase.
func ParseUnitBase(s string) (UnitBase, error) {
	switch s {
	case "molar":
		return Molar, nil
	case "mass":
		return Mass, nil
	default:
		return 0, fmt.Errorf("ParseUnitBase(%q): %w", s, ErrUnsupportedUnit)
	}
}

// EquationOfState evaluates mixture properties at pressure p [Pa] and
// temperature t [K] for mole fractions x, one per component in the order the
// solver was constructed with.
//
// Implementations are immutable after construction and safe for concurrent use.
type EquationOfState interface {
	// AverageMolarWeight returns Σ x_i·MW_i in kg/kmol. No bounds check.
	AverageMolarWeight(x []float64) float64

	// CompressibilityFactor returns Z = PV/(RT).
	CompressibilityFactor(p, t float64, x []float64) (float64, error)

	// Volume returns the specific volume on the given basis.
	Volume(p, t float64, x []float64, unit UnitBase) (float64, error)

	// Density returns 1/Volume on the given basis.
	Density(p, t float64, x []float64, unit UnitBase) (float64, error)

	// Enthalpy returns the specific enthalpy relative to the reference
	// temperature on the given basis.
	Enthalpy(p, t float64, x []float64, unit UnitBase) (float64, error)
}

var (
	_ EquationOfState = (*PengRobinson)(nil)
	_ EquationOfState = (*IdealGas)(nil)
)

// checkState validates the per-call inputs shared by every property.
func checkState(op string, p, t float64, x []float64, n int) error {
	if !(p > 0) || !(t > 0) || math.IsInf(p, 0) || math.IsInf(t, 0) {
		return fmt.Errorf("%s: p=%v t=%v: %w", op, p, t, ErrInvalidState)
	}
	if len(x) != n {
		return fmt.Errorf("%s: %d fractions for %d components: %w", op, len(x), n, ErrCompositionMismatch)
	}

	return nil
}

// specificVolume converts a molar volume in m³/mol to the requested basis.
// Mass: 1e3·V/MW with MW in kg/kmol gives m³/kg.
func specificVolume(op string, vm, mw float64, unit UnitBase) (float64, error) {
	switch unit {
	case Molar:
		return vm, nil
	case Mass:
		return 1e3 * vm / mw, nil
	default:
		return 0, fmt.Errorf("%s: %v: %w", op, unit, ErrUnsupportedUnit)
	}
}

// idealEnthalpy converts the mixture ideal-gas enthalpy (J/kmol) to J/mol or kJ/kg.
func idealEnthalpy(op string, cs []gas.Component, x []float64, t0, t float64, unit UnitBase) (float64, error) {
	h := gas.IdealGasEnthalpy(cs, x, t0, t)
	switch unit {
	case Molar:
		return h / 1e3, nil
	case Mass:
		return h / gas.AverageMolarWeight(cs, x) / 1e3, nil
	default:
		return 0, fmt.Errorf("%s: %v: %w", op, unit, ErrUnsupportedUnit)
	}
}

// resolve looks every identifier up once, in order, and validates the record.
func resolve(ids []string, props gas.PropertyLookup) ([]gas.Component, error) {
	if len(ids) == 0 {
		return nil, ErrNoComponents
	}
	cs := make([]gas.Component, len(ids))
	for i, id := range ids {
		c, err := props.Component(id)
		if err != nil {
			return nil, err
		}
		if err = c.Validate(); err != nil {
			return nil, err
		}
		cs[i] = c
	}

	return cs, nil
}

// wrapConstruct tags a constructor error with the constructor name.
func wrapConstruct(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
