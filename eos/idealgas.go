// SPDX-License-Identifier: MIT

package eos

import "github.com/katalvlaran/gaseos/gas"

// IdealGas is the Z = 1 equation of state. Enthalpy is the ideal-gas heat
// capacity integrated from the reference temperature.
type IdealGas struct {
	components []gas.Component
	opts       options
}

// NewIdealGas resolves ids (names or CAS numbers) through props.
// Only WithGasConstant, WithReferenceTemperature and WithLogger apply;
// WithVolumeTranslation and WithRealRootSelection are accepted and ignored.
//
// Errors: ErrNoComponents, whatever props returns (gas.ErrNotFound),
// gas.ErrInvalidRecord.
func NewIdealGas(ids []string, props gas.PropertyLookup, opts ...Option) (*IdealGas, error) {
	cs, err := resolve(ids, props)
	if err != nil {
		return nil, wrapConstruct("NewIdealGas", err)
	}

	return &IdealGas{components: cs, opts: gatherOptions(opts...)}, nil
}

// Components returns a copy of the resolved records in construction order.
func (g *IdealGas) Components() []gas.Component {
	return append([]gas.Component(nil), g.components...)
}

// AverageMolarWeight returns Σ x_i·MW_i in kg/kmol.
func (g *IdealGas) AverageMolarWeight(x []float64) float64 {
	return gas.AverageMolarWeight(g.components, x)
}

// CompressibilityFactor is always 1.
func (g *IdealGas) CompressibilityFactor(p, t float64, x []float64) (float64, error) {
	if err := checkState("IdealGas.CompressibilityFactor", p, t, x, len(g.components)); err != nil {
		return 0, err
	}

	return 1, nil
}

// Volume returns R·T/P on the molar basis, 1e3·V/MW on the mass basis.
func (g *IdealGas) Volume(p, t float64, x []float64, unit UnitBase) (float64, error) {
	const op = "IdealGas.Volume"
	if err := checkState(op, p, t, x, len(g.components)); err != nil {
		return 0, err
	}

	return specificVolume(op, g.opts.r*t/p, g.AverageMolarWeight(x), unit)
}

// Density returns 1/Volume.
func (g *IdealGas) Density(p, t float64, x []float64, unit UnitBase) (float64, error) {
	v, err := g.Volume(p, t, x, unit)
	if err != nil {
		return 0, err
	}

	return 1 / v, nil
}

// Enthalpy returns Σ x_i ∫_{T0}^{T} Cp_i dT in J/mol (Molar) or kJ/kg (Mass).
// Pressure does not enter the ideal-gas enthalpy but is still validated.
func (g *IdealGas) Enthalpy(p, t float64, x []float64, unit UnitBase) (float64, error) {
	const op = "IdealGas.Enthalpy"
	if err := checkState(op, p, t, x, len(g.components)); err != nil {
		return 0, err
	}

	return idealEnthalpy(op, g.components, x, g.opts.t0, t, unit)
}
