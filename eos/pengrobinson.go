// SPDX-License-Identifier: MIT

package eos

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gaseos/gas"
	"github.com/katalvlaran/gaseos/matrix"
	"github.com/katalvlaran/gaseos/polyroot"
)

// Peng–Robinson correlation constants.
const (
	prOmegaA = 0.45724
	prOmegaB = 0.0778
	prKappa0 = 0.37464
	prKappa1 = 1.54226
	prKappa2 = -0.26992
)

// PengRobinson is the Peng–Robinson cubic equation of state for a fixed set
// of components with van der Waals one-fluid mixing rules.
//
// Everything that does not depend on (P, T, x) is resolved at construction:
// component records, the interaction matrix k_ij, the covolumes b_i and the
// translation terms c_i·b_i. Instances are immutable and safe for
// concurrent use.
type PengRobinson struct {
	components []gas.Component
	kij        *matrix.Dense // symmetric, zero diagonal
	kappa      []float64     // κ(ω_i)
	b          []float64     // covolume b_i, m³/mol
	shift      []float64     // c_i·b_i; nil when translation is off
	opts       options
}

// NewPengRobinson resolves ids (names or CAS numbers) through props and
// builds k_ij through ips.
//
// Implementation:
//   - Stage 1: resolve and validate each component once, in order.
//   - Stage 2: look every unordered pair i<j up once; a missing pair logs a
//     warning and uses 0. The pair is tried by CAS numbers, then by names.
//   - Stage 3: precompute κ_i, b_i and, when a translation table is set, the
//     per-component shift c_i·b_i (missing name ⇒ warning and 0).
//
// Errors: ErrNoComponents, gas.ErrNotFound (unknown component),
// gas.ErrInvalidRecord, any non-ErrNotFound error from ips.
// Complexity: O(n²) lookups.
func NewPengRobinson(ids []string, props gas.PropertyLookup, ips gas.InteractionLookup, opts ...Option) (*PengRobinson, error) {
	const op = "NewPengRobinson"
	o := gatherOptions(opts...)

	cs, err := resolve(ids, props)
	if err != nil {
		return nil, wrapConstruct(op, err)
	}
	kij, err := buildInteractions(cs, ips, o)
	if err != nil {
		return nil, wrapConstruct(op, err)
	}

	pr := &PengRobinson{
		components: cs,
		kij:        kij,
		kappa:      make([]float64, len(cs)),
		b:          make([]float64, len(cs)),
		opts:       o,
	}
	for i, c := range cs {
		w := c.AcentricFactor
		pr.kappa[i] = prKappa0 + prKappa1*w + prKappa2*w*w
		pr.b[i] = prOmegaB * o.r * c.CriticalTemperature / c.CriticalPressure
	}
	if len(o.translation) > 0 {
		pr.shift = make([]float64, len(cs))
		for i, c := range cs {
			ci, ok := o.translation[c.Name]
			if !ok {
				o.logger.Warn("no volume-translation constant", "component", c.Name, "default", 0.0)
			}
			pr.shift[i] = ci * pr.b[i]
		}
	}

	return pr, nil
}

// buildInteractions returns the symmetric zero-diagonal k_ij matrix.
func buildInteractions(cs []gas.Component, ips gas.InteractionLookup, o options) (*matrix.Dense, error) {
	n := len(cs)
	kij, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			k, err := lookupPair(ips, cs[i], cs[j])
			if errors.Is(err, gas.ErrNotFound) {
				o.logger.Warn("no binary interaction parameter",
					"pair", cs[i].Name+"/"+cs[j].Name, "default", 0.0)
				k, err = 0, nil
			}
			if err != nil {
				return nil, err
			}
			if err = kij.SetSymmetric(i, j, k); err != nil {
				return nil, fmt.Errorf("k(%s,%s): %w", cs[i].Name, cs[j].Name, err)
			}
		}
	}
	if err = matrix.ValidateSymmetric(kij, matrix.DefaultEpsilon); err != nil {
		return nil, err
	}
	if err = matrix.ValidateZeroDiagonal(kij, 0); err != nil {
		return nil, err
	}
	o.logger.Debug("binary interaction matrix", "kij", kij.String())

	return kij, nil
}

// lookupPair tries the CAS pair first and the name pair second.
func lookupPair(ips gas.InteractionLookup, a, b gas.Component) (float64, error) {
	k, err := ips.Interaction(a.CASN, b.CASN)
	if errors.Is(err, gas.ErrNotFound) {
		return ips.Interaction(a.Name, b.Name)
	}

	return k, err
}

// Components returns a copy of the resolved records in construction order.
func (pr *PengRobinson) Components() []gas.Component {
	return append([]gas.Component(nil), pr.components...)
}

// Interaction returns k_ij; matrix.ErrOutOfRange for bad indices.
func (pr *PengRobinson) Interaction(i, j int) (float64, error) {
	return pr.kij.At(i, j)
}

// InteractionMatrix returns an independent copy of the k_ij matrix.
func (pr *PengRobinson) InteractionMatrix() matrix.Matrix {
	return pr.kij.Clone()
}

// VolumeTranslation reports whether a translation table is in effect.
func (pr *PengRobinson) VolumeTranslation() bool { return pr.shift != nil }

// AverageMolarWeight returns Σ x_i·MW_i in kg/kmol.
func (pr *PengRobinson) AverageMolarWeight(x []float64) float64 {
	return gas.AverageMolarWeight(pr.components, x)
}

// Cubic returns the monic cubic in Z (constant term first) at (p, t, x):
//
//	Z³ + (B−1)Z² + (A − 3B² − 2B)Z + (−AB + B² + B³)
//
// with A = a_mix·P/(RT)² and B = b_mix·P/(RT).
//
// Implementation:
//   - α_i = (1 + κ_i(1 − √(T/Tc_i)))², a_i = 0.45724·α_i·R²Tc_i²/Pc_i.
//   - a_mix = xᵀ M x with M_ij = √(a_i a_j)(1 − k_ij).
//   - b_mix = Σ x_i b_i.
func (pr *PengRobinson) Cubic(p, t float64, x []float64) (polyroot.Polynomial, error) {
	const op = "PengRobinson.Cubic"
	if err := checkState(op, p, t, x, len(pr.components)); err != nil {
		return nil, err
	}
	a := pr.attraction(t)
	m, err := matrix.NewSquareFunc(len(a), func(i, j int) float64 {
		k, _ := pr.kij.At(i, j)
		return math.Sqrt(a[i]*a[j]) * (1 - k)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	aMix, err := matrix.QuadraticForm(m, x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	bMix, err := matrix.Dot(x, pr.b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rt := pr.opts.r * t
	A := aMix * p / (rt * rt)
	B := bMix * p / rt

	return polyroot.FromReal(-A*B+B*B+B*B*B, A-3*B*B-2*B, B-1, 1), nil
}

// attraction returns a_i(T) in Pa·m⁶/mol².
func (pr *PengRobinson) attraction(t float64) []float64 {
	r := pr.opts.r
	a := make([]float64, len(pr.components))
	for i, c := range pr.components {
		s := 1 + pr.kappa[i]*(1-math.Sqrt(t/c.CriticalTemperature))
		a[i] = prOmegaA * s * s * r * r * c.CriticalTemperature * c.CriticalTemperature / c.CriticalPressure
	}

	return a
}

// CompressibilityFactor solves the cubic and returns the root with the
// largest real part. With WithRealRootSelection only roots whose imaginary
// part is negligible compete. With volume translation the result is
// shifted by Σ x_i c_i b_i · P/(RT).
//
// Errors: ErrInvalidState, ErrCompositionMismatch, polyroot.ErrNonConvergence.
func (pr *PengRobinson) CompressibilityFactor(p, t float64, x []float64) (float64, error) {
	const op = "PengRobinson.CompressibilityFactor"
	cubic, err := pr.Cubic(p, t, x)
	if err != nil {
		return 0, err
	}
	roots, err := polyroot.FindAll(cubic)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	z := pr.selectRoot(roots)

	if pr.shift != nil {
		s, err := matrix.Dot(x, pr.shift)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		z -= s * p / (pr.opts.r * t)
	}

	return z, nil
}

// selectRoot picks the compressibility root from an ordered root set.
func (pr *PengRobinson) selectRoot(roots polyroot.Roots) float64 {
	if pr.opts.realRoots {
		if rs := roots.Real(RealRootTolerance); len(rs) > 0 {
			// ascending by real part, so the last one is the largest
			return rs[len(rs)-1]
		}
	}
	z, _ := roots.MaxReal()

	return real(z)
}

// Volume returns Z·R·T/P on the molar basis, 1e3·V/MW on the mass basis.
func (pr *PengRobinson) Volume(p, t float64, x []float64, unit UnitBase) (float64, error) {
	const op = "PengRobinson.Volume"
	if unit != Molar && unit != Mass {
		return 0, fmt.Errorf("%s: %v: %w", op, unit, ErrUnsupportedUnit)
	}
	z, err := pr.CompressibilityFactor(p, t, x)
	if err != nil {
		return 0, err
	}

	return specificVolume(op, z*pr.opts.r*t/p, pr.AverageMolarWeight(x), unit)
}

// Density returns 1/Volume.
func (pr *PengRobinson) Density(p, t float64, x []float64, unit UnitBase) (float64, error) {
	v, err := pr.Volume(p, t, x, unit)
	if err != nil {
		return 0, err
	}

	return 1 / v, nil
}

// Enthalpy always fails with ErrDepartureNotImplemented: the cubic residual
// enthalpy is not implemented. See IdealGasEnthalpy.
func (pr *PengRobinson) Enthalpy(p, t float64, x []float64, unit UnitBase) (float64, error) {
	return 0, fmt.Errorf("PengRobinson.Enthalpy: %w", ErrDepartureNotImplemented)
}

// IdealGasEnthalpy returns the ideal-gas part of the enthalpy, as
// IdealGas.Enthalpy does for the same components.
func (pr *PengRobinson) IdealGasEnthalpy(p, t float64, x []float64, unit UnitBase) (float64, error) {
	const op = "PengRobinson.IdealGasEnthalpy"
	if err := checkState(op, p, t, x, len(pr.components)); err != nil {
		return 0, err
	}

	return idealEnthalpy(op, pr.components, x, pr.opts.t0, t, unit)
}
