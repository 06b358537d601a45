// SPDX-License-Identifier: MIT

package gas

import (
	"fmt"
	"math"
)

// HeatCapacity holds the ideal-gas heat capacity polynomial
// Cp(T) = A + B·T + C·T² + D·T³ in J/(kmol·K).
type HeatCapacity struct {
	A, B, C, D float64
}

// At returns Cp(t).
func (h HeatCapacity) At(t float64) float64 {
	return h.A + t*(h.B+t*(h.C+t*h.D))
}

// antiderivative returns ∫Cp dT = A·T + B·T²/2 + C·T³/3 + D·T⁴/4.
func (h HeatCapacity) antiderivative(t float64) float64 {
	return t * (h.A + t*(h.B/2+t*(h.C/3+t*h.D/4)))
}

// Integral returns ∫_{t0}^{t} Cp dT in J/kmol.
func (h HeatCapacity) Integral(t0, t float64) float64 {
	return h.antiderivative(t) - h.antiderivative(t0)
}

// Component is the immutable set of physical constants for one gas species.
type Component struct {
	Name                string       // e.g. "Methane"
	CASN                string       // CAS registry number, e.g. "74-82-8"
	CriticalTemperature float64      // K
	CriticalPressure    float64      // Pa
	CriticalVolume      float64      // m³/kmol
	MolecularWeight     float64      // kg/kmol
	AcentricFactor      float64      // dimensionless
	HeatCapacity        HeatCapacity // ideal-gas Cp polynomial
}

// Validate checks the constants an equation of state divides by.
//
// Errors:
//   - ErrInvalidRecord (wrapped with the component name and field).
func (c Component) Validate() error {
	checks := []struct {
		field string
		v     float64
	}{
		{"critical temperature", c.CriticalTemperature},
		{"critical pressure", c.CriticalPressure},
		{"molecular weight", c.MolecularWeight},
	}
	for _, ch := range checks {
		if !(ch.v > 0) || math.IsInf(ch.v, 0) {
			return fmt.Errorf("component %q: %s = %v: %w", c.Name, ch.field, ch.v, ErrInvalidRecord)
		}
	}

	return nil
}

// Interaction is the binary interaction coefficient between two species.
type Interaction struct {
	CASN1, CASN2 string
	Name1, Name2 string
	K12          float64
}
