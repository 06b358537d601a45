// SPDX-License-Identifier: MIT
// Package eos: sentinel error set.
// Solvers return these sentinels wrapped with the operation name; tests and
// callers match them via errors.Is.

package eos

import "errors"

var (
	// ErrUnsupportedUnit is returned for a UnitBase other than Molar or Mass.
	ErrUnsupportedUnit = errors.New("eos: unsupported unit base")

	// ErrDepartureNotImplemented is returned by PengRobinson.Enthalpy: the
	// cubic residual (departure) enthalpy is not implemented. Use
	// IdealGasEnthalpy for the ideal-gas part.
	ErrDepartureNotImplemented = errors.New("eos: enthalpy departure function not implemented")

	// ErrNoComponents is returned by constructors given no identifiers.
	ErrNoComponents = errors.New("eos: no components")

	// ErrCompositionMismatch is returned when the number of mole fractions
	// differs from the number of components the solver was built with.
	ErrCompositionMismatch = errors.New("eos: composition length mismatch")

	// ErrInvalidState is returned for a non-positive or non-finite pressure
	// or temperature.
	ErrInvalidState = errors.New("eos: invalid pressure or temperature")
)
