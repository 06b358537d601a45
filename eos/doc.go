// Package eos evaluates thermodynamic properties of gas mixtures with an
// equation of state.
//
// Two solvers implement EquationOfState:
//
//   - PengRobinson: the Peng–Robinson cubic with one-fluid mixing rules and
//     binary interaction parameters, optional Péneloux volume translation.
//   - IdealGas: Z = 1, the reference the cubic tends to as P → 0.
//
// A solver is built once from component identifiers (names or CAS numbers)
// resolved through gas.PropertyLookup; PengRobinson also reads k_ij through
// gas.InteractionLookup. Everything resolved at construction is immutable, so
// one solver may serve concurrent callers. Per call the caller supplies
// pressure [Pa], temperature [K] and mole fractions in construction order.
//
// Units:
//
//	UnitBase  Volume   Density  Enthalpy
//	Molar     m³/mol   mol/m³   J/mol
//	Mass      m³/kg    kg/m³    kJ/kg
//
// Diagnostics raised while building a solver (a pair without k_ij, a component
// without a translation constant) are logged through log/slog at WARN level
// and the missing value is taken as 0; see WithLogger.
//
// Usage:
//
//	catalog, _ := gas.LoadCatalog("chemsep.json", "pripdb.json")
//	pr, err := eos.NewPengRobinson([]string{"Methane", "Ethane"}, catalog, catalog,
//		eos.WithVolumeTranslation(eos.PenelouxTable()))
//	z, err := pr.CompressibilityFactor(7e6, 300, []float64{0.9, 0.1})
package eos
