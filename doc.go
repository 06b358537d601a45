// Package gaseos computes thermodynamic properties of natural-gas mixtures:
// compressibility factor, specific volume, density and enthalpy, from pure
// component constants and binary interaction parameters.
//
// 🚀 What is gaseos?
//
//	A small, dependency-light toolkit made of four packages:
//		• polyroot: all complex roots of a polynomial (Laguerre + deflation + polishing)
//		• matrix:   dense row-major matrices, validators, quadratic forms
//		• gas:      component records, ChemSep JSON/YAML decoding, SQLite store
//		• eos:      Peng–Robinson and ideal-gas equations of state
//
// plus config (TOML/YAML evaluation files) and the gaseos command.
//
// ✨ Guarantees
//
//   - Solvers are immutable after construction; concurrent calls are safe.
//   - Root finding is deterministic and bounded by a fixed iteration budget.
//   - Every failure is a package sentinel usable with errors.Is.
//
// ⚙️ Usage:
//
//	catalog, err := gas.LoadCatalog("chemsep.json", "pripdb.json")
//	pr, err := eos.NewPengRobinson([]string{"Methane", "Ethane"}, catalog, catalog)
//	rho, err := pr.Density(7e6, 300, []float64{0.9, 0.1}, eos.Mass)
//
//	$ gaseos props --config natgas.toml --compare
//	$ gaseos roots -- -6 11 -6 1
package gaseos
