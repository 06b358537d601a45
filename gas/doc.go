// Package gas holds the physical-constant records of pure gas species, the
// binary interaction parameters between pairs of them, and the two lookup
// contracts an equation of state consumes.
//
// The gas package provides:
//
//   - Component and HeatCapacity: immutable constants per species (critical
//     point, molecular weight, acentric factor, ideal-gas Cp polynomial).
//   - Interaction: one binary interaction coefficient k12 keyed by CAS
//     numbers and by names, matched order-independently.
//   - PropertyLookup / InteractionLookup: resolve an identifier (name or CAS
//     number) or a pair of them; both fail with ErrNotFound.
//   - Catalog: in-memory implementation of both lookups.
//   - Store: SQLite implementation of both lookups (mattn/go-sqlite3).
//   - DecodeComponents / DecodeInteractions: ChemSep-style JSON (and YAML)
//     databases whose numeric fields are strings.
//   - AverageMolarWeight / IdealGasEnthalpy: mole-fraction weighted mixture
//     properties.
//
// Units follow the ChemSep database: K, Pa, m³/kmol, kg/kmol and
// J/(kmol·K) for heat capacity.
package gas
