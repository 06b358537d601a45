// SPDX-License-Identifier: MIT

package eos

// PenelouxTable returns a fresh copy of the dimensionless Péneloux
// volume-translation constants for the common natural-gas components, keyed
// by component name. Pass it to WithVolumeTranslation to enable translation.
func PenelouxTable() map[string]float64 {
	return map[string]float64{
		"Nitrogen":       -0.1927,
		"Carbon dioxide": -0.0817,
		"Methane":        -0.1595,
		"Ethane":         -0.1134,
		"Propane":        -0.0863,
		"Isobutane":      -0.0844,
		"N-butane":       -0.0675,
		"Isopentane":     -0.0608,
		"N-pentane":      -0.039,
		"N-hexane":       -0.008,
		"N-heptane":      0.0033,
	}
}
