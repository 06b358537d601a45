// SPDX-License-Identifier: MIT

package gas

// AverageMolarWeight returns Σ x_i·MW_i in kg/kmol.
//
// x is not required to sum to 1; callers normalize if they need to.
// Panics if len(cs) < len(x).
func AverageMolarWeight(cs []Component, x []float64) float64 {
	var mw float64
	for i, xi := range x {
		mw += xi * cs[i].MolecularWeight
	}

	return mw
}

// IdealGasEnthalpy returns Σ x_i·∫_{t0}^{t} Cp_i dT in J/kmol.
//
// Panics if len(cs) < len(x).
func IdealGasEnthalpy(cs []Component, x []float64, t0, t float64) float64 {
	var h float64
	for i, xi := range x {
		h += xi * cs[i].HeatCapacity.Integral(t0, t)
	}

	return h
}
