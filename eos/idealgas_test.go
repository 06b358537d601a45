package eos_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gaseos/eos"
	"github.com/katalvlaran/gaseos/gas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdealGas_Properties(t *testing.T) {
	ig, err := eos.NewIdealGas([]string{"Methane"}, natgas())
	require.NoError(t, err)
	x := []float64{1}

	z, err := ig.CompressibilityFactor(1e7, 200, x)
	require.NoError(t, err)
	assert.Equal(t, 1.0, z)

	v, err := ig.Volume(101325, 273.15, x, eos.Molar)
	require.NoError(t, err)
	assert.InDelta(t, 0.022414070318, v, 1e-12)

	v, err = ig.Volume(101325, 273.15, x, eos.Mass)
	require.NoError(t, err)
	assert.InDelta(t, 1.3971246224698, v, 1e-12)

	d, err := ig.Density(101325, 273.15, x, eos.Mass)
	require.NoError(t, err)
	assert.InDelta(t, 0.715755762884, d, 1e-12)
}

func TestIdealGas_Enthalpy(t *testing.T) {
	ig, err := eos.NewIdealGas([]string{"Methane"}, natgas())
	require.NoError(t, err)
	x := []float64{1}

	h, err := ig.Enthalpy(1e5, 400, x, eos.Molar)
	require.NoError(t, err)
	assert.InDelta(t, 3913.530957, h, 1e-6)

	h, err = ig.Enthalpy(1e5, 400, x, eos.Mass)
	require.NoError(t, err)
	assert.InDelta(t, 243.940096, h, 1e-6)

	h, err = ig.Enthalpy(1e5, eos.DefaultReferenceTemperature, x, eos.Molar)
	require.NoError(t, err)
	assert.Zero(t, h)

	_, err = ig.Enthalpy(1e5, 400, x, eos.UnitBase(3))
	require.ErrorIs(t, err, eos.ErrUnsupportedUnit)
}

func TestIdealGas_ReferenceTemperature(t *testing.T) {
	ig, err := eos.NewIdealGas([]string{"Methane", "Nitrogen"}, natgas(), eos.WithReferenceTemperature(400))
	require.NoError(t, err)

	h, err := ig.Enthalpy(1e5, 400, []float64{0.5, 0.5}, eos.Molar)
	require.NoError(t, err)
	assert.Zero(t, h)
	h, err = ig.Enthalpy(1e5, 300, []float64{0.5, 0.5}, eos.Molar)
	require.NoError(t, err)
	assert.Less(t, h, 0.0)
}

func TestIdealGas_MixtureMassEnthalpy(t *testing.T) {
	c := natgas()
	ig, err := eos.NewIdealGas([]string{"Methane", "Carbon dioxide"}, c)
	require.NoError(t, err)
	x := []float64{0.6, 0.4}

	molar, err := ig.Enthalpy(1e5, 500, x, eos.Molar)
	require.NoError(t, err)
	mass, err := ig.Enthalpy(1e5, 500, x, eos.Mass)
	require.NoError(t, err)
	// J/mol ÷ kg/kmol = kJ/kg
	assert.InDelta(t, molar/ig.AverageMolarWeight(x), mass, 1e-9)
	assert.InDelta(t, 0.6*16.043+0.4*44.01, ig.AverageMolarWeight(x), 1e-12)
}

func TestIdealGas_Errors(t *testing.T) {
	c := natgas()
	_, err := eos.NewIdealGas([]string{}, c)
	require.ErrorIs(t, err, eos.ErrNoComponents)
	_, err = eos.NewIdealGas([]string{"Xenon"}, c)
	require.ErrorIs(t, err, gas.ErrNotFound)

	ig, err := eos.NewIdealGas([]string{"Methane"}, c)
	require.NoError(t, err)
	_, err = ig.CompressibilityFactor(1e5, 300, []float64{0.5, 0.5})
	require.ErrorIs(t, err, eos.ErrCompositionMismatch)
	_, err = ig.Density(-1, 300, []float64{1}, eos.Molar)
	require.ErrorIs(t, err, eos.ErrInvalidState)
	_, err = ig.Volume(1e5, 300, []float64{1}, eos.UnitBase(9))
	require.ErrorIs(t, err, eos.ErrUnsupportedUnit)
	assert.Len(t, ig.Components(), 1)
}

func TestUnitBase(t *testing.T) {
	assert.Equal(t, "molar", eos.Molar.String())
	assert.Equal(t, "mass", eos.Mass.String())
	assert.Equal(t, "UnitBase(5)", eos.UnitBase(5).String())

	u, err := eos.ParseUnitBase("mass")
	require.NoError(t, err)
	assert.Equal(t, eos.Mass, u)
	_, err = eos.ParseUnitBase("volumetric")
	require.ErrorIs(t, err, eos.ErrUnsupportedUnit)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.PanicsWithValue(t, "eos: WithGasConstant: r must be finite and > 0", func() { eos.WithGasConstant(0) })
	assert.PanicsWithValue(t, "eos: WithReferenceTemperature: t must be finite and > 0", func() { eos.WithReferenceTemperature(-1) })
	assert.PanicsWithValue(t, "eos: WithLogger: logger must be non-nil", func() { eos.WithLogger(nil) })
	assert.Panics(t, func() {
		eos.WithVolumeTranslation(map[string]float64{"Methane": math.Inf(1)})
	})
}

func TestPenelouxTable_FreshCopy(t *testing.T) {
	a := eos.PenelouxTable()
	a["Methane"] = 42
	b := eos.PenelouxTable()
	assert.Equal(t, -0.1595, b["Methane"])
	assert.Len(t, b, 11)
}
