package eos_test

import (
	"errors"
	"math"
	"math/cmplx"
	"strings"
	"testing"

	"github.com/katalvlaran/gaseos/eos"
	"github.com/katalvlaran/gaseos/gas"
	"github.com/katalvlaran/gaseos/matrix"
	"github.com/katalvlaran/gaseos/polyroot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPR(t *testing.T, ids []string, opts ...eos.Option) *eos.PengRobinson {
	t.Helper()
	c := natgas()
	logger, _ := captureLogger(t)
	pr, err := eos.NewPengRobinson(ids, c, c, append([]eos.Option{eos.WithLogger(logger)}, opts...)...)
	require.NoError(t, err)

	return pr
}

func TestPengRobinson_IdealGasLimit(t *testing.T) {
	pr := newPR(t, []string{"Methane", "Nitrogen", "Carbon dioxide"})
	x := []float64{0.8, 0.1, 0.1}

	for _, temp := range []float64{250, 300, 400} {
		z, err := pr.CompressibilityFactor(1000, temp, x)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, z, 1e-3, "T=%v", temp)
	}
}

func TestPengRobinson_MethaneAtPipelinePressure(t *testing.T) {
	pr := newPR(t, []string{"Methane"})

	z, err := pr.CompressibilityFactor(5e6, 300, []float64{1})
	require.NoError(t, err)
	assert.Greater(t, z, 0.8)
	assert.Less(t, z, 1.0)

	// z is a root of the cubic it came from
	cubic, err := pr.Cubic(5e6, 300, []float64{1})
	require.NoError(t, err)
	assert.Less(t, cmplx.Abs(cubic.Eval(complex(z, 0))), 1e-9)
}

func TestPengRobinson_CubicCoefficients(t *testing.T) {
	pr := newPR(t, []string{"Methane"})
	cubic, err := pr.Cubic(2e6, 280, []float64{1})
	require.NoError(t, err)
	require.Len(t, cubic, 4)

	assert.Equal(t, complex(1, 0), cubic[3])
	B := real(cubic[2]) + 1
	A := real(cubic[1]) + 3*B*B + 2*B
	assert.InDelta(t, -A*B+B*B+B*B*B, real(cubic[0]), 1e-15)
	for _, c := range cubic {
		assert.Zero(t, imag(c))
	}

	// B = b·P/(RT) with b = 0.0778·R·Tc/Pc
	wantB := 0.0778 * 190.56 / 4599000 * 2e6 / 280
	assert.InDelta(t, wantB, B, 1e-12)
}

func TestPengRobinson_InteractionMatrix(t *testing.T) {
	ids := []string{"Methane", "Nitrogen", "Carbon dioxide", "Helium-4"}
	c := natgas()
	logger, buf := captureLogger(t)
	pr, err := eos.NewPengRobinson(ids, c, c, eos.WithLogger(logger))
	require.NoError(t, err)

	k := func(i, j int) float64 {
		v, err := pr.Interaction(i, j)
		require.NoError(t, err)
		return v
	}
	for i := range ids {
		assert.Zero(t, k(i, i))
		for j := range ids {
			assert.Equal(t, k(i, j), k(j, i))
		}
	}
	assert.Equal(t, 0.0311, k(0, 1))
	assert.Equal(t, 0.0919, k(0, 2))
	assert.Equal(t, -0.017, k(1, 2)) // resolved by names
	assert.Zero(t, k(0, 3))

	// one warning per missing unordered pair
	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "no binary interaction parameter"))
	assert.Contains(t, out, "pair=Methane/Helium-4")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "binary interaction matrix")
	assert.Contains(t, out, "0.0919")

	_, err = pr.Interaction(0, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	m := pr.InteractionMatrix()
	require.Equal(t, len(ids), m.Rows())
	require.NoError(t, m.Set(0, 1, 0.5))
	assert.Equal(t, 0.0311, k(0, 1))
}

func TestPengRobinson_IdentifiersByCAS(t *testing.T) {
	byName := newPR(t, []string{"Methane", "Nitrogen"})
	byCAS := newPR(t, []string{"74-82-8", "7727-37-9"})
	x := []float64{0.9, 0.1}

	z1, err := byName.CompressibilityFactor(3e6, 290, x)
	require.NoError(t, err)
	z2, err := byCAS.CompressibilityFactor(3e6, 290, x)
	require.NoError(t, err)
	assert.Equal(t, z1, z2)
	assert.Equal(t, byName.Components(), byCAS.Components())
}

func TestPengRobinson_ConstructionErrors(t *testing.T) {
	c := natgas()

	_, err := eos.NewPengRobinson(nil, c, c)
	require.ErrorIs(t, err, eos.ErrNoComponents)

	_, err = eos.NewPengRobinson([]string{"Methane", "Argon"}, c, c)
	require.ErrorIs(t, err, gas.ErrNotFound)

	bad := gas.NewCatalog([]gas.Component{{Name: "Broken"}}, nil)
	_, err = eos.NewPengRobinson([]string{"Broken"}, bad, bad)
	require.ErrorIs(t, err, gas.ErrInvalidRecord)

	boom := errors.New("lookup offline")
	_, err = eos.NewPengRobinson([]string{"Methane", "Nitrogen"}, c, failingLookup{boom})
	require.ErrorIs(t, err, boom)
}

type failingLookup struct{ err error }

func (f failingLookup) Interaction(string, string) (float64, error) { return 0, f.err }

func TestPengRobinson_CallErrors(t *testing.T) {
	pr := newPR(t, []string{"Methane", "Nitrogen"})

	_, err := pr.CompressibilityFactor(1e5, 300, []float64{1})
	require.ErrorIs(t, err, eos.ErrCompositionMismatch)
	_, err = pr.CompressibilityFactor(0, 300, []float64{0.5, 0.5})
	require.ErrorIs(t, err, eos.ErrInvalidState)
	_, err = pr.Volume(1e5, math.NaN(), []float64{0.5, 0.5}, eos.Molar)
	require.ErrorIs(t, err, eos.ErrInvalidState)
	_, err = pr.Volume(1e5, 300, []float64{0.5, 0.5}, eos.UnitBase(7))
	require.ErrorIs(t, err, eos.ErrUnsupportedUnit)
	_, err = pr.Density(1e5, 300, []float64{0.5, 0.5}, eos.UnitBase(-1))
	require.ErrorIs(t, err, eos.ErrUnsupportedUnit)
	_, err = pr.IdealGasEnthalpy(1e5, 300, []float64{0.5, 0.5}, eos.UnitBase(2))
	require.ErrorIs(t, err, eos.ErrUnsupportedUnit)
}

func TestPengRobinson_VolumeAndDensity(t *testing.T) {
	pr := newPR(t, []string{"Methane", "Carbon dioxide"})
	x := []float64{0.7, 0.3}
	p, temp := 4e6, 310.0

	z, err := pr.CompressibilityFactor(p, temp, x)
	require.NoError(t, err)

	vm, err := pr.Volume(p, temp, x, eos.Molar)
	require.NoError(t, err)
	assert.InDelta(t, z*eos.DefaultGasConstant*temp/p, vm, 1e-15)

	vs, err := pr.Volume(p, temp, x, eos.Mass)
	require.NoError(t, err)
	assert.InDelta(t, 1e3*vm/pr.AverageMolarWeight(x), vs, 1e-15)

	for _, u := range []eos.UnitBase{eos.Molar, eos.Mass} {
		v, err := pr.Volume(p, temp, x, u)
		require.NoError(t, err)
		d, err := pr.Density(p, temp, x, u)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, v*d, 1e-12, u.String())
	}
}

func TestPengRobinson_Enthalpy(t *testing.T) {
	pr := newPR(t, []string{"Methane", "Nitrogen"})
	x := []float64{0.5, 0.5}

	_, err := pr.Enthalpy(1e5, 350, x, eos.Molar)
	require.ErrorIs(t, err, eos.ErrDepartureNotImplemented)

	c := natgas()
	ig, err := eos.NewIdealGas([]string{"Methane", "Nitrogen"}, c)
	require.NoError(t, err)
	for _, u := range []eos.UnitBase{eos.Molar, eos.Mass} {
		want, err := ig.Enthalpy(1e5, 350, x, u)
		require.NoError(t, err)
		got, err := pr.IdealGasEnthalpy(1e5, 350, x, u)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestPengRobinson_VolumeTranslation(t *testing.T) {
	ids := []string{"Methane", "Nitrogen", "Helium-4"}
	x := []float64{0.8, 0.15, 0.05}
	p, temp := 6e6, 300.0

	plain := newPR(t, ids)
	assert.False(t, plain.VolumeTranslation())

	c := natgas()
	logger, buf := captureLogger(t)
	shifted, err := eos.NewPengRobinson(ids, c, c,
		eos.WithLogger(logger), eos.WithVolumeTranslation(eos.PenelouxTable()))
	require.NoError(t, err)
	assert.True(t, shifted.VolumeTranslation())
	assert.Contains(t, buf.String(), "component=Helium-4")
	assert.Equal(t, 1, strings.Count(buf.String(), "no volume-translation constant"))

	z0, err := plain.CompressibilityFactor(p, temp, x)
	require.NoError(t, err)
	z1, err := shifted.CompressibilityFactor(p, temp, x)
	require.NoError(t, err)

	r := eos.DefaultGasConstant
	b := func(tc, pc float64) float64 { return 0.0778 * r * tc / pc }
	shift := 0.8*-0.1595*b(190.56, 4599000) + 0.15*-0.1927*b(126.2, 3398000)
	assert.InDelta(t, z0-shift*p/(r*temp), z1, 1e-12)
	assert.Greater(t, z1, z0, "negative constants raise Z")
}

func TestPengRobinson_EmptyTranslationTableIsOff(t *testing.T) {
	pr := newPR(t, []string{"Methane"}, eos.WithVolumeTranslation(nil))
	assert.False(t, pr.VolumeTranslation())
}

func TestPengRobinson_RealRootSelection(t *testing.T) {
	// just below the saturation pressure the cubic has three real roots, and
	// both rules agree on the vapor root
	faithful := newPR(t, []string{"Carbon dioxide"})
	realOnly := newPR(t, []string{"Carbon dioxide"}, eos.WithRealRootSelection())
	x := []float64{1}

	cubic, err := faithful.Cubic(4e6, 280, x)
	require.NoError(t, err)
	roots, err := polyroot.FindAll(cubic)
	require.NoError(t, err)
	require.Len(t, roots.Real(eos.RealRootTolerance), 3)

	z1, err := faithful.CompressibilityFactor(4e6, 280, x)
	require.NoError(t, err)
	z2, err := realOnly.CompressibilityFactor(4e6, 280, x)
	require.NoError(t, err)
	assert.Equal(t, real(roots[len(roots)-1]), z1)
	assert.InDelta(t, z1, z2, 1e-12)
}

func TestPengRobinson_ComplexPairSelection(t *testing.T) {
	// compressed CO2: one real root below a complex pair with a larger real part
	faithful := newPR(t, []string{"Carbon dioxide"})
	realOnly := newPR(t, []string{"Carbon dioxide"}, eos.WithRealRootSelection())
	x := []float64{1}

	cubic, err := faithful.Cubic(1e7, 250, x)
	require.NoError(t, err)
	roots, err := polyroot.FindAll(cubic)
	require.NoError(t, err)
	require.Len(t, roots, 3)
	require.Len(t, roots.Real(eos.RealRootTolerance), 1)

	z1, err := faithful.CompressibilityFactor(1e7, 250, x)
	require.NoError(t, err)
	z2, err := realOnly.CompressibilityFactor(1e7, 250, x)
	require.NoError(t, err)
	assert.InDelta(t, 0.34109, z1, 1e-4)
	top, ok := roots.MaxReal()
	require.True(t, ok)
	assert.Equal(t, real(top), z1)
	assert.InDelta(t, 0.18959, z2, 1e-4)
	assert.Greater(t, z1-z2, 0.1)
}

func TestPengRobinson_GasConstantOption(t *testing.T) {
	pr := newPR(t, []string{"Methane"}, eos.WithGasConstant(8.314))
	v, err := pr.Volume(1000, 300, []float64{1}, eos.Molar)
	require.NoError(t, err)
	assert.InDelta(t, 8.314*300/1000, v, 1e-3*8.314*300/1000)
}

func TestPengRobinson_ConcurrentUse(t *testing.T) {
	pr := newPR(t, []string{"Methane", "Nitrogen", "Carbon dioxide"})
	x := []float64{0.85, 0.1, 0.05}
	want, err := pr.CompressibilityFactor(7e6, 320, x)
	require.NoError(t, err)

	done := make(chan float64, 8)
	for g := 0; g < cap(done); g++ {
		go func() {
			z, _ := pr.CompressibilityFactor(7e6, 320, x)
			done <- z
		}()
	}
	for g := 0; g < cap(done); g++ {
		assert.Equal(t, want, <-done)
	}
}
