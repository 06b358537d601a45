// Package eos_test exercises the Peng–Robinson and ideal-gas solvers against
// closed-form limits, unit conversions and the construction diagnostics.
package eos_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/gaseos/gas"
)

// natgas is a small natural-gas catalog with ChemSep-style constants.
func natgas() *gas.Catalog {
	cs := []gas.Component{
		{
			Name: "Methane", CASN: "74-82-8",
			CriticalTemperature: 190.56, CriticalPressure: 4599000, CriticalVolume: 0.0986,
			MolecularWeight: 16.043, AcentricFactor: 0.0115,
			HeatCapacity: gas.HeatCapacity{A: 19250, B: 52.13, C: 0.01197, D: -1.132e-5},
		},
		{
			Name: "Nitrogen", CASN: "7727-37-9",
			CriticalTemperature: 126.2, CriticalPressure: 3398000, CriticalVolume: 0.0895,
			MolecularWeight: 28.014, AcentricFactor: 0.0377,
			HeatCapacity: gas.HeatCapacity{A: 31150, B: -13.57, C: 0.0268, D: -1.168e-5},
		},
		{
			Name: "Carbon dioxide", CASN: "124-38-9",
			CriticalTemperature: 304.21, CriticalPressure: 7383000, CriticalVolume: 0.094,
			MolecularWeight: 44.01, AcentricFactor: 0.2236,
			HeatCapacity: gas.HeatCapacity{A: 19800, B: 73.44, C: -0.05602, D: 1.715e-5},
		},
		{
			Name: "Helium-4", CASN: "7440-59-7",
			CriticalTemperature: 5.2, CriticalPressure: 227460, CriticalVolume: 0.0573,
			MolecularWeight: 4.0026, AcentricFactor: -0.39,
			HeatCapacity: gas.HeatCapacity{A: 20786},
		},
	}
	ips := []gas.Interaction{
		{CASN1: "7727-37-9", CASN2: "74-82-8", Name1: "Nitrogen", Name2: "Methane", K12: 0.0311},
		{CASN1: "124-38-9", CASN2: "74-82-8", Name1: "Carbon dioxide", Name2: "Methane", K12: 0.0919},
		// name pair only
		{Name1: "Carbon dioxide", Name2: "Nitrogen", K12: -0.017},
	}

	return gas.NewCatalog(cs, ips)
}

// captureLogger returns a logger writing text records into a buffer.
func captureLogger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}
