// SPDX-License-Identifier: MIT

// Package gas - database decoding.
//
// The component and interaction databases are arrays of flat records whose
// numeric fields are stored as strings (ChemSep export), for example:
//
//	{"Name": "Methane", "CASN": "74-82-8",
//	 "Molecular weight (kg/kmol)": "16.043",
//	 "Critical temperature (K)": "190.56", ...}
//
// Numbers given as JSON/YAML numbers are accepted as well. Missing critical
// constants decode to 0 and are rejected by Component.Validate; missing or
// unparsable heat-capacity terms decode to 0.
package gas

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// numField is a numeric database field that may be stored as a string.
type numField string

// UnmarshalJSON accepts both "1.5" and 1.5.
func (n *numField) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = numField(s)

		return nil
	}
	if string(b) == "null" {
		*n = ""

		return nil
	}
	*n = numField(b)

	return nil
}

// UnmarshalYAML keeps the scalar text whatever its resolved tag.
func (n *numField) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: numeric field must be a scalar", node.Line)
	}
	if node.Tag == "!!null" {
		*n = ""

		return nil
	}
	*n = numField(node.Value)

	return nil
}

// value parses the field; an empty field yields 0.
func (n numField) value() (float64, error) {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return 0, nil
	}

	return strconv.ParseFloat(s, 64)
}

// lenient parses the field and falls back to 0 on any error.
func (n numField) lenient() float64 {
	v, err := n.value()
	if err != nil {
		return 0
	}

	return v
}

// componentRecord mirrors one entry of the component database.
type componentRecord struct {
	Name                string   `json:"Name" yaml:"Name"`
	CASN                string   `json:"CASN" yaml:"CASN"`
	MolecularWeight     numField `json:"Molecular weight (kg/kmol)" yaml:"Molecular weight (kg/kmol)"`
	CriticalPressure    numField `json:"Critical pressure (Pa)" yaml:"Critical pressure (Pa)"`
	CriticalTemperature numField `json:"Critical temperature (K)" yaml:"Critical temperature (K)"`
	CriticalVolume      numField `json:"Critical volume (m3/kmol)" yaml:"Critical volume (m3/kmol)"`
	AcentricFactor      numField `json:"Acentric factor (_)" yaml:"Acentric factor (_)"`
	A                   numField `json:"A_coeff" yaml:"A_coeff"`
	B                   numField `json:"B_coeff" yaml:"B_coeff"`
	C                   numField `json:"C_coeff" yaml:"C_coeff"`
	D                   numField `json:"D_coeff" yaml:"D_coeff"`
}

// interactionRecord mirrors one entry of the interaction database.
type interactionRecord struct {
	CASN1 string   `json:"CASN_1" yaml:"CASN_1"`
	CASN2 string   `json:"CASN_2" yaml:"CASN_2"`
	Name1 string   `json:"Name_1" yaml:"Name_1"`
	Name2 string   `json:"Name_2" yaml:"Name_2"`
	K12   numField `json:"k12" yaml:"k12"`
}

// toComponent converts a raw record; strict on constants, lenient on Cp terms.
func (r componentRecord) toComponent() (Component, error) {
	c := Component{
		Name: r.Name,
		CASN: r.CASN,
		HeatCapacity: HeatCapacity{
			A: r.A.lenient(),
			B: r.B.lenient(),
			C: r.C.lenient(),
			D: r.D.lenient(),
		},
	}
	fields := []struct {
		name string
		raw  numField
		dst  *float64
	}{
		{"molecular weight", r.MolecularWeight, &c.MolecularWeight},
		{"critical pressure", r.CriticalPressure, &c.CriticalPressure},
		{"critical temperature", r.CriticalTemperature, &c.CriticalTemperature},
		{"critical volume", r.CriticalVolume, &c.CriticalVolume},
		{"acentric factor", r.AcentricFactor, &c.AcentricFactor},
	}
	var err error
	for _, f := range fields {
		if *f.dst, err = f.raw.value(); err != nil {
			return Component{}, fmt.Errorf("component %q: %s %q: %w", r.Name, f.name, string(f.raw), ErrInvalidRecord)
		}
	}

	return c, nil
}

func convertComponents(raw []componentRecord) ([]Component, error) {
	out := make([]Component, 0, len(raw))
	for i, r := range raw {
		c, err := r.toComponent()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, c)
	}

	return out, nil
}

func convertInteractions(raw []interactionRecord) ([]Interaction, error) {
	out := make([]Interaction, 0, len(raw))
	for i, r := range raw {
		k, err := r.K12.value()
		if err != nil {
			return nil, fmt.Errorf("record %d: k12 %q: %w", i, string(r.K12), ErrInvalidRecord)
		}
		out = append(out, Interaction{CASN1: r.CASN1, CASN2: r.CASN2, Name1: r.Name1, Name2: r.Name2, K12: k})
	}

	return out, nil
}

// DecodeComponents reads a JSON array of component records.
func DecodeComponents(r io.Reader) ([]Component, error) {
	var raw []componentRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("DecodeComponents: %w", err)
	}

	return convertComponents(raw)
}

// DecodeComponentsYAML reads a YAML sequence of component records.
func DecodeComponentsYAML(r io.Reader) ([]Component, error) {
	var raw []componentRecord
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("DecodeComponentsYAML: %w", err)
	}

	return convertComponents(raw)
}

// DecodeInteractions reads a JSON array of interaction records.
func DecodeInteractions(r io.Reader) ([]Interaction, error) {
	var raw []interactionRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("DecodeInteractions: %w", err)
	}

	return convertInteractions(raw)
}

// DecodeInteractionsYAML reads a YAML sequence of interaction records.
func DecodeInteractionsYAML(r io.Reader) ([]Interaction, error) {
	var raw []interactionRecord
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("DecodeInteractionsYAML: %w", err)
	}

	return convertInteractions(raw)
}

// isYAML reports whether path names a YAML file; ErrUnknownFormat for
// anything but .json/.yaml/.yml.
func isYAML(path string) (bool, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return false, nil
	case ".yaml", ".yml":
		return true, nil
	default:
		return false, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// ReadComponentsFile decodes a component database chosen by extension.
func ReadComponentsFile(path string) ([]Component, error) {
	asYAML, err := isYAML(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if asYAML {
		return DecodeComponentsYAML(f)
	}

	return DecodeComponents(f)
}

// ReadInteractionsFile decodes an interaction database chosen by extension.
func ReadInteractionsFile(path string) ([]Interaction, error) {
	asYAML, err := isYAML(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if asYAML {
		return DecodeInteractionsYAML(f)
	}

	return DecodeInteractions(f)
}

// LoadCatalog reads both databases and indexes them. An empty
// interactionsPath yields a catalog without interaction records.
func LoadCatalog(componentsPath, interactionsPath string) (*Catalog, error) {
	comps, err := ReadComponentsFile(componentsPath)
	if err != nil {
		return nil, fmt.Errorf("LoadCatalog: %w", err)
	}
	var ips []Interaction
	if interactionsPath != "" {
		if ips, err = ReadInteractionsFile(interactionsPath); err != nil {
			return nil, fmt.Errorf("LoadCatalog: %w", err)
		}
	}

	return NewCatalog(comps, ips), nil
}
