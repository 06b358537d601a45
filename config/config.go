// SPDX-License-Identifier: MIT

// Package config loads the description of one property evaluation: which
// databases to read, the mixture, the state point and solver settings.
//
// Files are TOML or YAML, chosen by extension:
//
//	[database]
//	components   = "chemsep.json"
//	interactions = "pripdb.json"
//
//	[mixture]
//	components = ["Methane", "Ethane"]
//	fractions  = [0.9, 0.1]
//
//	[state]
//	pressure    = 7e6     # Pa
//	temperature = 300.0   # K
//	unit        = "mass"  # or "molar"
//
//	[solver]
//	model              = "peng-robinson"  # or "ideal"
//	volume_translation = true
//
//	[translation]          # overrides the built-in Péneloux constants
//	"Methane" = -0.1595
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Solver models.
const (
	ModelPengRobinson = "peng-robinson"
	ModelIdeal        = "ideal"
)

// Defaults applied to fields left empty.
const (
	DefaultPressure    = 101325.0 // Pa
	DefaultTemperature = 288.15   // K
	DefaultUnit        = "mass"
	DefaultModel       = ModelPengRobinson
	DefaultGasConstant = 8.3145
)

var (
	// ErrUnknownFormat indicates a config file extension other than .toml,
	// .yaml or .yml.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrInvalid wraps every Validate failure.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config is one property evaluation.
type Config struct {
	Database    DatabaseConfig     `toml:"database" yaml:"database"`
	Mixture     MixtureConfig      `toml:"mixture" yaml:"mixture"`
	State       StateConfig        `toml:"state" yaml:"state"`
	Solver      SolverConfig       `toml:"solver" yaml:"solver"`
	Translation map[string]float64 `toml:"translation" yaml:"translation"`
}

// DatabaseConfig locates component and interaction data. When SQLite is set
// it is used instead of the JSON/YAML files.
type DatabaseConfig struct {
	Components   string `toml:"components" yaml:"components"`
	Interactions string `toml:"interactions" yaml:"interactions"`
	SQLite       string `toml:"sqlite" yaml:"sqlite"`
}

// MixtureConfig lists component identifiers and their mole fractions.
type MixtureConfig struct {
	Components []string  `toml:"components" yaml:"components"`
	Fractions  []float64 `toml:"fractions" yaml:"fractions"`
}

// StateConfig is the state point.
type StateConfig struct {
	Pressure    float64 `toml:"pressure" yaml:"pressure"`
	Temperature float64 `toml:"temperature" yaml:"temperature"`
	Unit        string  `toml:"unit" yaml:"unit"`
}

// SolverConfig selects and tunes the equation of state.
type SolverConfig struct {
	Model             string  `toml:"model" yaml:"model"`
	VolumeTranslation bool    `toml:"volume_translation" yaml:"volume_translation"`
	RealRootSelection bool    `toml:"real_root_selection" yaml:"real_root_selection"`
	GasConstant       float64 `toml:"gas_constant" yaml:"gas_constant"`
}

// Default returns a configuration with every default filled in and no
// mixture.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// Load reads path (TOML or YAML by extension), applies defaults and expands
// environment variables in database paths. Relative database paths are
// resolved against the directory of path. Load does not call Validate.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".toml" && ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("Load %s: %w", path, ErrUnknownFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	cfg, err := Parse(data, ext)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}
	cfg.resolvePaths(filepath.Dir(path))

	return cfg, nil
}

// Parse decodes data in the format named by ext (".toml", ".yaml" or ".yml")
// and applies defaults.
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config
	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("Parse %q: %w", ext, ErrUnknownFormat)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults sets default values for missing configuration.
func (c *Config) applyDefaults() {
	if c.State.Pressure == 0 {
		c.State.Pressure = DefaultPressure
	}
	if c.State.Temperature == 0 {
		c.State.Temperature = DefaultTemperature
	}
	if c.State.Unit == "" {
		c.State.Unit = DefaultUnit
	}
	if c.Solver.Model == "" {
		c.Solver.Model = DefaultModel
	}
	if c.Solver.GasConstant == 0 {
		c.Solver.GasConstant = DefaultGasConstant
	}
}

// resolvePaths expands environment variables and anchors relative paths at dir.
func (c *Config) resolvePaths(dir string) {
	for _, p := range []*string{&c.Database.Components, &c.Database.Interactions, &c.Database.SQLite} {
		if *p == "" {
			continue
		}
		*p = os.ExpandEnv(*p)
		if !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

// Validate checks the configuration for consistency. All problems are
// reported at once, joined, each wrapping ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid))
	}

	if c.Database.Components == "" && c.Database.SQLite == "" {
		fail("database: components or sqlite is required")
	}
	if len(c.Mixture.Components) == 0 {
		fail("mixture: no components")
	}
	if len(c.Mixture.Fractions) != len(c.Mixture.Components) {
		fail("mixture: %d fractions for %d components", len(c.Mixture.Fractions), len(c.Mixture.Components))
	}
	for i, x := range c.Mixture.Fractions {
		if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			fail("mixture: fraction %d = %v", i, x)
		}
	}
	if !(c.State.Pressure > 0) || math.IsInf(c.State.Pressure, 0) {
		fail("state: pressure = %v", c.State.Pressure)
	}
	if !(c.State.Temperature > 0) || math.IsInf(c.State.Temperature, 0) {
		fail("state: temperature = %v", c.State.Temperature)
	}
	if c.State.Unit != "molar" && c.State.Unit != "mass" {
		fail("state: unit %q", c.State.Unit)
	}
	if c.Solver.Model != ModelPengRobinson && c.Solver.Model != ModelIdeal {
		fail("solver: model %q", c.Solver.Model)
	}
	if !(c.Solver.GasConstant > 0) || math.IsInf(c.Solver.GasConstant, 0) {
		fail("solver: gas_constant = %v", c.Solver.GasConstant)
	}
	for name, v := range c.Translation {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			fail("translation: %q = %v", name, v)
		}
	}

	return errors.Join(errs...)
}

// FractionSum returns Σ x_i. Fractions are not required to sum to 1.
func (c *Config) FractionSum() float64 {
	var s float64
	for _, x := range c.Mixture.Fractions {
		s += x
	}

	return s
}
