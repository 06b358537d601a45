package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/katalvlaran/gaseos/config"
	"github.com/katalvlaran/gaseos/eos"
	"github.com/katalvlaran/gaseos/gas"
	"github.com/spf13/cobra"
)

func newPropsCommand() *cobra.Command {
	var (
		cfgFile string
		compare bool
	)

	c := &cobra.Command{
		Use:   "props",
		Short: "Evaluate mixture properties",
		Long: `Evaluates average molar weight, compressibility factor, volume, density and
enthalpy of the mixture described by a TOML or YAML config file.

Examples:
  gaseos props --config natgas.toml
  gaseos props --config natgas.yaml --compare   # both equations of state`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			return runProps(cmd, cfg, compare)
		},
	}
	c.Flags().StringVarP(&cfgFile, "config", "c", "gaseos.toml", "config file (.toml, .yaml)")
	c.Flags().BoolVar(&compare, "compare", false, "also evaluate the other equation of state")

	return c
}

// lookup is what both data sources provide.
type lookup interface {
	gas.PropertyLookup
	gas.InteractionLookup
}

// openLookup prefers the SQLite store over JSON/YAML files.
func openLookup(cfg *config.Config) (lookup, func() error, error) {
	if cfg.Database.SQLite != "" {
		s, err := gas.Open(cfg.Database.SQLite)
		if err != nil {
			return nil, nil, err
		}

		return s, s.Close, nil
	}
	c, err := gas.LoadCatalog(cfg.Database.Components, cfg.Database.Interactions)
	if err != nil {
		return nil, nil, err
	}

	return c, func() error { return nil }, nil
}

// newSolver builds the equation of state named by model.
func newSolver(model string, cfg *config.Config, lk lookup) (eos.EquationOfState, error) {
	opts := []eos.Option{
		eos.WithGasConstant(cfg.Solver.GasConstant),
		eos.WithLogger(slog.Default()),
	}
	switch model {
	case config.ModelIdeal:
		return eos.NewIdealGas(cfg.Mixture.Components, lk, opts...)
	case config.ModelPengRobinson:
		if cfg.Solver.VolumeTranslation {
			table := eos.PenelouxTable()
			for name, c := range cfg.Translation {
				table[name] = c
			}
			opts = append(opts, eos.WithVolumeTranslation(table))
		}
		if cfg.Solver.RealRootSelection {
			opts = append(opts, eos.WithRealRootSelection())
		}

		return eos.NewPengRobinson(cfg.Mixture.Components, lk, lk, opts...)
	default:
		return nil, fmt.Errorf("model %q: %w", model, config.ErrInvalid)
	}
}

// unitLabels holds volume, density and enthalpy units per basis.
var unitLabels = map[eos.UnitBase][3]string{
	eos.Molar: {"m³/mol", "mol/m³", "J/mol"},
	eos.Mass:  {"m³/kg", "kg/m³", "kJ/kg"},
}

func runProps(cmd *cobra.Command, cfg *config.Config, compare bool) error {
	unit, err := eos.ParseUnitBase(cfg.State.Unit)
	if err != nil {
		return err
	}
	lk, closeFn, err := openLookup(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	models := []string{cfg.Solver.Model}
	if compare {
		other := config.ModelIdeal
		if cfg.Solver.Model == config.ModelIdeal {
			other = config.ModelPengRobinson
		}
		models = append(models, other)
	}

	p, t, x := cfg.State.Pressure, cfg.State.Temperature, cfg.Mixture.Fractions
	slog.Debug("evaluating", "pressure", p, "temperature", t, "components", cfg.Mixture.Components,
		"fraction_sum", cfg.FractionSum())

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "P\t%g\tPa\n", p)
	fmt.Fprintf(tw, "T\t%g\tK\n", t)
	for _, model := range models {
		solver, err := newSolver(model, cfg, lk)
		if err != nil {
			return err
		}
		if err = writeProps(tw, model, solver, p, t, x, unit); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// writeProps appends one block of properties for solver.
func writeProps(tw *tabwriter.Writer, model string, solver eos.EquationOfState, p, t float64, x []float64, unit eos.UnitBase) error {
	labels := unitLabels[unit]
	z, err := solver.CompressibilityFactor(p, t, x)
	if err != nil {
		return fmt.Errorf("%s: %w", model, err)
	}
	v, err := solver.Volume(p, t, x, unit)
	if err != nil {
		return fmt.Errorf("%s: %w", model, err)
	}
	d, err := solver.Density(p, t, x, unit)
	if err != nil {
		return fmt.Errorf("%s: %w", model, err)
	}

	hNote := ""
	h, err := solver.Enthalpy(p, t, x, unit)
	if errors.Is(err, eos.ErrDepartureNotImplemented) {
		if pr, ok := solver.(*eos.PengRobinson); ok {
			h, err = pr.IdealGasEnthalpy(p, t, x, unit)
			hNote = " (ideal-gas part)"
		}
	}
	if err != nil {
		return fmt.Errorf("%s: %w", model, err)
	}

	fmt.Fprintf(tw, "\n[%s]\t\t\n", model)
	fmt.Fprintf(tw, "MW\t%.6g\tkg/kmol\n", solver.AverageMolarWeight(x))
	fmt.Fprintf(tw, "Z\t%.6g\t\n", z)
	fmt.Fprintf(tw, "V\t%.6g\t%s\n", v, labels[0])
	fmt.Fprintf(tw, "rho\t%.6g\t%s\n", d, labels[1])
	fmt.Fprintf(tw, "h\t%.6g\t%s%s\n", h, labels[2], hNote)

	return nil
}
