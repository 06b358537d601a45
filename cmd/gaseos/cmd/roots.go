package cmd

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/gaseos/polyroot"
	"github.com/spf13/cobra"
)

func newRootsCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "roots <c0> <c1> ... <cn>",
		Short: "Find all roots of a polynomial",
		Long: `Finds all complex roots of c0 + c1·x + ... + cn·xⁿ with Laguerre's method,
ordered by ascending real part. Coefficients start with the constant term and
may be complex (e.g. 1+2i).

Examples:
  gaseos roots 2 -3 1          # x² − 3x + 2 → 1, 2
  gaseos roots -- -6 11 -6 1   # (x−1)(x−2)(x−3)
  gaseos roots 1 0 1           # x² + 1 → −i, +i`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRoots,
	}
	// negative coefficients after the first one are not flags
	c.Flags().SetInterspersed(false)

	return c
}

func runRoots(cmd *cobra.Command, args []string) error {
	p := make(polyroot.Polynomial, len(args))
	for i, a := range args {
		c, err := strconv.ParseComplex(a, 128)
		if err != nil {
			return fmt.Errorf("coefficient %d %q: %w", i, a, err)
		}
		p[i] = c
	}

	roots, err := polyroot.FindAll(p)
	if err != nil {
		return err
	}
	for _, r := range roots {
		printf(cmd, "%s\n", formatComplex(r))
	}

	return nil
}

// formatComplex prints real roots without an imaginary part.
func formatComplex(z complex128) string {
	if imag(z) == 0 {
		return strconv.FormatFloat(real(z), 'g', 12, 64)
	}

	return fmt.Sprintf("%.12g%+.12gi", real(z), imag(z))
}
