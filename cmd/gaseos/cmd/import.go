package cmd

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gaseos/gas"
	"github.com/spf13/cobra"
)

func newImportCommand() *cobra.Command {
	var components, interactions, db string

	c := &cobra.Command{
		Use:   "import",
		Short: "Load component and interaction databases into SQLite",
		Long: `Reads ChemSep-style JSON or YAML databases and appends their records to a
SQLite database that props can use through [database] sqlite.

Examples:
  gaseos import --components chemsep.json --interactions pripdb.json --db gas.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := gas.LoadCatalog(components, interactions)
			if err != nil {
				return err
			}
			store, err := gas.Open(db)
			if err != nil {
				return err
			}
			defer store.Close()

			nc, ni, err := store.Import(cmd.Context(), catalog)
			if err != nil {
				return err
			}
			slog.Debug("import finished", "db", db, "components", nc, "interactions", ni)
			printf(cmd, "imported %d components and %d interactions into %s\n", nc, ni, db)

			return nil
		},
	}
	c.Flags().StringVar(&components, "components", "", "component database (.json, .yaml)")
	c.Flags().StringVar(&interactions, "interactions", "", "interaction database (.json, .yaml)")
	c.Flags().StringVar(&db, "db", "gaseos.db", "SQLite database file")
	if err := c.MarkFlagRequired("components"); err != nil {
		panic(fmt.Sprintf("import: %v", err))
	}

	return c
}
