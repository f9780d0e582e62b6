package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/verdict/internal/casebook"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a case catalog file (default: the configured catalog)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				catalog *casebook.Catalog
				err     error
				name    string
			)
			if len(args) == 1 {
				name = args[0]
				catalog, err = casebook.LoadFile(name)
			} else {
				cfg, cerr := loadConfig(cmd)
				if cerr != nil {
					return cerr
				}
				name = cfg.CasesFile
				if name == "" {
					name = "bundled catalog"
				}
				catalog, err = loadCatalog(cfg)
			}
			if err != nil {
				return err
			}
			if err := catalog.Validate(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d cases, %d sources)\n",
				name, catalog.Count(), len(catalog.Sources()))
			return nil
		},
	}
}
