package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/verdict/internal/casebook"
	"github.com/abhisek/verdict/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "verdict",
		Short: "Put cancer barriers on trial",
		Long: "Cancer? Illegal! The People vs. Barriers: a terminal courtroom simulation.\n" +
			"Judge four real Los Angeles cases, see what actually happened, and get the reforms your verdicts support.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Path to YAML config file (overrides VERDICT_CONFIG env var)")
	pf.String("cases", "", "Path to a case catalog JSON file (overrides VERDICT_CASES env var)")
	pf.String("log-file", "", "Path to the log file (overrides VERDICT_LOG env var)")
	pf.String("log-level", "", "Log level: debug, info, warn or error")

	root.AddCommand(newCasesCmd())
	root.AddCommand(newScoreCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}

// loadConfig resolves the configuration: flags (highest priority), then
// VERDICT_* env vars, then the YAML file, then defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	if v, _ := cmd.Flags().GetString("cases"); v != "" {
		cfg.CasesFile = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.LogFile = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	return cfg, cfg.Validate()
}

// loadCatalog returns the bundled catalog, or the one at cfg.CasesFile.
func loadCatalog(cfg config.Config) (*casebook.Catalog, error) {
	if cfg.CasesFile == "" {
		return casebook.Default(), nil
	}
	cat, err := casebook.LoadFile(cfg.CasesFile)
	if err != nil {
		return nil, fmt.Errorf("load cases: %w", err)
	}
	return cat, nil
}
