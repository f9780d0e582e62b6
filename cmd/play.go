package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/verdict/internal/app"
	"github.com/abhisek/verdict/internal/clipboard"
	"github.com/abhisek/verdict/internal/logging"
)

// runApp starts an interactive trial.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	logger, err := logging.NewFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("session_id", uuid.NewString()))

	if cfg.CasesFile != "" {
		logger.Info("using custom case catalog", zap.String("path", cfg.CasesFile))
	}

	return app.Run(app.Options{
		Catalog: catalog,
		Config:  cfg,
		Logger:  logger,
		Copier:  clipboard.New(cfg.Clipboard.OSC52),
	})
}
