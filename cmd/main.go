package main

import (
	"context"
	"os/signal"
	"syscall"

	"fila/cmd/command"
	_ "fila/docs"
	"fila/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := logrus.New()
	root := newRootCommand(ctx, logger)

	if err := root.Execute(); err != nil {
		logger.WithContext(ctx).Fatalf("failed to execute root command: \n%v", err)
	}
}

// newRootCommand builds the CLI. The configuration is read only once a
// subcommand is about to run, so help and usage never depend on it.
func newRootCommand(ctx context.Context, logger *logrus.Logger) *cobra.Command {
	const description = "Fila de atendimento"
	cfg := &config.Config{}

	root := &cobra.Command{
		Use:           "fila",
		Short:         description,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			*cfg = *loaded

			logger.SetLevel(cfg.LogLevel)
			if cfg.AppEnv == config.ProductionEnv {
				logger.SetFormatter(&logrus.JSONFormatter{})
			}
			return nil
		},
	}

	root.AddCommand(
		command.Server{Logger: logger}.Command(ctx, cfg),
	)
	return root
}
