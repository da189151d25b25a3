package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"license-usage-aggregator/internal/app"
	"license-usage-aggregator/internal/shared/configs"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "aggregator [--config file] <input-dir> <output-dir>",
		Short: "Aggregate license usage samples into daily peak reports",
		Long: `aggregator reads <input-dir>/<day>/<productId>/<task file> usage samples and writes
one products_daily_<start>_<end>_<cluster>.csv report per cluster into <output-dir>.

The input directory must exist and not be empty; the output directory must exist and
be empty. With input.source set to s3, <input-dir> is an object prefix in the
configured bucket.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid past this point; failures are run errors, not usage errors.
			cmd.SilenceUsage = true

			cfg, err := configs.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			application, err := app.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return application.Run(ctx, args[0], args[1])
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "config file (defaults and AGGREGATOR_* environment variables apply without one)")

	return cmd
}
