package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-record-store/internal/config"
	"github.com/oshokin/alarm-record-store/internal/service/simulator"
	"github.com/oshokin/alarm-record-store/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// duration bounds the run; zero runs until interrupted.
	duration time.Duration

	// rootCmd represents the base command for running the simulator.
	rootCmd = &cobra.Command{
		Use:   "alarm-simulator",
		Short: "Run a synthetic alarm workload against the in-memory record store.",
		Long: `Drives the in-memory alarm record store with synthetic sources.

Each configured source is bound to a boolean detection watch; source values
flip on a ticker, raising and clearing alarm records. Open-alarm summaries
are logged periodically and Prometheus metrics are served when a metrics
address is configured.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &simulator.Options{
				ConfigPath: configPath,
				Duration:   duration,
			}

			return simulator.Run(ctx, options)
		},
	}
)

// Execute runs the alarm-simulator CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().DurationVarP(&duration, "duration", "d", 0, "how long to run (0 = until interrupted)")
}
