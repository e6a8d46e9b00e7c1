// Package main is the entry point for pokecollate.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/samdwyer/pokecollate/internal/config"
	"github.com/samdwyer/pokecollate/internal/logging"
	"github.com/samdwyer/pokecollate/internal/pipeline"
	"github.com/samdwyer/pokecollate/internal/telemetry"
)

var (
	settings = config.New()
	cfg      *config.Config
	logger   *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pokecollate",
	Short: "Collate a PokeAPI mirror into per-generation JSON files",
	Long: `pokecollate reads a local mirror of PokeAPI resources and writes one
self-contained generation_<N>.json file per generation, with abilities,
moves, forms, types and evolution chains resolved inline.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(settings)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Verbose)
		if err != nil {
			return err
		}
		if cfg.ConfigFile != "" {
			logger.Debug("config file loaded", zap.String("path", cfg.ConfigFile))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var collateCmd = &cobra.Command{
	Use:   "collate",
	Short: "Write generation_<N>.json files from the dataset mirror",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warn("telemetry setup failed, continuing without tracing", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(context.WithoutCancel(ctx)); err != nil {
					logger.Warn("telemetry shutdown failed", zap.Error(err))
				}
			}()
		}

		deps, err := pipeline.NewDeps(cfg, logger)
		if err != nil {
			return err
		}
		report, err := pipeline.Run(ctx, cfg, deps)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d generation file(s) with %d entries to %s (%d species skipped)\n",
			len(report.Generations), report.Entries(), cfg.OutDir, len(report.Skipped))
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	// No configuration or logger is needed.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pokecollate %s\n", telemetry.Version)
	},
}

func init() {
	cobra.CheckErr(config.BindGlobalFlags(rootCmd, settings))
	cobra.CheckErr(config.BindCollateFlags(collateCmd, settings))
	rootCmd.AddCommand(collateCmd, versionCmd)
}

func main() {
	loadDotEnv(afero.NewOsFs())
	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadDotEnv loads .env and then .env.local, which takes precedence, when
// they exist in the working directory.
func loadDotEnv(fsys afero.Fs) {
	if ok, _ := afero.Exists(fsys, ".env"); ok {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Note: .env file not loaded: %v\n", err)
		}
	}
	if ok, _ := afero.Exists(fsys, ".env.local"); ok {
		if err := godotenv.Overload(".env.local"); err != nil {
			fmt.Fprintf(os.Stderr, "Note: .env.local file not loaded: %v\n", err)
		}
	}
}

// setupOTelEnv maps the Honeycomb variables onto the standard OTEL_* ones.
// Without an API key the environment is left untouched.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_POKECOLLATE_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv(telemetry.EndpointEnv) == "" {
		os.Setenv(telemetry.EndpointEnv, "https://api.honeycomb.io")
	}

	dataset := os.Getenv("HONEYCOMB_POKECOLLATE_DATASET")
	if dataset == "" {
		dataset = "pokecollate"
	}
	// Built here since .env files may carry an unexpanded reference.
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
