package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/maxviazov/user-directory/internal/app"
	"github.com/maxviazov/user-directory/internal/config"
	"github.com/maxviazov/user-directory/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var flagConfig string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "user-directory",
	Short:         "In-memory user directory with HTML pages and a JSON API",
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", os.Getenv("APP_CONFIG"), "path to config.yaml (default: defaults + APP_* env)")
	rootCmd.AddCommand(serveCmd, versionCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("config loading failed: %w", err)
	}

	cfg.InheritLoggerSettings()
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("app initialization failed: %w", err)
	}

	appLogger.Info().Str("addr", cfg.App.Addr).Msg("🚀 Service started")
	if err := a.Run(ctx); err != nil {
		return err
	}
	appLogger.Info().Msg("👋 Service stopped")
	return nil
}
