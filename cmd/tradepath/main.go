// Package main implements the tradepath CLI: trade compatibility scoring,
// learning journeys and the training-video assistant.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/tradepath/internal/config"
)

var (
	configPath string
	verbose    bool
	seedFlag   uint64

	// appConfig is the merged configuration, set by loadAppConfig before any subcommand runs.
	appConfig = config.Defaults()
)

var rootCmd = &cobra.Command{
	Use:   "tradepath",
	Short: "Trade career compatibility and learning assistant",
	Long: "tradepath scores how well a career changer fits a skilled trade, plans a prioritized learning journey " +
		"and answers questions about training videos with timestamped jump targets.",
	SilenceUsage:      true,
	PersistentPreRunE: loadAppConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file (overrides TRADEPATH_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.PersistentFlags().Uint64Var(&seedFlag, "seed", 0, "Seed for skill levels and suggestions (0 uses TRADEPATH_SEED or the clock)")
}

// loadAppConfig merges the config file, environment and flags, then installs the logger.
func loadAppConfig(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{}

	path := configPath
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seedFlag
	}
	if verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
