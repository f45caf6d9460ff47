package cmd

import (
	"fmt"
	"log/slog"
	"os"

	cfgpkg "github.com/KaramelBytes/regress-cli/internal/config"
	"github.com/KaramelBytes/regress-cli/internal/logging"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
	// Structured logger on stderr, built from config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "regress",
	Short:         "regress: fit a line through two-column numeric data",
	Long:          `regress reads a headerless two-column CSV/TSV, optionally drops IQR outliers, fits an ordinary least-squares line and reports goodness-of-fit statistics with a PNG chart.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.regress/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = cfgpkg.Default()
	}
	cfg = c

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: %v\n", err)
	}
	if debug {
		level = logging.LevelDebug
	}
	logger = logging.New(logging.Config{Level: level, JSON: cfg.LogJSON})
}

// ensureConfig covers commands run without cobra.OnInitialize (tests).
func ensureConfig() {
	if cfg == nil || logger == nil {
		loadConfig()
	}
}
