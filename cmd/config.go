package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/KaramelBytes/regress-cli/internal/config"
	"github.com/KaramelBytes/regress-cli/internal/logging"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set regress configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		ensureConfig()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "remove_outliers: %t\n", cfg.RemoveOutliers)
		fmt.Fprintf(out, "chart_enabled: %t\n", cfg.ChartEnabled)
		fmt.Fprintf(out, "chart_path: %s\n", cfg.ChartPath)
		if cfg.ChartTitle != "" {
			fmt.Fprintf(out, "chart_title: %s\n", cfg.ChartTitle)
		}
		fmt.Fprintf(out, "chart_width: %d\n", cfg.ChartWidth)
		fmt.Fprintf(out, "chart_height: %d\n", cfg.ChartHeight)
		fmt.Fprintf(out, "log_level: %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "log_json: %t\n", cfg.LogJSON)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		// Always start from what is on disk: a config that failed to load must
		// not be replaced by defaults.
		c, err := cfgpkg.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("refusing to overwrite unreadable config: %w", err)
		}
		cfg = c
		switch key {
		case "remove_outliers":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for remove_outliers: %v", val)
			}
			cfg.RemoveOutliers = b
		case "chart_enabled":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for chart_enabled: %v", val)
			}
			cfg.ChartEnabled = b
		case "chart_path":
			cfg.ChartPath = val
		case "chart_title":
			cfg.ChartTitle = val
		case "chart_width", "chart_height":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid positive int for %s: %v", key, val)
			}
			if key == "chart_width" {
				cfg.ChartWidth = i
			} else {
				cfg.ChartHeight = i
			}
		case "log_level":
			if _, err := logging.ParseLevel(val); err != nil {
				return err
			}
			cfg.LogLevel = val
		case "log_json":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for log_json: %v", val)
			}
			cfg.LogJSON = b
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
