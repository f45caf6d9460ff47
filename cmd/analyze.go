package cmd

import (
	"bytes"
	"fmt"

	"github.com/KaramelBytes/regress-cli/internal/analysis"
	"github.com/KaramelBytes/regress-cli/internal/plot"
	"github.com/KaramelBytes/regress-cli/internal/report"
	"github.com/KaramelBytes/regress-cli/internal/utils"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	anaRemoveOutliers bool
	anaChartPath      string
	anaNoChart        bool
	anaTitle          string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Fit a linear regression to a two-column CSV/TSV and report the fit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ensureConfig()
		path := args[0]
		out := cmd.OutOrStdout()

		removeOutliers := cfg.RemoveOutliers
		if cmd.Flags().Changed("remove-outliers") {
			removeOutliers = anaRemoveOutliers
		}
		chartEnabled := cfg.ChartEnabled && !anaNoChart
		chartPath := cfg.ChartPath
		if anaChartPath != "" {
			chartPath = anaChartPath
			chartEnabled = !anaNoChart
		}
		title := cfg.ChartTitle
		if anaTitle != "" {
			title = anaTitle
		}

		log := logger.With("run_id", uuid.NewString(), "file", path)
		log.Debug("starting analysis", "remove_outliers", removeOutliers, "chart", chartEnabled)

		fmt.Fprintf(out, "Reading data from: %s\n\n", path)
		res, err := analysis.Analyze(path, removeOutliers)
		if err != nil {
			// Execute reports the error to the user; keep the log line for --debug.
			log.Debug("analysis failed", "error", err)
			return err
		}
		if rep := res.Outliers; rep != nil {
			log.Info("outliers removed",
				"x_outliers", rep.XOutliers,
				"y_outliers", rep.YOutliers,
				"removed", rep.Union,
				"remaining", rep.Remaining)
		}
		log.Info("regression fitted", "n", res.Fit.N, "slope", res.Fit.Slope, "intercept", res.Fit.Intercept, "r2", res.R2())

		if err := report.Write(out, res); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if !chartEnabled {
			return nil
		}

		var buf bytes.Buffer
		opt := plot.Options{Title: title, Width: cfg.ChartWidth, Height: cfg.ChartHeight}
		if err := plot.Render(&buf, res.Data, res.Fit, opt); err != nil {
			return err
		}
		if err := utils.SafeWriteFile(chartPath, buf.Bytes()); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
		log.Debug("chart written", "path", chartPath, "bytes", buf.Len())
		fmt.Fprintf(out, "\n✓ Wrote chart to %s\n", chartPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&anaRemoveOutliers, "remove-outliers", false, "drop samples outside the 1.5×IQR fences in X or Y before fitting (default from config)")
	analyzeCmd.Flags().StringVarP(&anaChartPath, "chart", "c", "", "path of the PNG chart to write; enables the chart even if chart_enabled is false (default from config)")
	analyzeCmd.Flags().BoolVar(&anaNoChart, "no-chart", false, "skip rendering the chart")
	analyzeCmd.Flags().StringVar(&anaTitle, "title", "", "chart title (default from config)")
}
