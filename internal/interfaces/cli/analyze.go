package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/masykur/fpldraft/internal/app"
	"github.com/masykur/fpldraft/internal/config"
	"github.com/masykur/fpldraft/internal/infrastructure/report"
	"github.com/masykur/fpldraft/internal/platform/logging"
	"github.com/masykur/fpldraft/internal/usecase"
)

var (
	analyzeSeason string
	analyzeTopN   int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Build the pre-draft cheat sheet",
	Long: `analyze ranks every player by projected fantasy points, flags value picks
whose per-game output outruns their raw totals, and summarizes team strength.
The result is written as a timestamped JSON artifact plus a text summary.`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeSeason, "season", "2023-2024", "season to analyze")
	analyzeCmd.Flags().IntVar(&analyzeTopN, "top", 25, "players per position in the rankings")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer logger.Sync()
	logging.SetDefault(logger)

	analysis := usecase.NewAnalysisService(app.NewStatsClient(cfg, logger), analyzeTopN, logger)

	var sheet usecase.CheatSheet
	if cfg.LiveDataEnabled() {
		sheet, err = analysis.BuildCheatSheet(cmd.Context(), analyzeSeason)
		if err != nil {
			logger.Warn("live analysis failed, using sample data", "season", analyzeSeason, "error", err.Error())
			sheet = analysis.BuildCheatSheetFromStats(usecase.SampleSeasonStats(), "sample")
		}
	} else {
		logger.Info("no FBRAPI_KEY set, using sample data")
		sheet = analysis.BuildCheatSheetFromStats(usecase.SampleSeasonStats(), "sample")
	}

	jsonPath, textPath, err := report.NewWriter(cfg.OutputDir, logger).Write(sheet)
	if err != nil {
		return fmt.Errorf("write cheat sheet: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Cheat sheet built from %s data (season %s).\n", sheet.Source, sheet.Season)
	fmt.Fprintf(out, "  %s\n", jsonPath)
	fmt.Fprintf(out, "  %s\n", textPath)
	return nil
}
