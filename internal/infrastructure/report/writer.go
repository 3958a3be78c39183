package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/masykur/fpldraft/internal/domain/player"
	"github.com/masykur/fpldraft/internal/platform/logging"
	"github.com/masykur/fpldraft/internal/usecase"
)

// Writer persists the pre-draft cheat sheet as a timestamped JSON artifact
// plus a human-readable text summary next to it.
type Writer struct {
	dir    string
	logger *logging.Logger
}

func NewWriter(dir string, logger *logging.Logger) *Writer {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}

	return &Writer{dir: dir, logger: logger}
}

// Write stores both artifacts and returns their paths.
func (w *Writer) Write(sheet usecase.CheatSheet) (string, string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create output dir: %w", err)
	}

	base := fmt.Sprintf("fpl_draft_analysis_%s", sheet.GeneratedAt.Format("20060102_1504"))
	jsonPath := filepath.Join(w.dir, base+".json")
	textPath := filepath.Join(w.dir, base+".txt")

	raw, err := sonic.ConfigDefault.MarshalIndent(sheet, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("encode cheat sheet: %w", err)
	}
	raw = append(raw, '\n')
	if err := os.WriteFile(jsonPath, raw, 0o644); err != nil {
		return "", "", fmt.Errorf("write json artifact: %w", err)
	}

	if err := os.WriteFile(textPath, []byte(renderText(sheet)), 0o644); err != nil {
		return "", "", fmt.Errorf("write text summary: %w", err)
	}

	w.logger.Info("cheat sheet written", "json", jsonPath, "text", textPath)
	return jsonPath, textPath, nil
}

func renderText(sheet usecase.CheatSheet) string {
	var b strings.Builder

	fmt.Fprintf(&b, "FPL Draft Analysis - %s\n", sheet.GeneratedAt.Format("2006-01-02 15:04:05"))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	b.WriteString("TOP PLAYERS BY POSITION\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")
	for _, pos := range positionOrder() {
		rows := sheet.TopByPosition[pos]
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s - Top %d:\n", pos, min(len(rows), 10))
		for _, row := range rows[:min(len(rows), 10)] {
			fmt.Fprintf(&b, "%3d. %-26s %-18s %7.1f\n", row.Rank, row.Name, row.Team, row.ProjectedPoints)
		}
	}

	b.WriteString("\nVALUE PICKS & SLEEPERS\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")
	for _, pos := range positionOrder() {
		picks := sheet.ValuePicks[pos]
		if len(picks) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s Value Picks:\n", pos)
		for _, pick := range picks {
			fmt.Fprintf(&b, "  %-26s %-18s metric=%.2f proj=%.1f\n", pick.Name, pick.Team, pick.ValueMetric, pick.ProjectedPoints)
		}
	}

	b.WriteString("\nTEAM ANALYSIS\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")
	for _, team := range sheet.TeamAnalysis {
		fmt.Fprintf(&b, "%s: Goals For: %d, Clean Sheets: %d, Defense: %s\n",
			team.Team, team.GoalsFor, team.CleanSheets, team.DefensiveRating)
	}

	return b.String()
}

func positionOrder() []player.Position {
	return []player.Position{
		player.PositionForward,
		player.PositionMidfielder,
		player.PositionDefender,
		player.PositionGoalkeeper,
	}
}
