package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/masykur/fpldraft/internal/domain/player"
	"github.com/masykur/fpldraft/internal/platform/logging"
)

const (
	projectedGames = 38
	tierBucketSize = 5
	valueMinApps   = 15
)

// statWeights maps a stat name to its fantasy point value for one position.
type statWeights map[string]float64

// positionWeights holds the scoring model per position. Defensive actions
// count more for defenders, saves and clean sheets carry goalkeepers.
var positionWeights = map[player.Position]statWeights{
	player.PositionForward: {
		"goals": 9, "assists": 6, "shots_on_target": 2, "key_passes": 2,
		"clean_sheets": 0.25, "yellow_cards": -2, "red_cards": -7,
	},
	player.PositionMidfielder: {
		"goals": 9, "assists": 6, "shots_on_target": 2, "key_passes": 2,
		"tackles_won": 1, "interceptions": 1, "clean_sheets": 0.75,
		"yellow_cards": -2, "red_cards": -7,
	},
	player.PositionDefender: {
		"goals": 10, "assists": 7, "clean_sheets": 4, "tackles_won": 1,
		"interceptions": 1, "shots_on_target": 2, "yellow_cards": -2, "red_cards": -7,
	},
	player.PositionGoalkeeper: {
		"goals": 10, "assists": 7, "clean_sheets": 5, "saves": 2,
		"penalty_saves": 8, "yellow_cards": -2, "red_cards": -7,
	},
}

func statValues(stat ExternalPlayerStat) map[string]float64 {
	return map[string]float64{
		"goals":           float64(stat.Goals),
		"assists":         float64(stat.Assists),
		"shots_on_target": float64(stat.ShotsOnTarget),
		"key_passes":      float64(stat.KeyPasses),
		"tackles_won":     float64(stat.TacklesWon),
		"interceptions":   float64(stat.Interceptions),
		"clean_sheets":    float64(stat.CleanSheets),
		"saves":           float64(stat.Saves),
		"penalty_saves":   float64(stat.PenaltySaves),
		"yellow_cards":    float64(stat.YellowCards),
		"red_cards":       float64(stat.RedCards),
	}
}

// AnalysisService turns raw season statistics into draft-ready projections,
// rankings, value picks and team summaries.
type AnalysisService struct {
	provider StatsProvider
	topN     int
	logger   *logging.Logger
	now      func() time.Time
}

func NewAnalysisService(provider StatsProvider, topN int, logger *logging.Logger) *AnalysisService {
	if logger == nil {
		logger = logging.Default()
	}
	if topN < 1 {
		topN = 25
	}

	return &AnalysisService{
		provider: provider,
		topN:     topN,
		logger:   logger,
		now:      time.Now,
	}
}

// ProjectPoints scores one player's season with the position weight model,
// normalized per game and projected over a full season.
func ProjectPoints(stat ExternalPlayerStat) float64 {
	pos, err := player.ParsePosition(stat.Position)
	if err != nil {
		return 0
	}

	weights := positionWeights[pos]
	values := statValues(stat)

	score := 0.0
	for name, weight := range weights {
		score += values[name] * weight
	}

	games := stat.Apps
	if games < 1 {
		games = 1
	}
	return score / float64(games) * projectedGames
}

// BuildPlayers converts provider stats into the immutable player table,
// assigning tiers as ranked buckets of five within each position.
func BuildPlayers(stats ExternalSeasonStats) []player.Player {
	byPosition := make(map[player.Position][]player.Player)
	for _, stat := range stats.Players {
		pos, err := player.ParsePosition(stat.Position)
		if err != nil {
			continue
		}
		byPosition[pos] = append(byPosition[pos], player.Player{
			Name:            stat.Name,
			Team:            stat.Team,
			Position:        pos,
			ProjectedPoints: ProjectPoints(stat),
		})
	}

	out := make([]player.Player, 0, len(stats.Players))
	for _, pos := range []player.Position{player.PositionGoalkeeper, player.PositionDefender, player.PositionMidfielder, player.PositionForward} {
		players := byPosition[pos]
		rankPlayersUntiered(players)
		for i := range players {
			players[i].Tier = i/tierBucketSize + 1
		}
		out = append(out, players...)
	}

	return out
}

func rankPlayersUntiered(players []player.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].ProjectedPoints != players[j].ProjectedPoints {
			return players[i].ProjectedPoints > players[j].ProjectedPoints
		}
		return players[i].Key() < players[j].Key()
	})
}

// RankedPlayer is one row of a position ranking in the cheat sheet.
type RankedPlayer struct {
	Rank            int     `json:"rank"`
	Name            string  `json:"name"`
	Team            string  `json:"team"`
	ProjectedPoints float64 `json:"projected_points"`
	Goals           int     `json:"goals"`
	Assists         int     `json:"assists"`
	CleanSheets     int     `json:"clean_sheets"`
	Saves           int     `json:"saves"`
	Apps            int     `json:"apps"`
}

// ValuePick flags a player whose per-game output outruns their raw total.
type ValuePick struct {
	Name            string  `json:"name"`
	Team            string  `json:"team"`
	Apps            int     `json:"apps"`
	ValueMetric     float64 `json:"value_metric"`
	ProjectedPoints float64 `json:"projected_points"`
}

// TeamStrength summarizes one club's attack and clean sheet potential.
type TeamStrength struct {
	Team            string  `json:"team"`
	GoalsFor        int     `json:"goals_for"`
	GoalsAgainst    int     `json:"goals_against"`
	CleanSheets     int     `json:"clean_sheets"`
	AttackStrength  float64 `json:"attack_strength"`
	DefensiveRating string  `json:"defensive_rating"`
}

// CheatSheet is the full pre-draft analysis artifact.
type CheatSheet struct {
	GeneratedAt   time.Time                          `json:"generated_at"`
	Season        string                             `json:"season"`
	Source        string                             `json:"source"`
	TopByPosition map[player.Position][]RankedPlayer `json:"top_players_by_position"`
	ValuePicks    map[player.Position][]ValuePick    `json:"value_picks"`
	TeamAnalysis  []TeamStrength                     `json:"team_analysis"`
	Strategy      map[string][]string                `json:"draft_strategy"`
}

// BuildCheatSheet fetches season stats and derives the full analysis. The
// provider error is returned untouched so the caller can fall back.
func (s *AnalysisService) BuildCheatSheet(ctx context.Context, season string) (CheatSheet, error) {
	stats, err := s.provider.FetchSeason(ctx, season)
	if err != nil {
		return CheatSheet{}, fmt.Errorf("fetch season stats: %w", err)
	}

	return s.BuildCheatSheetFromStats(stats, "live"), nil
}

// BuildCheatSheetFromStats derives the analysis from already loaded stats.
func (s *AnalysisService) BuildCheatSheetFromStats(stats ExternalSeasonStats, source string) CheatSheet {
	sheet := CheatSheet{
		GeneratedAt:   s.now().UTC(),
		Season:        stats.Season,
		Source:        source,
		TopByPosition: make(map[player.Position][]RankedPlayer, 4),
		ValuePicks:    make(map[player.Position][]ValuePick, 4),
		TeamAnalysis:  buildTeamAnalysis(stats.Teams),
		Strategy: map[string][]string{
			"rounds_1_3":    AdviceForRound(1),
			"rounds_4_6":    AdviceForRound(4),
			"rounds_7_10":   AdviceForRound(7),
			"rounds_11plus": AdviceForRound(11),
		},
	}

	byPosition := make(map[player.Position][]ExternalPlayerStat)
	for _, stat := range stats.Players {
		pos, err := player.ParsePosition(stat.Position)
		if err != nil {
			s.logger.Warn("skipping player with unknown position", "player", stat.Name, "position", stat.Position)
			continue
		}
		byPosition[pos] = append(byPosition[pos], stat)
	}

	for pos, posStats := range byPosition {
		sheet.TopByPosition[pos] = s.rankPosition(posStats)
		sheet.ValuePicks[pos] = valuePicksFor(pos, posStats)
	}

	return sheet
}

func (s *AnalysisService) rankPosition(stats []ExternalPlayerStat) []RankedPlayer {
	type scored struct {
		stat  ExternalPlayerStat
		score float64
	}

	rows := make([]scored, 0, len(stats))
	for _, stat := range stats {
		rows = append(rows, scored{stat: stat, score: ProjectPoints(stat)})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].score != rows[j].score {
			return rows[i].score > rows[j].score
		}
		return player.Key(rows[i].stat.Name) < player.Key(rows[j].stat.Name)
	})

	if len(rows) > s.topN {
		rows = rows[:s.topN]
	}

	out := make([]RankedPlayer, 0, len(rows))
	for i, row := range rows {
		out = append(out, RankedPlayer{
			Rank:            i + 1,
			Name:            row.stat.Name,
			Team:            row.stat.Team,
			ProjectedPoints: row.score,
			Goals:           row.stat.Goals,
			Assists:         row.stat.Assists,
			CleanSheets:     row.stat.CleanSheets,
			Saves:           row.stat.Saves,
			Apps:            row.stat.Apps,
		})
	}
	return out
}

// valueMetric measures per-game output independent of season totals.
func valueMetric(pos player.Position, stat ExternalPlayerStat) float64 {
	minutes := stat.Minutes
	if minutes < 1 {
		minutes = 1
	}

	switch pos {
	case player.PositionForward, player.PositionMidfielder:
		return float64(stat.Goals+stat.Assists) * 90 / float64(minutes)
	case player.PositionDefender:
		return float64(stat.CleanSheets)*2 + float64(stat.Goals+stat.Assists)
	default:
		return float64(stat.CleanSheets) + float64(stat.Saves)*0.1
	}
}

// valuePicksFor selects players with strong underlying metrics whose raw
// projection does not yet put them in the top bracket.
func valuePicksFor(pos player.Position, stats []ExternalPlayerStat) []ValuePick {
	eligible := make([]ExternalPlayerStat, 0, len(stats))
	for _, stat := range stats {
		if stat.Apps >= valueMinApps {
			eligible = append(eligible, stat)
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	metrics := make([]float64, 0, len(eligible))
	scores := make([]float64, 0, len(eligible))
	for _, stat := range eligible {
		metrics = append(metrics, valueMetric(pos, stat))
		scores = append(scores, ProjectPoints(stat))
	}

	metricThreshold := quantile(metrics, 0.7)
	scoreThreshold := quantile(scores, 0.8)

	picks := make([]ValuePick, 0, 8)
	for i, stat := range eligible {
		if metrics[i] >= metricThreshold && scores[i] < scoreThreshold {
			picks = append(picks, ValuePick{
				Name:            stat.Name,
				Team:            stat.Team,
				Apps:            stat.Apps,
				ValueMetric:     metrics[i],
				ProjectedPoints: scores[i],
			})
		}
	}

	sort.SliceStable(picks, func(i, j int) bool {
		if picks[i].ValueMetric != picks[j].ValueMetric {
			return picks[i].ValueMetric > picks[j].ValueMetric
		}
		return player.Key(picks[i].Name) < player.Key(picks[j].Name)
	})
	if len(picks) > 5 {
		picks = picks[:5]
	}
	return picks
}

func buildTeamAnalysis(teams []ExternalTeamStat) []TeamStrength {
	out := make([]TeamStrength, 0, len(teams))
	for _, team := range teams {
		rating := "Low"
		switch {
		case team.CleanSheets > 15:
			rating = "High"
		case team.CleanSheets > 10:
			rating = "Medium"
		}

		out = append(out, TeamStrength{
			Team:            team.Name,
			GoalsFor:        team.GoalsFor,
			GoalsAgainst:    team.GoalsAgainst,
			CleanSheets:     team.CleanSheets,
			AttackStrength:  float64(team.GoalsFor) / float64(projectedGames),
			DefensiveRating: rating,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GoalsFor > out[j].GoalsFor
	})
	return out
}

// quantile returns the value at fraction q of the sorted data, nearest-rank.
func quantile(data []float64, q float64) float64 {
	if len(data) == 0 {
		return 0
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	idx := int(q * float64(len(sorted)))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
