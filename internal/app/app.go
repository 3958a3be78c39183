package app

import (
	"context"
	"fmt"

	"github.com/masykur/fpldraft/external/fbrapi"
	"github.com/masykur/fpldraft/internal/config"
	"github.com/masykur/fpldraft/internal/domain/draft"
	"github.com/masykur/fpldraft/internal/domain/player"
	"github.com/masykur/fpldraft/internal/infrastructure/repository/memory"
	"github.com/masykur/fpldraft/internal/platform/logging"
	"github.com/masykur/fpldraft/internal/usecase"
)

// NewStatsClient builds the FBR API client from runtime configuration.
func NewStatsClient(cfg config.Config, logger *logging.Logger) *fbrapi.Client {
	return fbrapi.NewClient(fbrapi.ClientConfig{
		BaseURL:    cfg.FBRAPIBaseURL,
		APIKey:     cfg.FBRAPIKey,
		Timeout:    cfg.FBRAPITimeout,
		MaxRetries: cfg.FBRAPIMaxRetries,
		Logger:     logger,
	})
}

// LoadPlayerTable returns the player table and its source label. Live data is
// attempted only when an API key is configured; any provider failure falls
// back to the built-in sample table instead of propagating.
func LoadPlayerTable(ctx context.Context, cfg config.Config, provider usecase.StatsProvider, season string, logger *logging.Logger) ([]player.Player, string) {
	if cfg.LiveDataEnabled() && provider != nil {
		stats, err := provider.FetchSeason(ctx, season)
		if err != nil {
			logger.Warn("live stats fetch failed, using sample table", "season", season, "error", err.Error())
		} else if players := usecase.BuildPlayers(stats); len(players) > 0 {
			logger.Info("player table loaded from live data", "season", season, "players", len(players))
			return players, "live"
		} else {
			logger.Warn("live stats contained no usable players, using sample table", "season", season)
		}
	}

	return memory.SamplePlayers(), "sample"
}

// BuildTracker wires the full live draft session: player table, league rules
// and the tracker service on top. An empty table from every source is the one
// unrecoverable startup failure.
func BuildTracker(ctx context.Context, cfg config.Config, provider usecase.StatsProvider, season string, logger *logging.Logger) (*usecase.TrackerService, string, error) {
	players, source := LoadPlayerTable(ctx, cfg, provider, season, logger)
	if len(players) == 0 {
		return nil, "", fmt.Errorf("no player table available from any source")
	}

	rules := draft.DefaultRules()
	rules.TotalTeams = cfg.TotalTeams
	rules.DraftPosition = cfg.DraftPosition
	if err := rules.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid draft rules: %w", err)
	}

	repo := memory.NewPlayerRepository(players)
	return usecase.NewTrackerService(repo, rules, cfg.SuggestCount, logger), source, nil
}
