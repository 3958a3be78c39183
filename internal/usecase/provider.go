package usecase

import "context"

// ExternalPlayerStat is one player's season totals as reported by the stats
// provider, before any fantasy scoring is applied.
type ExternalPlayerStat struct {
	Name          string
	Team          string
	Position      string
	Apps          int
	Minutes       int
	Goals         int
	Assists       int
	ShotsOnTarget int
	KeyPasses     int
	TacklesWon    int
	Interceptions int
	CleanSheets   int
	Saves         int
	PenaltySaves  int
	YellowCards   int
	RedCards      int
}

// ExternalTeamStat is one club's season totals from the stats provider.
type ExternalTeamStat struct {
	Name         string
	GoalsFor     int
	GoalsAgainst int
	CleanSheets  int
}

// ExternalSeasonStats bundles everything the pre-draft analysis consumes.
type ExternalSeasonStats struct {
	Season  string
	Players []ExternalPlayerStat
	Teams   []ExternalTeamStat
}

// StatsProvider fetches season statistics from an external source. Failures
// are recovered by the caller with the built-in sample table, never surfaced
// to the command loop.
type StatsProvider interface {
	FetchSeason(ctx context.Context, season string) (ExternalSeasonStats, error)
}
