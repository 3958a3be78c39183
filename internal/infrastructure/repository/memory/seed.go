package memory

import (
	"github.com/masykur/fpldraft/internal/domain/player"
)

// SamplePlayers is the built-in fallback table used when the stats provider
// is unavailable. Projections are last season's totals; tiers group players
// in ranked buckets within their position.
func SamplePlayers() []player.Player {
	return []player.Player{
		{Name: "Erling Haaland", Team: "Manchester City", Position: player.PositionForward, ProjectedPoints: 285, Tier: 1},
		{Name: "Mohamed Salah", Team: "Liverpool", Position: player.PositionForward, ProjectedPoints: 275, Tier: 1},
		{Name: "Harry Kane", Team: "Tottenham", Position: player.PositionForward, ProjectedPoints: 265, Tier: 1},
		{Name: "Darwin Nunez", Team: "Liverpool", Position: player.PositionForward, ProjectedPoints: 220, Tier: 2},
		{Name: "Alexander Isak", Team: "Newcastle", Position: player.PositionForward, ProjectedPoints: 210, Tier: 2},
		{Name: "Ollie Watkins", Team: "Aston Villa", Position: player.PositionForward, ProjectedPoints: 205, Tier: 3},

		{Name: "Bruno Fernandes", Team: "Manchester United", Position: player.PositionMidfielder, ProjectedPoints: 255, Tier: 1},
		{Name: "Kevin De Bruyne", Team: "Manchester City", Position: player.PositionMidfielder, ProjectedPoints: 250, Tier: 1},
		{Name: "Bukayo Saka", Team: "Arsenal", Position: player.PositionMidfielder, ProjectedPoints: 240, Tier: 1},
		{Name: "Cole Palmer", Team: "Chelsea", Position: player.PositionMidfielder, ProjectedPoints: 220, Tier: 2},
		{Name: "Phil Foden", Team: "Manchester City", Position: player.PositionMidfielder, ProjectedPoints: 215, Tier: 2},
		{Name: "Martin Odegaard", Team: "Arsenal", Position: player.PositionMidfielder, ProjectedPoints: 205, Tier: 3},
		{Name: "Son Heung-min", Team: "Tottenham", Position: player.PositionMidfielder, ProjectedPoints: 200, Tier: 3},

		{Name: "Virgil van Dijk", Team: "Liverpool", Position: player.PositionDefender, ProjectedPoints: 180, Tier: 1},
		{Name: "William Saliba", Team: "Arsenal", Position: player.PositionDefender, ProjectedPoints: 175, Tier: 1},
		{Name: "Ruben Dias", Team: "Manchester City", Position: player.PositionDefender, ProjectedPoints: 170, Tier: 2},
		{Name: "Gabriel", Team: "Arsenal", Position: player.PositionDefender, ProjectedPoints: 165, Tier: 2},
		{Name: "Trent Alexander-Arnold", Team: "Liverpool", Position: player.PositionDefender, ProjectedPoints: 160, Tier: 3},

		{Name: "Alisson", Team: "Liverpool", Position: player.PositionGoalkeeper, ProjectedPoints: 140, Tier: 1},
		{Name: "Ederson", Team: "Manchester City", Position: player.PositionGoalkeeper, ProjectedPoints: 135, Tier: 1},
		{Name: "Aaron Ramsdale", Team: "Arsenal", Position: player.PositionGoalkeeper, ProjectedPoints: 125, Tier: 2},
		{Name: "Jordan Pickford", Team: "Everton", Position: player.PositionGoalkeeper, ProjectedPoints: 120, Tier: 2},
		{Name: "Nick Pope", Team: "Newcastle", Position: player.PositionGoalkeeper, ProjectedPoints: 115, Tier: 3},
	}
}
