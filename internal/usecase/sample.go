package usecase

// SampleSeasonStats is the fixed fallback dataset used when the stats
// provider cannot be reached. Figures mirror the 2024-25 season totals the
// scoring model was tuned against.
func SampleSeasonStats() ExternalSeasonStats {
	return ExternalSeasonStats{
		Season: "2023-2024",
		Players: []ExternalPlayerStat{
			{Name: "Erling Haaland", Team: "Manchester City", Position: "FW", Apps: 31, Minutes: 2769, Goals: 27, Assists: 5, ShotsOnTarget: 64, KeyPasses: 27},
			{Name: "Mohamed Salah", Team: "Liverpool", Position: "FW", Apps: 34, Minutes: 3060, Goals: 24, Assists: 13, ShotsOnTarget: 89, KeyPasses: 86, CleanSheets: 18},
			{Name: "Harry Kane", Team: "Tottenham", Position: "FW", Apps: 36, Minutes: 3186, Goals: 30, Assists: 8, ShotsOnTarget: 82, KeyPasses: 49},
			{Name: "Darwin Nunez", Team: "Liverpool", Position: "FW", Apps: 30, Minutes: 2176, Goals: 15, Assists: 9, ShotsOnTarget: 51, KeyPasses: 31},
			{Name: "Alexander Isak", Team: "Newcastle", Position: "FW", Apps: 27, Minutes: 2108, Goals: 12, Assists: 4, ShotsOnTarget: 38, KeyPasses: 22},
			{Name: "Ollie Watkins", Team: "Aston Villa", Position: "FW", Apps: 35, Minutes: 3101, Goals: 15, Assists: 11, ShotsOnTarget: 47, KeyPasses: 40},

			{Name: "Bruno Fernandes", Team: "Manchester United", Position: "MF", Apps: 32, Minutes: 2880, Goals: 8, Assists: 15, ShotsOnTarget: 45, KeyPasses: 102, TacklesWon: 45, CleanSheets: 12, YellowCards: 5},
			{Name: "Kevin De Bruyne", Team: "Manchester City", Position: "MF", Apps: 28, Minutes: 2253, Goals: 7, Assists: 18, ShotsOnTarget: 38, KeyPasses: 110, TacklesWon: 21, CleanSheets: 13},
			{Name: "Bukayo Saka", Team: "Arsenal", Position: "MF", Apps: 35, Minutes: 3007, Goals: 11, Assists: 13, ShotsOnTarget: 49, KeyPasses: 84, TacklesWon: 33, CleanSheets: 14, YellowCards: 4},
			{Name: "Cole Palmer", Team: "Chelsea", Position: "MF", Apps: 33, Minutes: 2802, Goals: 13, Assists: 11, ShotsOnTarget: 52, KeyPasses: 77, TacklesWon: 25, CleanSheets: 9, YellowCards: 3},
			{Name: "Phil Foden", Team: "Manchester City", Position: "MF", Apps: 34, Minutes: 2636, Goals: 11, Assists: 9, ShotsOnTarget: 44, KeyPasses: 61, TacklesWon: 26, CleanSheets: 15},
			{Name: "Martin Odegaard", Team: "Arsenal", Position: "MF", Apps: 34, Minutes: 2971, Goals: 8, Assists: 10, ShotsOnTarget: 36, KeyPasses: 91, TacklesWon: 38, CleanSheets: 14, YellowCards: 2},
			{Name: "Son Heung-min", Team: "Tottenham", Position: "MF", Apps: 35, Minutes: 2954, Goals: 17, Assists: 10, ShotsOnTarget: 43, KeyPasses: 52, TacklesWon: 18, CleanSheets: 8},

			{Name: "Virgil van Dijk", Team: "Liverpool", Position: "DF", Apps: 35, Minutes: 3150, Goals: 2, Assists: 3, TacklesWon: 67, Interceptions: 89, CleanSheets: 18, YellowCards: 1},
			{Name: "William Saliba", Team: "Arsenal", Position: "DF", Apps: 36, Minutes: 3240, Goals: 1, Assists: 1, TacklesWon: 52, Interceptions: 71, CleanSheets: 15, YellowCards: 3},
			{Name: "Ruben Dias", Team: "Manchester City", Position: "DF", Apps: 32, Minutes: 2845, Goals: 1, Assists: 2, TacklesWon: 41, Interceptions: 55, CleanSheets: 17, YellowCards: 4},
			{Name: "Gabriel", Team: "Arsenal", Position: "DF", Apps: 34, Minutes: 3009, Goals: 4, Assists: 1, TacklesWon: 44, Interceptions: 49, CleanSheets: 15, YellowCards: 6},
			{Name: "Trent Alexander-Arnold", Team: "Liverpool", Position: "DF", Apps: 33, Minutes: 2744, Goals: 1, Assists: 12, TacklesWon: 39, Interceptions: 43, ShotsOnTarget: 18, CleanSheets: 18, YellowCards: 2},

			{Name: "Alisson", Team: "Liverpool", Position: "GK", Apps: 36, Minutes: 3240, Assists: 1, Saves: 89, CleanSheets: 18, PenaltySaves: 2},
			{Name: "Ederson", Team: "Manchester City", Position: "GK", Apps: 34, Minutes: 3060, Saves: 62, CleanSheets: 17},
			{Name: "Aaron Ramsdale", Team: "Arsenal", Position: "GK", Apps: 32, Minutes: 2880, Saves: 98, CleanSheets: 15, PenaltySaves: 1},
			{Name: "Jordan Pickford", Team: "Everton", Position: "GK", Apps: 38, Minutes: 3420, Saves: 134, CleanSheets: 8},
			{Name: "Nick Pope", Team: "Newcastle", Position: "GK", Apps: 34, Minutes: 3033, Saves: 112, CleanSheets: 10, PenaltySaves: 1},
		},
		Teams: []ExternalTeamStat{
			{Name: "Liverpool", GoalsFor: 86, GoalsAgainst: 28, CleanSheets: 18},
			{Name: "Manchester City", GoalsFor: 89, GoalsAgainst: 31, CleanSheets: 17},
			{Name: "Arsenal", GoalsFor: 78, GoalsAgainst: 35, CleanSheets: 15},
			{Name: "Tottenham", GoalsFor: 71, GoalsAgainst: 52, CleanSheets: 9},
			{Name: "Newcastle", GoalsFor: 68, GoalsAgainst: 49, CleanSheets: 10},
		},
	}
}
