package draft

import "testing"

func TestUserPick(t *testing.T) {
	tests := []struct {
		name       string
		totalTeams int
		position   int
		round      int
		want       int
	}{
		{name: "round 1 pick 7 of 12", totalTeams: 12, position: 7, round: 1, want: 7},
		{name: "round 2 reverses order", totalTeams: 12, position: 7, round: 2, want: 18},
		{name: "round 3 back to forward order", totalTeams: 12, position: 7, round: 3, want: 31},
		{name: "round 4", totalTeams: 12, position: 7, round: 4, want: 42},
		{name: "round 5", totalTeams: 12, position: 7, round: 5, want: 55},
		{name: "first seat even round picks last", totalTeams: 12, position: 1, round: 2, want: 24},
		{name: "last seat has back to back picks", totalTeams: 10, position: 10, round: 2, want: 11},
		{name: "small league", totalTeams: 2, position: 2, round: 3, want: 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := UserPick(tc.totalTeams, tc.position, tc.round)
			if got != tc.want {
				t.Fatalf("UserPick(%d,%d,%d) = %d, want %d", tc.totalTeams, tc.position, tc.round, got, tc.want)
			}
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		pick int
		want int
	}{
		{pick: 1, want: 1},
		{pick: 12, want: 1},
		{pick: 13, want: 2},
		{pick: 24, want: 2},
		{pick: 25, want: 3},
		{pick: 0, want: 1},
	}

	for _, tc := range tests {
		if got := Round(12, tc.pick); got != tc.want {
			t.Fatalf("Round(12, %d) = %d, want %d", tc.pick, got, tc.want)
		}
	}
}

func TestPicksUntilMine(t *testing.T) {
	tests := []struct {
		name     string
		nextPick int
		want     int
	}{
		{name: "draft start", nextPick: 1, want: 6},
		{name: "on the clock", nextPick: 7, want: 0},
		{name: "just passed, waits for round two", nextPick: 8, want: 10},
		{name: "end of round one", nextPick: 12, want: 6},
		{name: "just passed round two", nextPick: 19, want: 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PicksUntilMine(12, 7, tc.nextPick)
			if got != tc.want {
				t.Fatalf("PicksUntilMine(12, 7, %d) = %d, want %d", tc.nextPick, got, tc.want)
			}
		})
	}
}

func TestPicksUntilMineNeverNegative(t *testing.T) {
	for pick := 1; pick <= 17*12; pick++ {
		if got := PicksUntilMine(12, 7, pick); got < 0 {
			t.Fatalf("PicksUntilMine(12, 7, %d) = %d, want >= 0", pick, got)
		}
	}
}
