package usecase

import (
	"fmt"

	"github.com/masykur/fpldraft/internal/domain/draft"
)

// Strategy is round advice plus the user's outstanding roster needs.
type Strategy struct {
	Round          int
	PicksUntilMine int
	Advice         []string
	Needs          []string
}

var (
	earlyRoundAdvice = []string{
		"Target elite midfielders or top forwards",
		"Avoid goalkeepers (wait until round 6+)",
		"Look for penalty takers and set-piece specialists",
		"Consider players from attacking teams",
	}
	middleRoundAdvice = []string{
		"Fill core midfielder positions",
		"Target defenders from top-6 teams for clean sheets",
		"Consider your first goalkeeper if good value",
		"Look for consistent, high-floor players",
	}
	lateRoundAdvice = []string{
		"Focus on filling required positions",
		"Target players with high upside potential",
		"Consider differential picks from mid-table teams",
		"Look for players returning from injury",
	}
	benchRoundAdvice = []string{
		"Fill bench with breakout candidates",
		"Target young players with opportunity",
		"Consider players from newly promoted teams",
		"Look for injury replacements who could start",
	}
)

// AdviceForRound is a pure lookup into the static round advice table.
func AdviceForRound(round int) []string {
	switch {
	case round <= 3:
		return earlyRoundAdvice
	case round <= 6:
		return middleRoundAdvice
	case round <= 10:
		return lateRoundAdvice
	default:
		return benchRoundAdvice
	}
}

// Strategy builds advice for the current round, with the user's remaining
// field-slot needs ahead of it.
func (s *TrackerService) Strategy() Strategy {
	rules := s.state.Rules()
	round := s.state.CurrentRound()

	needs := make([]string, 0, 4)
	for _, slot := range draft.SlotOrder() {
		if slot == draft.SlotBench {
			continue
		}
		missing := rules.SlotCapacity[slot] - s.state.RosterCount(slot)
		if missing > 0 {
			needs = append(needs, fmt.Sprintf("%s: %d needed", slot, missing))
		}
	}

	return Strategy{
		Round:          round,
		PicksUntilMine: draft.PicksUntilMine(rules.TotalTeams, rules.DraftPosition, s.state.NextPick()),
		Advice:         AdviceForRound(round),
		Needs:          needs,
	}
}
