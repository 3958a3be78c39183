package draft

import (
	"fmt"

	"github.com/masykur/fpldraft/internal/domain/player"
)

// State is the in-memory session state of one live draft. It has exactly one
// mutator (the command loop), so no locking discipline is required.
type State struct {
	rules    Rules
	taken    map[string]struct{}
	roster   map[SlotCategory][]player.Player
	nextPick int
}

func NewState(rules Rules) *State {
	roster := make(map[SlotCategory][]player.Player, len(slotOrder))
	for _, slot := range slotOrder {
		roster[slot] = nil
	}

	return &State{
		rules:    rules,
		taken:    make(map[string]struct{}),
		roster:   roster,
		nextPick: 1,
	}
}

func (s *State) Rules() Rules {
	return s.rules
}

// NextPick is the 1-based overall pick number about to be made.
func (s *State) NextPick() int {
	return s.nextPick
}

// CurrentRound derives the round the next pick belongs to.
func (s *State) CurrentRound() int {
	return Round(s.rules.TotalTeams, s.nextPick)
}

func (s *State) TakenCount() int {
	return len(s.taken)
}

func (s *State) IsTaken(name string) bool {
	_, ok := s.taken[player.Key(name)]
	return ok
}

// MarkTaken records a player as drafted and advances the pick counter. The
// return reports whether the name was already in the taken set; the counter
// advances either way, matching how a real draft board moves on.
func (s *State) MarkTaken(name string) bool {
	key := player.Key(name)
	_, already := s.taken[key]
	s.taken[key] = struct{}{}
	s.nextPick++
	return already
}

// Roster returns a copy of the assignments for one slot.
func (s *State) Roster(slot SlotCategory) []player.Player {
	out := make([]player.Player, len(s.roster[slot]))
	copy(out, s.roster[slot])
	return out
}

func (s *State) RosterCount(slot SlotCategory) int {
	return len(s.roster[slot])
}

func (s *State) RosterTotal() int {
	total := 0
	for _, assigned := range s.roster {
		total += len(assigned)
	}
	return total
}

// InRoster reports whether the named player sits in any roster slot.
func (s *State) InRoster(name string) bool {
	key := player.Key(name)
	for _, assigned := range s.roster {
		for _, p := range assigned {
			if p.Key() == key {
				return true
			}
		}
	}
	return false
}

// AddToRoster assigns p to slot, marking the player taken when not already.
// Full slots reject the assignment and leave all state unchanged.
func (s *State) AddToRoster(p player.Player, slot SlotCategory) error {
	capacity, ok := s.rules.SlotCapacity[slot]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSlot, slot)
	}
	if len(s.roster[slot]) >= capacity {
		return fmt.Errorf("%w: %s is at %d/%d", ErrSlotFull, slot, len(s.roster[slot]), capacity)
	}
	if s.InRoster(p.Name) {
		return fmt.Errorf("%w: %s", ErrAlreadyInRoster, p.Name)
	}

	if !s.IsTaken(p.Name) {
		s.MarkTaken(p.Name)
	}
	s.roster[slot] = append(s.roster[slot], p)
	return nil
}
