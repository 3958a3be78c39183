package draft

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSlotFull        = errors.New("roster slot already at capacity")
	ErrUnknownSlot     = errors.New("unknown roster slot")
	ErrAlreadyInRoster = errors.New("player already in roster")
)

// SlotCategory is a roster slot a drafted player is assigned to. The four
// field positions map one-to-one onto player positions; BENCH takes any.
type SlotCategory string

const (
	SlotGoalkeeper SlotCategory = "GK"
	SlotDefender   SlotCategory = "DF"
	SlotMidfielder SlotCategory = "MF"
	SlotForward    SlotCategory = "FW"
	SlotBench      SlotCategory = "BENCH"
)

var slotOrder = []SlotCategory{SlotGoalkeeper, SlotDefender, SlotMidfielder, SlotForward, SlotBench}

// SlotOrder returns roster slots in stable display order.
func SlotOrder() []SlotCategory {
	out := make([]SlotCategory, len(slotOrder))
	copy(out, slotOrder)
	return out
}

// ParseSlot normalizes user input into a SlotCategory.
func ParseSlot(v string) (SlotCategory, error) {
	slot := SlotCategory(strings.ToUpper(strings.TrimSpace(v)))
	switch slot {
	case SlotGoalkeeper, SlotDefender, SlotMidfielder, SlotForward, SlotBench:
		return slot, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: GK, DF, MF, FW, BENCH)", ErrUnknownSlot, v)
	}
}

// Rules stores roster capacity parameters for the draft.
type Rules struct {
	TotalTeams    int
	DraftPosition int
	SlotCapacity  map[SlotCategory]int
}

func DefaultRules() Rules {
	return Rules{
		TotalTeams:    12,
		DraftPosition: 7,
		SlotCapacity: map[SlotCategory]int{
			SlotGoalkeeper: 1,
			SlotDefender:   3,
			SlotMidfielder: 5,
			SlotForward:    2,
			SlotBench:      6,
		},
	}
}

func (r Rules) Validate() error {
	if r.TotalTeams < 2 {
		return fmt.Errorf("total teams must be at least 2, got %d", r.TotalTeams)
	}
	if r.DraftPosition < 1 || r.DraftPosition > r.TotalTeams {
		return fmt.Errorf("draft position %d out of range 1..%d", r.DraftPosition, r.TotalTeams)
	}
	for _, slot := range slotOrder {
		if r.SlotCapacity[slot] < 0 {
			return fmt.Errorf("slot %s capacity must not be negative", slot)
		}
	}
	return nil
}

// RosterSize is the total number of players a full roster holds.
func (r Rules) RosterSize() int {
	total := 0
	for _, capacity := range r.SlotCapacity {
		total += capacity
	}
	return total
}
