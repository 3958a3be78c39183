package player

import (
	"fmt"
	"strings"
)

// Position represents football position categories used in draft rules.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DF"
	PositionMidfielder Position = "MF"
	PositionForward    Position = "FW"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// ParsePosition normalizes user input like "fw" or " Mf " into a Position.
func ParsePosition(v string) (Position, error) {
	pos := Position(strings.ToUpper(strings.TrimSpace(v)))
	if _, ok := AllPositions[pos]; !ok {
		return "", fmt.Errorf("invalid position %q: valid values are GK, DF, MF, FW", v)
	}
	return pos, nil
}

// Player is a draftable athlete in the season player pool. Identity is the
// case-insensitive name; records are immutable once the table is loaded.
type Player struct {
	Name            string
	Team            string
	Position        Position
	ProjectedPoints float64
	Tier            int
}

// Key returns the canonical match key for a player name.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (p Player) Key() string {
	return Key(p.Name)
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if strings.TrimSpace(p.Team) == "" {
		return fmt.Errorf("player team is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.ProjectedPoints < 0 {
		return fmt.Errorf("projected points must not be negative")
	}
	if p.Tier < 1 {
		return fmt.Errorf("player tier must be at least 1")
	}

	return nil
}
