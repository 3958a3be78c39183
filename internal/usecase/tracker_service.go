package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/masykur/fpldraft/internal/domain/draft"
	"github.com/masykur/fpldraft/internal/domain/player"
	"github.com/masykur/fpldraft/internal/platform/logging"
)

// TrackerService maintains one live draft session: the taken board, the
// user's roster and queries over the remaining player pool.
type TrackerService struct {
	playerRepo   player.Repository
	state        *draft.State
	suggestCount int
	logger       *logging.Logger
}

func NewTrackerService(playerRepo player.Repository, rules draft.Rules, suggestCount int, logger *logging.Logger) *TrackerService {
	if logger == nil {
		logger = logging.Default()
	}
	if suggestCount < 1 {
		suggestCount = 8
	}

	return &TrackerService{
		playerRepo:   playerRepo,
		state:        draft.NewState(rules),
		suggestCount: suggestCount,
		logger:       logger,
	}
}

func (s *TrackerService) Rules() draft.Rules {
	return s.state.Rules()
}

// Resolve finds a player by name: exact case-insensitive match first, then
// substring fallback. More than one substring match is reported as ambiguous
// rather than guessed at.
func (s *TrackerService) Resolve(ctx context.Context, name string) (player.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	p, ok, err := s.playerRepo.GetByKey(ctx, name)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by key: %w", err)
	}
	if ok {
		return p, nil
	}

	matches, err := s.playerRepo.Search(ctx, name)
	if err != nil {
		return player.Player{}, fmt.Errorf("search players: %w", err)
	}
	switch len(matches) {
	case 0:
		return player.Player{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, m.Name)
		}
		return player.Player{}, fmt.Errorf("%w: %q matches %s", ErrAmbiguousName, name, strings.Join(names, ", "))
	}
}

// TakenResult reports the outcome of marking a player taken.
type TakenResult struct {
	Player         player.Player
	AlreadyTaken   bool
	NextPick       int
	Round          int
	PicksUntilMine int
}

// MarkTaken records a drafted player and advances the pick counter. Marking
// an already taken player is a warning for the caller, not a failure.
func (s *TrackerService) MarkTaken(ctx context.Context, name string) (TakenResult, error) {
	p, err := s.Resolve(ctx, name)
	if err != nil {
		return TakenResult{}, err
	}

	already := s.state.MarkTaken(p.Name)
	if already {
		s.logger.Warn("player marked taken twice", "player", p.Name)
	}

	rules := s.state.Rules()
	return TakenResult{
		Player:         p,
		AlreadyTaken:   already,
		NextPick:       s.state.NextPick(),
		Round:          s.state.CurrentRound(),
		PicksUntilMine: draft.PicksUntilMine(rules.TotalTeams, rules.DraftPosition, s.state.NextPick()),
	}, nil
}

// Suggest returns the top available players for a position, best first.
func (s *TrackerService) Suggest(ctx context.Context, pos player.Position, count int) ([]player.Player, error) {
	if _, ok := player.AllPositions[pos]; !ok {
		return nil, fmt.Errorf("%w: position %q", ErrNotFound, pos)
	}
	if count < 1 {
		count = s.suggestCount
	}

	candidates, err := s.playerRepo.ListByPosition(ctx, pos)
	if err != nil {
		return nil, fmt.Errorf("list players by position: %w", err)
	}

	available := make([]player.Player, 0, len(candidates))
	for _, p := range candidates {
		if !s.state.IsTaken(p.Name) {
			available = append(available, p)
		}
	}
	if len(available) == 0 {
		return nil, fmt.Errorf("%w: position %s is exhausted", ErrEmptyResult, pos)
	}

	rankPlayers(available)
	if len(available) > count {
		available = available[:count]
	}

	return available, nil
}

// CompareEntry is one side of a player comparison.
type CompareEntry struct {
	Player              player.Player
	Taken               bool
	AvailableAtPosition int
}

// Comparison holds both player records plus a deterministic recommendation.
type Comparison struct {
	A           CompareEntry
	B           CompareEntry
	Recommended player.Player
	Reason      string
}

// Compare resolves two names and recommends one: higher projection wins,
// ties go to the scarcer position (fewer players left there), then name.
func (s *TrackerService) Compare(ctx context.Context, nameA, nameB string) (Comparison, error) {
	a, err := s.Resolve(ctx, nameA)
	if err != nil {
		return Comparison{}, err
	}
	b, err := s.Resolve(ctx, nameB)
	if err != nil {
		return Comparison{}, err
	}

	entryA := CompareEntry{Player: a, Taken: s.state.IsTaken(a.Name)}
	entryB := CompareEntry{Player: b, Taken: s.state.IsTaken(b.Name)}
	entryA.AvailableAtPosition, err = s.availableCount(ctx, a.Position)
	if err != nil {
		return Comparison{}, err
	}
	entryB.AvailableAtPosition, err = s.availableCount(ctx, b.Position)
	if err != nil {
		return Comparison{}, err
	}

	out := Comparison{A: entryA, B: entryB}
	switch {
	case a.ProjectedPoints != b.ProjectedPoints:
		if a.ProjectedPoints > b.ProjectedPoints {
			out.Recommended = a
		} else {
			out.Recommended = b
		}
		out.Reason = "higher projected points"
	case entryA.AvailableAtPosition != entryB.AvailableAtPosition:
		if entryA.AvailableAtPosition < entryB.AvailableAtPosition {
			out.Recommended = a
		} else {
			out.Recommended = b
		}
		out.Reason = fmt.Sprintf("equal projection, %s is the scarcer position", out.RecommendedPosition())
	default:
		if a.Key() < b.Key() {
			out.Recommended = a
		} else {
			out.Recommended = b
		}
		out.Reason = "dead even, alphabetical order"
	}

	return out, nil
}

func (c Comparison) RecommendedPosition() player.Position {
	return c.Recommended.Position
}

func (s *TrackerService) availableCount(ctx context.Context, pos player.Position) (int, error) {
	candidates, err := s.playerRepo.ListByPosition(ctx, pos)
	if err != nil {
		return 0, fmt.Errorf("list players by position: %w", err)
	}

	available := 0
	for _, p := range candidates {
		if !s.state.IsTaken(p.Name) {
			available++
		}
	}
	return available, nil
}

// AddToRoster assigns a resolved player to one of the user's roster slots,
// marking the player taken when not already on the board.
func (s *TrackerService) AddToRoster(ctx context.Context, name string, slot draft.SlotCategory) (player.Player, error) {
	p, err := s.Resolve(ctx, name)
	if err != nil {
		return player.Player{}, err
	}

	if err := s.state.AddToRoster(p, slot); err != nil {
		if errors.Is(err, draft.ErrSlotFull) {
			return player.Player{}, fmt.Errorf("%w: %v", ErrSlotFull, err)
		}
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("roster updated", "player", p.Name, "slot", string(slot))
	return p, nil
}

// SlotStatus is the fill level of one roster slot.
type SlotStatus struct {
	Slot     draft.SlotCategory
	Players  []player.Player
	Count    int
	Capacity int
}

func (ss SlotStatus) Complete() bool {
	return ss.Count >= ss.Capacity
}

// StatusReport is a snapshot of the draft session for rendering.
type StatusReport struct {
	NextPick       int
	Round          int
	DraftPosition  int
	TotalTeams     int
	PicksUntilMine int
	TakenCount     int
	Slots          []SlotStatus
	RosterTotal    int
	RosterSize     int
}

func (s *TrackerService) Status() StatusReport {
	rules := s.state.Rules()

	slots := make([]SlotStatus, 0, len(draft.SlotOrder()))
	for _, slot := range draft.SlotOrder() {
		slots = append(slots, SlotStatus{
			Slot:     slot,
			Players:  s.state.Roster(slot),
			Count:    s.state.RosterCount(slot),
			Capacity: rules.SlotCapacity[slot],
		})
	}

	return StatusReport{
		NextPick:       s.state.NextPick(),
		Round:          s.state.CurrentRound(),
		DraftPosition:  rules.DraftPosition,
		TotalTeams:     rules.TotalTeams,
		PicksUntilMine: draft.PicksUntilMine(rules.TotalTeams, rules.DraftPosition, s.state.NextPick()),
		TakenCount:     s.state.TakenCount(),
		Slots:          slots,
		RosterTotal:    s.state.RosterTotal(),
		RosterSize:     rules.RosterSize(),
	}
}

// SearchResult annotates a pool entry with its board status.
type SearchResult struct {
	Player player.Player
	Taken  bool
}

func (s *TrackerService) Search(ctx context.Context, fragment string) ([]SearchResult, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, fmt.Errorf("%w: search fragment is required", ErrInvalidInput)
	}

	matches, err := s.playerRepo.Search(ctx, fragment)
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}

	out := make([]SearchResult, 0, len(matches))
	for _, p := range matches {
		out = append(out, SearchResult{Player: p, Taken: s.state.IsTaken(p.Name)})
	}

	return out, nil
}

// rankPlayers orders best pick first: projection desc, tier asc, name asc.
func rankPlayers(players []player.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].ProjectedPoints != players[j].ProjectedPoints {
			return players[i].ProjectedPoints > players[j].ProjectedPoints
		}
		if players[i].Tier != players[j].Tier {
			return players[i].Tier < players[j].Tier
		}
		return players[i].Key() < players[j].Key()
	})
}
