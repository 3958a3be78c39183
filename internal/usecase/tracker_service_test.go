package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/masykur/fpldraft/internal/domain/draft"
	"github.com/masykur/fpldraft/internal/domain/player"
	"github.com/masykur/fpldraft/internal/infrastructure/repository/memory"
	"github.com/masykur/fpldraft/internal/platform/logging"
)

func newTestTracker(t *testing.T) *TrackerService {
	t.Helper()

	repo := memory.NewPlayerRepository(memory.SamplePlayers())
	return NewTrackerService(repo, draft.DefaultRules(), 8, logging.NewNop())
}

func TestResolveExactName(t *testing.T) {
	svc := newTestTracker(t)

	p, err := svc.Resolve(context.Background(), "erling HAALAND")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.Name != "Erling Haaland" {
		t.Fatalf("expected Erling Haaland, got %q", p.Name)
	}
}

func TestResolveSubstring(t *testing.T) {
	svc := newTestTracker(t)

	p, err := svc.Resolve(context.Background(), "saka")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.Name != "Bukayo Saka" {
		t.Fatalf("expected Bukayo Saka, got %q", p.Name)
	}
}

func TestResolveAmbiguous(t *testing.T) {
	svc := newTestTracker(t)

	// "son" matches Alisson, Ederson and Son Heung-min.
	_, err := svc.Resolve(context.Background(), "son")
	if !errors.Is(err, ErrAmbiguousName) {
		t.Fatalf("expected ErrAmbiguousName, got %v", err)
	}
}

func TestResolveUnknown(t *testing.T) {
	svc := newTestTracker(t)

	_, err := svc.Resolve(context.Background(), "zlatan")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMarkTakenAdvancesPick(t *testing.T) {
	svc := newTestTracker(t)

	res, err := svc.MarkTaken(context.Background(), "haaland")
	if err != nil {
		t.Fatalf("MarkTaken: %v", err)
	}
	if res.AlreadyTaken {
		t.Fatal("first take reported as already taken")
	}
	if res.NextPick != 2 {
		t.Fatalf("expected next pick 2, got %d", res.NextPick)
	}

	// A duplicate take is a warning, never an error, and still burns a pick.
	res, err = svc.MarkTaken(context.Background(), "haaland")
	if err != nil {
		t.Fatalf("MarkTaken twice: %v", err)
	}
	if !res.AlreadyTaken {
		t.Fatal("second take not reported as already taken")
	}
	if res.NextPick != 3 {
		t.Fatalf("expected next pick 3, got %d", res.NextPick)
	}
}

func TestSuggestExcludesTakenAndSorts(t *testing.T) {
	svc := newTestTracker(t)
	ctx := context.Background()

	if _, err := svc.MarkTaken(ctx, "haaland"); err != nil {
		t.Fatalf("MarkTaken: %v", err)
	}

	got, err := svc.Suggest(ctx, player.PositionForward, 3)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(got))
	}
	for i, p := range got {
		if p.Key() == "erling haaland" {
			t.Fatal("taken player surfaced in suggestions")
		}
		if i > 0 && got[i-1].ProjectedPoints < p.ProjectedPoints {
			t.Fatalf("suggestions out of order: %q before %q", got[i-1].Name, p.Name)
		}
		if p.Position != player.PositionForward {
			t.Fatalf("wrong position %q for %q", p.Position, p.Name)
		}
	}
	if got[0].Name != "Mohamed Salah" {
		t.Fatalf("expected Salah first once Haaland is gone, got %q", got[0].Name)
	}
}

func TestSuggestExhaustedPosition(t *testing.T) {
	svc := newTestTracker(t)
	ctx := context.Background()

	keepers := []string{"Alisson", "Ederson", "Aaron Ramsdale", "Jordan Pickford", "Nick Pope"}
	for _, name := range keepers {
		if _, err := svc.MarkTaken(ctx, name); err != nil {
			t.Fatalf("MarkTaken %q: %v", name, err)
		}
	}

	_, err := svc.Suggest(ctx, player.PositionGoalkeeper, 5)
	if !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("expected ErrEmptyResult, got %v", err)
	}
}

func TestSuggestUnknownPosition(t *testing.T) {
	svc := newTestTracker(t)

	_, err := svc.Suggest(context.Background(), player.Position("ST"), 5)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestComparePrefersHigherProjection(t *testing.T) {
	svc := newTestTracker(t)

	cmp, err := svc.Compare(context.Background(), "salah", "kane")
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if cmp.Recommended.Name != "Mohamed Salah" {
		t.Fatalf("expected Salah, got %q", cmp.Recommended.Name)
	}
	if cmp.Reason != "higher projected points" {
		t.Fatalf("unexpected reason %q", cmp.Reason)
	}

	// Same inputs, same answer.
	again, err := svc.Compare(context.Background(), "salah", "kane")
	if err != nil {
		t.Fatalf("Compare again: %v", err)
	}
	if again.Recommended.Name != cmp.Recommended.Name {
		t.Fatal("comparison is not deterministic")
	}
}

func TestCompareTieGoesToScarcerPosition(t *testing.T) {
	repo := memory.NewPlayerRepository([]player.Player{
		{Name: "Fwd One", Team: "A", Position: player.PositionForward, ProjectedPoints: 200, Tier: 1},
		{Name: "Mid One", Team: "B", Position: player.PositionMidfielder, ProjectedPoints: 200, Tier: 1},
		{Name: "Mid Two", Team: "B", Position: player.PositionMidfielder, ProjectedPoints: 150, Tier: 2},
	})
	svc := NewTrackerService(repo, draft.DefaultRules(), 8, logging.NewNop())

	cmp, err := svc.Compare(context.Background(), "Fwd One", "Mid One")
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if cmp.Recommended.Name != "Fwd One" {
		t.Fatalf("expected scarcer forward recommended, got %q", cmp.Recommended.Name)
	}
}

func TestAddToRosterSlotFull(t *testing.T) {
	svc := newTestTracker(t)
	ctx := context.Background()

	if _, err := svc.AddToRoster(ctx, "Alisson", draft.SlotGoalkeeper); err != nil {
		t.Fatalf("AddToRoster: %v", err)
	}

	before := svc.Status()
	_, err := svc.AddToRoster(ctx, "Ederson", draft.SlotGoalkeeper)
	if !errors.Is(err, ErrSlotFull) {
		t.Fatalf("expected ErrSlotFull, got %v", err)
	}

	after := svc.Status()
	if after.NextPick != before.NextPick {
		t.Fatal("failed add advanced the pick counter")
	}
	if after.TakenCount != before.TakenCount {
		t.Fatal("failed add marked the player taken")
	}
	if after.RosterTotal != before.RosterTotal {
		t.Fatal("failed add changed the roster")
	}
}

func TestAddToRosterDuplicate(t *testing.T) {
	svc := newTestTracker(t)
	ctx := context.Background()

	if _, err := svc.AddToRoster(ctx, "saka", draft.SlotMidfielder); err != nil {
		t.Fatalf("AddToRoster: %v", err)
	}
	_, err := svc.AddToRoster(ctx, "saka", draft.SlotBench)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate player, got %v", err)
	}
}

func TestAddToRosterOfTakenPlayerKeepsPick(t *testing.T) {
	svc := newTestTracker(t)
	ctx := context.Background()

	// Simulates recording my own pick after the board already burned it.
	if _, err := svc.MarkTaken(ctx, "saka"); err != nil {
		t.Fatalf("MarkTaken: %v", err)
	}
	before := svc.Status()

	if _, err := svc.AddToRoster(ctx, "saka", draft.SlotMidfielder); err != nil {
		t.Fatalf("AddToRoster: %v", err)
	}
	after := svc.Status()
	if after.NextPick != before.NextPick {
		t.Fatalf("rostering an already taken player moved the pick from %d to %d", before.NextPick, after.NextPick)
	}
	if after.RosterTotal != 1 {
		t.Fatalf("expected roster total 1, got %d", after.RosterTotal)
	}
}

func TestStatusReport(t *testing.T) {
	svc := newTestTracker(t)
	ctx := context.Background()

	for _, name := range []string{"haaland", "salah", "kane"} {
		if _, err := svc.MarkTaken(ctx, name); err != nil {
			t.Fatalf("MarkTaken %q: %v", name, err)
		}
	}
	if _, err := svc.AddToRoster(ctx, "saka", draft.SlotMidfielder); err != nil {
		t.Fatalf("AddToRoster: %v", err)
	}

	st := svc.Status()
	if st.NextPick != 5 {
		t.Fatalf("expected next pick 5, got %d", st.NextPick)
	}
	if st.Round != 1 {
		t.Fatalf("expected round 1, got %d", st.Round)
	}
	if st.TakenCount != 4 {
		t.Fatalf("expected 4 taken, got %d", st.TakenCount)
	}
	if st.PicksUntilMine != 2 {
		t.Fatalf("expected 2 picks until mine, got %d", st.PicksUntilMine)
	}
	if st.RosterTotal != 1 || st.RosterSize != 17 {
		t.Fatalf("unexpected roster totals %d/%d", st.RosterTotal, st.RosterSize)
	}
	for _, slot := range st.Slots {
		if slot.Slot == draft.SlotMidfielder {
			if slot.Count != 1 || slot.Capacity != 5 {
				t.Fatalf("unexpected MF slot %d/%d", slot.Count, slot.Capacity)
			}
		}
	}
}

func TestSearchFlagsTaken(t *testing.T) {
	svc := newTestTracker(t)
	ctx := context.Background()

	if _, err := svc.MarkTaken(ctx, "Alisson"); err != nil {
		t.Fatalf("MarkTaken: %v", err)
	}

	results, err := svc.Search(ctx, "son")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 matches for %q, got %d", "son", len(results))
	}
	for _, r := range results {
		taken := r.Player.Name == "Alisson"
		if r.Taken != taken {
			t.Fatalf("wrong taken flag for %q", r.Player.Name)
		}
	}
}

func TestStrategyNeedsShrinkAsSlotsFill(t *testing.T) {
	svc := newTestTracker(t)
	ctx := context.Background()

	strat := svc.Strategy()
	if strat.Round != 1 {
		t.Fatalf("expected round 1, got %d", strat.Round)
	}
	if len(strat.Needs) != 4 {
		t.Fatalf("expected all four field slots outstanding, got %v", strat.Needs)
	}
	if len(strat.Advice) == 0 {
		t.Fatal("expected advice for round 1")
	}

	if _, err := svc.AddToRoster(ctx, "Alisson", draft.SlotGoalkeeper); err != nil {
		t.Fatalf("AddToRoster: %v", err)
	}
	strat = svc.Strategy()
	if len(strat.Needs) != 3 {
		t.Fatalf("expected GK need cleared, got %v", strat.Needs)
	}
	for _, need := range strat.Needs {
		if need == "GK: 1 needed" {
			t.Fatal("GK still listed as a need after filling the slot")
		}
	}
}

func TestAdviceForRoundBuckets(t *testing.T) {
	tests := []struct {
		round int
		want  string
	}{
		{1, earlyRoundAdvice[0]},
		{3, earlyRoundAdvice[0]},
		{4, middleRoundAdvice[0]},
		{6, middleRoundAdvice[0]},
		{7, lateRoundAdvice[0]},
		{10, lateRoundAdvice[0]},
		{11, benchRoundAdvice[0]},
		{17, benchRoundAdvice[0]},
	}
	for _, tt := range tests {
		got := AdviceForRound(tt.round)
		if got[0] != tt.want {
			t.Fatalf("round %d: expected %q, got %q", tt.round, tt.want, got[0])
		}
	}
}
