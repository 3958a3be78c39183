package memory

import (
	"context"
	"testing"

	"github.com/masykur/fpldraft/internal/domain/player"
)

func TestNewPlayerRepositoryDeduplicates(t *testing.T) {
	repo := NewPlayerRepository([]player.Player{
		{Name: "Bukayo Saka", Team: "Arsenal", Position: player.PositionMidfielder, ProjectedPoints: 240},
		{Name: "bukayo saka", Team: "Arsenal", Position: player.PositionMidfielder, ProjectedPoints: 100},
		{Name: "Erling Haaland", Team: "Manchester City", Position: player.PositionForward, ProjectedPoints: 285},
	})

	if repo.Len() != 2 {
		t.Fatalf("expected 2 players after dedupe, got %d", repo.Len())
	}

	p, ok, err := repo.GetByKey(context.Background(), "Bukayo Saka")
	if err != nil || !ok {
		t.Fatalf("GetByKey: ok=%v err=%v", ok, err)
	}
	if p.ProjectedPoints != 240 {
		t.Fatalf("dedupe kept the wrong record: %v", p)
	}
}

func TestGetByKeyIsCaseInsensitive(t *testing.T) {
	repo := NewPlayerRepository(SamplePlayers())

	p, ok, err := repo.GetByKey(context.Background(), "  MOHAMED salah ")
	if err != nil {
		t.Fatalf("GetByKey: %v", err)
	}
	if !ok || p.Name != "Mohamed Salah" {
		t.Fatalf("expected Mohamed Salah, got ok=%v player=%v", ok, p)
	}
}

func TestListByPosition(t *testing.T) {
	repo := NewPlayerRepository(SamplePlayers())

	keepers, err := repo.ListByPosition(context.Background(), player.PositionGoalkeeper)
	if err != nil {
		t.Fatalf("ListByPosition: %v", err)
	}
	if len(keepers) != 5 {
		t.Fatalf("expected 5 goalkeepers, got %d", len(keepers))
	}
	for _, p := range keepers {
		if p.Position != player.PositionGoalkeeper {
			t.Fatalf("wrong position for %q", p.Name)
		}
	}
}

func TestSearchSubstring(t *testing.T) {
	repo := NewPlayerRepository(SamplePlayers())

	matches, err := repo.Search(context.Background(), "SON")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}

	none, err := repo.Search(context.Background(), "")
	if err != nil {
		t.Fatalf("Search empty: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches for empty fragment, got %d", len(none))
	}
}
