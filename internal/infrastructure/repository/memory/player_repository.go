package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/masykur/fpldraft/internal/domain/player"
)

// PlayerRepository holds the player table loaded once at startup. Reads only
// after construction; the mutex guards against accidental future misuse.
type PlayerRepository struct {
	mu         sync.RWMutex
	players    []player.Player
	index      map[string]player.Player
	byPosition map[player.Position][]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	index := make(map[string]player.Player, len(players))
	byPosition := make(map[player.Position][]player.Player)

	deduped := make([]player.Player, 0, len(players))
	for _, p := range players {
		key := p.Key()
		if _, ok := index[key]; ok {
			continue
		}
		index[key] = p
		byPosition[p.Position] = append(byPosition[p.Position], p)
		deduped = append(deduped, p)
	}

	return &PlayerRepository{
		players:    deduped,
		index:      index,
		byPosition: byPosition,
	}
}

func (r *PlayerRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.players)
}

func (r *PlayerRepository) ListByPosition(_ context.Context, pos player.Position) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := r.byPosition[pos]
	out := make([]player.Player, len(players))
	copy(out, players)

	return out, nil
}

func (r *PlayerRepository) GetByKey(_ context.Context, key string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.index[player.Key(key)]

	return p, ok, nil
}

func (r *PlayerRepository) Search(_ context.Context, fragment string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := player.Key(fragment)
	if needle == "" {
		return nil, nil
	}

	out := make([]player.Player, 0, 4)
	for _, p := range r.players {
		if strings.Contains(p.Key(), needle) {
			out = append(out, p)
		}
	}

	return out, nil
}
