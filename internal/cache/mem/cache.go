package mem

import (
	"slices"
	"sync"

	"github.com/goserg/pairingserver/internal/domain"
	"github.com/goserg/pairingserver/internal/normalize"

	"github.com/google/uuid"
)

// Cache keeps computed standings per tournament and a name index of the
// club players. Writers invalidate; readers never see a partial update.
// Every standings invalidation bumps the tournament's generation, so a
// table computed before a write cannot be stored after it.
type Cache struct {
	mu          sync.RWMutex
	valid       bool
	players     map[string]domain.Player
	standings   map[uuid.UUID][]domain.Standing
	generations map[uuid.UUID]uint64
}

func New() *Cache {
	return &Cache{
		players:     make(map[string]domain.Player),
		standings:   make(map[uuid.UUID][]domain.Standing),
		generations: make(map[uuid.UUID]uint64),
	}
}

func (c *Cache) UpdatePlayers(players []domain.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.players = make(map[string]domain.Player)
	for i := range players {
		name := normalize.Name(players[i].Name)
		c.players[name] = players[i]
	}
	c.valid = true
}

// InvalidatePlayers drops the name index, e.g. after ratings change.
func (c *Cache) InvalidatePlayers() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.valid = false
	c.players = make(map[string]domain.Player)
}

// GetPlayerByName reports false both for unknown names and for an invalid
// index.
func (c *Cache) GetPlayerByName(name string) (domain.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid {
		return domain.Player{}, false
	}
	player, ok := c.players[normalize.Name(name)]
	return player, ok
}

func (c *Cache) GetStandings(tournamentID uuid.UUID) ([]domain.Standing, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	standings, ok := c.standings[tournamentID]
	if !ok {
		return nil, false
	}
	return slices.Clone(standings), true
}

// StandingsGeneration is read before loading the data the standings are
// computed from.
func (c *Cache) StandingsGeneration(tournamentID uuid.UUID) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.generations[tournamentID]
}

// UpdateStandings stores standings computed at generation gen. It reports
// false and stores nothing if the tournament was invalidated since.
func (c *Cache) UpdateStandings(tournamentID uuid.UUID, gen uint64, standings []domain.Standing) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generations[tournamentID] != gen {
		return false
	}
	c.standings[tournamentID] = slices.Clone(standings)
	return true
}

func (c *Cache) InvalidateStandings(tournamentID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generations[tournamentID]++
	delete(c.standings, tournamentID)
}
