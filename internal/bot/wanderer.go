package bot

import (
	"math/rand"
	"sort"

	"github.com/pixil98/deepmud/internal/game"
)

// Wanderer drifts between rooms, picking a random exit every few
// polls and scooping up whatever is lying around.
type Wanderer struct {
	world *game.World
	every int
	rng   *rand.Rand

	polls int
}

func NewWanderer(world *game.World, every int, seed int64) *Wanderer {
	if every < 1 {
		every = 5
	}
	return &Wanderer{
		world: world,
		every: every,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (w *Wanderer) Observe(ev game.Event) {}

func (w *Wanderer) Poll(b *game.Body) []string {
	w.polls++
	if w.polls%w.every != 0 {
		return nil
	}

	rs := w.world.Room(b.RoomId)
	if rs == nil || len(rs.Def.Exits) == 0 {
		return nil
	}

	dirs := make([]string, 0, len(rs.Def.Exits))
	for dir := range rs.Def.Exits {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	return []string{"take all", dirs[w.rng.Intn(len(dirs))]}
}
