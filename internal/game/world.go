package game

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/pixil98/deepmud/internal/catalog"
	"github.com/pixil98/deepmud/internal/ledger"
)

// A CommandRunner executes one input line on behalf of a body. It is
// implemented by the command dispatcher; the indirection keeps the
// world free of command knowledge.
type CommandRunner interface {
	Dispatch(b *Body, line string)
}

// A SnapshotSaver persists a body's durable state. Only credentialed
// bodies are ever offered to it.
type SnapshotSaver interface {
	Save(b *Body) error
}

// RoomState is the mutable half of a room: the live item pool and the
// expiry times of unlocked exits.
type RoomState struct {
	Def   *catalog.Room
	Items ledger.Ledger

	// unlocks maps direction to the unix second the unlock expires.
	unlocks map[string]int64
}

// spawn tops the pool up to the room's floor. Counts above the floor
// (player-dropped surplus) are left alone.
func (r *RoomState) spawn() {
	for itemId, floor := range r.Def.StartItems {
		if have := r.Items.Count(itemId); have < floor {
			r.Items.Increment(itemId, floor-have)
		}
	}
}

// World holds all mutable game state: room states and the body
// directory. Everything runs on the tick goroutine; transports only
// ever enqueue onto body queues.
type World struct {
	Catalog *catalog.Catalog

	rooms  map[string]*RoomState
	bodies map[string]*Body
	order  []string

	runner CommandRunner
	saver  SnapshotSaver

	now func() int64
}

// NewWorld builds the world from the catalogue. Room pools start at
// their floors.
func NewWorld(cat *catalog.Catalog) *World {
	rooms := make(map[string]*RoomState)
	for roomId, def := range cat.Rooms.GetAll() {
		rs := &RoomState{
			Def:     def,
			Items:   ledger.New(),
			unlocks: make(map[string]int64),
		}
		rs.spawn()
		rooms[roomId] = rs
	}

	return &World{
		Catalog: cat,
		rooms:   rooms,
		bodies:  make(map[string]*Body),
		now:     func() int64 { return time.Now().Unix() },
	}
}

// SetRunner attaches the command dispatcher. Set once at startup,
// after the dispatcher is built against this world.
func (w *World) SetRunner(r CommandRunner) {
	w.runner = r
}

// SetSaver attaches the snapshot persister.
func (w *World) SetSaver(s SnapshotSaver) {
	w.saver = s
}

// SetClock overrides the time source.
func (w *World) SetClock(now func() int64) {
	w.now = now
}

// Room returns the room state, topping its pool up to the floor
// first. Returns nil for unknown ids.
func (w *World) Room(roomId string) *RoomState {
	rs, ok := w.rooms[roomId]
	if !ok {
		return nil
	}
	rs.spawn()
	return rs
}

// AddBody registers a body under its id. Ids are exact and unique.
func (w *World) AddBody(b *Body) error {
	if _, exists := w.bodies[b.Id]; exists {
		return ErrBodyExists
	}

	w.bodies[b.Id] = b
	w.order = append(w.order, b.Id)
	return nil
}

// RemoveBody drops the body from the directory and signals its
// session.
func (w *World) RemoveBody(id string) {
	b, ok := w.bodies[id]
	if !ok {
		return
	}

	delete(w.bodies, id)
	w.order = slices.DeleteFunc(w.order, func(s string) bool { return s == id })
	close(b.done)
}

// Body returns the body with the given id, or nil.
func (w *World) Body(id string) *Body {
	return w.bodies[id]
}

// Resolve finds a body by exact id. When scopeRoom is non-empty the
// body must also be in that room.
func (w *World) Resolve(id, scopeRoom string) *Body {
	b, ok := w.bodies[id]
	if !ok {
		return nil
	}
	if scopeRoom != "" && b.RoomId != scopeRoom {
		return nil
	}
	return b
}

// Bodies returns every body in directory order.
func (w *World) Bodies() []*Body {
	out := make([]*Body, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.bodies[id])
	}
	return out
}

// BodiesIn returns the bodies in a room, in directory order.
func (w *World) BodiesIn(roomId string) []*Body {
	var out []*Body
	for _, id := range w.order {
		if b := w.bodies[id]; b.RoomId == roomId {
			out = append(out, b)
		}
	}
	return out
}

// A BroadcastOpt narrows the audience of a broadcast.
type BroadcastOpt func(b *Body) bool

// InRoom limits delivery to bodies in the given room.
func InRoom(roomId string) BroadcastOpt {
	return func(b *Body) bool { return b.RoomId == roomId }
}

// Excluding drops the named bodies from the audience.
func Excluding(ids ...string) BroadcastOpt {
	return func(b *Body) bool { return !slices.Contains(ids, b.Id) }
}

// Broadcast enqueues the event onto every body passing all opts.
// Delivery happens on the recipients' next drain; nothing is written
// here.
func (w *World) Broadcast(ev Event, opts ...BroadcastOpt) {
	for _, id := range w.order {
		b := w.bodies[id]
		keep := true
		for _, opt := range opts {
			if !opt(b) {
				keep = false
				break
			}
		}
		if keep {
			b.EnqueueEvent(ev)
		}
	}
}

// TryExit resolves the exit in the given direction from the body's
// room and returns the destination when passable. An exit with a lock
// is passable when the body holds the key (which starts an unlock
// window for everyone) or an earlier unlock has not yet expired.
func (w *World) TryExit(b *Body, dir string) (string, error) {
	rs := w.Room(b.RoomId)
	if rs == nil {
		return "", ErrNoExit
	}

	exit, ok := rs.Def.Exits[dir]
	if !ok {
		return "", ErrNoExit
	}
	if exit.Lock == nil {
		return exit.To, nil
	}

	if b.Items.Count(exit.Lock.Key) > 0 {
		rs.unlocks[dir] = w.now() + exit.Lock.Duration
		return exit.To, nil
	}
	if w.now() < rs.unlocks[dir] {
		return exit.To, nil
	}

	return "", &LockedError{Message: exit.Lock.Message}
}

// ExitOpen reports whether the body could pass the exit right now,
// without recording an unlock.
func (w *World) ExitOpen(b *Body, rs *RoomState, dir string) bool {
	exit, ok := rs.Def.Exits[dir]
	if !ok {
		return false
	}
	if exit.Lock == nil {
		return true
	}
	if b.Items.Count(exit.Lock.Key) > 0 {
		return true
	}
	return w.now() < rs.unlocks[dir]
}

// Tick advances the world one step: every body drains its outbound
// queue, then every body runs its queued commands, then quitting
// bodies are persisted and removed. The two phases are strictly
// ordered across all bodies so commands always run against fully
// delivered state.
func (w *World) Tick(ctx context.Context) error {
	logger := slog.Default()

	for _, id := range slices.Clone(w.order) {
		if err := w.bodies[id].DrainOutput(); err != nil {
			logger.Warn("dropping output", "body", id, "error", err)
		}
	}

	for _, id := range slices.Clone(w.order) {
		if b, ok := w.bodies[id]; ok {
			b.RunCommands(w.runner)
		}
	}

	for _, id := range slices.Clone(w.order) {
		b, ok := w.bodies[id]
		if !ok {
			continue
		}

		if b.Dirty && b.Credentials != "" && w.saver != nil {
			if err := w.saver.Save(b); err != nil {
				logger.Error("saving body", "body", id, "error", err)
			} else {
				b.Dirty = false
			}
		}

		if b.Quit {
			w.RemoveBody(id)
		}
	}

	return nil
}
