package player

import (
	"context"
	"maps"
	"sync"

	"github.com/pixil98/deepmud/internal/game"
	"github.com/pixil98/deepmud/internal/ledger"
	"github.com/pixil98/deepmud/internal/messaging"
	"github.com/pixil98/deepmud/internal/storage"
)

const (
	DefaultStartHP = 100
)

// Manager owns the player lifecycle: it runs login on new
// connections, hands the resulting bodies to the world on the tick,
// and persists snapshots for the world's maintenance pass.
type Manager struct {
	world     *game.World
	store     storage.Storer[*PlayerFile]
	publisher *messaging.FramePublisher
	flow      *loginFlow

	mu    sync.Mutex
	joins []*join
}

// join is a body waiting to enter the world, with the session blocked
// on the reply.
type join struct {
	body  *game.Body
	reply chan error
}

func NewManager(world *game.World, store storage.Storer[*PlayerFile], pub *messaging.FramePublisher, startRoom string, startHP int) *Manager {
	if startHP <= 0 {
		startHP = DefaultStartHP
	}
	return &Manager{
		world:     world,
		store:     store,
		publisher: pub,
		flow: &loginFlow{
			store:     store,
			startRoom: startRoom,
			startHP:   startHP,
		},
	}
}

// Start blocks until shutdown. Sessions run on their own goroutines.
func (m *Manager) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

// Tick admits pending bodies to the world. Admission happens here so
// all world mutation stays on the tick goroutine.
func (m *Manager) Tick(ctx context.Context) error {
	m.mu.Lock()
	pending := m.joins
	m.joins = nil
	m.mu.Unlock()

	for _, j := range pending {
		err := m.world.AddBody(j.body)
		if err == nil {
			j.body.EnqueueCommand("look")
		}
		j.reply <- err
	}

	return nil
}

// Save implements game.SnapshotSaver.
func (m *Manager) Save(b *game.Body) error {
	return m.store.Save(b.Id, &PlayerFile{
		Password:  b.Credentials,
		RoomId:    b.RoomId,
		HP:        b.HP,
		Items:     b.Items.Clone(),
		Equipment: maps.Clone(b.Equipment),
	})
}

func (m *Manager) enqueueJoin(b *game.Body) error {
	j := &join{body: b, reply: make(chan error, 1)}

	m.mu.Lock()
	m.joins = append(m.joins, j)
	m.mu.Unlock()

	return <-j.reply
}

// restore builds a live body from a snapshot.
func restore(id string, pf *PlayerFile) *game.Body {
	b := game.NewBody(id, pf.RoomId, pf.HP)
	b.Credentials = pf.Password
	if pf.Items != nil {
		b.Items = ledger.Ledger(pf.Items).Clone()
	}
	if pf.Equipment != nil {
		b.Equipment = maps.Clone(pf.Equipment)
	}
	return b
}
