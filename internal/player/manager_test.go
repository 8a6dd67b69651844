package player

import (
	"context"
	"errors"
	"testing"

	"github.com/pixil98/deepmud/internal/catalog"
	"github.com/pixil98/deepmud/internal/game"
)

func testManager() (*Manager, *game.World) {
	cat := &catalog.Catalog{
		Items:   memStore[*catalog.Item]{"gold": {Description: "a coin"}},
		Recipes: memStore[*catalog.Recipe]{},
		Rooms:   memStore[*catalog.Room]{"square": {Description: "A square."}},
	}
	w := game.NewWorld(cat)
	m := NewManager(w, memStore[*PlayerFile]{}, nil, "square", 100)
	w.SetSaver(m)
	return m, w
}

func TestManager_TickAdmitsJoins(t *testing.T) {
	m, w := testManager()

	done := make(chan error, 1)
	go func() {
		done <- m.enqueueJoin(game.NewBody("ann", "square", 100))
	}()

	// Joins are only admitted on the tick.
	for w.Body("ann") == nil {
		if err := m.Tick(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := <-done; err != nil {
		t.Fatalf("join reply = %v", err)
	}
}

func TestManager_DuplicateNameRejected(t *testing.T) {
	m, w := testManager()
	if err := w.AddBody(game.NewBody("ann", "square", 100)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- m.enqueueJoin(game.NewBody("ann", "square", 100))
	}()

	for {
		if err := m.Tick(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		select {
		case err := <-done:
			if !errors.Is(err, game.ErrBodyExists) {
				t.Fatalf("got %v, expected ErrBodyExists", err)
			}
			return
		default:
		}
	}
}

func TestManager_SaveRoundTrip(t *testing.T) {
	m, _ := testManager()

	b := game.NewBody("ann", "vault", 42)
	b.Credentials = "hash"
	b.Items.Increment("gold", 3)
	b.Equipment["tool"] = "sword"

	if err := m.Save(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pf := m.store.Get("ann")
	if pf == nil {
		t.Fatal("snapshot not stored")
	}
	if pf.RoomId != "vault" || pf.HP != 42 || pf.Password != "hash" {
		t.Errorf("snapshot = %+v", pf)
	}
	if pf.Items["gold"] != 3 || pf.Equipment["tool"] != "sword" {
		t.Errorf("snapshot contents = %+v", pf)
	}

	// The snapshot must not alias the live ledgers.
	b.Items.Increment("gold", 1)
	if pf.Items["gold"] != 3 {
		t.Error("snapshot should be an independent copy")
	}

	got := restore("ann", pf)
	if got.RoomId != "vault" || got.HP != 42 || got.Items.Count("gold") != 3 || got.Equipment["tool"] != "sword" {
		t.Errorf("restored body = %+v", got)
	}
}
