package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/pixil98/deepmud/internal/game"
)

// A Bus moves opaque payloads between subjects. NatsServer satisfies
// it; tests substitute an in-memory fake.
type Bus interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

// FramePublisher delivers rendered frames to per-player subjects.
type FramePublisher struct {
	bus Bus
}

func NewFramePublisher(bus Bus) *FramePublisher {
	return &FramePublisher{bus: bus}
}

// Sink builds a game.Sink delivering this player's frames.
func (p *FramePublisher) Sink(playerId string) game.Sink {
	subject := playerSubject(playerId)
	return func(f game.Frame) error {
		data, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("encoding frame: %w", err)
		}
		return p.bus.Publish(subject, data)
	}
}

// SubscribePlayer subscribes a session to its player's frames.
// Returns an unsubscribe function.
func (p *FramePublisher) SubscribePlayer(playerId string, handler func(f game.Frame)) (func(), error) {
	return p.bus.Subscribe(playerSubject(playerId), func(data []byte) {
		var f game.Frame
		if err := json.Unmarshal(data, &f); err != nil {
			// A malformed frame on a private subject is a bug in the
			// publisher; drop it rather than kill the session.
			return
		}
		handler(f)
	})
}

func playerSubject(playerId string) string {
	return fmt.Sprintf("player-%s", playerId)
}
