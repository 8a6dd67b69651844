package game

import (
	"fmt"

	"github.com/pixil98/deepmud/internal/ledger"
)

// An InputSource produces commands for a scripted body. Observe is
// called with every event the body drains; Poll is called once per
// tick and returns the lines the body should execute.
type InputSource interface {
	Observe(ev Event)
	Poll(b *Body) []string
}

// A Sink delivers a rendered frame to the body's transport. Bodies
// without a sink (scripted ones) drop frames after the InputSource
// has observed the event.
type Sink func(f Frame) error

// Body is a single presence in the world: a connected player or a
// scripted actor. Id doubles as the directory key and the display
// name. All state mutation happens on the tick goroutine.
type Body struct {
	Id        string
	RoomId    string
	HP        int
	Items     ledger.Ledger
	Equipment map[string]string

	// Credentials is the bcrypt password hash. Bodies without
	// credentials are never persisted.
	Credentials string

	// Dirty marks unsaved state; Quit marks the body for removal in
	// the next maintenance pass.
	Dirty bool
	Quit  bool

	input  Queue[string]
	events Queue[Event]

	source InputSource
	sink   Sink

	// done is closed when the world removes the body.
	done chan struct{}
}

// NewBody creates a body in the given room.
func NewBody(id, roomId string, hp int) *Body {
	return &Body{
		Id:        id,
		RoomId:    roomId,
		HP:        hp,
		Items:     ledger.New(),
		Equipment: map[string]string{},
		done:      make(chan struct{}),
	}
}

// SetSource attaches a scripted input source.
func (b *Body) SetSource(src InputSource) {
	b.source = src
}

// SetSink attaches the transport delivery func.
func (b *Body) SetSink(sink Sink) {
	b.sink = sink
}

// Done returns a channel closed when the body leaves the world.
func (b *Body) Done() <-chan struct{} {
	return b.done
}

// EnqueueCommand queues a raw input line for the next tick.
func (b *Body) EnqueueCommand(line string) {
	b.input.Push(line)
}

// EnqueueEvent queues an event for delivery on the next tick.
func (b *Body) EnqueueEvent(ev Event) {
	b.events.Push(ev)
}

// Inform queues a system message addressed to this body alone.
func (b *Body) Inform(text string) {
	b.EnqueueEvent(Event{Payload: text, Category: CategorySystem})
}

// DrainOutput delivers all queued events, then the status line. Any
// drained event marks the body dirty. Sink errors are returned after
// the drain completes so one bad write does not strand the rest.
func (b *Body) DrainOutput() error {
	var firstErr error

	events := b.events.Drain()
	if len(events) > 0 {
		b.Dirty = true
	}
	for _, ev := range events {
		if b.source != nil {
			b.source.Observe(ev)
		}
		if err := b.deliver(Frame{Category: ev.Category, Text: ev.Render()}); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	status := Frame{
		Category: CategoryStatus,
		Text:     fmt.Sprintf("%s (%d) :>", b.Id, b.HP),
	}
	if err := b.deliver(status); err != nil && firstErr == nil {
		firstErr = err
	}

	return firstErr
}

func (b *Body) deliver(f Frame) error {
	if b.sink == nil {
		return nil
	}
	return b.sink(f)
}

// RunCommands polls the input source, then drains the input queue
// through the runner. Any drained line marks the body dirty.
func (b *Body) RunCommands(runner CommandRunner) {
	if b.source != nil {
		for _, line := range b.source.Poll(b) {
			b.input.Push(line)
		}
	}

	lines := b.input.Drain()
	if len(lines) > 0 {
		b.Dirty = true
	}
	for _, line := range lines {
		runner.Dispatch(b, line)
	}
}

// KnockedOut reports whether the body is incapacitated.
func (b *Body) KnockedOut() bool {
	return b.HP <= 0
}
