package game

import (
	"strings"
	"testing"
)

type recordingSink struct {
	frames []Frame
}

func (r *recordingSink) deliver(f Frame) error {
	r.frames = append(r.frames, f)
	return nil
}

type scriptedSource struct {
	observed []Event
	lines    []string
}

func (s *scriptedSource) Observe(ev Event)       { s.observed = append(s.observed, ev) }
func (s *scriptedSource) Poll(b *Body) []string { out := s.lines; s.lines = nil; return out }

type recordingRunner struct {
	lines []string
}

func (r *recordingRunner) Dispatch(b *Body, line string) {
	r.lines = append(r.lines, line)
}

func TestBody_DrainOutput(t *testing.T) {
	sink := &recordingSink{}
	b := NewBody("ann", "square", 10)
	b.SetSink(sink.deliver)

	b.EnqueueEvent(Event{From: "bob", Verb: "say", Payload: "hi", Category: CategoryChat})
	b.Inform("welcome")

	if err := b.DrainOutput(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Two events, then the status line.
	if len(sink.frames) != 3 {
		t.Fatalf("got %d frames, expected 3", len(sink.frames))
	}
	if sink.frames[0].Text != "bob say hi" {
		t.Errorf("frame 0 = %q", sink.frames[0].Text)
	}
	if sink.frames[1].Text != "welcome" {
		t.Errorf("frame 1 = %q", sink.frames[1].Text)
	}
	last := sink.frames[2]
	if last.Category != CategoryStatus || !strings.Contains(last.Text, "ann (10) :>") {
		t.Errorf("status frame = %+v", last)
	}

	if !b.Dirty {
		t.Error("draining events should mark the body dirty")
	}
}

func TestBody_DrainOutput_StatusOnly(t *testing.T) {
	sink := &recordingSink{}
	b := NewBody("ann", "square", 7)
	b.SetSink(sink.deliver)

	if err := b.DrainOutput(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sink.frames) != 1 || sink.frames[0].Category != CategoryStatus {
		t.Fatalf("frames = %+v, expected only the status line", sink.frames)
	}
	if b.Dirty {
		t.Error("an empty drain should not mark the body dirty")
	}
}

func TestBody_SourceObservesEvents(t *testing.T) {
	src := &scriptedSource{}
	b := NewBody("keeper", "shop", 10)
	b.SetSource(src)

	b.EnqueueEvent(Event{From: "ann", Verb: "tell", Payload: "buy hat", Category: CategoryChat})
	if err := b.DrainOutput(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(src.observed) != 1 || src.observed[0].Payload != "buy hat" {
		t.Errorf("observed = %+v", src.observed)
	}
}

func TestBody_RunCommands(t *testing.T) {
	src := &scriptedSource{lines: []string{"look"}}
	runner := &recordingRunner{}

	b := NewBody("keeper", "shop", 10)
	b.SetSource(src)
	b.EnqueueCommand("say hello")

	b.RunCommands(runner)

	// Queued lines run before freshly polled ones.
	if len(runner.lines) != 2 || runner.lines[0] != "say hello" || runner.lines[1] != "look" {
		t.Errorf("dispatched = %v", runner.lines)
	}
	if !b.Dirty {
		t.Error("draining input should mark the body dirty")
	}
}

func TestBody_KnockedOut(t *testing.T) {
	b := NewBody("ann", "square", 1)
	if b.KnockedOut() {
		t.Error("hp 1 should not be knocked out")
	}
	b.HP = 0
	if !b.KnockedOut() {
		t.Error("hp 0 should be knocked out")
	}
}
