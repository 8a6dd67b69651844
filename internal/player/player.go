package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pixil98/deepmud/internal/game"
)

// RunSession drives one connection from login to disconnect. It never
// touches world state directly: input lines go onto the body's queue,
// and output arrives as frames on the player's delivery subject.
func (m *Manager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	sessionId := uuid.NewString()
	logger := slog.With("session", sessionId)

	id, pf, err := m.flow.Run(conn)
	if err != nil {
		return fmt.Errorf("running login: %w", err)
	}
	logger = logger.With("player", id)

	body := restore(id, pf)
	body.SetSink(m.publisher.Sink(id))

	frames := make(chan game.Frame, 64)
	unsub, err := m.publisher.SubscribePlayer(id, func(f game.Frame) {
		select {
		case frames <- f:
		default:
			logger.Warn("dropping frame, session not keeping up")
		}
	})
	if err != nil {
		return fmt.Errorf("subscribing session: %w", err)
	}
	defer unsub()

	if err := m.enqueueJoin(body); err != nil {
		if errors.Is(err, game.ErrBodyExists) {
			conn.Write([]byte("That name is already playing.\n"))
			return nil
		}
		return fmt.Errorf("joining world: %w", err)
	}
	logger.Info("player joined")

	lines, readErr := readLines(conn, body.Done())

	for {
		select {
		case <-ctx.Done():
			body.EnqueueCommand("quit")
			return ctx.Err()

		case <-body.Done():
			conn.Write([]byte("Goodbye!\n"))
			logger.Info("player left")
			return nil

		case f := <-frames:
			if err := writeFrame(conn, f); err != nil {
				body.EnqueueCommand("quit")
				return err
			}

		case line, ok := <-lines:
			if !ok {
				// Connection lost; the body quits on the next tick.
				body.EnqueueCommand("quit")
				logger.Info("connection lost")
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			body.EnqueueCommand(line)
		}
	}
}

// readLines pumps trimmed, lowercased input lines from the reader.
// The lines channel closes when the reader fails or done closes, so
// the pump never outlives the body it feeds.
func readLines(r io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- strings.ToLower(strings.TrimSpace(scanner.Text())):
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	return lines, readErr
}

// writeFrame renders one frame to the connection. Status frames are
// the prompt and stay on their line.
func writeFrame(w io.Writer, f game.Frame) error {
	var err error
	if f.Category == game.CategoryStatus {
		_, err = w.Write([]byte("\n" + f.Text + " "))
	} else {
		_, err = w.Write([]byte(f.Text + "\n"))
	}
	return err
}
