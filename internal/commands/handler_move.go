package commands

import (
	"errors"
	"fmt"

	"github.com/pixil98/deepmud/internal/catalog"
	"github.com/pixil98/deepmud/internal/game"
)

// moveCommands builds one zero-parameter command per direction label.
func moveCommands() []*Command {
	cmds := make([]*Command, 0, len(catalog.Directions))
	for _, dir := range catalog.Directions {
		cmds = append(cmds, &Command{
			Name: dir,
			Help: fmt.Sprintf(`Use: "%s"

Move through the exit labeled "%s". If the exit is locked and the user doesn't have the key for the lock, the user will not change rooms.`, dir, dir),
			Run: func(e *Exec, params []string) error {
				return move(e, dir)
			},
		})
	}
	return cmds
}

func move(e *Exec, dir string) error {
	dest, err := e.World.TryExit(e.Actor, dir)
	if err != nil {
		var locked *game.LockedError
		switch {
		case errors.As(err, &locked):
			return NewUserError("You can't go %s. %s.", dir, locked.Message)
		case errors.Is(err, game.ErrNoExit):
			return NewUserError("You can't go %s. There is no exit that way", dir)
		default:
			return err
		}
	}

	e.World.Broadcast(game.Event{
		From:     e.Actor.Id,
		Verb:     "left",
		Payload:  dir,
		Category: game.CategoryChat,
	}, game.InRoom(e.Actor.RoomId))

	e.Actor.RoomId = dest
	e.Actor.Dirty = true

	e.World.Broadcast(game.Event{
		From:     e.Actor.Id,
		Verb:     "entered",
		Category: game.CategoryChat,
	}, game.InRoom(dest))

	return look(e)
}
