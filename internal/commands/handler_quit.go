package commands

import "github.com/pixil98/deepmud/internal/game"

func quitCommand() *Command {
	return &Command{
		Name: "quit",
		Help: `Use: "quit"

Quit playing the game.

Example:

> quit

< player quit`,
		Run: func(e *Exec, params []string) error {
			e.World.Broadcast(game.Event{
				From:     e.Actor.Id,
				Verb:     "quit",
				Category: game.CategoryChat,
			}, game.Excluding(e.Actor.Id))

			e.Actor.Quit = true
			e.Actor.Dirty = true
			return nil
		},
	}
}
