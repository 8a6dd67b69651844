package commands

import "github.com/pixil98/deepmud/internal/game"

func lookCommand() *Command {
	return &Command{
		Name: "look",
		Help: `Use: "look"

See a description of the current room.`,
		Run: func(e *Exec, params []string) error {
			return look(e)
		},
	}
}

func look(e *Exec) error {
	e.Actor.EnqueueEvent(game.Event{
		Payload:  e.World.DescribeRoom(e.Actor),
		Category: game.CategoryNews,
	})
	return nil
}
