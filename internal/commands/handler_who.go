package commands

import "fmt"

func whoCommand() *Command {
	return &Command{
		Name: "who",
		Help: `Use: "who"

List all users who are online, and where they are located.`,
		Run: func(e *Exec, params []string) error {
			var rows []string
			for _, b := range e.World.Bodies() {
				rows = append(rows, fmt.Sprintf("\t%s - %s", b.Id, b.RoomId))
			}

			e.Actor.Inform("People online:\n\n" + listing(rows))
			return nil
		},
	}
}
