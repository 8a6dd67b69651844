package commands

import "fmt"

func giveCommand() *Command {
	return &Command{
		Name:   "give",
		Params: []string{"target", "item"},
		Help: `Use: "give <target name> <item name>"

Give an item from your inventory to a person in the room.

Use "inv" to see what is in your inventory.

Example:

> give carlos hat

< player give carlos hat`,
		Run: func(e *Exec, params []string) error {
			target := e.World.Resolve(params[0], e.Actor.RoomId)
			if target == nil {
				return NewUserError("%s is not here", params[0])
			}

			if moveItem(e.Actor, params[1], e.Actor.Items, target.Items,
				fmt.Sprintf("gave to %s", target.Id), "in your inventory", 1) {
				announce(e, "give", fmt.Sprintf("%s %s", target.Id, params[1]))
			}
			return nil
		},
	}
}
