package commands

func dropCommand() *Command {
	return &Command{
		Name:   "drop",
		Params: []string{"item"},
		Help: `Use: "drop <item name>"

Drop an item from inventory into the room.

Use "inv" to see what is in inventory.

Example:

> drop hat

< player drop hat`,
		Run: func(e *Exec, params []string) error {
			rs := e.World.Room(e.Actor.RoomId)
			if rs == nil {
				return NewUserError("What have you done!?")
			}

			if moveItem(e.Actor, params[0], e.Actor.Items, rs.Items, "dropped", "in your inventory", 1) {
				announce(e, "drop", params[0])
			}
			return nil
		},
	}
}
