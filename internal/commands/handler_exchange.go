package commands

import "github.com/pixil98/deepmud/internal/game"

// exchange asks another body in the room to trade. Nothing moves
// here: the target hears the request and, if it is willing and able,
// answers with the give/take counterpart commands on a later tick.
func exchange(e *Exec, targetId, itemId, verb, dir string) error {
	target := e.World.Resolve(targetId, e.Actor.RoomId)
	if target == nil {
		return NewUserError("%s is not here to %s %s.", targetId, verb, dir)
	}

	target.EnqueueEvent(game.Event{
		From:     e.Actor.Id,
		Verb:     verb,
		Payload:  itemId,
		Category: game.CategoryChat,
	})
	return nil
}

func buyCommand() *Command {
	return &Command{
		Name:   "buy",
		Params: []string{"target", "item"},
		Help: `Use: "buy <target name> <item name>"

Ask to buy an item from someone. The target will check to see if you have the items to meet the cost, and automatically make the exchange if so.

Use "tell <target name> inv" to see what they have for sale.

Example:

> buy carlos hat

< carlos take 5 gold

< carlos give hat`,
		Run: func(e *Exec, params []string) error {
			return exchange(e, params[0], params[1], "buy", "from")
		},
	}
}

func sellCommand() *Command {
	return &Command{
		Name:   "sell",
		Params: []string{"target", "item"},
		Help: `Use: "sell <target name> <item name>"

Ask to sell an item to someone. The target will check to see if you have the item and it can meet the cost, and automatically make the exchange if so.

Example:

> sell carlos hat

< carlos give 5 gold

< carlos take hat`,
		Run: func(e *Exec, params []string) error {
			return exchange(e, params[0], params[1], "sell", "to")
		},
	}
}

func retrieveCommand() *Command {
	return &Command{
		Name:   "retrieve",
		Params: []string{"target", "item"},
		Help: `Use: "retrieve <target name> <item name>"

Ask your mule to give you an item it is holding for you.

Example:

> retrieve carlos hat

< carlos give hat`,
		Run: func(e *Exec, params []string) error {
			return exchange(e, params[0], params[1], "retrieve", "from")
		},
	}
}
