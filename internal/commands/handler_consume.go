package commands

import (
	"fmt"

	"github.com/pixil98/deepmud/internal/catalog"
)

func drinkCommand() *Command {
	return &Command{
		Name:   "drink",
		Params: []string{"item"},
		Help: `Use: "drink <item name>"

Consume a potion to restore health.

Example:

> drink potion

< Health restored by 10 points.`,
		Run: func(e *Exec, params []string) error {
			return consume(e, params[0], "drink")
		},
	}
}

func eatCommand() *Command {
	return &Command{
		Name:   "eat",
		Params: []string{"item"},
		Help: `Use: "eat <item name>"

Consume food to restore health.

Example:

> eat egg

< Health restored by 1 points.`,
		Run: func(e *Exec, params []string) error {
			return consume(e, params[0], "eat")
		},
	}
}

func consume(e *Exec, itemId, verb string) error {
	if e.Actor.Items.Count(itemId) < 1 {
		return NewUserError("You don't have a %s to %s.", itemId, verb)
	}

	item := e.World.Catalog.Items.Get(itemId)
	if item == nil {
		return NewUserError("You can't %s a %s.", verb, itemId)
	}
	if item.EquipType != catalog.EquipTypeFood {
		return NewUserError("You can't %s a %s, for it is a %s.", verb, itemId, item.EquipType)
	}

	e.Actor.Items.Decrement(itemId, 1)
	e.Actor.HP += item.Strength
	e.Actor.Inform(fmt.Sprintf("Health restored by %d points.", item.Strength))
	return nil
}
