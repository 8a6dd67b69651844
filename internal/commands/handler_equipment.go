package commands

import (
	"fmt"

	"github.com/pixil98/deepmud/internal/game"
)

func equipCommand() *Command {
	return &Command{
		Name:   "equip",
		Params: []string{"item"},
		Help: `Use: "equip <item name>"

If the named item is a piece of equipment, readies the item for use. The item will no longer be considered in inventory.

If there is already an item in the equipment slot, returns that old item to inventory first.

Example:

> equip hat

< player equipped the hat as a helmet`,
		Run: func(e *Exec, params []string) error {
			itemId := params[0]
			if e.Actor.Items.Count(itemId) < 1 {
				return NewUserError("You don't have the %s.", itemId)
			}

			item := e.World.Catalog.Items.Get(itemId)
			if item == nil || !item.Equippable() {
				return NewUserError("You can't equip the %s.", itemId)
			}

			// The slot's occupant goes back to inventory first.
			if current, ok := e.Actor.Equipment[item.EquipType]; ok {
				e.Actor.Items.Increment(current, 1)
			}
			e.Actor.Equipment[item.EquipType] = itemId
			e.Actor.Items.Decrement(itemId, 1)

			e.Actor.Inform(fmt.Sprintf("You equipped the %s as a %s.", itemId, item.EquipType))
			return nil
		},
	}
}

// unequip returns an equipped item to the body's inventory and frees
// its slot.
func unequip(b *game.Body, itemId string) error {
	for slot, held := range b.Equipment {
		if held == itemId {
			b.Items.Increment(itemId, 1)
			delete(b.Equipment, slot)
			b.Inform(fmt.Sprintf("You removed the %s as your %s.", itemId, slot))
			return nil
		}
	}
	return NewUserError("There is no %s to remove.", itemId)
}

func removeCommand() *Command {
	return &Command{
		Name:   "remove",
		Params: []string{"item"},
		Help: `Use: "remove <item name>"

Removes the item from use as equipment and returns it to inventory.

Example:

> remove hat

< player removed the hat as a helmet`,
		Run: func(e *Exec, params []string) error {
			return unequip(e.Actor, params[0])
		},
	}
}
