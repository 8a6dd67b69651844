package commands

import (
	"fmt"
	"sort"

	"github.com/pixil98/deepmud/internal/catalog"
	"github.com/pixil98/deepmud/internal/game"
)

func attackCommand() *Command {
	return &Command{
		Name:   "attack",
		Params: []string{"target"},
		Help: `Use: "attack <target name>"

Strikes the target once in combat.

Equipped weapons make the attacks perform more damage.

Targets with armor equipped take less damage.`,
		Run: func(e *Exec, params []string) error {
			target := e.World.Resolve(params[0], e.Actor.RoomId)
			if target == nil {
				return NewUserError("%s is not here to attack.", params[0])
			}

			atk := 1
			weapon := "bare fists"
			if wpnId, ok := e.Actor.Equipment[catalog.EquipTypeTool]; ok {
				weapon = wpnId
				if item := e.World.Catalog.Items.Get(wpnId); item != nil {
					atk += item.Strength
				}
			}

			def := 0
			for _, slot := range catalog.ArmorSlots {
				armId, ok := target.Equipment[slot]
				if !ok {
					continue
				}
				if item := e.World.Catalog.Items.Get(armId); item != nil {
					def += item.Strength
				}
			}

			dmg := max(atk-def, 0)
			target.HP -= dmg
			target.Dirty = true

			announce(e, "attack", target.Id)
			target.EnqueueEvent(game.Event{
				From:     e.Actor.Id,
				Verb:     "damage",
				Payload:  fmt.Sprintf("%d", dmg),
				Category: game.CategoryChat,
			})
			e.Actor.Inform(fmt.Sprintf("You attacked %s with %s for %d damage.", target.Id, weapon, dmg))
			return nil
		},
	}
}

func lootCommand() *Command {
	return &Command{
		Name:   "loot",
		Params: []string{"target"},
		Help: `Use: "loot <target name>"

If the target is knocked out after combat, takes everything it has as inventory and equipment.

Example:

> loot carlos

< player looted a hat`,
		Run: func(e *Exec, params []string) error {
			target := e.World.Resolve(params[0], e.Actor.RoomId)
			if target == nil {
				return NewUserError("%s is not here to loot.", params[0])
			}
			if !target.KnockedOut() {
				return NewUserError("%s knocks your hand away from his pockets.", target.Id)
			}

			// Equipment returns to the target's inventory first, so a
			// single pass over the ledger carries everything away.
			slots := make([]string, 0, len(target.Equipment))
			for slot := range target.Equipment {
				slots = append(slots, slot)
			}
			sort.Strings(slots)
			for _, slot := range slots {
				_ = unequip(target, target.Equipment[slot])
			}
			for _, itemId := range target.Items.Keys() {
				moveItem(e.Actor, itemId, target.Items, e.Actor.Items,
					"looted", fmt.Sprintf("from %s", target.Id), target.Items.Count(itemId))
			}
			return nil
		},
	}
}
