package commands

import (
	"fmt"

	"github.com/pixil98/deepmud/internal/game"
	"github.com/pixil98/deepmud/internal/ledger"
)

func takeCommand() *Command {
	return &Command{
		Name:   "take",
		Params: []string{"item"},
		Help: `Use: "take <item name>"

Take an item from the room. Use "take all" to take everything.

Use "look" to see what is in the room.

Example:

> take hat

< player take hat`,
		Run: func(e *Exec, params []string) error {
			rs := e.World.Room(e.Actor.RoomId)
			if rs == nil {
				return NewUserError("What have you done!?")
			}

			itemId := params[0]
			if itemId == "all" {
				for _, id := range rs.Items.Keys() {
					if moveItem(e.Actor, id, rs.Items, e.Actor.Items, "picked up", "here", rs.Items.Count(id)) {
						announceOthers(e, "take", id)
					}
				}
				return nil
			}

			if moveItem(e.Actor, itemId, rs.Items, e.Actor.Items, "picked up", "here", 1) {
				announceOthers(e, "take", itemId)
			}
			return nil
		},
	}
}

// announce broadcasts an action to everyone in the actor's room, the
// actor included.
func announce(e *Exec, verb, payload string) {
	e.World.Broadcast(game.Event{
		From:     e.Actor.Id,
		Verb:     verb,
		Payload:  payload,
		Category: game.CategoryChat,
	}, game.InRoom(e.Actor.RoomId))
}

// announceOthers narrows announce to the rest of the room. Only take
// keeps its own action out of the actor's event stream.
func announceOthers(e *Exec, verb, payload string) {
	e.World.Broadcast(game.Event{
		From:     e.Actor.Id,
		Verb:     verb,
		Payload:  payload,
		Category: game.CategoryChat,
	}, game.InRoom(e.Actor.RoomId), game.Excluding(e.Actor.Id))
}

// moveItem transfers between ledgers and tells the actor how it went.
// locName describes where the item was missing from.
func moveItem(actor *game.Body, itemId string, from, to ledger.Ledger, actName, locName string, amount int) bool {
	if ledger.Transfer(itemId, from, to, amount) {
		actor.Inform(fmt.Sprintf("You %s the %s.", actName, itemId))
		return true
	}
	actor.Inform(fmt.Sprintf("There is no %s %s", itemId, locName))
	return false
}
