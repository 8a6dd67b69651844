package commands

import (
	"fmt"
	"sort"
	"strings"
)

func invCommand() *Command {
	return &Command{
		Name: "inv",
		Help: `Use: "inv"

View what you have in your inventory.`,
		Run: func(e *Exec, params []string) error {
			var equipped []string
			slots := make([]string, 0, len(e.Actor.Equipment))
			for slot := range e.Actor.Equipment {
				slots = append(slots, slot)
			}
			sort.Strings(slots)
			for _, slot := range slots {
				itemId := e.Actor.Equipment[slot]
				equipped = append(equipped, fmt.Sprintf("\t(%s) %s - %s",
					slot, itemId, e.World.Catalog.Describe(itemId)))
			}

			var held []string
			for _, itemId := range e.Actor.Items.Keys() {
				held = append(held, fmt.Sprintf("\t%d %s - %s",
					e.Actor.Items.Count(itemId), itemId, e.World.Catalog.Describe(itemId)))
			}

			e.Actor.Inform(fmt.Sprintf("Equipped:\n\n%s\n\nUnequipped:\n\n%s",
				listing(equipped), listing(held)))
			return nil
		},
	}
}

// listing joins rows for display, substituting "none" for an empty
// set.
func listing(rows []string) string {
	if len(rows) == 0 {
		return "\tnone"
	}
	return strings.Join(rows, "\n")
}
