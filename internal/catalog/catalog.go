package catalog

import (
	"fmt"

	"github.com/pixil98/deepmud/internal/storage"
)

// Catalog aggregates the read-only definition stores. It is built once
// at world load; nothing mutates it afterwards.
type Catalog struct {
	Items   storage.Storer[*Item]
	Recipes storage.Storer[*Recipe]
	Rooms   storage.Storer[*Room]
}

// Resolve cross-checks references between stores: exits must lead to
// existing rooms, and every item id named by a room pool, a lock, or a
// recipe must exist in the item store.
func (c *Catalog) Resolve() error {
	items := c.Items.GetAll()
	rooms := c.Rooms.GetAll()

	for roomId, room := range rooms {
		for dir, exit := range room.Exits {
			if _, ok := rooms[exit.To]; !ok {
				return fmt.Errorf("room %s: exit %s leads to unknown room %q", roomId, dir, exit.To)
			}
			if exit.Lock != nil {
				if _, ok := items[exit.Lock.Key]; !ok {
					return fmt.Errorf("room %s: exit %s lock references unknown item %q", roomId, dir, exit.Lock.Key)
				}
			}
		}
		for itemId := range room.StartItems {
			if _, ok := items[itemId]; !ok {
				return fmt.Errorf("room %s: start item %q is not in the item catalogue", roomId, itemId)
			}
		}
	}

	for recipeId, recipe := range c.Recipes.GetAll() {
		for _, m := range []map[string]int{recipe.Tools, recipe.Ingredients, recipe.Results} {
			for itemId := range m {
				if _, ok := items[itemId]; !ok {
					return fmt.Errorf("recipe %s: item %q is not in the item catalogue", recipeId, itemId)
				}
			}
		}
	}

	return nil
}

// Describe returns the catalogue description for an item id. Unknown
// ids are a valid state, shown as "(UNKNOWN)" rather than an error.
func (c *Catalog) Describe(itemId string) string {
	if item := c.Items.Get(itemId); item != nil {
		return item.Description
	}
	return "(UNKNOWN)"
}
