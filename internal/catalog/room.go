package catalog

import (
	"fmt"
	"slices"

	"github.com/pixil98/go-errors"
)

// Directions are the fixed set of movement command labels. Exits are
// unidirectional edges; a room holds at most one exit per direction.
var Directions = []string{
	"north", "east", "south", "west",
	"up", "down", "enter", "exit", "leave",
}

// IsDirection reports whether s is a recognized direction label.
func IsDirection(s string) bool {
	return slices.Contains(Directions, s)
}

// Room defines a location. StartItems is the floor for the room's item
// pool: the live pool is topped up to at least these counts, modeling
// ambient resources that replenish no matter how often they are taken.
type Room struct {
	Description string          `json:"description"`
	StartItems  map[string]int  `json:"start_items,omitempty"`
	Exits       map[string]Exit `json:"exits,omitempty"`
}

// Exit is a one-way edge to another room, optionally locked.
type Exit struct {
	To   string    `json:"to"`
	Lock *ExitLock `json:"lock,omitempty"`
}

// ExitLock gates an exit behind a key item. Passing through while
// holding the key unlocks the exit for everyone; the unlock expires
// after Duration seconds. Time is always supplied by the caller.
type ExitLock struct {
	Key      string `json:"key"`
	Duration int64  `json:"duration,omitempty"`
	Message  string `json:"message"`
}

// Validate satisfies storage.ValidatingSpec.
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.Description == "" {
		el.Add(fmt.Errorf("description is required"))
	}

	for id, n := range r.StartItems {
		if n < 1 {
			el.Add(fmt.Errorf("start item %s: count must be positive", id))
		}
	}

	for dir, exit := range r.Exits {
		if !IsDirection(dir) {
			el.Add(fmt.Errorf("exit %s: unknown direction", dir))
		}
		if exit.To == "" {
			el.Add(fmt.Errorf("exit %s: destination is required", dir))
		}
		if exit.Lock != nil {
			if exit.Lock.Key == "" {
				el.Add(fmt.Errorf("exit %s: lock key is required", dir))
			}
			if exit.Lock.Message == "" {
				el.Add(fmt.Errorf("exit %s: lock message is required", dir))
			}
			if exit.Lock.Duration < 0 {
				el.Add(fmt.Errorf("exit %s: lock duration cannot be negative", dir))
			}
		}
	}

	return el.Err()
}
