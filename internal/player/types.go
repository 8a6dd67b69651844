package player

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// PlayerFile is the persisted snapshot of a credentialed body. It is
// written whenever the body is dirty at the end of a tick and read
// back at login.
type PlayerFile struct {
	Password  string            `json:"password"`
	RoomId    string            `json:"room_id"`
	HP        int               `json:"hp"`
	Items     map[string]int    `json:"items,omitempty"`
	Equipment map[string]string `json:"equipment,omitempty"`
}

func (p *PlayerFile) Validate() error {
	el := errors.NewErrorList()

	if p.Password == "" {
		el.Add(fmt.Errorf("password is required"))
	}
	if p.RoomId == "" {
		el.Add(fmt.Errorf("room_id is required"))
	}
	for id, n := range p.Items {
		if n < 1 {
			el.Add(fmt.Errorf("item %s: count must be positive", id))
		}
	}

	return el.Err()
}
