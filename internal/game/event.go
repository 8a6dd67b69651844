package game

import "strings"

// Category classifies events for transport-side styling.
type Category string

const (
	CategoryChat   Category = "chat"
	CategoryNews   Category = "news"
	CategoryStatus Category = "status"
	CategorySystem Category = "system"
)

// Event is a typed message between bodies. From is the originating
// body id; Verb names the action; Payload is the already-formatted
// text for the observer.
type Event struct {
	From     string
	Verb     string
	Payload  string
	Category Category
}

// Render formats the event for delivery to a reader: the originating
// body, the verb, and the payload, with empty parts elided.
func (e Event) Render() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.From, e.Verb, e.Payload} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Frame is the wire form of a rendered event, published to the
// session's delivery subject.
type Frame struct {
	Category Category `json:"category"`
	Text     string   `json:"text"`
}
