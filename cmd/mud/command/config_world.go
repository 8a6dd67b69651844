package command

import (
	"fmt"

	"github.com/pixil98/deepmud/internal/bot"
	"github.com/pixil98/deepmud/internal/game"
	"github.com/pixil98/deepmud/internal/player"
	"github.com/pixil98/go-errors"
)

type BotKind int

const (
	BotKindShopKeep BotKind = iota
	BotKindWanderer
)

func (bk *BotKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "shopkeep":
		*bk = BotKindShopKeep
	case "wanderer":
		*bk = BotKindWanderer
	default:
		return fmt.Errorf("unknown bot kind: %s", text)
	}
	return nil
}

type WorldConfig struct {
	StartRoom string      `json:"start_room"`
	StartHP   int         `json:"start_hp,omitempty"`
	Bots      []BotConfig `json:"bots,omitempty"`
}

func (w *WorldConfig) validate() error {
	el := errors.NewErrorList()

	if w.StartRoom == "" {
		el.Add(fmt.Errorf("start_room must be set"))
	}

	if w.StartHP < 0 {
		el.Add(fmt.Errorf("start_hp must not be negative"))
	}

	for i, b := range w.Bots {
		if err := b.validate(); err != nil {
			el.Add(fmt.Errorf("bot %d: %w", i, err))
		}
	}

	return el.Err()
}

func (w *WorldConfig) startHP() int {
	if w.StartHP == 0 {
		return player.DefaultStartHP
	}
	return w.StartHP
}

type BotConfig struct {
	Id   string  `json:"id"`
	Kind BotKind `json:"kind"`
	Room string  `json:"room"`
	HP   int     `json:"hp,omitempty"`

	// Items is the bot's starting inventory.
	Items map[string]int `json:"items,omitempty"`

	// Prices maps sellable item ids to cost ledgers. Shopkeeps only.
	Prices map[string]map[string]int `json:"prices,omitempty"`

	// Every is how many ticks a wanderer waits between moves.
	Every int   `json:"every,omitempty"`
	Seed  int64 `json:"seed,omitempty"`
}

func (b *BotConfig) validate() error {
	el := errors.NewErrorList()

	if b.Id == "" {
		el.Add(fmt.Errorf("id must be set"))
	}

	if b.Room == "" {
		el.Add(fmt.Errorf("room must be set"))
	}

	return el.Err()
}

// BuildBody creates the bot's body and attaches its scripted brain.
func (b *BotConfig) BuildBody(world *game.World, defaultHP int) *game.Body {
	hp := b.HP
	if hp == 0 {
		hp = defaultHP
	}

	body := game.NewBody(b.Id, b.Room, hp)
	for itemId, count := range b.Items {
		body.Items.Increment(itemId, count)
	}

	switch b.Kind {
	case BotKindWanderer:
		body.SetSource(bot.NewWanderer(world, b.Every, b.Seed))
	default:
		body.SetSource(bot.NewShopKeep(b.Prices))
	}

	return body
}
