package bot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pixil98/deepmud/internal/game"
	"github.com/pixil98/deepmud/internal/ledger"
)

// ShopKeep is a scripted trader. It tracks what each customer has
// handed over and completes buy/sell/retrieve requests with the
// give counterpart once the cooperative exchange is covered.
type ShopKeep struct {
	// Prices maps a sellable item id to its cost ledger.
	Prices map[string]map[string]int

	credit map[string]ledger.Ledger
	events []game.Event
}

func NewShopKeep(prices map[string]map[string]int) *ShopKeep {
	return &ShopKeep{
		Prices: prices,
		credit: make(map[string]ledger.Ledger),
	}
}

func (s *ShopKeep) Observe(ev game.Event) {
	s.events = append(s.events, ev)
}

// Poll turns the observed events into commands for the keeper's body.
func (s *ShopKeep) Poll(b *game.Body) []string {
	events := s.events
	s.events = nil

	var cmds []string
	for _, ev := range events {
		switch ev.Verb {
		case "give":
			cmds = append(cmds, s.onGive(b, ev)...)
		case "buy":
			cmds = append(cmds, s.onBuy(ev)...)
		case "sell":
			cmds = append(cmds, s.onSell(ev)...)
		case "retrieve":
			cmds = append(cmds, s.onRetrieve(ev)...)
		}
	}
	return cmds
}

// onGive records what a customer handed over. The payload carries the
// recipient and the item; only gifts to the keeper itself count.
func (s *ShopKeep) onGive(b *game.Body, ev game.Event) []string {
	fields := strings.Fields(ev.Payload)
	if len(fields) != 2 || fields[0] != b.Id {
		return nil
	}

	s.customer(ev.From).Increment(fields[1], 1)
	return nil
}

// onBuy hands the item over when the customer's credit covers its
// price.
func (s *ShopKeep) onBuy(ev game.Event) []string {
	itemId := ev.Payload
	price, ok := s.Prices[itemId]
	if !ok {
		return []string{fmt.Sprintf("tell %s I don't sell %s.", ev.From, itemId)}
	}

	credit := s.customer(ev.From)
	if !credit.Satisfies(price) {
		return []string{fmt.Sprintf("tell %s The %s costs %s.", ev.From, itemId, priceString(price))}
	}

	for _, costId := range credit.Keys() {
		if n, ok := price[costId]; ok {
			credit.Decrement(costId, n)
		}
	}
	return []string{fmt.Sprintf("give %s %s", ev.From, itemId)}
}

// onSell pays out the price once the customer has handed the item
// over.
func (s *ShopKeep) onSell(ev game.Event) []string {
	itemId := ev.Payload
	price, ok := s.Prices[itemId]
	if !ok {
		return []string{fmt.Sprintf("tell %s I don't deal in %s.", ev.From, itemId)}
	}

	credit := s.customer(ev.From)
	if credit.Count(itemId) < 1 {
		return []string{fmt.Sprintf("tell %s Give me the %s first.", ev.From, itemId)}
	}
	credit.Decrement(itemId, 1)

	var cmds []string
	for _, costId := range sortedKeys(price) {
		for i := 0; i < price[costId]; i++ {
			cmds = append(cmds, fmt.Sprintf("give %s %s", ev.From, costId))
		}
	}
	return cmds
}

// onRetrieve returns an item the customer left with the keeper.
func (s *ShopKeep) onRetrieve(ev game.Event) []string {
	itemId := ev.Payload
	credit := s.customer(ev.From)
	if credit.Count(itemId) < 1 {
		return []string{fmt.Sprintf("tell %s I'm not holding a %s for you.", ev.From, itemId)}
	}

	credit.Decrement(itemId, 1)
	return []string{fmt.Sprintf("give %s %s", ev.From, itemId)}
}

func (s *ShopKeep) customer(id string) ledger.Ledger {
	l, ok := s.credit[id]
	if !ok {
		l = ledger.New()
		s.credit[id] = l
	}
	return l
}

func priceString(price map[string]int) string {
	parts := make([]string, 0, len(price))
	for _, id := range sortedKeys(price) {
		parts = append(parts, fmt.Sprintf("%d %s", price[id], id))
	}
	return strings.Join(parts, ", ")
}

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
