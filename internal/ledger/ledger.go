package ledger

import "sort"

// Ledger maps item ids to held counts. A count of zero is never
// stored; an absent entry means zero. All mutation of counts anywhere
// in the game goes through the primitives below.
type Ledger map[string]int

// New creates an empty ledger.
func New() Ledger {
	return Ledger{}
}

// Clone returns an independent copy of the ledger.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for id, n := range l {
		out[id] = n
	}
	return out
}

// Count returns the held count for an item id, zero if absent.
func (l Ledger) Count(itemId string) int {
	return l[itemId]
}

// Keys returns the held item ids in sorted order.
func (l Ledger) Keys() []string {
	out := make([]string, 0, len(l))
	for id := range l {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Increment adds amount to the entry for itemId, creating it if absent.
func (l Ledger) Increment(itemId string, amount int) {
	if amount <= 0 {
		return
	}
	l[itemId] += amount
}

// Decrement subtracts amount from the entry for itemId, deleting the
// entry when it reaches exactly zero. Decrementing an absent or
// insufficient entry is a caller-checked precondition; use Satisfies
// or Transfer when the count is not already known to cover the amount.
func (l Ledger) Decrement(itemId string, amount int) {
	if amount <= 0 {
		return
	}
	c, ok := l[itemId]
	if !ok {
		return
	}
	c -= amount
	if c == 0 {
		delete(l, itemId)
	} else {
		l[itemId] = c
	}
}

// Transfer moves amount of itemId from one ledger to another. The move
// is all-or-nothing: if from holds fewer than amount, neither ledger
// changes and Transfer reports false.
func Transfer(itemId string, from, to Ledger, amount int) bool {
	if amount <= 0 || from[itemId] < amount {
		return false
	}
	from.Decrement(itemId, amount)
	to.Increment(itemId, amount)
	return true
}

// Satisfies reports whether the ledger holds at least the required
// count for every item id in required.
func (l Ledger) Satisfies(required map[string]int) bool {
	for id, n := range required {
		if l[id] < n {
			return false
		}
	}
	return true
}
