package ledger

import "testing"

func TestIncrementDecrementRoundTrip(t *testing.T) {
	tests := map[string]struct {
		start  Ledger
		itemId string
		amount int
	}{
		"absent entry":   {start: Ledger{}, itemId: "gold", amount: 3},
		"existing entry": {start: Ledger{"gold": 2}, itemId: "gold", amount: 5},
		"other entries":  {start: Ledger{"hat": 1}, itemId: "gold", amount: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := tt.start.Clone()
			before := l.Count(tt.itemId)

			l.Increment(tt.itemId, tt.amount)
			l.Decrement(tt.itemId, tt.amount)

			if got := l.Count(tt.itemId); got != before {
				t.Errorf("count = %d, expected %d", got, before)
			}
			for id, n := range l {
				if n <= 0 {
					t.Errorf("ledger stores non-positive count %d for %q", n, id)
				}
			}
		})
	}
}

func TestDecrementRemovesZeroEntries(t *testing.T) {
	l := Ledger{"gold": 2}
	l.Decrement("gold", 2)

	if _, ok := l["gold"]; ok {
		t.Error("zero-count entry should be deleted, not stored")
	}
}

func TestDecrementAbsentIsNoop(t *testing.T) {
	l := Ledger{"hat": 1}
	l.Decrement("gold", 1)

	if l.Count("hat") != 1 || len(l) != 1 {
		t.Errorf("decrementing an absent entry mutated the ledger: %v", l)
	}
}

func TestTransfer(t *testing.T) {
	tests := map[string]struct {
		from    Ledger
		to      Ledger
		amount  int
		expOk   bool
		expFrom int
		expTo   int
	}{
		"full amount": {
			from: Ledger{"gold": 5}, to: Ledger{},
			amount: 5, expOk: true, expFrom: 0, expTo: 5,
		},
		"partial amount": {
			from: Ledger{"gold": 5}, to: Ledger{"gold": 1},
			amount: 2, expOk: true, expFrom: 3, expTo: 3,
		},
		"insufficient leaves both unchanged": {
			from: Ledger{"gold": 1}, to: Ledger{},
			amount: 2, expOk: false, expFrom: 1, expTo: 0,
		},
		"absent leaves both unchanged": {
			from: Ledger{}, to: Ledger{"gold": 4},
			amount: 1, expOk: false, expFrom: 0, expTo: 4,
		},
		"zero amount rejected": {
			from: Ledger{"gold": 3}, to: Ledger{},
			amount: 0, expOk: false, expFrom: 3, expTo: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ok := Transfer("gold", tt.from, tt.to, tt.amount)

			if ok != tt.expOk {
				t.Errorf("ok = %v, expected %v", ok, tt.expOk)
			}
			if got := tt.from.Count("gold"); got != tt.expFrom {
				t.Errorf("from = %d, expected %d", got, tt.expFrom)
			}
			if got := tt.to.Count("gold"); got != tt.expTo {
				t.Errorf("to = %d, expected %d", got, tt.expTo)
			}
		})
	}
}

func TestSatisfies(t *testing.T) {
	tests := map[string]struct {
		held     Ledger
		required map[string]int
		exp      bool
	}{
		"empty requirement":  {held: Ledger{}, required: nil, exp: true},
		"exact counts":       {held: Ledger{"leather": 1, "needle": 1}, required: map[string]int{"leather": 1, "needle": 1}, exp: true},
		"surplus counts":     {held: Ledger{"leather": 3}, required: map[string]int{"leather": 1}, exp: true},
		"missing item":       {held: Ledger{"leather": 1}, required: map[string]int{"needle": 1}, exp: false},
		"insufficient count": {held: Ledger{"leather": 1}, required: map[string]int{"leather": 2}, exp: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.held.Satisfies(tt.required); got != tt.exp {
				t.Errorf("got %v, expected %v", got, tt.exp)
			}
		})
	}
}
