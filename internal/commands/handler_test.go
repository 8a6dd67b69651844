package commands

import (
	"strings"
	"testing"
)

func TestHandler_GiveConservation(t *testing.T) {
	w, d := testWorld()
	ann, fl := spawn(t, w, "ann", "square", 10)
	bob, _ := spawn(t, w, "bob", "square", 10)
	ann.Items.Increment("gold", 5)

	d.Dispatch(ann, "give bob gold")

	if got := ann.Items.Count("gold"); got != 4 {
		t.Errorf("ann gold = %d, expected 4", got)
	}
	if got := bob.Items.Count("gold"); got != 1 {
		t.Errorf("bob gold = %d, expected 1", got)
	}
	if got := fl.texts(t, ann); !contains(got, "You gave to bob the gold.") {
		t.Errorf("got %v", got)
	}

	// Giving what you don't hold moves nothing.
	d.Dispatch(ann, "give bob sword")
	if bob.Items.Count("sword") != 0 {
		t.Error("bob should not receive a sword ann never held")
	}
	if got := fl.texts(t, ann); !contains(got, "There is no sword in your inventory") {
		t.Errorf("got %v", got)
	}

	d.Dispatch(ann, "give cal gold")
	if got := fl.texts(t, ann); !contains(got, "cal is not here") {
		t.Errorf("got %v", got)
	}
}

func TestHandler_RoomBroadcastAudience(t *testing.T) {
	w, d := testWorld()
	ann, fl := spawn(t, w, "ann", "square", 10)
	bob, bobLog := spawn(t, w, "bob", "square", 10)
	ann.Items.Increment("gold", 1)
	ann.Items.Increment("leather", 1)

	// Both parties hear a give.
	d.Dispatch(ann, "give bob gold")
	if got := fl.texts(t, ann); !contains(got, "ann give bob gold") {
		t.Errorf("the giver should hear the give, got %v", got)
	}
	if got := bobLog.texts(t, bob); !contains(got, "ann give bob gold") {
		t.Errorf("the receiver should hear the give, got %v", got)
	}

	// The whole room hears a drop, the actor included.
	d.Dispatch(ann, "drop leather")
	if got := fl.texts(t, ann); !contains(got, "ann drop leather") {
		t.Errorf("the actor should hear the drop, got %v", got)
	}

	// Take is the one action the actor does not hear back.
	d.Dispatch(ann, "take leather")
	if got := fl.texts(t, ann); contains(got, "ann take leather") {
		t.Errorf("the actor should not hear the take, got %v", got)
	}
	if got := bobLog.texts(t, bob); !contains(got, "ann take leather") {
		t.Errorf("the room should hear the take, got %v", got)
	}

	// The attacker hears the room-wide attack alongside the result.
	d.Dispatch(ann, "attack bob")
	if got := fl.texts(t, ann); !contains(got, "ann attack bob") {
		t.Errorf("the attacker should hear the attack, got %v", got)
	}
}

func TestHandler_TakeAndDrop(t *testing.T) {
	w, d := testWorld()
	ann, fl := spawn(t, w, "ann", "square", 10)

	rs := w.Room("square")
	rs.Items.Increment("gold", 3)
	rs.Items.Increment("leather", 1)

	d.Dispatch(ann, "take gold")
	if ann.Items.Count("gold") != 1 || rs.Items.Count("gold") != 2 {
		t.Errorf("after take: ann=%d room=%d", ann.Items.Count("gold"), rs.Items.Count("gold"))
	}

	d.Dispatch(ann, "take all")
	if ann.Items.Count("gold") != 3 || ann.Items.Count("leather") != 1 {
		t.Errorf("after take all: %v", ann.Items)
	}
	if len(rs.Items) != 0 {
		t.Errorf("room pool should be empty, got %v", rs.Items)
	}

	d.Dispatch(ann, "drop leather")
	if ann.Items.Count("leather") != 0 || rs.Items.Count("leather") != 1 {
		t.Error("drop should move the item to the room pool")
	}

	d.Dispatch(ann, "take sword")
	if got := fl.texts(t, ann); !contains(got, "There is no sword here") {
		t.Errorf("got %v", got)
	}
}

func TestHandler_EquipSlotExclusivity(t *testing.T) {
	w, d := testWorld()
	ann, fl := spawn(t, w, "ann", "square", 10)
	ann.Items.Increment("sword", 1)
	ann.Items.Increment("needle", 1)

	d.Dispatch(ann, "equip sword")
	if ann.Equipment["tool"] != "sword" || ann.Items.Count("sword") != 0 {
		t.Errorf("equipment = %v items = %v", ann.Equipment, ann.Items)
	}

	// A second tool evicts the first back to inventory.
	d.Dispatch(ann, "equip needle")
	if ann.Equipment["tool"] != "needle" {
		t.Errorf("slot = %q, expected needle", ann.Equipment["tool"])
	}
	if ann.Items.Count("sword") != 1 {
		t.Error("evicted sword should return to inventory")
	}

	d.Dispatch(ann, "equip gold")
	if got := fl.texts(t, ann); !contains(got, "You don't have the gold.") {
		t.Errorf("got %v", got)
	}

	ann.Items.Increment("gold", 1)
	d.Dispatch(ann, "equip gold")
	if got := fl.texts(t, ann); !contains(got, "You can't equip the gold.") {
		t.Errorf("got %v", got)
	}

	d.Dispatch(ann, "remove needle")
	if len(ann.Equipment) != 0 || ann.Items.Count("needle") != 1 {
		t.Errorf("after remove: equipment = %v items = %v", ann.Equipment, ann.Items)
	}

	d.Dispatch(ann, "remove hat")
	if got := fl.texts(t, ann); !contains(got, "There is no hat to remove.") {
		t.Errorf("got %v", got)
	}
}

func TestHandler_AttackDamage(t *testing.T) {
	w, d := testWorld()
	ann, fl := spawn(t, w, "ann", "square", 10)
	bob, bobLog := spawn(t, w, "bob", "square", 10)

	// Bare fists land exactly one point.
	d.Dispatch(ann, "attack bob")
	if bob.HP != 9 {
		t.Errorf("bob hp = %d, expected 9", bob.HP)
	}
	if got := fl.texts(t, ann); !contains(got, "You attacked bob with bare fists for 1 damage.") {
		t.Errorf("got %v", got)
	}
	if got := bobLog.texts(t, bob); !contains(got, "ann damage 1") {
		t.Errorf("bob heard %v", got)
	}

	// Weapon strength adds, armor strength subtracts.
	ann.Items.Increment("sword", 1)
	bob.Items.Increment("shield", 1)
	d.Dispatch(ann, "equip sword")
	d.Dispatch(bob, "equip shield")

	d.Dispatch(ann, "attack bob")
	if bob.HP != 6 {
		t.Errorf("bob hp = %d, expected 6 after 1+4-2 damage", bob.HP)
	}

	// Damage never goes negative.
	bob.Equipment["tool"] = "shield"
	delete(bob.Equipment, "shield")
	bob.Equipment["shield"] = "shield"
	bob.Equipment["helmet"] = "hat"
	delete(ann.Equipment, "tool")
	hp := bob.HP
	d.Dispatch(ann, "attack bob")
	if bob.HP != hp {
		t.Errorf("bob hp = %d, expected unchanged %d with armor over attack", bob.HP, hp)
	}
}

func TestHandler_LootRequiresKnockout(t *testing.T) {
	w, d := testWorld()
	ann, fl := spawn(t, w, "ann", "square", 10)
	bob, _ := spawn(t, w, "bob", "square", 1)
	bob.Items.Increment("gold", 3)
	bob.Items.Increment("shield", 1)
	d.Dispatch(bob, "equip shield")

	d.Dispatch(ann, "loot bob")
	if got := fl.texts(t, ann); !contains(got, "bob knocks your hand away from his pockets.") {
		t.Errorf("got %v", got)
	}
	if bob.Items.Count("gold") != 3 {
		t.Error("nothing should move while bob is conscious")
	}

	bob.HP = 0
	d.Dispatch(ann, "loot bob")

	if ann.Items.Count("gold") != 3 || ann.Items.Count("shield") != 1 {
		t.Errorf("ann items = %v, expected all of bob's goods", ann.Items)
	}
	if len(bob.Items) != 0 || len(bob.Equipment) != 0 {
		t.Errorf("bob should be stripped, items = %v equipment = %v", bob.Items, bob.Equipment)
	}
}

func TestHandler_MakeScenario(t *testing.T) {
	w, d := testWorld()
	ann, fl := spawn(t, w, "ann", "square", 10)

	d.Dispatch(ann, "make cake")
	if got := fl.texts(t, ann); !contains(got, "cake isn't a recipe.") {
		t.Errorf("got %v", got)
	}

	d.Dispatch(ann, "make hat")
	if got := fl.texts(t, ann); !contains(got, "You don't have all of the tools.") {
		t.Errorf("got %v", got)
	}

	ann.Items.Increment("needle", 1)
	d.Dispatch(ann, "make hat")
	if got := fl.texts(t, ann); !contains(got, "You don't have all of the ingredients") {
		t.Errorf("got %v", got)
	}

	ann.Items.Increment("leather", 2)
	d.Dispatch(ann, "make hat")

	if got := ann.Items.Count("hat"); got != 1 {
		t.Errorf("hat = %d, expected 1", got)
	}
	if got := ann.Items.Count("leather"); got != 0 {
		t.Errorf("leather = %d, expected ingredients consumed", got)
	}
	if got := ann.Items.Count("needle"); got != 1 {
		t.Errorf("needle = %d, expected tools kept", got)
	}
}

func TestHandler_MoveAndLook(t *testing.T) {
	w, d := testWorld()
	ann, fl := spawn(t, w, "ann", "square", 10)

	d.Dispatch(ann, "south")
	if ann.RoomId != "square" {
		t.Errorf("room = %q, expected a failed move to stay put", ann.RoomId)
	}
	if got := fl.texts(t, ann); !contains(got, "You can't go south. There is no exit that way") {
		t.Errorf("got %v", got)
	}

	d.Dispatch(ann, "north")
	if ann.RoomId != "market" {
		t.Errorf("room = %q, expected market", ann.RoomId)
	}
	if got := fl.texts(t, ann); !contains(got, "ROOM: A market.") {
		t.Errorf("moving should describe the new room, got %v", got)
	}
}

func TestHandler_ConsumeFood(t *testing.T) {
	w, d := testWorld()
	ann, fl := spawn(t, w, "ann", "square", 5)

	d.Dispatch(ann, "eat egg")
	if got := fl.texts(t, ann); !contains(got, "You don't have a egg to eat.") {
		t.Errorf("got %v", got)
	}

	ann.Items.Increment("egg", 1)
	ann.Items.Increment("sword", 1)

	d.Dispatch(ann, "eat egg")
	if ann.HP != 6 {
		t.Errorf("hp = %d, expected 6", ann.HP)
	}
	if ann.Items.Count("egg") != 0 {
		t.Error("eaten food should leave the ledger")
	}

	d.Dispatch(ann, "drink sword")
	if got := fl.texts(t, ann); !contains(got, "You can't drink a sword, for it is a tool.") {
		t.Errorf("got %v", got)
	}
}

func TestHandler_ExchangeNotifies(t *testing.T) {
	w, d := testWorld()
	ann, fl := spawn(t, w, "ann", "square", 10)
	bob, bobLog := spawn(t, w, "bob", "square", 10)
	ann.Items.Increment("gold", 5)

	d.Dispatch(ann, "buy bob hat")

	// Nothing moves; the target just hears the request.
	if ann.Items.Count("gold") != 5 || bob.Items.Count("gold") != 0 {
		t.Error("buy must not move items by itself")
	}
	if got := bobLog.texts(t, bob); !contains(got, "ann buy hat") {
		t.Errorf("bob heard %v", got)
	}

	d.Dispatch(ann, "sell cal hat")
	if got := fl.texts(t, ann); !contains(got, "cal is not here to sell to.") {
		t.Errorf("got %v", got)
	}
}

func TestHandler_Listings(t *testing.T) {
	w, d := testWorld()
	ann, fl := spawn(t, w, "ann", "square", 10)

	d.Dispatch(ann, "inv")
	got := strings.Join(fl.texts(t, ann), "\n")
	if !strings.Contains(got, "Equipped:") || !strings.Contains(got, "none") {
		t.Errorf("empty inventory listing = %q", got)
	}

	ann.Items.Increment("gold", 2)
	ann.Items.Increment("hat", 1)
	d.Dispatch(ann, "equip hat")
	d.Dispatch(ann, "inv")
	got = strings.Join(fl.texts(t, ann), "\n")
	if !strings.Contains(got, "(helmet) hat - a hat") || !strings.Contains(got, "2 gold - a coin") {
		t.Errorf("inventory listing = %q", got)
	}

	d.Dispatch(ann, "who")
	got = strings.Join(fl.texts(t, ann), "\n")
	if !strings.Contains(got, "ann - square") {
		t.Errorf("who listing = %q", got)
	}

	d.Dispatch(ann, "help")
	got = strings.Join(fl.texts(t, ann), "\n")
	if !strings.Contains(got, "give target item") || !strings.Contains(got, "quit") {
		t.Errorf("help listing = %q", got)
	}

	d.Dispatch(ann, "explain take")
	got = strings.Join(fl.texts(t, ann), "\n")
	if !strings.Contains(got, `take: Use: "take <item name>"`) {
		t.Errorf("explain = %q", got)
	}

	d.Dispatch(ann, "explain dance")
	got = strings.Join(fl.texts(t, ann), "\n")
	if !strings.Contains(got, `There is no command "dance"`) {
		t.Errorf("explain unknown = %q", got)
	}
}

func TestHandler_QuitBroadcasts(t *testing.T) {
	w, d := testWorld()
	ann, _ := spawn(t, w, "ann", "square", 10)
	bob, bobLog := spawn(t, w, "bob", "market", 10)

	d.Dispatch(ann, "quit")

	if !ann.Quit {
		t.Error("quit should mark the body")
	}
	if got := bobLog.texts(t, bob); !contains(got, "ann quit") {
		t.Errorf("the whole server should hear the quit, got %v", got)
	}
}
