package catalog

import (
	"fmt"
	"slices"

	"github.com/pixil98/go-errors"
)

// Equip types form a closed set. EquipTypeTool is the weapon slot; the
// armor slots contribute to damage reduction; food can only be consumed.
const (
	EquipTypeNone     = "none"
	EquipTypeFood     = "food"
	EquipTypeTool     = "tool"
	EquipTypeHelmet   = "helmet"
	EquipTypeArmor    = "armor"
	EquipTypeShield   = "shield"
	EquipTypeNecklace = "necklace"
)

// EquipSlots are the equip types that occupy an equipment slot.
var EquipSlots = []string{
	EquipTypeTool,
	EquipTypeHelmet,
	EquipTypeArmor,
	EquipTypeShield,
	EquipTypeNecklace,
}

// ArmorSlots are the equipment slots whose strength counts as defense.
var ArmorSlots = []string{
	EquipTypeHelmet,
	EquipTypeArmor,
	EquipTypeShield,
	EquipTypeNecklace,
}

// Item defines a type of item. Strength is the item's effect magnitude:
// bonus damage for tools, damage reduction for armor, health restored
// for food.
type Item struct {
	Description string `json:"description"`
	EquipType   string `json:"equip_type"`
	Strength    int    `json:"strength,omitempty"`
}

// Equippable reports whether the item occupies an equipment slot.
func (i *Item) Equippable() bool {
	return slices.Contains(EquipSlots, i.EquipType)
}

// Validate satisfies storage.ValidatingSpec.
func (i *Item) Validate() error {
	el := errors.NewErrorList()

	if i.Description == "" {
		el.Add(fmt.Errorf("description is required"))
	}

	switch i.EquipType {
	case EquipTypeNone, EquipTypeFood:
	default:
		if !slices.Contains(EquipSlots, i.EquipType) {
			el.Add(fmt.Errorf("unknown equip_type: %s", i.EquipType))
		}
	}

	return el.Err()
}
