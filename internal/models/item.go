package models

type ItemType string

const (
	// ItemVest halves the shortfall when a resolved bet pays out less
	// than its stake.
	ItemVest ItemType = "VEST"
	// ItemMagnifier reveals the average estimate of the other agents on
	// the live course. No effect on payout.
	ItemMagnifier ItemType = "MAGNIFIER"
	// ItemWarrant doubles the payout, for better or worse.
	ItemWarrant ItemType = "WARRANT"
)

// ShopItem describes a purchasable consumable
type ShopItem struct {
	ID          ItemType `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
}

// ShopCatalog is the fixed set of items for sale
var ShopCatalog = map[ItemType]ShopItem{
	ItemVest: {
		ID:          ItemVest,
		Name:        "Bouclier de CRS",
		Description: "Réduit les pertes de 50%. Idéal pour encaisser les bavures d'Hugo sans broncher.",
		Price:       500,
	},
	ItemMagnifier: {
		ID:          ItemMagnifier,
		Name:        "Radar de Chantier",
		Description: "Espionne la brigade pour voir l'estimation moyenne des autres adjoints.",
		Price:       300,
	},
	ItemWarrant: {
		ID:          ItemWarrant,
		Name:        "Abus de Pouvoir",
		Description: "Double vos gains... mais l'IGPN vous retire tout si l'enquête foire !",
		Price:       1000,
	},
}

// IsValidItemType reports whether the tag names a known consumable
func IsValidItemType(t ItemType) bool {
	_, ok := ShopCatalog[t]
	return ok
}
