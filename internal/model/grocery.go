package model

import "time"

// Category slugs shared by the food catalog, the list store and the organizer.
const (
	CategoryProduce      = "fruits-vegetables"
	CategoryDairy        = "dairy-eggs"
	CategoryMeat         = "meat-seafood"
	CategoryBakery       = "bakery"
	CategoryPantry       = "pantry"
	CategoryGrains       = "grains-pasta"
	CategoryCanned       = "canned-goods"
	CategoryCondiments   = "condiments-spices"
	CategorySnacks       = "snacks"
	CategoryBeverages    = "beverages"
	CategoryFrozen       = "frozen"
	CategoryHousehold    = "household"
	CategoryPersonalCare = "personal-care"
	CategoryOther        = "other"
)

// Categories lists every known category slug in shelf-walk order.
var Categories = []string{
	CategoryProduce,
	CategoryDairy,
	CategoryMeat,
	CategoryBakery,
	CategoryPantry,
	CategoryGrains,
	CategoryCanned,
	CategoryCondiments,
	CategorySnacks,
	CategoryBeverages,
	CategoryFrozen,
	CategoryHousehold,
	CategoryPersonalCare,
	CategoryOther,
}

// IsCategory reports whether slug is a known category.
func IsCategory(slug string) bool {
	for _, c := range Categories {
		if c == slug {
			return true
		}
	}
	return false
}

type GroceryList struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// CartItem is a single entry on a grocery list. An empty CategorySlug is
// treated as CategoryOther and a Quantity below 1 as 1.
type CartItem struct {
	ID           string     `json:"id"`
	ListID       int64      `json:"list_id,omitempty"`
	Name         string     `json:"name"`
	CategorySlug string     `json:"category_slug,omitempty"`
	Checked      bool       `json:"checked"`
	CheckedAt    *time.Time `json:"checked_at,omitempty"`
	Quantity     int        `json:"quantity"`
	SortOrder    int        `json:"sort_order,omitempty"`
	CreatedAt    time.Time  `json:"created_at,omitempty"`
}

// EffectiveQuantity returns the item's quantity, defaulting to 1.
func (c CartItem) EffectiveQuantity() int {
	if c.Quantity < 1 {
		return 1
	}
	return c.Quantity
}

// EffectiveCategory returns the item's category slug, defaulting to "other".
func (c CartItem) EffectiveCategory() string {
	if c.CategorySlug == "" {
		return CategoryOther
	}
	return c.CategorySlug
}
