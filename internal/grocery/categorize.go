package grocery

import (
	"strings"

	"github.com/dukerupert/hearth/internal/catalog"
	"github.com/dukerupert/hearth/internal/model"
)

// Categorize returns the category slug for a free-text item name.
// It checks the food catalog for an exact name or alias first, then an
// ordered substring table. Falls back to "other" if nothing matches.
func Categorize(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return model.CategoryOther
	}

	// Phase 1: catalog name or alias
	if item, ok := catalog.Default().Lookup(name); ok {
		return item.Category
	}

	// Phase 2: substring match (ordered longer/more-specific first)
	for _, entry := range substringMatches {
		if strings.Contains(name, entry.keyword) {
			return entry.category
		}
	}

	return model.CategoryOther
}

type substringEntry struct {
	keyword  string
	category string
}

var substringMatches = []substringEntry{
	// Phrases that would otherwise hit a shorter, wrong keyword
	{"peanut butter", model.CategoryPantry},
	{"ice cream", model.CategoryFrozen},
	{"frozen", model.CategoryFrozen},
	{"orange juice", model.CategoryBeverages},
	{"apple juice", model.CategoryBeverages},
	{"sparkling water", model.CategoryBeverages},
	{"tomato sauce", model.CategoryCanned},
	{"pasta sauce", model.CategoryCanned},
	{"canned", model.CategoryCanned},
	{"potato chip", model.CategorySnacks},
	{"granola bar", model.CategorySnacks},
	{"trail mix", model.CategorySnacks},
	{"fruit snack", model.CategorySnacks},
	{"paper towel", model.CategoryHousehold},
	{"toilet paper", model.CategoryHousehold},
	{"dish soap", model.CategoryHousehold},
	{"body wash", model.CategoryPersonalCare},
	{"foil", model.CategoryHousehold},
	{"veggie", model.CategoryProduce},

	// Meat & seafood
	{"chicken", model.CategoryMeat},
	{"beef", model.CategoryMeat},
	{"pork", model.CategoryMeat},
	{"turkey", model.CategoryMeat},
	{"bacon", model.CategoryMeat},
	{"sausage", model.CategoryMeat},
	{"steak", model.CategoryMeat},
	{"salmon", model.CategoryMeat},
	{"shrimp", model.CategoryMeat},
	{"tuna", model.CategoryMeat},
	{"fish", model.CategoryMeat},
	{"hot dog", model.CategoryMeat},

	// Dairy & eggs
	{"yogurt", model.CategoryDairy},
	{"cheese", model.CategoryDairy},
	{"milk", model.CategoryDairy},
	{"butter", model.CategoryDairy},
	{"cream", model.CategoryDairy},
	{"egg", model.CategoryDairy},

	// Produce
	{"salad", model.CategoryProduce},
	{"lettuce", model.CategoryProduce},
	{"spinach", model.CategoryProduce},
	{"kale", model.CategoryProduce},
	{"berries", model.CategoryProduce},
	{"berry", model.CategoryProduce},
	{"melon", model.CategoryProduce},
	{"apple", model.CategoryProduce},
	{"banana", model.CategoryProduce},
	{"tomato", model.CategoryProduce},
	{"potato", model.CategoryProduce},
	{"onion", model.CategoryProduce},
	{"pepper", model.CategoryProduce},
	{"carrot", model.CategoryProduce},
	{"squash", model.CategoryProduce},
	{"herb", model.CategoryProduce},
	{"fruit", model.CategoryProduce},

	// Bakery
	{"sourdough", model.CategoryBakery},
	{"bread", model.CategoryBakery},
	{"bagel", model.CategoryBakery},
	{"tortilla", model.CategoryBakery},
	{"muffin", model.CategoryBakery},
	{"croissant", model.CategoryBakery},
	{"bun", model.CategoryBakery},

	// Pantry
	{"rice", model.CategoryGrains},
	{"pasta", model.CategoryGrains},
	{"noodle", model.CategoryGrains},
	{"oat", model.CategoryGrains},
	{"bean", model.CategoryCanned},
	{"soup", model.CategoryCanned},
	{"broth", model.CategoryCanned},
	{"oil", model.CategoryCondiments},
	{"vinegar", model.CategoryCondiments},
	{"sauce", model.CategoryCondiments},
	{"spice", model.CategoryCondiments},
	{"seasoning", model.CategoryCondiments},
	{"flour", model.CategoryPantry},
	{"sugar", model.CategoryPantry},
	{"cereal", model.CategoryPantry},
	{"honey", model.CategoryPantry},

	// Snacks
	{"chip", model.CategorySnacks},
	{"cracker", model.CategorySnacks},
	{"cookie", model.CategorySnacks},
	{"pretzel", model.CategorySnacks},
	{"popcorn", model.CategorySnacks},
	{"candy", model.CategorySnacks},
	{"chocolate", model.CategorySnacks},
	{"snack", model.CategorySnacks},

	// Beverages
	{"coffee", model.CategoryBeverages},
	{"tea", model.CategoryBeverages},
	{"juice", model.CategoryBeverages},
	{"soda", model.CategoryBeverages},
	{"water", model.CategoryBeverages},
	{"beer", model.CategoryBeverages},
	{"wine", model.CategoryBeverages},
	{"drink", model.CategoryBeverages},

	// Household & personal care
	{"detergent", model.CategoryHousehold},
	{"laundry", model.CategoryHousehold},
	{"cleaner", model.CategoryHousehold},
	{"sponge", model.CategoryHousehold},
	{"trash bag", model.CategoryHousehold},
	{"shampoo", model.CategoryPersonalCare},
	{"toothpaste", model.CategoryPersonalCare},
	{"deodorant", model.CategoryPersonalCare},
	{"soap", model.CategoryPersonalCare},
}
