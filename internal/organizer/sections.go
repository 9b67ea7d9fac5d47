package organizer

import (
	"strings"

	"github.com/dukerupert/hearth/internal/model"
)

type sectionDef struct {
	name       string
	icon       string
	categories []string
}

// sectionTable is the shelf-walk order of a typical store. The last entry
// catches every category not listed elsewhere.
var sectionTable = []sectionDef{
	{"Produce", "🥬", []string{model.CategoryProduce}},
	{"Dairy & Eggs", "🥛", []string{model.CategoryDairy}},
	{"Meat & Seafood", "🥩", []string{model.CategoryMeat}},
	{"Bakery", "🍞", []string{model.CategoryBakery}},
	{"Pantry", "🥫", []string{model.CategoryPantry, model.CategoryGrains, model.CategoryCanned, model.CategoryCondiments}},
	{"Snacks", "🍿", []string{model.CategorySnacks}},
	{"Beverages", "🧃", []string{model.CategoryBeverages}},
	{"Other", "🛒", []string{model.CategoryOther, model.CategoryFrozen, model.CategoryHousehold, model.CategoryPersonalCare}},
}

var (
	otherSection   = len(sectionTable) - 1
	sectionByCat   = map[string]int{}
	perishableCats = map[string]bool{model.CategoryProduce: true, model.CategoryDairy: true, model.CategoryMeat: true}
	sectionIDs     []string
)

func init() {
	for i, def := range sectionTable {
		for _, c := range def.categories {
			sectionByCat[c] = i
		}
		sectionIDs = append(sectionIDs, Slug(def.name))
	}
}

// Slug derives a section id from its display name: "Dairy & Eggs" becomes
// "dairy-eggs".
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}
	return b.String()
}

// sectionFor returns the table index for a category slug; unknown or empty
// slugs land in Other.
func sectionFor(category string) int {
	if i, ok := sectionByCat[strings.ToLower(strings.TrimSpace(category))]; ok {
		return i
	}
	return otherSection
}

func isPerishable(category string) bool {
	return perishableCats[strings.ToLower(strings.TrimSpace(category))]
}

// SectionInfo describes one fixed store section without items.
type SectionInfo struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Icon       string   `json:"icon"`
	Order      int      `json:"order"`
	Categories []string `json:"categories"`
}

// Sections returns the fixed section table in shelf-walk order.
func Sections() []SectionInfo {
	out := make([]SectionInfo, len(sectionTable))
	for i, def := range sectionTable {
		out[i] = SectionInfo{
			ID:         sectionIDs[i],
			Name:       def.name,
			Icon:       def.icon,
			Order:      i,
			Categories: append([]string(nil), def.categories...),
		}
	}
	return out
}

// IsSectionID reports whether id names one of the fixed sections.
func IsSectionID(id string) bool {
	for _, s := range sectionIDs {
		if s == id {
			return true
		}
	}
	return false
}
