package organizer

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dukerupert/hearth/internal/model"
)

// edgeRand always draws the lowest or the highest value of a range.
type edgeRand struct{ high bool }

func (r edgeRand) IntN(n int) int {
	if r.high {
		return n - 1
	}
	return 0
}

func TestOrganizeScenario(t *testing.T) {
	o := NewSeeded(1)
	items := []model.CartItem{
		{ID: "1", Name: "Milk", CategorySlug: model.CategoryDairy, Quantity: 2},
		{ID: "2", Name: "Chips", CategorySlug: model.CategorySnacks, Quantity: 1},
		{ID: "3", Name: "Mystery Item", CategorySlug: "unknown-slug", Quantity: 1},
	}

	sections := o.Organize(items)
	require.Len(t, sections, 3)

	require.Equal(t, "Dairy & Eggs", sections[0].Name)
	require.Equal(t, "dairy-eggs", sections[0].ID)
	require.Len(t, sections[0].Items, 1)
	require.Equal(t, "Milk", sections[0].Items[0].Name)
	require.Equal(t, 80, sections[0].Items[0].Priority)
	require.Equal(t, 150, sections[0].Items[0].Calories)

	require.Equal(t, "Snacks", sections[1].Name)
	require.Len(t, sections[1].Items, 1)
	require.Equal(t, 50, sections[1].Items[0].Priority)

	require.Equal(t, "Other", sections[2].Name)
	require.Len(t, sections[2].Items, 1)
	require.Equal(t, "Mystery Item", sections[2].Items[0].Name)
	require.Equal(t, 50, sections[2].Items[0].Priority)
}

func TestOrganizeEveryItemOnce(t *testing.T) {
	o := NewSeeded(42)
	r := rand.New(rand.NewPCG(7, 7))
	cats := append([]string{"", "bogus", "DAIRY-EGGS"}, model.Categories...)

	for round := 0; round < 20; round++ {
		n := r.IntN(30)
		items := make([]model.CartItem, n)
		for i := range items {
			items[i] = model.CartItem{
				ID:           fmt.Sprintf("%d-%d", round, i),
				Name:         fmt.Sprintf("item %d", i),
				CategorySlug: cats[r.IntN(len(cats))],
				Quantity:     r.IntN(12),
			}
		}

		sections := o.Organize(items)

		seen := map[string]int{}
		lastOrder := -1
		for _, s := range sections {
			require.NotEmpty(t, s.Items, "empty section %s returned", s.ID)
			require.Greater(t, s.Order, lastOrder, "sections out of order")
			lastOrder = s.Order
			for _, it := range s.Items {
				seen[it.ID]++
			}
		}
		require.Len(t, seen, n)
		for id, count := range seen {
			require.Equalf(t, 1, count, "item %s appeared %d times", id, count)
		}
	}
}

func TestOrganizeEmpty(t *testing.T) {
	require.Empty(t, NewSeeded(1).Organize(nil))
}

func TestOrganizeSortsByPriorityStable(t *testing.T) {
	items := []model.CartItem{
		{ID: "a", Name: "Rice", CategorySlug: model.CategoryGrains, Quantity: 1},
		{ID: "b", Name: "Flour", CategorySlug: model.CategoryPantry, Quantity: 4},
		{ID: "c", Name: "Salt", CategorySlug: model.CategoryCondiments, Quantity: 1},
		{ID: "d", Name: "Beans", CategorySlug: model.CategoryCanned, Quantity: 2},
	}
	sections := NewSeeded(3).Organize(items)
	require.Len(t, sections, 1)
	require.Equal(t, "pantry", sections[0].ID)

	var ids []string
	for _, it := range sections[0].Items {
		ids = append(ids, it.ID)
	}
	require.Equal(t, []string{"b", "d", "a", "c"}, ids)
}

func TestOrganizeDefaults(t *testing.T) {
	sections := NewSeeded(1).Organize([]model.CartItem{{ID: "x", Name: "Thing"}})
	require.Len(t, sections, 1)
	it := sections[0].Items[0]
	require.Equal(t, "other", sections[0].ID)
	require.Equal(t, model.CategoryOther, it.CategorySlug)
	require.Equal(t, 1, it.Quantity)
	require.Equal(t, 50, it.Priority)
}

func TestPriority(t *testing.T) {
	tests := []struct {
		item model.CartItem
		want int
	}{
		{model.CartItem{CategorySlug: model.CategorySnacks, Quantity: 1}, 50},
		{model.CartItem{CategorySlug: model.CategoryProduce, Quantity: 1}, 70},
		{model.CartItem{CategorySlug: model.CategoryMeat, Quantity: 2}, 80},
		{model.CartItem{CategorySlug: model.CategoryBakery, Quantity: 3}, 65},
		{model.CartItem{CategorySlug: model.CategoryDairy, Quantity: 20}, 100},
		{model.CartItem{Quantity: 0}, 50},
		{model.CartItem{Quantity: -4}, 50},
		{model.CartItem{CategorySlug: model.CategoryProduce, Quantity: math.MaxInt/5 + 1}, 100},
		{model.CartItem{CategorySlug: model.CategoryProduce, Quantity: math.MaxInt}, 100},
		{model.CartItem{CategorySlug: model.CategorySnacks, Quantity: math.MaxInt}, 100},
	}
	for _, tt := range tests {
		require.Equalf(t, tt.want, Priority(tt.item), "Priority(%+v)", tt.item)
	}

	perishable := model.CartItem{CategorySlug: model.CategoryProduce, Quantity: 3}
	shelf := model.CartItem{CategorySlug: model.CategoryPantry, Quantity: 1}
	require.Greater(t, Priority(perishable), Priority(shelf))

	for q := -2; q < 40; q++ {
		for _, c := range model.Categories {
			p := Priority(model.CartItem{CategorySlug: c, Quantity: q})
			require.GreaterOrEqual(t, p, 0)
			require.LessOrEqual(t, p, 100)
		}
	}
}

func TestNutritionScoreRanges(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi int
	}{
		{"Fuji Apple", 80, 100},
		{"Baby Spinach", 80, 100},
		{"Greek Yogurt", 80, 100},
		{"Gummy Candy", 20, 50},
		{"Diet Soda", 20, 50},
		{"Vanilla Ice Cream", 20, 50},
		{"Paper Towels", 50, 90},
	}
	for _, high := range []bool{false, true} {
		o := New(edgeRand{high: high})
		for _, tt := range tests {
			got := o.NutritionScore(tt.name)
			require.GreaterOrEqualf(t, got, tt.lo, "NutritionScore(%q)", tt.name)
			require.Lessf(t, got, tt.hi, "NutritionScore(%q)", tt.name)
		}
	}

	require.Equal(t, 80, New(edgeRand{}).NutritionScore("apple"))
	require.Equal(t, 99, New(edgeRand{high: true}).NutritionScore("apple"))
}

func TestCalories(t *testing.T) {
	o := New(edgeRand{})
	tests := []struct {
		name string
		want int
	}{
		{"Apple", 95},
		{"banana bread", 105},
		{"Sourdough Bread", 80},
		{"2% Milk", 150},
		{"Chicken Thighs", 165},
		{"Brown Rice", 130},
		{"Pasta", 220},
		{"Cheddar Cheese", 110},
	}
	for _, tt := range tests {
		require.Equalf(t, tt.want, o.Calories(tt.name), "Calories(%q)", tt.name)
	}

	require.Equal(t, 50, New(edgeRand{}).Calories("Mystery"))
	require.Equal(t, 199, New(edgeRand{high: true}).Calories("Mystery"))
}

func TestNewSeededReproducible(t *testing.T) {
	items := []model.CartItem{{ID: "1", Name: "Widget"}, {ID: "2", Name: "Gadget"}}
	a := NewSeeded(99).Organize(items)
	b := NewSeeded(99).Organize(items)
	require.Equal(t, a, b)
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Dairy & Eggs":   "dairy-eggs",
		"Meat & Seafood": "meat-seafood",
		"Produce":        "produce",
		"  Other  ":      "other",
	}
	for in, want := range tests {
		require.Equal(t, want, Slug(in))
	}
}

func TestSectionsTable(t *testing.T) {
	secs := Sections()
	require.Len(t, secs, 8)
	for i, s := range secs {
		require.Equal(t, i, s.Order)
		require.True(t, IsSectionID(s.ID))
	}
	require.Equal(t, "other", secs[len(secs)-1].ID)
	require.False(t, IsSectionID("frozen"))
}
