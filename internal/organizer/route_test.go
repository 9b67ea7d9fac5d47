package organizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dukerupert/hearth/internal/model"
)

func cart() []model.CartItem {
	return []model.CartItem{
		{ID: "1", Name: "Apple", CategorySlug: model.CategoryProduce, Quantity: 3},
		{ID: "2", Name: "Milk", CategorySlug: model.CategoryDairy, Quantity: 1, Checked: true},
		{ID: "3", Name: "Bread", CategorySlug: model.CategoryBakery, Quantity: 1},
		{ID: "4", Name: "Cheese", CategorySlug: model.CategoryDairy, Quantity: 1, Checked: true},
		{ID: "5", Name: "Soap", CategorySlug: model.CategoryHousehold, Quantity: 2},
	}
}

func TestShoppingRouteSkipsCheckedSections(t *testing.T) {
	sections := NewSeeded(1).Organize(cart())
	require.Len(t, sections, 4)

	route := ShoppingRoute(sections)
	require.Equal(t, []string{"produce", "bakery", "other"}, route)
	require.NotContains(t, route, "dairy-eggs")
}

func TestShoppingRouteSortsByOrder(t *testing.T) {
	sections := []Section{
		{ID: "other", Order: 7, Items: []Item{{}}},
		{ID: "produce", Order: 0, Items: []Item{{}}},
		{ID: "snacks", Order: 5, Items: []Item{{}}},
	}
	require.Equal(t, []string{"produce", "snacks", "other"}, ShoppingRoute(sections))
}

func TestShoppingRouteEmpty(t *testing.T) {
	require.Empty(t, ShoppingRoute(nil))
}

func TestApplyVisitsSurvivesReorganize(t *testing.T) {
	o := NewSeeded(5)
	visits := Visits{"produce": true}

	items := cart()
	sections := ApplyVisits(o.Organize(items), visits)
	require.True(t, sections[0].Visited)

	items = append(items, model.CartItem{ID: "6", Name: "Banana", CategorySlug: model.CategoryProduce})
	sections = ApplyVisits(o.Organize(items), visits)
	require.Equal(t, "produce", sections[0].ID)
	require.True(t, sections[0].Visited)
	require.Len(t, sections[0].Items, 2)
	for _, s := range sections[1:] {
		require.False(t, s.Visited, s.ID)
	}
}

func TestApplyVisitsDoesNotMutateInput(t *testing.T) {
	sections := NewSeeded(1).Organize(cart())
	_ = ApplyVisits(sections, Visits{"produce": true})
	require.False(t, sections[0].Visited)
}

func TestNextSection(t *testing.T) {
	route := []string{"produce", "bakery", "other"}

	next, ok := NextSection(route, Visits{"produce": true})
	require.True(t, ok)
	require.Equal(t, "bakery", next)

	_, ok = NextSection(route, Visits{"produce": true, "bakery": true, "other": true})
	require.False(t, ok)
}

func TestSummarize(t *testing.T) {
	sections := New(edgeRand{}).Organize(cart())
	sum := Summarize(sections)

	require.Equal(t, 5, sum.Items)
	require.Equal(t, 2, sum.Checked)
	require.Equal(t, 4, sum.Sections)
	require.Equal(t, 3, sum.RemainingSections)
	// apple 95*3 + milk 150 + bread 80 + cheese 110 + soap 50*2
	require.Equal(t, 285+150+80+110+100, sum.Calories)
}

func TestSummarizeHugeQuantity(t *testing.T) {
	items := []model.CartItem{
		{ID: "1", Name: "Rice", CategorySlug: model.CategoryPantry, Quantity: math.MaxInt},
		{ID: "2", Name: "Bread", CategorySlug: model.CategoryBakery, Quantity: 2},
	}
	sum := Summarize(New(edgeRand{}).Organize(items))

	require.Equal(t, 2, sum.Items)
	require.Equal(t, math.MaxInt, sum.Calories)
}
