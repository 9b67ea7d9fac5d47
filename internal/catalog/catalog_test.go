package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dukerupert/hearth/internal/model"
)

func names(items []FoodItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func indexOf(items []FoodItem, name string) int {
	for i, it := range items {
		if it.Name == name {
			return i
		}
	}
	return -1
}

func TestFindCaseAndWhitespace(t *testing.T) {
	want, ok := FindFoodItem("banana")
	require.True(t, ok)

	got, ok := FindFoodItem("  BaNaNa ")
	require.True(t, ok)
	require.Equal(t, want.Name, got.Name)
	require.Equal(t, "Banana", got.Name)
}

func TestFindPrecedence(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"milk", "Milk"},               // exact name
		{"tom", "Tomato"},              // exact alias beats substring of "Cherry Tomatoes"
		{"whole milk", "Milk"},         // exact alias
		{"berr", "Strawberries"},       // substring of name, first in catalog order
		{"crushed", "Canned Tomatoes"}, // substring of alias
		{"potassium", "Banana"},        // keyword
		{"omega", "Salmon"},            // keyword substring
		{"jalapeno", "Jalapeño"},       // diacritics folded
		{"JALAPEÑO", "Jalapeño"},       // case folded
		{"grape tomatoes", "Cherry Tomatoes"},
	}
	for _, tt := range tests {
		got, ok := FindFoodItem(tt.query)
		require.Truef(t, ok, "FindFoodItem(%q) found nothing", tt.query)
		require.Equalf(t, tt.want, got.Name, "FindFoodItem(%q)", tt.query)
	}
}

func TestFindNoMatch(t *testing.T) {
	for _, q := range []string{"", "   ", "xyzzy", "widget"} {
		_, ok := FindFoodItem(q)
		require.Falsef(t, ok, "FindFoodItem(%q) should not match", q)
	}
}

func TestSearchPrefixBeforeSubstring(t *testing.T) {
	got := SearchFoodItems("app", 8)
	require.Equal(t, []string{"Apple", "Apple Juice", "Pineapple"}, names(got))

	apple := indexOf(got, "Apple")
	pineapple := indexOf(got, "Pineapple")
	require.GreaterOrEqual(t, apple, 0)
	require.Less(t, apple, pineapple)
}

func TestSearchPassOrder(t *testing.T) {
	// exact name, then name prefix, then alias prefix, then substring.
	got := SearchFoodItems("tom", 8)
	require.Equal(t, []string{"Tomato", "Cherry Tomatoes", "Canned Tomatoes"}, names(got))

	got = SearchFoodItems("tea", 8)
	require.Equal(t, "Tea", got[0].Name)

	got = SearchFoodItems("oil", 8)
	require.Equal(t, []string{"Olive Oil"}, names(got))
}

func TestSearchEmptyQuery(t *testing.T) {
	require.Empty(t, SearchFoodItems("", 8))
	require.Empty(t, SearchFoodItems("   ", 8))
	require.NotNil(t, SearchFoodItems("", 8))
}

func TestSearchLimitAndDedup(t *testing.T) {
	for _, q := range []string{"a", "e", "c", "berr", "to"} {
		for _, limit := range []int{1, 3, 8} {
			got := SearchFoodItems(q, limit)
			require.LessOrEqualf(t, len(got), limit, "SearchFoodItems(%q, %d)", q, limit)

			seen := map[string]bool{}
			for _, it := range got {
				require.Falsef(t, seen[it.Name], "SearchFoodItems(%q, %d) duplicated %q", q, limit, it.Name)
				seen[it.Name] = true
			}
		}
	}
}

func TestSearchDefaultLimit(t *testing.T) {
	got := SearchFoodItems("e", 0)
	require.Len(t, got, DefaultLimit)
}

func TestSearchAliasMatchedOnce(t *testing.T) {
	// "Chicken" matches on its name and on both aliases.
	got := SearchFoodItems("chicken", 8)
	require.Equal(t, []string{"Chicken"}, names(got))
}

func TestLookupExactOnly(t *testing.T) {
	got, ok := Default().Lookup("Beef")
	require.True(t, ok)
	require.Equal(t, "Ground Beef", got.Name)

	_, ok = Default().Lookup("berr")
	require.False(t, ok)
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]FoodItem{{Name: "Milk"}, {Name: " milk "}})
	require.Error(t, err)

	_, err = New([]FoodItem{{Name: ""}})
	require.Error(t, err)
}

func TestResultsDoNotAliasCatalog(t *testing.T) {
	got, ok := FindFoodItem("apple")
	require.True(t, ok)
	got.Aliases[0] = "mutated"

	again, _ := FindFoodItem("apple")
	require.Equal(t, "apples", again.Aliases[0])
}

func TestDefaultCatalogCategoriesKnown(t *testing.T) {
	known := map[string]bool{}
	for _, c := range model.Categories {
		known[c] = true
	}
	for _, it := range Default().Items() {
		require.Truef(t, known[it.Category], "%s has unknown category %q", it.Name, it.Category)
	}
}

func TestSuggest(t *testing.T) {
	got := Default().Suggest("chkn", 5)
	require.NotEmpty(t, got)
	require.Equal(t, "Chicken", got[0].Name)

	require.Empty(t, Default().Suggest("", 5))
	require.LessOrEqual(t, len(Default().Suggest("e", 3)), 3)
}
