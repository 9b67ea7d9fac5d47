package organizer

import (
	"cmp"
	"math"
	"slices"
)

// Visits records which sections the shopper has finished, keyed by section
// id. It is kept apart from organized sections so that re-organizing a list
// never loses it.
type Visits map[string]bool

// ApplyVisits returns a copy of sections with Visited taken from v.
func ApplyVisits(sections []Section, v Visits) []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		s.Visited = v[s.ID]
		out[i] = s
	}
	return out
}

// ShoppingRoute returns, in walk order, the ids of sections that still hold
// at least one unchecked item.
func ShoppingRoute(sections []Section) []string {
	pending := make([]Section, 0, len(sections))
	for _, s := range sections {
		if hasUnchecked(s) {
			pending = append(pending, s)
		}
	}
	slices.SortStableFunc(pending, func(a, b Section) int {
		return cmp.Compare(a.Order, b.Order)
	})

	ids := make([]string, len(pending))
	for i, s := range pending {
		ids[i] = s.ID
	}
	return ids
}

// NextSection returns the first section on the route not yet visited.
func NextSection(route []string, v Visits) (string, bool) {
	for _, id := range route {
		if !v[id] {
			return id, true
		}
	}
	return "", false
}

func hasUnchecked(s Section) bool {
	for _, it := range s.Items {
		if !it.Checked {
			return true
		}
	}
	return false
}

// Summary is the header of the shopping-mode screen.
type Summary struct {
	Items             int `json:"items"`
	Checked           int `json:"checked"`
	Sections          int `json:"sections"`
	RemainingSections int `json:"remaining_sections"`
	Calories          int `json:"calories"`
}

// Summarize totals organized sections. Calories are per-unit estimates
// multiplied by quantity, saturating at math.MaxInt.
func Summarize(sections []Section) Summary {
	sum := Summary{Sections: len(sections)}
	for _, s := range sections {
		if hasUnchecked(s) {
			sum.RemainingSections++
		}
		for _, it := range s.Items {
			sum.Items++
			if it.Checked {
				sum.Checked++
			}
			sum.Calories = addCalories(sum.Calories, it.Calories, it.EffectiveQuantity())
		}
	}
	return sum
}

func addCalories(total, each, quantity int) int {
	if each > 0 && quantity > (math.MaxInt-total)/each {
		return math.MaxInt
	}
	return total + each*quantity
}
