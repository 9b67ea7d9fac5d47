package catalog

import "github.com/sahilm/fuzzy"

// Suggest returns up to limit entries whose name or alias fuzzily matches
// query, such as "chkn" for "Chicken". It is meant as a fallback when Search
// comes back empty and does not affect Search ordering.
func (c *Catalog) Suggest(query string, limit int) []FoodItem {
	q := normalize(query)
	if q == "" {
		return []FoodItem{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var targets []string
	var owners []int
	for i := range c.entries {
		targets = append(targets, c.entries[i].name)
		owners = append(owners, i)
		for _, a := range c.entries[i].aliases {
			targets = append(targets, a)
			owners = append(owners, i)
		}
	}

	matches := fuzzy.Find(q, targets)
	seen := make(map[int]bool, len(matches))
	results := make([]FoodItem, 0, limit)
	for _, m := range matches {
		if len(results) == limit {
			break
		}
		idx := owners[m.Index]
		if seen[idx] {
			continue
		}
		seen[idx] = true
		results = append(results, c.entries[idx].item.clone())
	}
	return results
}
