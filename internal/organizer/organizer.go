// Package organizer groups a flat grocery list into store sections in
// shelf-walk order and ranks the items inside each section.
package organizer

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dukerupert/hearth/internal/model"
)

const (
	basePriority      = 50
	perishableBonus   = 20
	quantityBonusEach = 5
	maxPriority       = 100
)

var healthyKeywords = []string{
	"apple", "banana", "broccoli", "spinach", "salmon", "chicken", "yogurt",
	"kale", "carrot", "blueberr", "avocado", "lentil",
}

var unhealthyKeywords = []string{"candy", "soda", "chips", "cookies", "ice cream"}

type calorieEntry struct {
	keyword  string
	calories int
}

// Checked in order; the first keyword contained in the name wins.
var calorieTable = []calorieEntry{
	{"apple", 95},
	{"banana", 105},
	{"bread", 80},
	{"milk", 150},
	{"chicken", 165},
	{"rice", 130},
	{"pasta", 220},
	{"cheese", 110},
}

// Rand is the source of the cosmetic nutrition and calorie draws.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Item is a cart item plus the scores derived for shopping mode. The scores
// are recomputed on every Organize call.
type Item struct {
	model.CartItem
	Priority       int `json:"priority"`
	NutritionScore int `json:"nutrition_score"`
	Calories       int `json:"calories"`
}

// Section is one store section with its items sorted by priority, highest
// first.
type Section struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Order   int    `json:"order"`
	Items   []Item `json:"items"`
	Visited bool   `json:"visited"`
}

// Organizer turns cart items into sections. It is safe for concurrent use.
type Organizer struct {
	mu  sync.Mutex
	rng Rand
}

// New returns an Organizer drawing from rng. A nil rng is replaced with a
// time-seeded generator.
func New(rng Rand) *Organizer {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Organizer{rng: rng}
}

// NewSeeded returns an Organizer whose draws are reproducible for seed.
func NewSeeded(seed uint64) *Organizer {
	return New(rand.New(rand.NewPCG(seed, seed)))
}

// between draws uniformly from [lo, hi).
func (o *Organizer) between(lo, hi int) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return lo + o.rng.IntN(hi-lo)
}

// Organize buckets items into the fixed store sections. Every input item
// appears in exactly one returned section; empty sections are omitted and
// the rest keep table order.
func (o *Organizer) Organize(items []model.CartItem) []Section {
	sections := make([]Section, len(sectionTable))
	for i, def := range sectionTable {
		sections[i] = Section{
			ID:    sectionIDs[i],
			Name:  def.name,
			Icon:  def.icon,
			Order: i,
		}
	}

	for _, ci := range items {
		it := o.smartItem(ci)
		idx := sectionFor(it.CategorySlug)
		sections[idx].Items = append(sections[idx].Items, it)
	}

	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		if len(s.Items) == 0 {
			continue
		}
		slices.SortStableFunc(s.Items, func(a, b Item) int {
			return cmp.Compare(b.Priority, a.Priority)
		})
		out = append(out, s)
	}
	return out
}

func (o *Organizer) smartItem(ci model.CartItem) Item {
	ci.Quantity = ci.EffectiveQuantity()
	ci.CategorySlug = ci.EffectiveCategory()
	return Item{
		CartItem:       ci,
		Priority:       Priority(ci),
		NutritionScore: o.NutritionScore(ci.Name),
		Calories:       o.Calories(ci.Name),
	}
}

// Priority scores how early an item should be picked: perishables and bulk
// quantities rank higher. The result is within [0, 100].
func Priority(ci model.CartItem) int {
	p := basePriority
	if isPerishable(ci.EffectiveCategory()) {
		p += perishableBonus
	}
	if q := ci.EffectiveQuantity(); q > 1 {
		p += min(q, maxPriority) * quantityBonusEach
	}
	return max(0, min(p, maxPriority))
}

// NutritionScore is a cosmetic placeholder, not a nutrition model: healthy
// names draw from [80,100), unhealthy ones from [20,50), the rest [50,90).
func (o *Organizer) NutritionScore(name string) int {
	n := strings.ToLower(name)
	switch {
	case containsAny(n, healthyKeywords):
		return o.between(80, 100)
	case containsAny(n, unhealthyKeywords):
		return o.between(20, 50)
	default:
		return o.between(50, 90)
	}
}

// Calories estimates calories per unit from a small lookup table, falling
// back to a draw from [50,200).
func (o *Organizer) Calories(name string) int {
	n := strings.ToLower(name)
	for _, e := range calorieTable {
		if strings.Contains(n, e.keyword) {
			return e.calories
		}
	}
	return o.between(50, 200)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
