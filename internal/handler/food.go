package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dukerupert/hearth/internal/catalog"
	"github.com/dukerupert/hearth/internal/model"
	"github.com/dukerupert/hearth/internal/organizer"
)

const maxSearchLimit = 50

// FoodHandler serves the read-only food catalog.
type FoodHandler struct {
	catalog *catalog.Catalog
	limit   int
}

// NewFoodHandler returns a handler searching c. defaultLimit applies when a
// request carries no positive limit.
func NewFoodHandler(c *catalog.Catalog, defaultLimit int) *FoodHandler {
	if defaultLimit <= 0 {
		defaultLimit = catalog.DefaultLimit
	}
	return &FoodHandler{catalog: c, limit: defaultLimit}
}

type searchResponse struct {
	Query       string             `json:"query"`
	Results     []catalog.FoodItem `json:"results"`
	Suggestions []catalog.FoodItem `json:"suggestions,omitempty"`
}

func (h *FoodHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	limit := h.limit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		if n > 0 {
			limit = min(n, maxSearchLimit)
		}
	}

	resp := searchResponse{Query: q, Results: h.catalog.Search(q, limit)}
	if len(resp.Results) == 0 && strings.TrimSpace(q) != "" {
		resp.Suggestions = h.catalog.Suggest(q, limit)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *FoodHandler) Match(w http.ResponseWriter, r *http.Request) {
	item, ok := h.catalog.Find(r.URL.Query().Get("q"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no matching food"})
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *FoodHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.Categories)
}

func (h *FoodHandler) Sections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, organizer.Sections())
}
