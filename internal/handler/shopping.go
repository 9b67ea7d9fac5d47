package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dukerupert/hearth/internal/model"
	"github.com/dukerupert/hearth/internal/organizer"
	"github.com/dukerupert/hearth/internal/store"
	"github.com/dukerupert/hearth/internal/websocket"
)

// ShoppingHandler serves shopping mode: a list organized into store
// sections, with the shopper's visited sections carried across refreshes.
type ShoppingHandler struct {
	groceryStore *store.GroceryStore
	organizer    *organizer.Organizer
	hub          *websocket.Hub
	logger       *slog.Logger
}

func NewShoppingHandler(gs *store.GroceryStore, org *organizer.Organizer, hub *websocket.Hub, logger *slog.Logger) *ShoppingHandler {
	return &ShoppingHandler{groceryStore: gs, organizer: org, hub: hub, logger: logger}
}

func (h *ShoppingHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

type shoppingResponse struct {
	List        *model.GroceryList  `json:"list"`
	Sections    []organizer.Section `json:"sections"`
	Route       []string            `json:"route"`
	NextSection string              `json:"next_section,omitempty"`
	Summary     organizer.Summary   `json:"summary"`
}

func (h *ShoppingHandler) Shopping(w http.ResponseWriter, r *http.Request) {
	list, ok := loadList(w, r, h.groceryStore, h.logger)
	if !ok {
		return
	}

	items, err := h.groceryStore.ListItemsByList(list.ID)
	if err != nil {
		h.logger.Error("list items", "list_id", list.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list items"})
		return
	}
	visits, err := h.groceryStore.Visits(list.ID)
	if err != nil {
		h.logger.Error("list visits", "list_id", list.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list visits"})
		return
	}

	sections := organizer.ApplyVisits(h.organizer.Organize(items), visits)
	route := organizer.ShoppingRoute(sections)
	next, _ := organizer.NextSection(route, visits)

	writeJSON(w, http.StatusOK, shoppingResponse{
		List:        list,
		Sections:    sections,
		Route:       route,
		NextSection: next,
		Summary:     organizer.Summarize(sections),
	})
}

// SetVisited marks a section visited. The body {"visited": false} clears
// the mark; an empty body means true.
func (h *ShoppingHandler) SetVisited(w http.ResponseWriter, r *http.Request) {
	list, ok := loadList(w, r, h.groceryStore, h.logger)
	if !ok {
		return
	}

	sectionID := r.PathValue("section_id")
	if !organizer.IsSectionID(sectionID) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "section not found"})
		return
	}

	var req struct {
		Visited *bool `json:"visited"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	visited := req.Visited == nil || *req.Visited

	if err := h.groceryStore.SetVisited(list.ID, sectionID, visited); err != nil {
		h.logger.Error("set visited", "list_id", list.ID, "section", sectionID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update section"})
		return
	}

	action := "unvisited"
	if visited {
		action = "visited"
	}
	h.broadcast(websocket.NewMessage("section", action, list.ID, sectionID, nil))
	writeJSON(w, http.StatusOK, map[string]any{"section_id": sectionID, "visited": visited})
}

func (h *ShoppingHandler) ResetVisits(w http.ResponseWriter, r *http.Request) {
	list, ok := loadList(w, r, h.groceryStore, h.logger)
	if !ok {
		return
	}

	if err := h.groceryStore.ResetVisits(list.ID); err != nil {
		h.logger.Error("reset visits", "list_id", list.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to reset visits"})
		return
	}

	h.broadcast(websocket.NewMessage("section", "reset", list.ID, "", nil))
	w.WriteHeader(http.StatusNoContent)
}
