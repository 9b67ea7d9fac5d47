package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dukerupert/hearth/internal/grocery"
	"github.com/dukerupert/hearth/internal/model"
	"github.com/dukerupert/hearth/internal/store"
	"github.com/dukerupert/hearth/internal/websocket"
)

type GroceryHandler struct {
	groceryStore *store.GroceryStore
	hub          *websocket.Hub
	logger       *slog.Logger
}

func NewGroceryHandler(gs *store.GroceryStore, hub *websocket.Hub, logger *slog.Logger) *GroceryHandler {
	return &GroceryHandler{groceryStore: gs, hub: hub, logger: logger}
}

func (h *GroceryHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

func (h *GroceryHandler) requireList(w http.ResponseWriter, r *http.Request) (*model.GroceryList, bool) {
	return loadList(w, r, h.groceryStore, h.logger)
}

// requireItem loads the {id} item and checks it belongs to listID.
func (h *GroceryHandler) requireItem(w http.ResponseWriter, r *http.Request, listID int64) (*model.CartItem, bool) {
	id := r.PathValue("id")
	item, err := h.groceryStore.GetItem(id)
	if err != nil {
		h.logger.Error("get item", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get item"})
		return nil, false
	}
	if item == nil || item.ListID != listID {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return nil, false
	}
	return item, true
}

// --- Lists ---

func (h *GroceryHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.groceryStore.ListLists()
	if err != nil {
		h.logger.Error("list lists", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list lists"})
		return
	}
	if lists == nil {
		lists = []model.GroceryList{}
	}
	writeJSON(w, http.StatusOK, lists)
}

func (h *GroceryHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	list, err := h.groceryStore.CreateList(req.Name)
	if err != nil {
		h.logger.Error("create list", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create list"})
		return
	}

	h.broadcast(websocket.NewMessage("grocery_list", "created", list.ID, "", nil))
	writeJSON(w, http.StatusCreated, list)
}

func (h *GroceryHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	list, ok := h.requireList(w, r)
	if !ok {
		return
	}

	if err := h.groceryStore.DeleteList(list.ID); err != nil {
		h.logger.Error("delete list", "list_id", list.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete list"})
		return
	}

	h.broadcast(websocket.NewMessage("grocery_list", "deleted", list.ID, "", nil))
	w.WriteHeader(http.StatusNoContent)
}

// --- Items ---

type cartItemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// validate trims the request and checks the category, returning the
// message for a 400 response or "".
func (req *cartItemRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.ToLower(strings.TrimSpace(req.Category))
	if req.Name == "" {
		return "name is required"
	}
	if req.Category != "" && !model.IsCategory(req.Category) {
		return "unknown category"
	}
	if req.Quantity < 0 {
		return "quantity must not be negative"
	}
	return ""
}

func (h *GroceryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	list, ok := h.requireList(w, r)
	if !ok {
		return
	}

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	// Auto-categorize if no category provided
	if req.Category == "" {
		req.Category = grocery.Categorize(req.Name)
	}

	item, err := h.groceryStore.CreateItem(list.ID, req.Name, req.Category, req.Quantity)
	if err != nil {
		h.logger.Error("create item", "list_id", list.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create item"})
		return
	}

	h.broadcast(websocket.NewMessage("cart_item", "created", list.ID, item.ID, nil))
	writeJSON(w, http.StatusCreated, item)
}

func (h *GroceryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	list, ok := h.requireList(w, r)
	if !ok {
		return
	}

	items, err := h.groceryStore.ListItemsByList(list.ID)
	if err != nil {
		h.logger.Error("list items", "list_id", list.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list items"})
		return
	}
	if items == nil {
		items = []model.CartItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *GroceryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	list, ok := h.requireList(w, r)
	if !ok {
		return
	}
	existing, ok := h.requireItem(w, r, list.ID)
	if !ok {
		return
	}

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	if req.Category == "" {
		req.Category = existing.CategorySlug
	}
	if req.Quantity == 0 {
		req.Quantity = existing.Quantity
	}

	item, err := h.groceryStore.UpdateItem(existing.ID, req.Name, req.Category, req.Quantity)
	if err != nil {
		h.logger.Error("update item", "id", existing.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update item"})
		return
	}

	h.broadcast(websocket.NewMessage("cart_item", "updated", list.ID, item.ID, nil))
	writeJSON(w, http.StatusOK, item)
}

func (h *GroceryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	list, ok := h.requireList(w, r)
	if !ok {
		return
	}
	existing, ok := h.requireItem(w, r, list.ID)
	if !ok {
		return
	}

	if err := h.groceryStore.DeleteItem(existing.ID); err != nil {
		h.logger.Error("delete item", "id", existing.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete item"})
		return
	}

	h.broadcast(websocket.NewMessage("cart_item", "deleted", list.ID, existing.ID, nil))
	w.WriteHeader(http.StatusNoContent)
}

func (h *GroceryHandler) ToggleChecked(w http.ResponseWriter, r *http.Request) {
	list, ok := h.requireList(w, r)
	if !ok {
		return
	}
	existing, ok := h.requireItem(w, r, list.ID)
	if !ok {
		return
	}

	item, err := h.groceryStore.ToggleChecked(existing.ID)
	if err != nil {
		h.logger.Error("toggle checked", "id", existing.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to toggle checked"})
		return
	}
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	action := "unchecked"
	if item.Checked {
		action = "checked"
	}
	h.broadcast(websocket.NewMessage("cart_item", action, list.ID, item.ID, nil))
	writeJSON(w, http.StatusOK, item)
}

func (h *GroceryHandler) ClearChecked(w http.ResponseWriter, r *http.Request) {
	list, ok := h.requireList(w, r)
	if !ok {
		return
	}

	count, err := h.groceryStore.ClearChecked(list.ID)
	if err != nil {
		h.logger.Error("clear checked", "list_id", list.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to clear checked"})
		return
	}

	if count > 0 {
		h.broadcast(websocket.NewMessage("cart_item", "cleared", list.ID, "", map[string]any{"count": count}))
	}
	writeJSON(w, http.StatusOK, map[string]int64{"cleared": count})
}
