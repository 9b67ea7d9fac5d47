package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dukerupert/hearth/internal/model"
	"github.com/dukerupert/hearth/internal/store"
)

func parseListID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("list_id"), 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// loadList resolves the list_id path value, writing the error response
// itself when the id is malformed or unknown.
func loadList(w http.ResponseWriter, r *http.Request, gs *store.GroceryStore, logger *slog.Logger) (*model.GroceryList, bool) {
	listID, err := parseListID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid list_id"})
		return nil, false
	}
	list, err := gs.GetList(listID)
	if err != nil {
		logger.Error("get list", "list_id", listID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get list"})
		return nil, false
	}
	if list == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "list not found"})
		return nil, false
	}
	return list, true
}
