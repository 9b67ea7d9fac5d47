package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/hearth/internal/catalog"
	"github.com/dukerupert/hearth/internal/config"
	"github.com/dukerupert/hearth/internal/handler"
	"github.com/dukerupert/hearth/internal/middleware"
	"github.com/dukerupert/hearth/internal/organizer"
	"github.com/dukerupert/hearth/internal/store"
	ws "github.com/dukerupert/hearth/internal/websocket"
)

const (
	rateLimitCleanupInterval = 5 * time.Minute
	rateLimitMaxIdle         = 10 * time.Minute
)

type Server struct {
	db             *sql.DB
	hub            *ws.Hub
	foodH          *handler.FoodHandler
	groceryH       *handler.GroceryHandler
	shoppingH      *handler.ShoppingHandler
	rateLimiter    *middleware.RateLimiter
	originPatterns []string
	logger         *slog.Logger
}

func New(db *sql.DB, cat *catalog.Catalog, org *organizer.Organizer, cfg config.Config, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))
	groceryStore := store.NewGroceryStore(db)

	return &Server{
		db:             db,
		hub:            hub,
		foodH:          handler.NewFoodHandler(cat, cfg.SearchLimit),
		groceryH:       handler.NewGroceryHandler(groceryStore, hub, logger.With("component", "grocery")),
		shoppingH:      handler.NewShoppingHandler(groceryStore, org, hub, logger.With("component", "shopping")),
		rateLimiter:    middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst),
		originPatterns: cfg.OriginPatterns,
		logger:         logger,
	}
}

// Hub returns the websocket hub.
func (s *Server) Hub() *ws.Hub {
	return s.hub
}

// RunCleanup evicts idle rate limiter entries until ctx is done.
func (s *Server) RunCleanup(ctx context.Context) {
	ticker := time.NewTicker(rateLimitCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.rateLimiter.Cleanup(rateLimitMaxIdle)
		}
	}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)

	// Food catalog routes
	mux.HandleFunc("GET /api/foods", s.rateLimitedHandler(s.foodH.Search))
	mux.HandleFunc("GET /api/foods/match", s.rateLimitedHandler(s.foodH.Match))
	mux.HandleFunc("GET /api/categories", s.foodH.Categories)
	mux.HandleFunc("GET /api/sections", s.foodH.Sections)

	// List routes
	mux.HandleFunc("GET /api/lists", s.groceryH.ListLists)
	mux.HandleFunc("POST /api/lists", s.groceryH.CreateList)
	mux.HandleFunc("DELETE /api/lists/{list_id}", s.groceryH.DeleteList)

	// Item routes
	mux.HandleFunc("POST /api/lists/{list_id}/items", s.groceryH.CreateItem)
	mux.HandleFunc("GET /api/lists/{list_id}/items", s.groceryH.ListItems)
	mux.HandleFunc("PUT /api/lists/{list_id}/items/{id}", s.groceryH.UpdateItem)
	mux.HandleFunc("DELETE /api/lists/{list_id}/items/{id}", s.groceryH.DeleteItem)
	mux.HandleFunc("POST /api/lists/{list_id}/items/{id}/check", s.groceryH.ToggleChecked)
	mux.HandleFunc("POST /api/lists/{list_id}/clear-checked", s.groceryH.ClearChecked)

	// Shopping mode routes
	mux.HandleFunc("GET /api/lists/{list_id}/shopping", s.shoppingH.Shopping)
	mux.HandleFunc("PUT /api/lists/{list_id}/sections/{section_id}/visited", s.shoppingH.SetVisited)
	mux.HandleFunc("DELETE /api/lists/{list_id}/visits", s.shoppingH.ResetVisits)

	// WebSocket
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub, s.originPatterns, s.logger.With("component", "websocket")))

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if err := s.db.PingContext(r.Context()); err != nil {
		s.logger.Error("health check", "error", err)
		status = "unavailable"
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{"status": status, "clients": s.hub.ClientCount()})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	rl := middleware.RateLimit(s.rateLimiter, middleware.RealIP)
	return rl(h).ServeHTTP
}
