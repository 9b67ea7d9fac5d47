package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dukerupert/hearth/internal/catalog"
	"github.com/dukerupert/hearth/internal/config"
	"github.com/dukerupert/hearth/internal/database"
	"github.com/dukerupert/hearth/internal/logging"
	"github.com/dukerupert/hearth/internal/model"
	"github.com/dukerupert/hearth/internal/organizer"
	"github.com/dukerupert/hearth/internal/server"
)

// newCLIApp creates the CLI application with all commands. Flags override
// the HEARTH_* environment already loaded into cfg.
func newCLIApp(cfg config.Config) *cli.App {
	app := &cli.App{
		Name:           "hearth",
		Usage:          "Household grocery search and shopping mode",
		Version:        Version,
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			serveCmd(cfg),
			searchCmd(cfg),
			matchCmd(),
			organizeCmd(cfg),
			routeCmd(cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// serveCmd creates the serve command.
func serveCmd(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API and websocket change feed",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Aliases: []string{"p"}, Value: cfg.Port, Usage: "Listen port"},
			&cli.StringFlag{Name: "db", Value: cfg.DBPath, Usage: "SQLite path, or :memory: for an ephemeral store"},
			&cli.StringFlag{Name: "log-level", Value: cfg.LogLevel, Usage: "debug|info|warn|error"},
			&cli.StringFlag{Name: "log-format", Value: cfg.LogFormat, Usage: "text|json"},
			&cli.Uint64Flag{Name: "seed", Value: cfg.Seed, Usage: "Organizer seed (0 = time-seeded)"},
		},
		Action: func(c *cli.Context) error {
			cfg.Port = c.String("port")
			cfg.DBPath = c.String("db")
			cfg.LogLevel = c.String("log-level")
			cfg.LogFormat = c.String("log-format")
			cfg.Seed = c.Uint64("seed")
			return serve(c.Context, cfg)
		},
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	srv := server.New(db, catalog.Default(), newOrganizer(cfg.Seed), cfg, logger)

	// No WriteTimeout: websocket connections outlive any single write window.
	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go srv.RunCleanup(ctx)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("hearth running", "url", "http://localhost:"+cfg.Port, "db", cfg.DBPath)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}

type searchOutput struct {
	Results     []catalog.FoodItem `json:"results"`
	Suggestions []catalog.FoodItem `json:"suggestions,omitempty"`
}

// searchCmd creates the search command.
func searchCmd(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Rank catalog foods against a query",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Value: cfg.SearchLimit, Usage: "Maximum results"},
		},
		Action: func(c *cli.Context) error {
			query := strings.Join(c.Args().Slice(), " ")
			if strings.TrimSpace(query) == "" {
				return cli.Exit("query is required", 1)
			}

			cat := catalog.Default()
			out := searchOutput{Results: cat.Search(query, c.Int("limit"))}
			if len(out.Results) == 0 {
				out.Suggestions = cat.Suggest(query, c.Int("limit"))
			}
			return outputJSON(c.App.Writer, out)
		},
	}
}

// matchCmd creates the match command.
func matchCmd() *cli.Command {
	return &cli.Command{
		Name:      "match",
		Usage:     "Print the single catalog food a query resolves to",
		ArgsUsage: "<query>",
		Action: func(c *cli.Context) error {
			query := strings.Join(c.Args().Slice(), " ")
			item, ok := catalog.FindFoodItem(query)
			if !ok {
				return cli.Exit(fmt.Sprintf("no food matches %q", query), 1)
			}
			return outputJSON(c.App.Writer, item)
		},
	}
}

func cartFlags(cfg config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "Cart JSON file (default stdin)"},
		&cli.Uint64Flag{Name: "seed", Value: cfg.Seed, Usage: "Organizer seed (0 = time-seeded)"},
	}
}

// organizeCmd creates the organize command.
func organizeCmd(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "organize",
		Usage: "Group a JSON cart into store sections (reads stdin unless --file)",
		Flags: cartFlags(cfg),
		Action: func(c *cli.Context) error {
			items, err := readCart(c)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return outputJSON(c.App.Writer, newOrganizer(c.Uint64("seed")).Organize(items))
		},
	}
}

type routeOutput struct {
	Route       []string          `json:"route"`
	NextSection string            `json:"next_section,omitempty"`
	Summary     organizer.Summary `json:"summary"`
}

// routeCmd creates the route command.
func routeCmd(cfg config.Config) *cli.Command {
	flags := append(cartFlags(cfg),
		&cli.StringFlag{Name: "visited", Usage: "Comma-separated section ids already walked"},
	)
	return &cli.Command{
		Name:  "route",
		Usage: "Print the walk order for a JSON cart (reads stdin unless --file)",
		Flags: flags,
		Action: func(c *cli.Context) error {
			items, err := readCart(c)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			visits := organizer.Visits{}
			for _, id := range parseList(c.String("visited")) {
				if !organizer.IsSectionID(id) {
					return cli.Exit(fmt.Sprintf("unknown section %q", id), 1)
				}
				visits[id] = true
			}

			sections := organizer.ApplyVisits(newOrganizer(c.Uint64("seed")).Organize(items), visits)
			out := routeOutput{
				Route:   organizer.ShoppingRoute(sections),
				Summary: organizer.Summarize(sections),
			}
			out.NextSection, _ = organizer.NextSection(out.Route, visits)
			return outputJSON(c.App.Writer, out)
		},
	}
}

// Helper functions

func newOrganizer(seed uint64) *organizer.Organizer {
	if seed == 0 {
		return organizer.New(nil)
	}
	return organizer.NewSeeded(seed)
}

// outputJSON marshals v to w as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readCart decodes a JSON array of cart items from --file or the app's reader.
func readCart(c *cli.Context) ([]model.CartItem, error) {
	var r io.Reader = c.App.Reader
	if path := c.String("file"); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open cart: %w", err)
		}
		defer f.Close()
		r = f
	}

	var items []model.CartItem
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return items, nil
}

// parseList splits a comma-separated string, dropping empty entries.
func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
