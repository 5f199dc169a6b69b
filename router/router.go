// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/listwarden/chat"
	"github.com/danielhkuo/listwarden/cliparse"
	"github.com/danielhkuo/listwarden/governance"
	"github.com/danielhkuo/listwarden/handlers"
	"github.com/danielhkuo/listwarden/kickguard"
	"github.com/danielhkuo/listwarden/liststore"
	"github.com/danielhkuo/listwarden/middleware"
	"github.com/danielhkuo/listwarden/models"
)

// Router maps prefixed chat commands to handlers.
type Router struct {
	prefix   string
	commands map[string]chat.HandlerFunc
}

func NewRouter(store *liststore.Store, gov *governance.Orchestrator, guard *kickguard.Guard, cfg cliparse.Config) *Router {
	r := &Router{prefix: cfg.Prefix, commands: map[string]chat.HandlerFunc{}}

	// Initialize handlers
	echoHandler := handlers.NewEchoHandler(cfg)
	moderationHandler := handlers.NewModerationHandler(guard, cfg)
	listHandler := handlers.NewListHandler(store, gov, cfg)

	// Anyone
	r.Handle("echo", echoHandler.Echo)
	r.Handle("list", listHandler.List)
	r.Handle("banlist", listHandler.Banlist)

	// Owner applies instantly, everyone else gets a poll
	r.Handle("add", listHandler.Add)
	r.Handle("remove", listHandler.Remove)

	// Kick Members only
	r.Handle("kick", moderationHandler.Kick)

	return r
}

// Handle registers h under name, wrapped with command logging.
func (r *Router) Handle(name string, h chat.HandlerFunc) {
	r.commands[name] = middleware.WithCommandLogging(name, h)
}

// Commands returns the registered command names, sorted.
func (r *Router) Commands() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Parse splits a message into command name and the remaining text. The
// name must follow the prefix directly.
func (r *Router) Parse(content string) (name, rest string, ok bool) {
	after, found := strings.CutPrefix(content, r.prefix)
	if !found || after == "" {
		return "", "", false
	}
	if first, _ := utf8.DecodeRuneInString(after); unicode.IsSpace(first) {
		return "", "", false
	}

	end := strings.IndexFunc(after, unicode.IsSpace)
	if end < 0 {
		return after, "", true
	}
	return after[:end], after[end:], true
}

// Dispatch runs the command in content, if there is one. It reports
// whether a command matched; the error is the handler's.
func (r *Router) Dispatch(ctx context.Context, content string, author chat.Member, ch chat.Channel, guild chat.Guild) (bool, error) {
	name, rest, ok := r.Parse(content)
	if !ok {
		return false, nil
	}
	h, ok := r.commands[name]
	if !ok {
		return false, nil
	}
	return true, h(ctx, chat.NewRequest(name, rest, author, ch, guild))
}

// NewHTTPMux serves the operational endpoints: health and metrics.
func NewHTTPMux(store *liststore.Store, version string) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check reads the backend, not just the in-memory copy
	mux.HandleFunc("GET /health", middleware.WithLogging(func(w http.ResponseWriter, r *http.Request) {
		doc, err := store.Load(r.Context())
		if err != nil {
			middleware.ErrorResponse(w, http.StatusServiceUnavailable, "list store unreadable")
			return
		}

		counts := make(map[string]int, len(doc))
		for name, entry := range doc {
			counts[name] = len(entry.Items)
		}
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
			Status:  "ok",
			Version: version,
			Lists:   counts,
		})
	}))

	mux.Handle("GET /metrics", promhttp.Handler())

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("listwarden"))
	})

	return mux
}
