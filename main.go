package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/listwarden/auth"
	"github.com/danielhkuo/listwarden/cliparse"
	"github.com/danielhkuo/listwarden/discord"
	"github.com/danielhkuo/listwarden/governance"
	"github.com/danielhkuo/listwarden/kickguard"
	"github.com/danielhkuo/listwarden/liststore"
	"github.com/danielhkuo/listwarden/poll"
	"github.com/danielhkuo/listwarden/router"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logger, err := newLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		slog.Error("Error configuring logging", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	// Stop on Ctrl-C or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("listwarden stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("listwarden stopped")
}

func run(ctx context.Context, cfg cliparse.Config) error {
	slog.Info("starting listwarden",
		"version", versioninfo.Short(),
		"store", cfg.StoreBackend,
		"lists", cfg.Catalog.String(),
		"poll_duration", cfg.PollDuration.String(),
	)

	// Open the list store
	backend, err := liststore.OpenBackend(ctx, cfg)
	if err != nil {
		return err
	}
	if cfg.SeedLists {
		if _, err := liststore.Seed(ctx, backend); err != nil {
			backend.Close()
			return err
		}
	}
	store, err := liststore.Open(ctx, backend, cfg.Catalog)
	if err != nil {
		backend.Close()
		return err
	}
	defer store.Close()

	identity, err := auth.FromConfig(cfg)
	if err != nil {
		return fmt.Errorf("invalid identity configuration: %w", err)
	}

	slog.Info("identity loaded",
		"owner_id", identity.OwnerID(),
		"kick_whitelist_users", len(cfg.KickWhitelistUsers),
		"kick_whitelist_roles", len(cfg.KickWhitelistRoles),
	)

	gov := governance.New(store, identity, poll.New(cfg.PollDuration))
	commands := router.NewRouter(store, gov, kickguard.New(identity), cfg)

	session, err := discord.NewSession(cfg.Token)
	if err != nil {
		return err
	}

	server := &http.Server{
		Handler:           router.NewHTTPMux(store, versioninfo.Short()),
		Addr:              cfg.HTTPAddr,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Listening", "addr", cfg.HTTPAddr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return discord.Run(gctx, session, commands)
	})

	return g.Wait()
}

// newLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
