// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v2"

	"github.com/danielhkuo/listwarden/cliparse"
	"github.com/danielhkuo/listwarden/items"
	"github.com/danielhkuo/listwarden/liststore"
	"github.com/danielhkuo/listwarden/models"
)

var showCmd = &cli.Command{
	Name:      "show",
	Usage:     "print one list, or every list",
	ArgsUsage: "[list]",
	Action: func(cctx *cli.Context) error {
		cfg, err := configFromContext(cctx)
		if err != nil {
			return err
		}
		doc, err := readDocument(cctx, cfg)
		if err != nil {
			return err
		}

		names := cfg.Catalog.Names()
		if want := cctx.Args().First(); want != "" {
			name := strings.ToLower(strings.TrimSpace(want))
			if !cfg.Catalog.Has(name) {
				return fmt.Errorf("unknown list %q, allowed lists: %s", want, cfg.Catalog.String())
			}
			names = []string{name}
		}

		w := cctx.App.Writer
		for i, name := range names {
			if i > 0 {
				fmt.Fprintln(w)
			}
			entry := doc[name]
			fmt.Fprintf(w, "%s %s (%d)\n", entry.Emoji, items.DisplayName(name), len(entry.Items))
			for n, item := range entry.Items {
				fmt.Fprintf(w, "%4d. %s\n", n+1, item)
			}
		}
		return nil
	},
}

var reconcileCmd = &cli.Command{
	Name:  "reconcile",
	Usage: "rewrite the document so it holds exactly the configured lists",
	Action: func(cctx *cli.Context) error {
		cfg, err := configFromContext(cctx)
		if err != nil {
			return err
		}
		backend, err := liststore.OpenBackend(cctx.Context, cfg)
		if err != nil {
			return err
		}

		// Open reconciles and writes back
		store, err := liststore.Open(cctx.Context, backend, cfg.Catalog)
		if err != nil {
			backend.Close()
			return err
		}
		defer store.Close()

		fmt.Fprintf(cctx.App.Writer, "reconciled %d lists\n", len(store.Snapshot()))
		return nil
	},
}

var seedCmd = &cli.Command{
	Name:  "seed",
	Usage: "write the bundled dataset when the store is empty",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "force",
			Usage: "overwrite existing items",
		},
	},
	Action: func(cctx *cli.Context) error {
		cfg, err := configFromContext(cctx)
		if err != nil {
			return err
		}
		backend, err := liststore.OpenBackend(cctx.Context, cfg)
		if err != nil {
			return err
		}
		defer backend.Close()

		if cctx.Bool("force") {
			if err := backend.Write(cctx.Context, liststore.SeedDocument); err != nil {
				return fmt.Errorf("failed to write seed document: %w", err)
			}
			fmt.Fprintln(cctx.App.Writer, "seeded")
			return nil
		}

		seeded, err := liststore.Seed(cctx.Context, backend)
		if err != nil {
			return err
		}
		if seeded {
			fmt.Fprintln(cctx.App.Writer, "seeded")
		} else {
			fmt.Fprintln(cctx.App.Writer, "store already has items, use --force to overwrite")
		}
		return nil
	},
}

var exportCmd = &cli.Command{
	Name:  "export",
	Usage: "print the reconciled document as JSON",
	Action: func(cctx *cli.Context) error {
		cfg, err := configFromContext(cctx)
		if err != nil {
			return err
		}
		doc, err := readDocument(cctx, cfg)
		if err != nil {
			return err
		}
		raw, err := liststore.Encode(doc)
		if err != nil {
			return err
		}
		_, err = cctx.App.Writer.Write(raw)
		return err
	},
}

// configFromContext builds the store half of cliparse.Config from global flags.
func configFromContext(cctx *cli.Context) (cliparse.Config, error) {
	cfg := cliparse.Config{
		StoreBackend: strings.ToLower(cctx.String("store")),
		DataDir:      cctx.String("data-dir"),
		DatabaseURL:  cctx.String("database-url"),
		RedisURL:     cctx.String("redis-url"),
		Catalog:      models.DefaultCatalog(),
	}

	if path := cctx.String("config"); path != "" {
		fc, err := cliparse.LoadFile(path)
		if err != nil {
			return cliparse.Config{}, err
		}
		if len(fc.Lists) > 0 {
			cfg.Catalog = fc.Lists
		}
	}

	catalog, err := cliparse.CleanCatalog(cfg.Catalog)
	if err != nil {
		return cliparse.Config{}, err
	}
	cfg.Catalog = catalog

	if err := cliparse.ValidateStore(cfg); err != nil {
		return cliparse.Config{}, err
	}
	return cfg, nil
}

// readDocument loads and reconciles the document without writing it back.
func readDocument(cctx *cli.Context, cfg cliparse.Config) (models.Document, error) {
	backend, err := liststore.OpenBackend(cctx.Context, cfg)
	if err != nil {
		return nil, err
	}
	defer backend.Close()

	raw, err := backend.Read(cctx.Context)
	if err != nil {
		return nil, fmt.Errorf("failed to read list document: %w", err)
	}
	return liststore.Reconcile(liststore.Decode(raw, cfg.Catalog), cfg.Catalog), nil
}
