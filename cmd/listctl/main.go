// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command listctl inspects and maintains the persisted list document
// without starting the bot.
package main

import (
	"log/slog"
	"os"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	cli "github.com/urfave/cli/v2"

	"github.com/danielhkuo/listwarden/cliparse"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("listctl failed", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "listctl"
	app.Usage = "inspect and maintain the listwarden list document"
	app.Version = versioninfo.Short()

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "store",
			Value:   cliparse.BackendFile,
			Usage:   "store backend (file, sqlite, postgres, redis)",
			EnvVars: []string{"STORE_BACKEND"},
		},
		&cli.StringFlag{
			Name:    "data-dir",
			Value:   cliparse.DefaultDataDir,
			Usage:   "directory holding lists.json",
			EnvVars: []string{"DATA_DIR"},
		},
		&cli.StringFlag{
			Name:    "database-url",
			Usage:   "database URL for sqlite/postgres backends",
			EnvVars: []string{"DATABASE_URL"},
		},
		&cli.StringFlag{
			Name:    "redis-url",
			Usage:   "redis URL for the redis backend",
			EnvVars: []string{"REDIS_URL"},
		},
		&cli.StringFlag{
			Name:    "config",
			Usage:   "YAML file with the list catalog",
			EnvVars: []string{"LISTS_CONFIG"},
		},
	}
	app.Commands = []*cli.Command{
		showCmd,
		reconcileCmd,
		seedCmd,
		exportCmd,
	}
	return app
}
