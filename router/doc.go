// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router maps chat commands and HTTP paths to handlers.

# Command Registration

NewRouter wires every command to its handler:

	r := router.NewRouter(store, orchestrator, guard, cfg)
	matched, err := r.Dispatch(ctx, message.Content, author, channel, guild)

Commands (prefix "!" by default):

	echo <text>                  - Repeat text
	list <name>                  - Show one list, numbered
	banlist                      - Show every list
	add <list> <item...>         - Owner adds; others start a vote
	remove <list> <number|text>  - Owner removes; others start a vote
	kick <member> [reason]       - Kick Members only

The command name must follow the prefix directly and is case-sensitive.
Messages that are not commands, or name an unknown command, are ignored.
Every handler is wrapped with middleware.WithCommandLogging.

# HTTP Endpoints

NewHTTPMux serves operational endpoints on HTTP_ADDR:

	GET /health   - Reads the store backend; 503 if it fails
	GET /metrics  - Prometheus metrics
	GET /         - Plain-text banner
*/
package router
