// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the listwarden Discord bot.

listwarden keeps a small set of named lists (banned, limited,
semi-limited by default) and lets server members change them by vote.
The owner's edits apply immediately; anyone else's open a reaction poll
that needs at least two more ✅ than ❌ votes.

# Starting the Bot

	DISCORD_TOKEN=... OWNER_ID=250856281722716161 go run .

Or with flags:

	go run . -token ... -owner 250856281722716161 -store sqlite -seed true

A .env file in the working directory is loaded automatically.

# Configuration

Required settings:

  - DISCORD_TOKEN (-token): bot token
  - OWNER_ID (-owner): numeric user ID of the bot owner

Optional settings:

  - COMMAND_PREFIX (-prefix): default "!"
  - STORE_BACKEND (-store): file (default), sqlite, postgres, redis
  - DATA_DIR (-data-dir): default /app/data
  - POLL_DURATION (-poll-duration): default 10m
  - HTTP_ADDR (-http-addr): health and metrics listener, default :3318
  - LOG_LEVEL, LOG_FORMAT: slog level and text/json output

See package cliparse for the full list.

# Commands

	!echo <text>            repeat text
	!list <name>            show one list
	!banlist                show every list
	!add <list> <item>      add an item (owner: immediate, others: poll)
	!remove <list> <n|text> remove by position or exact text
	!kick @user [reason]    kick a member, subject to role hierarchy

# HTTP Endpoints

	GET /health   store status and per-list item counts
	GET /metrics  Prometheus metrics

# Project Structure

	auth/        owner identity and kick whitelist
	chat/        platform-neutral request and member types
	cliparse/    flags, environment and YAML configuration
	db/          SQL connection and schema for database backends
	discord/     discordgo session adapter and event loop
	governance/  owner bypass, polls and re-validated mutations
	handlers/    command handlers
	items/       item normalization, matching and natural sort
	kickguard/   kick authorization checks
	liststore/   document codec, backends and the serialized store
	middleware/  command logging, replies and HTTP helpers
	models/      shared types
	poll/        reaction polls and vote tallying
	router/      command dispatch and the HTTP mux
	testutil/    fakes and fixtures for tests
	cmd/listctl/ offline inspection and maintenance

# Graceful Shutdown

SIGINT or SIGTERM closes the Discord session, waits for in-flight
commands, and drains the HTTP server within 5 seconds.
*/
package main
