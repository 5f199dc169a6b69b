// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the chat command handlers.

# Handler Types

Each handler is a struct built from its dependencies and the config:

	listHandler := handlers.NewListHandler(store, orchestrator, cfg)

Handlers and their commands:

  - EchoHandler: echo
  - ListHandler: list, banlist, add, remove
  - ModerationHandler: kick

Handler methods have the chat.HandlerFunc signature.

# Replies

User mistakes (missing arguments, unknown lists, items that do not
resolve, refused kicks) are answered in the channel and the handler
returns nil. Only failures the user cannot fix, such as a store write
error, are returned.

Usage replies list the allowed list names, sorted and comma separated:

	Usage: `!add <list> <item>`
	Allowed lists: banned, limited, semi-limited

# Votes

add and remove from anyone but the owner post a poll and reply once it
ends:

	🗳️ Poll ended — ✅ 2 / ❌ 1 (invalid: 1)
	✅ Approved! Added to 🚫 **Banned**: Gamma

AddReply and RemoveReply render every governance.Outcome.
*/
package handlers
