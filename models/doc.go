// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types shared across the bot.

# Catalog Types

The set of list names is fixed at configuration time:

  - ListDef: name and display emoji
  - Catalog: the enumeration (Lookup, Has, EmojiFor, Names)

DefaultCatalog returns:

	banned        🚫
	limited       1️⃣
	semi-limited  2️⃣

# Persisted Types

The whole bot state is a single document:

  - Document: list name -> ListEntry
  - ListEntry: emoji, items (natural-sorted, case-insensitively unique)

Serialized, it looks like this:

	{"banned": {"emoji": "🚫", "items": ["Aditya Lee Sin"]}}

# Transient Types

Never persisted:

  - Proposal: one add/remove request, alive for one invocation
  - Verdict: yes/no/invalid tally of a poll

# Approval Rule

	Verdict{Yes: 2, No: 1}.Approved() // true
	Verdict{Yes: 1, No: 0}.Approved() // false, below MinApprovals
	Verdict{Yes: 2, No: 2}.Approved() // false, no strict majority
*/
package models
