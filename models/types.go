// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"slices"
	"sort"
	"strings"
)

// Action constants
const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
)

// Fallback emoji for lists the catalog does not know about
const DefaultEmoji = "📋"

// Catalog types

// ListDef is one entry of the fixed list enumeration.
type ListDef struct {
	Name  string `yaml:"name" json:"name"`
	Emoji string `yaml:"emoji" json:"emoji"`
}

// Catalog is the fixed, configuration-time set of list names. It is never
// extended while the process runs.
type Catalog []ListDef

// DefaultCatalog returns the lists the bot ships with.
func DefaultCatalog() Catalog {
	return Catalog{
		{Name: "banned", Emoji: "🚫"},
		{Name: "limited", Emoji: "1️⃣"},
		{Name: "semi-limited", Emoji: "2️⃣"},
	}
}

// Lookup returns the configured emoji for name.
func (c Catalog) Lookup(name string) (string, bool) {
	for _, def := range c {
		if def.Name == name {
			return def.Emoji, true
		}
	}
	return "", false
}

// Has reports whether name is part of the enumeration.
func (c Catalog) Has(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// EmojiFor returns the configured emoji, or DefaultEmoji for unknown names.
func (c Catalog) EmojiFor(name string) string {
	if emoji, ok := c.Lookup(name); ok {
		return emoji
	}
	return DefaultEmoji
}

// Names returns the list names in sorted order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for _, def := range c {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}

// String renders the allowed names for usage replies.
func (c Catalog) String() string {
	return strings.Join(c.Names(), ", ")
}

// Persisted types

// ListEntry is one named list inside the persisted document.
type ListEntry struct {
	Emoji string   `json:"emoji"`
	Items []string `json:"items"`
}

// Clone returns a copy that shares no memory with e.
func (e ListEntry) Clone() ListEntry {
	items := slices.Clone(e.Items)
	if items == nil {
		items = []string{}
	}
	return ListEntry{Emoji: e.Emoji, Items: items}
}

// Document is the full persisted state: list name -> entry.
type Document map[string]ListEntry

// Clone deep-copies the document.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for name, entry := range d {
		out[name] = entry.Clone()
	}
	return out
}

// Transient types

type Action string

// Proposal lives for one add/remove invocation, including the poll wait.
// It is never persisted.
type Proposal struct {
	ListName string
	Action   Action
	Item     string
	// Position and Snapshot record the resolved remove target at proposal
	// time. Re-validation matches Snapshot by text, not by Position.
	Position int
	Snapshot string
}

// Verdict is the outcome of one yes/no poll.
type Verdict struct {
	Yes     int `json:"yes"`
	No      int `json:"no"`
	Invalid int `json:"invalid"`
	// Unavailable is set when the poll message could not be read back
	// after the window. All counts are zero in that case.
	Unavailable bool `json:"unavailable,omitempty"`
}

// Minimum number of affirmative votes for a proposal to pass
const MinApprovals = 2

// Approved applies the approval rule: at least MinApprovals yes votes and a
// strict majority over no votes.
func (v Verdict) Approved() bool {
	return v.Yes >= MinApprovals && v.Yes > v.No
}
