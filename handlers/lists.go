// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/listwarden/chat"
	"github.com/danielhkuo/listwarden/cliparse"
	"github.com/danielhkuo/listwarden/governance"
	"github.com/danielhkuo/listwarden/items"
	"github.com/danielhkuo/listwarden/liststore"
	"github.com/danielhkuo/listwarden/middleware"
	"github.com/danielhkuo/listwarden/models"
)

type ListHandler struct {
	store  *liststore.Store
	gov    *governance.Orchestrator
	prefix string
}

func NewListHandler(store *liststore.Store, gov *governance.Orchestrator, cfg cliparse.Config) *ListHandler {
	return &ListHandler{store: store, gov: gov, prefix: cfg.Prefix}
}

// List handles `list <name>`
func (h *ListHandler) List(ctx context.Context, req *chat.Request) error {
	if len(req.Args) == 0 {
		return middleware.Reply(ctx, req.Channel, fmt.Sprintf("Usage: `%slist <name>`\nAllowed lists: %s", h.prefix, h.allowed()))
	}

	name := strings.ToLower(strings.TrimSpace(req.Args[0]))
	entry, ok := h.store.Entry(name)
	if !ok || !h.store.Catalog().Has(name) {
		return middleware.Reply(ctx, req.Channel, h.invalidList())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s **%s**:\n", entry.Emoji, items.DisplayName(name))
	if len(entry.Items) == 0 {
		b.WriteString("(empty)")
	}
	for i, item := range entry.Items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, item)
	}

	return middleware.ReplyChunked(ctx, req.Channel, b.String())
}

// Banlist handles `banlist`: every list in name order, one block each
func (h *ListHandler) Banlist(ctx context.Context, req *chat.Request) error {
	doc := h.store.Snapshot()

	blocks := make([]string, 0, len(doc))
	for _, name := range h.store.Catalog().Names() {
		entry := doc[name]

		var b strings.Builder
		fmt.Fprintf(&b, "%s **%s**:\n", entry.Emoji, items.DisplayName(name))
		if len(entry.Items) == 0 {
			b.WriteString("(empty)")
		}
		for i, item := range entry.Items {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString("• " + item)
		}
		blocks = append(blocks, b.String())
	}

	return middleware.ReplyChunked(ctx, req.Channel, strings.Join(blocks, "\n\n"))
}

// Add handles `add <list> <item...>`
func (h *ListHandler) Add(ctx context.Context, req *chat.Request) error {
	if len(req.Args) < 2 {
		return middleware.Reply(ctx, req.Channel, fmt.Sprintf("Usage: `%sadd <list> <item>`\nAllowed lists: %s", h.prefix, h.allowed()))
	}

	res, err := h.gov.Add(ctx, req.Channel, req.Author.UserID, req.Args[0], req.After(1))
	switch {
	case errors.Is(err, governance.ErrUnknownList):
		return middleware.Reply(ctx, req.Channel, h.invalidList())
	case errors.Is(err, governance.ErrEmptyItem):
		return middleware.Reply(ctx, req.Channel, fmt.Sprintf("Usage: `%sadd <list> <item>`", h.prefix))
	case err != nil:
		return err
	}

	return middleware.Reply(ctx, req.Channel, AddReply(res))
}

// Remove handles `remove <list> <number|text>`
func (h *ListHandler) Remove(ctx context.Context, req *chat.Request) error {
	if len(req.Args) < 2 {
		return middleware.Reply(ctx, req.Channel, fmt.Sprintf(
			"Usage: `%[1]sremove <list> <number|text>`\nAllowed lists: %[2]s\nExamples:\n- `%[1]sremove banned 2`\n- `%[1]sremove limited Blue Eyes White Dragon`",
			h.prefix, h.allowed()))
	}

	res, err := h.gov.Remove(ctx, req.Channel, req.Author.UserID, req.Args[0], req.After(1))
	switch {
	case errors.Is(err, governance.ErrUnknownList):
		return middleware.Reply(ctx, req.Channel, h.invalidList())
	case errors.Is(err, governance.ErrEmptyItem):
		return middleware.Reply(ctx, req.Channel, fmt.Sprintf("Usage: `%sremove <list> <number|text>`", h.prefix))
	case errors.Is(err, governance.ErrTargetNotFound):
		return middleware.Reply(ctx, req.Channel, "❌ Item not found (or invalid number).")
	case err != nil:
		return err
	}

	return middleware.Reply(ctx, req.Channel, RemoveReply(res))
}

// AddReply renders the outcome of an add proposal.
func AddReply(res governance.Result) string {
	title := items.DisplayName(res.List)

	switch res.Outcome {
	case governance.OutcomeAlreadyExists:
		return fmt.Sprintf("⚠️ Already exists in **%s**.", title)
	case governance.OutcomeAddedConcurrently:
		return "ℹ️ It was already added while the poll was running."
	case governance.OutcomeAdded:
		done := fmt.Sprintf("✅ Added to %s **%s**: %s", res.Emoji, title, res.Item)
		if res.Polled {
			return pollSummary(res.Verdict) + "\n✅ Approved! " + strings.TrimPrefix(done, "✅ ")
		}
		return done
	}
	return rejection(res)
}

// RemoveReply renders the outcome of a remove proposal.
func RemoveReply(res governance.Result) string {
	title := items.DisplayName(res.List)

	switch res.Outcome {
	case governance.OutcomeRemovedConcurrently:
		return "ℹ️ It was already removed while the poll was running."
	case governance.OutcomeRemoved:
		if res.Polled {
			return fmt.Sprintf("%s\n✅ Approved! Removed from **%s**: %s", pollSummary(res.Verdict), title, res.Item)
		}
		return fmt.Sprintf("🗑️ Removed from **%s**: %s", title, res.Item)
	}
	return rejection(res)
}

func rejection(res governance.Result) string {
	if res.Outcome == governance.OutcomePollUnavailable {
		return "🗳️ Poll ended — the poll message was deleted before the votes could be counted.\n❌ Not approved."
	}
	return pollSummary(res.Verdict) + fmt.Sprintf("\n❌ Not approved (needs ✅ to win AND have %d+ votes).", models.MinApprovals)
}

func pollSummary(v models.Verdict) string {
	return fmt.Sprintf("🗳️ Poll ended — ✅ %d / ❌ %d (invalid: %d)", v.Yes, v.No, v.Invalid)
}

func (h *ListHandler) allowed() string {
	return h.store.Catalog().String()
}

func (h *ListHandler) invalidList() string {
	return "❌ Invalid list. Allowed lists: " + h.allowed()
}
