// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/listwarden/auth"
	"github.com/danielhkuo/listwarden/chat"
	"github.com/danielhkuo/listwarden/cliparse"
	"github.com/danielhkuo/listwarden/kickguard"
	"github.com/danielhkuo/listwarden/middleware"
)

// Replies for each kick refusal
var kickRefusals = map[error]string{
	kickguard.ErrSelfKick:       "You can’t kick yourself.",
	kickguard.ErrKickBot:        "Nice try 😄",
	kickguard.ErrWhitelisted:    "🛡️ That member is whitelisted and cannot be kicked.",
	kickguard.ErrActorOutranked: "You can’t kick someone with an equal or higher role than you.",
	kickguard.ErrBotOutranked:   "I can’t kick them — move my bot role higher.",
}

type ModerationHandler struct {
	guard  *kickguard.Guard
	prefix string
}

func NewModerationHandler(guard *kickguard.Guard, cfg cliparse.Config) *ModerationHandler {
	return &ModerationHandler{guard: guard, prefix: cfg.Prefix}
}

// Kick handles `kick <member> [reason]`. Both the caller and the bot need
// Kick Members.
func (h *ModerationHandler) Kick(ctx context.Context, req *chat.Request) error {
	if req.Guild == nil {
		return middleware.Reply(ctx, req.Channel, "This command only works in a server.")
	}

	ok, err := req.Guild.CanKick(ctx, req.Author.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return middleware.Reply(ctx, req.Channel, fmt.Sprintf("You don’t have permission to use `%skick`.", h.prefix))
	}

	self, err := req.Guild.Self(ctx)
	if err != nil {
		return fmt.Errorf("failed to load bot member: %w", err)
	}
	if ok, err = req.Guild.CanKick(ctx, self.UserID); err != nil {
		return err
	}
	if !ok {
		return middleware.Reply(ctx, req.Channel, "I don’t have the **Kick Members** permission.")
	}

	if len(req.Args) == 0 {
		return middleware.Reply(ctx, req.Channel, fmt.Sprintf("Usage: `%skick @user [reason]`", h.prefix))
	}

	targetID, ok := auth.ParseMention(req.Args[0])
	if !ok {
		return middleware.Reply(ctx, req.Channel, "I couldn’t find that member.")
	}
	target, err := req.Guild.Member(ctx, targetID)
	if errors.Is(err, chat.ErrMemberNotFound) {
		return middleware.Reply(ctx, req.Channel, "I couldn’t find that member.")
	}
	if err != nil {
		return err
	}

	// the author's roles may have changed since the message was sent
	actor, err := req.Guild.Member(ctx, req.Author.UserID)
	if err != nil {
		return fmt.Errorf("failed to load author member: %w", err)
	}
	ownerID, err := req.Guild.OwnerID(ctx)
	if err != nil {
		return err
	}

	reason, err := h.guard.Kick(ctx, req.Guild, kickguard.Request{
		Actor:        actor,
		Target:       target,
		Bot:          self,
		GuildOwnerID: ownerID,
		ActorName:    req.Author.Username,
		Reason:       req.After(1),
	})
	if err != nil {
		for refusal, reply := range kickRefusals {
			if errors.Is(err, refusal) {
				return middleware.Reply(ctx, req.Channel, reply)
			}
		}
		return err
	}

	return middleware.Reply(ctx, req.Channel, fmt.Sprintf("👢 **Kicked** %s\nReason: %s", target.Mention(), reason))
}
