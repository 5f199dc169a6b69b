// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kickguard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// DefaultReason is used when the actor gives none.
const DefaultReason = "No reason provided"

// Refusals. None of them changes any state.
var (
	ErrSelfKick       = errors.New("cannot kick yourself")
	ErrKickBot        = errors.New("cannot kick the bot")
	ErrWhitelisted    = errors.New("member is kick-whitelisted")
	ErrActorOutranked = errors.New("target role is equal or higher than actor")
	ErrBotOutranked   = errors.New("target role is equal or higher than the bot")
)

// Member is the view of a guild member the guard needs.
type Member interface {
	Identity() string
	RoleIDs() []string
	// RoleRank is the position of the member's highest role. Higher
	// outranks lower.
	RoleRank() int
}

// Kicker performs the actual removal on the platform.
type Kicker interface {
	Kick(ctx context.Context, userID, reason string) error
}

// Whitelist reports permanently protected members.
type Whitelist interface {
	IsWhitelisted(userID string, roleIDs []string) bool
}

// Request describes one kick attempt.
type Request struct {
	Actor  Member
	Target Member
	// Bot is the bot's own member. A nil Bot skips the bot hierarchy
	// check.
	Bot          Member
	GuildOwnerID string

	// ActorName appears in the audit reason next to the actor's ID.
	ActorName string
	Reason    string
}

type Guard struct {
	whitelist Whitelist
}

func New(whitelist Whitelist) *Guard {
	return &Guard{whitelist: whitelist}
}

// Check applies the refusal rules in order and returns the first that
// matches, or nil.
func (g *Guard) Check(req Request) error {
	target := req.Target.Identity()

	if target == req.Actor.Identity() {
		return ErrSelfKick
	}
	if req.Bot != nil && target == req.Bot.Identity() {
		return ErrKickBot
	}
	if g.whitelist.IsWhitelisted(target, req.Target.RoleIDs()) {
		return ErrWhitelisted
	}
	// the guild owner outranks everyone regardless of roles
	if req.Target.RoleRank() >= req.Actor.RoleRank() && req.GuildOwnerID != req.Actor.Identity() {
		return ErrActorOutranked
	}
	if req.Bot != nil && req.Target.RoleRank() >= req.Bot.RoleRank() {
		return ErrBotOutranked
	}
	return nil
}

// Kick checks req and, if nothing refuses it, kicks the target with an
// audit reason naming the actor. It returns the reason shown to users.
func (g *Guard) Kick(ctx context.Context, k Kicker, req Request) (string, error) {
	if req.Reason == "" {
		req.Reason = DefaultReason
	}

	if err := g.Check(req); err != nil {
		kicks.WithLabelValues("refused").Inc()
		slog.Info("kick refused",
			"actor", req.Actor.Identity(),
			"target", req.Target.Identity(),
			"reason", err,
		)
		return "", err
	}

	audit := AuditReason(req.Reason, req.ActorName, req.Actor.Identity())
	if err := k.Kick(ctx, req.Target.Identity(), audit); err != nil {
		kicks.WithLabelValues("failed").Inc()
		return "", fmt.Errorf("failed to kick member %s: %w", req.Target.Identity(), err)
	}

	kicks.WithLabelValues("kicked").Inc()
	slog.Info("member kicked",
		"actor", req.Actor.Identity(),
		"target", req.Target.Identity(),
		"reason", req.Reason,
	)
	return req.Reason, nil
}

// AuditReason is the reason recorded in the platform's audit log.
func AuditReason(reason, actorName, actorID string) string {
	return fmt.Sprintf("%s (kicked by %s / %s)", reason, actorName, actorID)
}
