// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package discord

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/danielhkuo/listwarden/chat"
)

// Guild implements chat.Guild for the guild and channel a command came
// from.
type Guild struct {
	session   Session
	guildID   string
	channelID string
	botID     string
}

func NewGuild(s Session, guildID, channelID, botID string) *Guild {
	return &Guild{session: s, guildID: guildID, channelID: channelID, botID: botID}
}

func (g *Guild) OwnerID(ctx context.Context) (string, error) {
	guild, err := g.session.Guild(g.guildID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to load guild %s: %w", g.guildID, err)
	}
	return guild.OwnerID, nil
}

func (g *Guild) Member(ctx context.Context, userID string) (chat.Member, error) {
	m, err := g.session.GuildMember(g.guildID, userID, discordgo.WithContext(ctx))
	if statusOf(err) == http.StatusNotFound {
		return chat.Member{}, fmt.Errorf("%w: %s", chat.ErrMemberNotFound, userID)
	}
	if err != nil {
		return chat.Member{}, fmt.Errorf("failed to load member %s: %w", userID, err)
	}

	rank, err := g.topRole(ctx, m.Roles)
	if err != nil {
		return chat.Member{}, err
	}

	member := chat.Member{UserID: userID, Roles: m.Roles, TopRole: rank}
	if m.User != nil {
		member.Username = m.User.Username
		member.Bot = m.User.Bot
	}
	return member, nil
}

func (g *Guild) Self(ctx context.Context) (chat.Member, error) {
	return g.Member(ctx, g.botID)
}

func (g *Guild) CanKick(ctx context.Context, userID string) (bool, error) {
	perms, err := g.session.UserChannelPermissions(userID, g.channelID, discordgo.WithContext(ctx))
	if err != nil {
		return false, fmt.Errorf("failed to read permissions of %s: %w", userID, err)
	}
	return perms&discordgo.PermissionKickMembers != 0, nil
}

func (g *Guild) Kick(ctx context.Context, userID, reason string) error {
	return g.session.GuildMemberDeleteWithReason(g.guildID, userID, reason, discordgo.WithContext(ctx))
}

// topRole returns the highest position among roleIDs; members with no
// roles rank 0, like @everyone.
func (g *Guild) topRole(ctx context.Context, roleIDs []string) (int, error) {
	if len(roleIDs) == 0 {
		return 0, nil
	}

	roles, err := g.session.GuildRoles(g.guildID, discordgo.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("failed to load roles of guild %s: %w", g.guildID, err)
	}

	held := make(map[string]bool, len(roleIDs))
	for _, id := range roleIDs {
		held[id] = true
	}

	top := 0
	for _, r := range roles {
		if held[r.ID] && r.Position > top {
			top = r.Position
		}
	}
	return top, nil
}
