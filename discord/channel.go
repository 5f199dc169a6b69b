// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/danielhkuo/listwarden/poll"
)

// Largest page MessageReactions returns
const reactionPageSize = 100

// Channel implements chat.Channel for one text channel.
type Channel struct {
	session   Session
	channelID string
}

func NewChannel(s Session, channelID string) *Channel {
	return &Channel{session: s, channelID: channelID}
}

func (c *Channel) Send(ctx context.Context, content string) (string, error) {
	msg, err := c.session.ChannelMessageSend(c.channelID, content, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to send message to %s: %w", c.channelID, err)
	}
	return msg.ID, nil
}

func (c *Channel) React(ctx context.Context, messageID, emoji string) error {
	if err := c.session.MessageReactionAdd(c.channelID, messageID, emoji, discordgo.WithContext(ctx)); err != nil {
		return unavailable(err)
	}
	return nil
}

func (c *Channel) Fetch(ctx context.Context, messageID string) (poll.Message, error) {
	msg, err := c.session.ChannelMessage(c.channelID, messageID, discordgo.WithContext(ctx))
	if err != nil {
		return poll.Message{}, unavailable(err)
	}

	out := poll.Message{ID: msg.ID}
	for _, r := range msg.Reactions {
		if r == nil || r.Emoji == nil || r.Count == 0 {
			continue
		}
		out.Reactions = append(out.Reactions, r.Emoji.APIName())
	}
	return out, nil
}

// Reactors pages through every user who reacted with emoji.
func (c *Channel) Reactors(ctx context.Context, messageID, emoji string) ([]poll.Voter, error) {
	var voters []poll.Voter
	after := ""
	for {
		users, err := c.session.MessageReactions(c.channelID, messageID, emoji, reactionPageSize, "", after, discordgo.WithContext(ctx))
		if err != nil {
			return nil, unavailable(err)
		}
		for _, u := range users {
			voters = append(voters, poll.Voter{ID: u.ID, Bot: u.Bot})
		}
		if len(users) < reactionPageSize {
			return voters, nil
		}
		after = users[len(users)-1].ID
	}
}
