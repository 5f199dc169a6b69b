// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/danielhkuo/listwarden/chat"
	"github.com/danielhkuo/listwarden/poll"
)

type reaction struct {
	emoji string
	voter poll.Voter
}

// FakeChannel is an in-memory chat.Channel. Reactions are scripted with
// Vote and Unvote; React records bot reactions.
type FakeChannel struct {
	mu sync.Mutex

	// FailSend, when set, is returned by every Send
	FailSend error

	nextID    int
	ids       []string
	messages  map[string]string
	reactions map[string][]reaction
	deleted   map[string]bool
}

func NewFakeChannel() *FakeChannel {
	return &FakeChannel{
		nextID:    1000,
		messages:  map[string]string{},
		reactions: map[string][]reaction{},
		deleted:   map[string]bool{},
	}
}

func (c *FakeChannel) Send(ctx context.Context, content string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.FailSend != nil {
		return "", c.FailSend
	}
	c.nextID++
	id := strconv.Itoa(c.nextID)
	c.ids = append(c.ids, id)
	c.messages[id] = content
	return id, nil
}

func (c *FakeChannel) React(ctx context.Context, messageID, emoji string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.check(messageID); err != nil {
		return err
	}
	c.add(messageID, emoji, poll.Voter{ID: BotID, Bot: true})
	return nil
}

func (c *FakeChannel) Fetch(ctx context.Context, messageID string) (poll.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.check(messageID); err != nil {
		return poll.Message{}, err
	}
	msg := poll.Message{ID: messageID}
	for _, r := range c.reactions[messageID] {
		if !slices.Contains(msg.Reactions, r.emoji) {
			msg.Reactions = append(msg.Reactions, r.emoji)
		}
	}
	return msg, nil
}

func (c *FakeChannel) Reactors(ctx context.Context, messageID, emoji string) ([]poll.Voter, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.check(messageID); err != nil {
		return nil, err
	}
	var voters []poll.Voter
	for _, r := range c.reactions[messageID] {
		if r.emoji == emoji {
			voters = append(voters, r.voter)
		}
	}
	return voters, nil
}

// Vote adds a human reaction.
func (c *FakeChannel) Vote(messageID, userID, emoji string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.add(messageID, emoji, poll.Voter{ID: userID})
}

// Unvote removes a reaction added with Vote.
func (c *FakeChannel) Unvote(messageID, userID, emoji string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reactions[messageID] = slices.DeleteFunc(c.reactions[messageID], func(r reaction) bool {
		return r.emoji == emoji && r.voter.ID == userID
	})
}

// Delete simulates a moderator deleting the message.
func (c *FakeChannel) Delete(messageID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted[messageID] = true
}

// Messages returns everything sent so far, oldest first.
func (c *FakeChannel) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.messages[id])
	}
	return out
}

// LastMessage returns the most recent message text, or "".
func (c *FakeChannel) LastMessage() string {
	msgs := c.Messages()
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1]
}

// LastMessageID returns the ID of the most recent message, or "".
func (c *FakeChannel) LastMessageID() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.ids) == 0 {
		return ""
	}
	return c.ids[len(c.ids)-1]
}

// BotReactions lists the emoji the bot itself added to a message.
func (c *FakeChannel) BotReactions(messageID string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []string
	for _, r := range c.reactions[messageID] {
		if r.voter.Bot {
			out = append(out, r.emoji)
		}
	}
	return out
}

func (c *FakeChannel) add(messageID, emoji string, voter poll.Voter) {
	for _, r := range c.reactions[messageID] {
		if r.emoji == emoji && r.voter.ID == voter.ID {
			return
		}
	}
	c.reactions[messageID] = append(c.reactions[messageID], reaction{emoji: emoji, voter: voter})
}

func (c *FakeChannel) check(messageID string) error {
	if _, ok := c.messages[messageID]; !ok || c.deleted[messageID] {
		return fmt.Errorf("%w: message %s: 404 Not Found", poll.ErrUnavailable, messageID)
	}
	return nil
}

// Kick is one recorded FakeGuild.Kick call.
type Kick struct {
	UserID string
	Reason string
}

// FakeGuild is an in-memory chat.Guild.
type FakeGuild struct {
	mu sync.Mutex

	Owner   string
	Members map[string]chat.Member
	// Kickers holds the users with Kick Members
	Kickers map[string]bool

	FailKick error
	Kicked   []Kick
}

// NewFakeGuild returns a guild containing the bot at role position 10
// with Kick Members.
func NewFakeGuild() *FakeGuild {
	return &FakeGuild{
		Owner: OwnerID,
		Members: map[string]chat.Member{
			BotID: {UserID: BotID, Username: "listwarden", TopRole: 10, Bot: true},
		},
		Kickers: map[string]bool{BotID: true},
	}
}

// AddMember registers m, with Kick Members if canKick.
func (g *FakeGuild) AddMember(m chat.Member, canKick bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Members[m.UserID] = m
	g.Kickers[m.UserID] = canKick
}

func (g *FakeGuild) OwnerID(ctx context.Context) (string, error) {
	return g.Owner, nil
}

func (g *FakeGuild) Member(ctx context.Context, userID string) (chat.Member, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	m, ok := g.Members[userID]
	if !ok {
		return chat.Member{}, fmt.Errorf("%w: %s", chat.ErrMemberNotFound, userID)
	}
	return m, nil
}

func (g *FakeGuild) Self(ctx context.Context) (chat.Member, error) {
	return g.Member(ctx, BotID)
}

func (g *FakeGuild) CanKick(ctx context.Context, userID string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.Kickers[userID], nil
}

func (g *FakeGuild) Kick(ctx context.Context, userID, reason string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.FailKick != nil {
		return g.FailKick
	}
	g.Kicked = append(g.Kicked, Kick{UserID: userID, Reason: reason})
	delete(g.Members, userID)
	return nil
}
