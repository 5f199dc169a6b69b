// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package discord

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/danielhkuo/listwarden/chat"
)

// Dispatcher runs parsed commands. router.Router implements it.
type Dispatcher interface {
	Parse(content string) (name, rest string, ok bool)
	Dispatch(ctx context.Context, content string, author chat.Member, ch chat.Channel, guild chat.Guild) (bool, error)
}

// Bot feeds gateway messages to a Dispatcher. Each command runs in its
// own goroutine, so a pending poll never holds up other commands.
type Bot struct {
	api        Session
	dispatcher Dispatcher
	ctx        context.Context

	// botID is learned from the Ready event; closed is set by Wait
	mu     sync.Mutex
	botID  string
	closed bool

	wg sync.WaitGroup
}

func NewBot(ctx context.Context, api Session, dispatcher Dispatcher) *Bot {
	return &Bot{api: api, dispatcher: dispatcher, ctx: ctx}
}

// SetSelf records the bot's own user ID.
func (b *Bot) SetSelf(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.botID = id
}

func (b *Bot) self() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.botID
}

// Run connects s, serves commands until ctx is done, then disconnects and
// waits for running commands to return. Cancelling ctx cuts pending polls
// short.
func Run(ctx context.Context, s *discordgo.Session, dispatcher Dispatcher) error {
	bot := NewBot(ctx, s, dispatcher)

	s.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		bot.SetSelf(r.User.ID)
		slog.Info("connected to discord", "user", r.User.Username, "user_id", r.User.ID, "guilds", len(r.Guilds))
	})
	s.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		bot.HandleMessage(m.Message)
	})

	if err := s.Open(); err != nil {
		return fmt.Errorf("failed to open discord gateway: %w", err)
	}

	<-ctx.Done()
	slog.Info("disconnecting from discord")
	err := s.Close()
	bot.Wait()
	return err
}

// HandleMessage starts the command in m, if any. Messages from bots,
// including this one, are ignored.
func (b *Bot) HandleMessage(m *discordgo.Message) {
	if m == nil || m.Author == nil || m.Author.Bot {
		return
	}
	name, _, ok := b.dispatcher.Parse(m.Content)
	if !ok {
		return
	}

	author := chat.Member{UserID: m.Author.ID, Username: m.Author.Username}
	ch := NewChannel(b.api, m.ChannelID)
	var guild chat.Guild
	if m.GuildID != "" {
		guild = NewGuild(b.api, m.GuildID, m.ChannelID, b.self())
	}

	// wg.Add must not race with Wait
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		slog.Debug("dropping command during shutdown", "command", name, "author", author.UserID)
		return
	}
	b.wg.Add(1)
	b.mu.Unlock()

	go func() {
		defer b.wg.Done()

		matched, err := b.dispatcher.Dispatch(b.ctx, m.Content, author, ch, guild)
		if !matched {
			slog.Debug("ignoring unknown command", "command", name, "author", author.UserID)
			return
		}
		if err != nil {
			// already logged and answered by the command middleware
			slog.Debug("command returned error", "command", name, "error", err)
		}
	}()
}

// Wait stops accepting new commands and blocks until every started
// command has returned.
func (b *Bot) Wait() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	b.wg.Wait()
}
