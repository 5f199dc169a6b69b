// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chat

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/danielhkuo/listwarden/poll"
)

var ErrMemberNotFound = errors.New("member not found")

// Member is a guild member as the bot sees it.
type Member struct {
	UserID   string
	Username string
	Roles    []string
	// TopRole is the position of the highest role, 0 for @everyone only
	TopRole int
	Bot     bool
}

func (m Member) Identity() string  { return m.UserID }
func (m Member) RoleIDs() []string { return m.Roles }
func (m Member) RoleRank() int     { return m.TopRole }

// Mention renders a ping for the member.
func (m Member) Mention() string {
	return "<@" + m.UserID + ">"
}

// Channel is where a command was typed. Replies and polls go to the same
// channel.
type Channel interface {
	poll.Channel
}

// Guild is the server a command was typed in.
type Guild interface {
	OwnerID(ctx context.Context) (string, error)
	// Member returns ErrMemberNotFound for unknown users.
	Member(ctx context.Context, userID string) (Member, error)
	Self(ctx context.Context) (Member, error)
	// CanKick reports whether userID holds Kick Members in the command's
	// channel.
	CanKick(ctx context.Context, userID string) (bool, error)
	Kick(ctx context.Context, userID, reason string) error
}

// Request is one parsed command invocation.
type Request struct {
	Name string
	// Rest is the text after the command name, trimmed
	Rest string
	Args []string

	Author  Member
	Channel Channel
	// Guild is nil for direct messages
	Guild Guild
}

// NewRequest splits rest into whitespace separated arguments.
func NewRequest(name, rest string, author Member, ch Channel, guild Guild) *Request {
	rest = strings.TrimSpace(rest)
	return &Request{
		Name:    name,
		Rest:    rest,
		Args:    strings.Fields(rest),
		Author:  author,
		Channel: ch,
		Guild:   guild,
	}
}

// After returns the raw text following the first n arguments, trimmed.
// Whitespace inside the remainder is kept as typed.
func (r *Request) After(n int) string {
	s := r.Rest
	for i := 0; i < n; i++ {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		end := strings.IndexFunc(s, unicode.IsSpace)
		if end < 0 {
			return ""
		}
		s = s[end:]
	}
	return strings.TrimSpace(s)
}

// HandlerFunc handles one command. Problems the user can fix are answered
// in the channel and return nil; a returned error means the command
// failed.
type HandlerFunc func(ctx context.Context, req *Request) error
