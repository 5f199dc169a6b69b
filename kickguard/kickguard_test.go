// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kickguard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type member struct {
	id    string
	roles []string
	rank  int
}

func (m member) Identity() string  { return m.id }
func (m member) RoleIDs() []string { return m.roles }
func (m member) RoleRank() int     { return m.rank }

type whitelist struct {
	users map[string]bool
	roles map[string]bool
}

func (w whitelist) IsWhitelisted(userID string, roleIDs []string) bool {
	if w.users[userID] {
		return true
	}
	for _, r := range roleIDs {
		if w.roles[r] {
			return true
		}
	}
	return false
}

type kicker struct {
	calls []string
	err   error
}

func (k *kicker) Kick(ctx context.Context, userID, reason string) error {
	if k.err != nil {
		return k.err
	}
	k.calls = append(k.calls, userID+"|"+reason)
	return nil
}

func newGuard() *Guard {
	return New(whitelist{
		users: map[string]bool{"500": true},
		roles: map[string]bool{"vip": true},
	})
}

func TestCheck(t *testing.T) {
	mod := member{id: "100", rank: 5}
	bot := member{id: "900", rank: 8}

	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"self", Request{Actor: mod, Target: mod, Bot: bot}, ErrSelfKick},
		{"bot", Request{Actor: mod, Target: bot, Bot: bot}, ErrKickBot},
		{"whitelisted user", Request{Actor: mod, Target: member{id: "500", rank: 1}, Bot: bot}, ErrWhitelisted},
		{"whitelisted role", Request{Actor: mod, Target: member{id: "200", roles: []string{"x", "vip"}, rank: 1}, Bot: bot}, ErrWhitelisted},
		{"equal rank", Request{Actor: mod, Target: member{id: "200", rank: 5}, Bot: bot}, ErrActorOutranked},
		{"higher rank", Request{Actor: mod, Target: member{id: "200", rank: 6}, Bot: bot}, ErrActorOutranked},
		{"guild owner ignores hierarchy", Request{Actor: mod, Target: member{id: "200", rank: 6}, Bot: bot, GuildOwnerID: "100"}, nil},
		{"bot outranked", Request{Actor: member{id: "100", rank: 10}, Target: member{id: "200", rank: 8}, Bot: bot}, ErrBotOutranked},
		{"allowed", Request{Actor: mod, Target: member{id: "200", rank: 2}, Bot: bot}, nil},
		{"no bot member", Request{Actor: mod, Target: member{id: "200", rank: 2}}, nil},
	}

	g := newGuard()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.Check(tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestKick(t *testing.T) {
	g := newGuard()
	k := &kicker{}

	reason, err := g.Kick(context.Background(), k, Request{
		Actor:     member{id: "100", rank: 5},
		Target:    member{id: "200", rank: 1},
		Bot:       member{id: "900", rank: 8},
		ActorName: "mod",
		Reason:    "spamming",
	})
	require.NoError(t, err)

	assert.Equal(t, "spamming", reason)
	assert.Equal(t, []string{"200|spamming (kicked by mod / 100)"}, k.calls)
}

func TestKickDefaultReason(t *testing.T) {
	g := newGuard()
	k := &kicker{}

	reason, err := g.Kick(context.Background(), k, Request{
		Actor:     member{id: "100", rank: 5},
		Target:    member{id: "200", rank: 1},
		ActorName: "mod",
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultReason, reason)
	assert.Equal(t, []string{"200|No reason provided (kicked by mod / 100)"}, k.calls)
}

func TestKickRefusedDoesNotCallKicker(t *testing.T) {
	g := newGuard()
	k := &kicker{}

	_, err := g.Kick(context.Background(), k, Request{
		Actor:  member{id: "100", rank: 5},
		Target: member{id: "500", rank: 1},
	})
	assert.ErrorIs(t, err, ErrWhitelisted)
	assert.Empty(t, k.calls)
}

func TestKickPlatformError(t *testing.T) {
	g := newGuard()
	k := &kicker{err: errors.New("403 Forbidden")}

	_, err := g.Kick(context.Background(), k, Request{
		Actor:  member{id: "100", rank: 5},
		Target: member{id: "200", rank: 1},
	})
	assert.ErrorContains(t, err, "403 Forbidden")
}
