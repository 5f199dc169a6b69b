// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/listwarden/auth"
	"github.com/danielhkuo/listwarden/chat"
	"github.com/danielhkuo/listwarden/governance"
	"github.com/danielhkuo/listwarden/kickguard"
	"github.com/danielhkuo/listwarden/liststore"
	"github.com/danielhkuo/listwarden/poll"
	"github.com/danielhkuo/listwarden/testutil"
)

const (
	memberID = "515994530852503562"
	modID    = "289595726504132630"
)

var owner = chat.Member{UserID: testutil.OwnerID, Username: "owner", TopRole: 20}

// env wires real handlers to a temp store and a fake channel whose polls
// finish instantly with the votes in yes and no.
type env struct {
	store  *liststore.Store
	ch     *testutil.FakeChannel
	guild  *testutil.FakeGuild
	engine *poll.Engine

	lists *ListHandler
	echo  *EchoHandler
	mod   *ModerationHandler
}

func newEnv(t *testing.T, lists map[string][]string) *env {
	t.Helper()

	cfg := testutil.GetTestConfig()
	identity, err := auth.FromConfig(cfg)
	require.NoError(t, err)

	e := &env{
		store:  testutil.SetupTestStore(t, lists),
		ch:     testutil.NewFakeChannel(),
		guild:  testutil.NewFakeGuild(),
		engine: poll.New(time.Minute),
	}
	e.engine.Sleep = testutil.Instant(nil)

	gov := governance.New(e.store, identity, e.engine)
	e.lists = NewListHandler(e.store, gov, cfg)
	e.echo = NewEchoHandler(cfg)
	e.mod = NewModerationHandler(kickguard.New(identity), cfg)
	return e
}

func (e *env) votes(yes, no []string) {
	e.engine.Sleep = testutil.Instant(func() {
		id := e.ch.LastMessageID()
		for _, u := range yes {
			e.ch.Vote(id, u, poll.YesEmoji)
		}
		for _, u := range no {
			e.ch.Vote(id, u, poll.NoEmoji)
		}
	})
}

func (e *env) run(t *testing.T, h chat.HandlerFunc, author chat.Member, rest string) string {
	t.Helper()
	req := chat.NewRequest("test", rest, author, e.ch, e.guild)
	require.NoError(t, h(context.Background(), req))
	return e.ch.LastMessage()
}
