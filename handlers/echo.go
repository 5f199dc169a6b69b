// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"

	"github.com/danielhkuo/listwarden/chat"
	"github.com/danielhkuo/listwarden/cliparse"
	"github.com/danielhkuo/listwarden/middleware"
)

type EchoHandler struct {
	prefix string
}

func NewEchoHandler(cfg cliparse.Config) *EchoHandler {
	return &EchoHandler{prefix: cfg.Prefix}
}

// Echo handles `echo <text>`
func (h *EchoHandler) Echo(ctx context.Context, req *chat.Request) error {
	if req.Rest == "" {
		return middleware.Reply(ctx, req.Channel, fmt.Sprintf("Usage: `%secho <message>`", h.prefix))
	}
	return middleware.Reply(ctx, req.Channel, req.Rest)
}
