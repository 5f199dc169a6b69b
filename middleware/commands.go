// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/listwarden/chat"
)

// MessageLimit is the chunk size for long replies, below the platform's
// 2000 character cap.
const MessageLimit = 1900

// FailureReply is sent when a command fails for reasons the user cannot fix.
const FailureReply = "⚠️ Something went wrong while running that command. Please try again later."

// WithCommandLogging wraps a command handler with logging, metrics and
// panic recovery. A failed command gets FailureReply in its channel.
func WithCommandLogging(name string, next chat.HandlerFunc) chat.HandlerFunc {
	return func(ctx context.Context, req *chat.Request) (err error) {
		start := time.Now()

		slog.Info("command started",
			"command", name,
			"author", req.Author.UserID,
			"args", len(req.Args),
		)

		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic in %s: %v", name, r)
			}

			duration := time.Since(start)
			commandDuration.WithLabelValues(name).Observe(duration.Seconds())
			commandsProcessed.WithLabelValues(name).Inc()

			if err != nil {
				commandsFailed.WithLabelValues(name).Inc()
				slog.Error("command failed",
					"command", name,
					"author", req.Author.UserID,
					"duration_ms", duration.Milliseconds(),
					"error", err,
				)
				// a shutdown cancels ctx, so the apology uses its own
				if replyErr := Reply(context.WithoutCancel(ctx), req.Channel, FailureReply); replyErr != nil {
					slog.Warn("failed to send failure reply", "command", name, "error", replyErr)
				}
				return
			}

			slog.Info("command completed",
				"command", name,
				"duration_ms", duration.Milliseconds(),
			)
		}()

		return next(ctx, req)
	}
}

// Reply sends content to ch.
func Reply(ctx context.Context, ch chat.Channel, content string) error {
	if _, err := ch.Send(ctx, content); err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}
	return nil
}

// ReplyChunked sends content split into MessageLimit sized messages.
func ReplyChunked(ctx context.Context, ch chat.Channel, content string) error {
	for _, part := range Chunk(content, MessageLimit) {
		if err := Reply(ctx, ch, part); err != nil {
			return err
		}
	}
	return nil
}

// Chunk splits s into pieces of at most size runes. Pieces are cut at
// fixed offsets, not at line breaks.
func Chunk(s string, size int) []string {
	runes := []rune(s)
	var out []string
	for start := 0; start < len(runes); start += size {
		end := min(start+size, len(runes))
		out = append(out, string(runes[start:end]))
	}
	return out
}
