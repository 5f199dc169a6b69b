// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides command and HTTP wrappers plus reply helpers.

# Command Logging

Every chat command is wrapped by the router:

	r.Handle("add", middleware.WithCommandLogging("add", h.Add))

Logs "command started" (command, author, args) and "command completed"
(duration_ms). A returned error or a panic is logged, counted in
listwarden_commands_failed and answered with FailureReply.

# Replies

	middleware.Reply(ctx, channel, "text")
	middleware.ReplyChunked(ctx, channel, long)

ReplyChunked cuts text into MessageLimit (1900) rune pieces.

# HTTP

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))
	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusServiceUnavailable, "message")
*/
package middleware
