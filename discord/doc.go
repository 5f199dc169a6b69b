// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package discord connects the bot to Discord through discordgo.

Channel and Guild implement chat.Channel and chat.Guild over the narrow
Session interface, so tests can swap in a fake for *discordgo.Session.

	s, err := discord.NewSession(token)
	err = discord.Run(ctx, s, router)

Run opens the gateway with Intents, hands every message to the
Dispatcher in its own goroutine and, once ctx is done, closes the gateway
and waits for running commands.

# Errors

A REST response of 404 or 403 while reading or reacting to a message is
wrapped with poll.ErrUnavailable. A 404 on a member lookup becomes
chat.ErrMemberNotFound.

# Reactions

MessageReactions returns at most 100 users per call; Reactors pages with
the last user ID until a short page comes back.
*/
package discord
