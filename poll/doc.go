// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package poll runs timed yes/no reaction polls.

# Protocol

	engine := poll.New(10 * time.Minute)
	verdict, err := engine.Run(ctx, channel, "Should we add **Gamma** to **Banned**?")

Run posts the question, adds ✅ and ❌ itself, waits out the window and
then re-fetches the message. Only the reactions present after the window
count; there is no running tally and no early close.

# Counting

Bot accounts are ignored, which also drops the engine's own seeding
reactions. A voter who reacted with both markers is invalid and counted on
neither side:

	A ✅, B ✅, C ❌, D ✅❌  ->  Verdict{Yes: 2, No: 1, Invalid: 1}

# Vanished Messages

If the poll message was deleted or can no longer be read, Run returns a
zero Verdict with Unavailable set and a nil error. The verdict is not
approved, but callers can tell it apart from a poll nobody voted on.

# Platform

Channel is the only dependency on the chat platform. The discord package
implements it over discordgo; testutil.FakeChannel scripts reactions for
tests, and Engine.Sleep can be replaced so polls finish instantly.
*/
package poll
