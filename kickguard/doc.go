// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package kickguard decides whether a member may be kicked.

A kick is refused, in this order, when the target:

  - is the actor (ErrSelfKick)
  - is the bot (ErrKickBot)
  - or one of its roles is whitelisted (ErrWhitelisted)
  - has a top role equal to or above the actor's, unless the actor owns
    the guild (ErrActorOutranked)
  - has a top role equal to or above the bot's (ErrBotOutranked)

Only then does Guard.Kick call the Kicker, with the audit reason

	"<reason> (kicked by <actor name> / <actor id>)"

Permission flags (Kick Members for the actor and the bot) are checked by
the caller before the guard runs. The guard keeps no state.
*/
package kickguard
