// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth holds the bot's static trust configuration.

There are no accounts, sessions or tokens. The bot trusts exactly one
owner, whose add/remove commands skip the vote, and keeps a permanent kick
whitelist of user and role IDs.

# Identity

	id, err := auth.FromConfig(cfg)
	id.IsOwner(authorID)
	id.IsWhitelisted(memberID, memberRoleIDs)

All IDs are platform snowflakes (decimal digits). NewIdentity rejects
anything else with ErrInvalidID.

# Mentions

ParseMention accepts <@id>, <@!id> or a bare ID and returns the user ID.
Role and channel mentions are rejected.

Permission flags (Kick Members) come from the platform at call time and
are not modelled here.
*/
package auth
