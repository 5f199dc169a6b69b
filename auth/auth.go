// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"

	"github.com/danielhkuo/listwarden/cliparse"
)

var ErrInvalidID = errors.New("invalid snowflake ID")

// Identity holds the static identities the bot trusts: the single owner
// and the members that can never be kicked. It is built once at startup
// and never changes.
type Identity struct {
	ownerID string
	users   map[string]bool
	roles   map[string]bool
}

// NewIdentity validates the IDs and builds an Identity.
func NewIdentity(ownerID string, whitelistUsers, whitelistRoles []string) (*Identity, error) {
	if !ValidID(ownerID) {
		return nil, ErrInvalidID
	}

	id := &Identity{
		ownerID: ownerID,
		users:   make(map[string]bool, len(whitelistUsers)),
		roles:   make(map[string]bool, len(whitelistRoles)),
	}
	for _, u := range whitelistUsers {
		u = strings.TrimSpace(u)
		if !ValidID(u) {
			return nil, ErrInvalidID
		}
		id.users[u] = true
	}
	for _, r := range whitelistRoles {
		r = strings.TrimSpace(r)
		if !ValidID(r) {
			return nil, ErrInvalidID
		}
		id.roles[r] = true
	}
	return id, nil
}

// FromConfig builds the Identity from parsed configuration.
func FromConfig(cfg cliparse.Config) (*Identity, error) {
	return NewIdentity(cfg.OwnerID, cfg.KickWhitelistUsers, cfg.KickWhitelistRoles)
}

// OwnerID returns the configured owner.
func (i *Identity) OwnerID() string {
	return i.ownerID
}

// IsOwner reports whether userID is the configured owner.
func (i *Identity) IsOwner(userID string) bool {
	return userID != "" && userID == i.ownerID
}

// IsWhitelisted reports whether the user, or any of the given roles, is on
// the kick whitelist.
func (i *Identity) IsWhitelisted(userID string, roleIDs []string) bool {
	if i.users[userID] {
		return true
	}
	for _, r := range roleIDs {
		if i.roles[r] {
			return true
		}
	}
	return false
}

// ValidID reports whether id looks like a platform snowflake: non-empty
// and all ASCII digits.
func ValidID(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

// ParseMention extracts the user ID from a mention such as <@123> or
// <@!123>, or accepts a bare ID.
func ParseMention(token string) (string, bool) {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(token, "<@") && strings.HasSuffix(token, ">") {
		token = strings.TrimSuffix(strings.TrimPrefix(token, "<@"), ">")
		token = strings.TrimPrefix(token, "!")
	}
	if !ValidID(token) {
		return "", false
	}
	return token, true
}
