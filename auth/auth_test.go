// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"testing"

	"github.com/danielhkuo/listwarden/cliparse"
)

func TestNewIdentity(t *testing.T) {
	tests := []struct {
		name    string
		owner   string
		users   []string
		roles   []string
		wantErr bool
	}{
		{"owner only", "250856281722716161", nil, nil, false},
		{"with whitelists", "250856281722716161", []string{"515994530852503562", " 289595726504132630 "}, []string{"42"}, false},
		{"empty owner", "", nil, nil, true},
		{"non numeric owner", "owner", nil, nil, true},
		{"bad user", "1", []string{"abc"}, nil, true},
		{"bad role", "1", nil, []string{""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIdentity(tt.owner, tt.users, tt.roles)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewIdentity() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidID) {
				t.Errorf("NewIdentity() error = %v, want ErrInvalidID", err)
			}
		})
	}
}

func TestIsOwner(t *testing.T) {
	id, err := NewIdentity("250856281722716161", nil, nil)
	if err != nil {
		t.Fatalf("NewIdentity() error = %v", err)
	}

	if !id.IsOwner("250856281722716161") {
		t.Error("IsOwner() = false for the owner")
	}
	if id.IsOwner("515994530852503562") {
		t.Error("IsOwner() = true for another user")
	}
	if id.IsOwner("") {
		t.Error("IsOwner() = true for an empty ID")
	}
}

func TestIsWhitelisted(t *testing.T) {
	id, err := NewIdentity("1", []string{"100", "200"}, []string{"900"})
	if err != nil {
		t.Fatalf("NewIdentity() error = %v", err)
	}

	tests := []struct {
		name  string
		user  string
		roles []string
		want  bool
	}{
		{"whitelisted user", "100", nil, true},
		{"whitelisted role", "300", []string{"800", "900"}, true},
		{"neither", "300", []string{"800"}, false},
		{"owner is not implicitly whitelisted", "1", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := id.IsWhitelisted(tt.user, tt.roles); got != tt.want {
				t.Errorf("IsWhitelisted(%q, %v) = %v, want %v", tt.user, tt.roles, got, tt.want)
			}
		})
	}
}

func TestFromConfig(t *testing.T) {
	cfg := cliparse.Config{
		OwnerID:            "250856281722716161",
		KickWhitelistUsers: []string{"470645179905212426"},
		KickWhitelistRoles: []string{"12345"},
	}

	id, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}
	if id.OwnerID() != cfg.OwnerID {
		t.Errorf("OwnerID() = %q, want %q", id.OwnerID(), cfg.OwnerID)
	}
	if !id.IsWhitelisted("470645179905212426", nil) {
		t.Error("configured user is not whitelisted")
	}
	if !id.IsWhitelisted("2", []string{"12345"}) {
		t.Error("configured role is not whitelisted")
	}
}

func TestParseMention(t *testing.T) {
	tests := []struct {
		token  string
		wantID string
		wantOK bool
	}{
		{"<@123>", "123", true},
		{"<@!123>", "123", true},
		{"123", "123", true},
		{" <@456> ", "456", true},
		{"<@&789>", "", false},
		{"@someone", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			id, ok := ParseMention(tt.token)
			if ok != tt.wantOK || id != tt.wantID {
				t.Errorf("ParseMention(%q) = (%q, %v), want (%q, %v)", tt.token, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}
