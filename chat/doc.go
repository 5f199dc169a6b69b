// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package chat defines the platform-neutral command types: Request,
// Member, and the Channel and Guild capabilities handlers call. The
// discord package implements them; testutil provides fakes.
package chat
