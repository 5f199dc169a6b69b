// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package liststore

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
)

// SeedDocument is the bundled default dataset.
//
//go:embed seed.json
var SeedDocument []byte

// Seed writes SeedDocument when the backend holds no usable items. It
// reports whether it wrote anything.
func Seed(ctx context.Context, backend Backend) (bool, error) {
	raw, err := backend.Read(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read list document: %w", err)
	}
	if !NeedsSeed(raw) {
		return false, nil
	}

	slog.Info("seeding lists from bundled dataset")
	if err := backend.Write(ctx, SeedDocument); err != nil {
		return false, fmt.Errorf("failed to write seed document: %w", err)
	}
	return true, nil
}
