// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package items implements item matching and ordering for curated lists.

# Normalization

Every item is normalized before storage and before duplicate checks:

	items.Normalize("  aditya lee SIN ") // "Aditya Lee Sin"

# Matching

Duplicate detection compares Unicode case-folded forms:

	items.ContainsFold(list, "jugg mf")

ResolveTarget turns a remove argument into a concrete item. All-digit
tokens are 1-based positions; other tokens must equal an item's full text,
ignoring case. There is no partial or fuzzy matching.

	idx, val, ok := items.ResolveTarget([]string{"Alpha", "Beta"}, "2") // 1, "Beta", true

# Natural Sort

Lists are always displayed and persisted in natural order, where digit runs
compare as numbers:

	Item1, Item2, Item10
*/
package items
