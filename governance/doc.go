// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package governance decides how list changes are applied.

# Flow

Every Add or Remove moves through the same states:

	Validating -> OwnerFastPath | PollPending -> Applying -> Done

Validating rejects unknown lists (ErrUnknownList), empty items
(ErrEmptyItem) and, for Remove, tokens that resolve to nothing
(ErrTargetNotFound). An Add whose item already exists ends here with
OutcomeAlreadyExists, for the owner and everyone else alike.

The owner's changes are applied in one Store.Mutate call: check, change,
sort and persist run without any other mutation in between.

Anyone else gets a poll. The poll holds no lock; other commands, including
changes to the same list, keep running while it waits. When an approved
poll ends, the proposal is checked again against the live list:

  - Add: if the item appeared meanwhile, OutcomeAddedConcurrently
  - Remove: the item is looked up again by its text, never by its old
    position; if it is gone, OutcomeRemovedConcurrently

A rejected poll (fewer than two yes votes, or no strict majority) ends
with OutcomeRejected. A poll whose message vanished ends with
OutcomePollUnavailable.

# Errors

Storage failures and poll transport failures are returned as errors. The
list is unchanged when they happen.
*/
package governance
