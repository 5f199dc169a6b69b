// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package governance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/danielhkuo/listwarden/items"
	"github.com/danielhkuo/listwarden/liststore"
	"github.com/danielhkuo/listwarden/models"
	"github.com/danielhkuo/listwarden/poll"
)

// Input errors, reported back to the caller as-is.
var (
	ErrUnknownList    = errors.New("unknown list")
	ErrEmptyItem      = errors.New("item is empty")
	ErrTargetNotFound = errors.New("item not found")
)

// Sentinels returned from inside a Mutate callback to skip the write.
var (
	errPollRequired = errors.New("poll required")
	errStale        = errors.New("proposal no longer applies")
)

const (
	addQuestion    = "Should we add **%s** to **%s**?"
	removeQuestion = "Should we remove **%s** from **%s**?"
)

type Outcome string

const (
	OutcomeAdded               Outcome = "added"
	OutcomeRemoved             Outcome = "removed"
	OutcomeAlreadyExists       Outcome = "already_exists"
	OutcomeAddedConcurrently   Outcome = "added_concurrently"
	OutcomeRemovedConcurrently Outcome = "removed_concurrently"
	OutcomeRejected            Outcome = "rejected"
	OutcomePollUnavailable     Outcome = "poll_unavailable"
)

// Result describes how one add/remove invocation ended.
type Result struct {
	Outcome Outcome
	Action  models.Action
	List    string
	Emoji   string
	// Item is the normalized item for adds and the stored text for removes
	Item string
	// Position is the 1-based position a remove target had when it was
	// resolved, 0 for adds
	Position int
	// Polled is false on the owner fast path and for duplicates
	Polled  bool
	Verdict models.Verdict
}

// Owner identifies the single caller who skips voting.
type Owner interface {
	IsOwner(userID string) bool
}

// Poller runs one yes/no vote in ch.
type Poller interface {
	Run(ctx context.Context, ch poll.Channel, question string) (models.Verdict, error)
}

// Orchestrator applies add and remove proposals to the store, either
// directly for the owner or after a vote for everyone else.
type Orchestrator struct {
	store  *liststore.Store
	owner  Owner
	poller Poller
}

func New(store *liststore.Store, owner Owner, poller Poller) *Orchestrator {
	return &Orchestrator{store: store, owner: owner, poller: poller}
}

// Add proposes adding text to list. Duplicates short-circuit before any
// vote. For non-owners the poll runs without holding any lock; the
// duplicate check is repeated against the live list before writing.
func (o *Orchestrator) Add(ctx context.Context, ch poll.Channel, actorID, list, text string) (Result, error) {
	name, entry, err := o.resolveList(list)
	if err != nil {
		return Result{}, err
	}

	proposal := models.Proposal{
		ListName: name,
		Action:   models.ActionAdd,
		Item:     items.Normalize(text),
	}
	if proposal.Item == "" {
		return Result{}, ErrEmptyItem
	}

	result := Result{Action: proposal.Action, List: name, Emoji: entry.Emoji, Item: proposal.Item}
	owner := o.owner.IsOwner(actorID)

	_, err = o.store.Mutate(ctx, name, func(current []string) ([]string, error) {
		if items.ContainsFold(current, proposal.Item) {
			// still sorted and persisted
			result.Outcome = OutcomeAlreadyExists
			return current, nil
		}
		if !owner {
			return nil, errPollRequired
		}
		result.Outcome = OutcomeAdded
		return append(current, proposal.Item), nil
	})
	switch {
	case errors.Is(err, errPollRequired):
	case err != nil:
		return Result{}, err
	default:
		o.record(result, actorID)
		return result, nil
	}

	question := fmt.Sprintf(addQuestion, proposal.Item, items.DisplayName(name))
	return o.vote(ctx, ch, actorID, question, result, func(current []string) ([]string, error) {
		if items.ContainsFold(current, proposal.Item) {
			return nil, errStale
		}
		return append(current, proposal.Item), nil
	})
}

// Remove proposes removing the item token resolves to, by 1-based
// position or exact text. The target is resolved before any vote so the
// question names a concrete item. After an approved vote the item is
// matched again by text, since positions shift when the list changes.
func (o *Orchestrator) Remove(ctx context.Context, ch poll.Channel, actorID, list, token string) (Result, error) {
	name, entry, err := o.resolveList(list)
	if err != nil {
		return Result{}, err
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return Result{}, ErrEmptyItem
	}

	proposal := models.Proposal{ListName: name, Action: models.ActionRemove}
	result := Result{Action: proposal.Action, List: name, Emoji: entry.Emoji}
	owner := o.owner.IsOwner(actorID)

	_, err = o.store.Mutate(ctx, name, func(current []string) ([]string, error) {
		idx, value, ok := items.ResolveTarget(current, token)
		if !ok {
			return nil, ErrTargetNotFound
		}
		proposal.Position, proposal.Snapshot = idx+1, value
		if !owner {
			return nil, errPollRequired
		}
		result.Outcome = OutcomeRemoved
		return slices.Delete(current, idx, idx+1), nil
	})
	result.Item, result.Position = proposal.Snapshot, proposal.Position
	switch {
	case errors.Is(err, errPollRequired):
	case err != nil:
		return Result{}, err
	default:
		o.record(result, actorID)
		return result, nil
	}

	question := fmt.Sprintf(removeQuestion, proposal.Snapshot, items.DisplayName(name))
	return o.vote(ctx, ch, actorID, question, result, func(current []string) ([]string, error) {
		idx, ok := items.IndexFold(current, proposal.Snapshot)
		if !ok {
			return nil, errStale
		}
		return slices.Delete(current, idx, idx+1), nil
	})
}

// vote runs the poll and, if approved, applies fn to the live list.
// fn returns errStale when the change was already made by someone else.
func (o *Orchestrator) vote(ctx context.Context, ch poll.Channel, actorID, question string, result Result, fn func([]string) ([]string, error)) (Result, error) {
	result.Polled = true

	verdict, err := o.poller.Run(ctx, ch, question)
	if err != nil {
		return Result{}, fmt.Errorf("poll failed: %w", err)
	}
	result.Verdict = verdict

	switch {
	case verdict.Unavailable:
		result.Outcome = OutcomePollUnavailable
	case !verdict.Approved():
		result.Outcome = OutcomeRejected
	default:
		_, err = o.store.Mutate(ctx, result.List, fn)
		switch {
		case errors.Is(err, errStale):
			result.Outcome = staleOutcome(result.Action)
		case err != nil:
			return Result{}, err
		case result.Action == models.ActionAdd:
			result.Outcome = OutcomeAdded
		default:
			result.Outcome = OutcomeRemoved
		}
	}

	o.record(result, actorID)
	return result, nil
}

func (o *Orchestrator) resolveList(list string) (string, models.ListEntry, error) {
	name := strings.ToLower(strings.TrimSpace(list))
	if !o.store.Catalog().Has(name) {
		return "", models.ListEntry{}, fmt.Errorf("%w: %s", ErrUnknownList, name)
	}
	entry, ok := o.store.Entry(name)
	if !ok {
		return "", models.ListEntry{}, fmt.Errorf("%w: %s", ErrUnknownList, name)
	}
	return name, entry, nil
}

func (o *Orchestrator) record(result Result, actorID string) {
	proposals.WithLabelValues(string(result.Action), string(result.Outcome)).Inc()
	if result.Applied() {
		mutations.WithLabelValues(result.List, string(result.Action)).Inc()
	}

	slog.Info("proposal finished",
		"list", result.List,
		"action", result.Action,
		"item", result.Item,
		"position", result.Position,
		"actor", actorID,
		"outcome", result.Outcome,
		"polled", result.Polled,
		"yes", result.Verdict.Yes,
		"no", result.Verdict.No,
		"invalid", result.Verdict.Invalid,
	)
}

func staleOutcome(action models.Action) Outcome {
	if action == models.ActionAdd {
		return OutcomeAddedConcurrently
	}
	return OutcomeRemovedConcurrently
}

// Applied reports whether the result changed the list.
func (r Result) Applied() bool {
	return r.Outcome == OutcomeAdded || r.Outcome == OutcomeRemoved
}
