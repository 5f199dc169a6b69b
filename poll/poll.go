// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/danielhkuo/listwarden/models"
)

const (
	DefaultDuration = 10 * time.Minute
	YesEmoji        = "✅"
	NoEmoji         = "❌"
)

// ErrUnavailable marks a poll message that was deleted or became
// unreadable (not found, forbidden) before it could be tallied.
var ErrUnavailable = errors.New("poll message unavailable")

// Voter is one account that reacted to a poll.
type Voter struct {
	ID  string
	Bot bool
}

// Message is the re-fetched poll message. Reactions lists the emoji that
// currently have at least one reactor.
type Message struct {
	ID        string
	Reactions []string
}

// Channel is the platform capability a poll needs. Fetch and Reactors
// return an error wrapping ErrUnavailable when the message is gone.
type Channel interface {
	Send(ctx context.Context, content string) (messageID string, err error)
	React(ctx context.Context, messageID, emoji string) error
	Fetch(ctx context.Context, messageID string) (Message, error)
	Reactors(ctx context.Context, messageID, emoji string) ([]Voter, error)
}

// Engine runs timed yes/no polls. A zero Engine is not usable; use New.
type Engine struct {
	Duration time.Duration
	Yes      string
	No       string

	// Sleep blocks for d. Tests swap it to run polls instantly.
	Sleep func(ctx context.Context, d time.Duration) error
}

func New(duration time.Duration) *Engine {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Engine{
		Duration: duration,
		Yes:      YesEmoji,
		No:       NoEmoji,
		Sleep:    sleep,
	}
}

// Run posts question, seeds both reactions, waits out the window and
// tallies the final reactions. Only the state after the window counts.
// A message that vanished during the window yields an all-zero verdict
// with Unavailable set, not an error. ctx cancellation only happens on
// shutdown; nothing ends a poll early otherwise.
func (e *Engine) Run(ctx context.Context, ch Channel, question string) (models.Verdict, error) {
	pollID := uuid.NewString()
	logger := slog.With("poll_id", pollID)

	messageID, err := ch.Send(ctx, e.Message(question))
	if err != nil {
		return models.Verdict{}, fmt.Errorf("failed to post poll: %w", err)
	}
	for _, emoji := range []string{e.Yes, e.No} {
		if err := ch.React(ctx, messageID, emoji); err != nil {
			return models.Verdict{}, fmt.Errorf("failed to seed %s reaction: %w", emoji, err)
		}
	}

	pollsStarted.Inc()
	logger.Info("poll started", "message_id", messageID, "duration", e.Duration.String())

	if err := e.Sleep(ctx, e.Duration); err != nil {
		return models.Verdict{}, err
	}

	verdict, err := e.collect(ctx, ch, messageID)
	if errors.Is(err, ErrUnavailable) {
		logger.Warn("poll message unavailable after window", "message_id", messageID, "error", err)
		pollOutcomes.WithLabelValues("unavailable").Inc()
		return models.Verdict{Unavailable: true}, nil
	}
	if err != nil {
		return models.Verdict{}, err
	}

	outcome := "rejected"
	if verdict.Approved() {
		outcome = "approved"
	}
	pollOutcomes.WithLabelValues(outcome).Inc()
	logger.Info("poll ended", "yes", verdict.Yes, "no", verdict.No, "invalid", verdict.Invalid, "outcome", outcome)

	return verdict, nil
}

func (e *Engine) collect(ctx context.Context, ch Channel, messageID string) (models.Verdict, error) {
	msg, err := ch.Fetch(ctx, messageID)
	if err != nil {
		return models.Verdict{}, err
	}

	var yes, no []Voter
	for _, emoji := range msg.Reactions {
		switch emoji {
		case e.Yes:
			if yes, err = ch.Reactors(ctx, messageID, emoji); err != nil {
				return models.Verdict{}, err
			}
		case e.No:
			if no, err = ch.Reactors(ctx, messageID, emoji); err != nil {
				return models.Verdict{}, err
			}
		}
	}

	return Tally(yes, no), nil
}

// Message renders the poll text.
func (e *Engine) Message(question string) string {
	now := time.Now()
	window := strings.TrimSpace(humanize.RelTime(now, now.Add(e.Duration), "", ""))
	return fmt.Sprintf("📊 **Vote (%s)**\n%s\n\nReact with %s for Yes or %s for No.\n⚠️ Voting both counts as invalid.",
		window, question, e.Yes, e.No)
}

// Tally counts distinct non-bot voters. Anyone who reacted with both
// markers is invalid and counted on neither side.
func Tally(yes, no []Voter) models.Verdict {
	yesSet := voterSet(yes)
	noSet := voterSet(no)

	invalid := 0
	for id := range yesSet {
		if noSet[id] {
			delete(yesSet, id)
			delete(noSet, id)
			invalid++
		}
	}

	return models.Verdict{Yes: len(yesSet), No: len(noSet), Invalid: invalid}
}

func voterSet(voters []Voter) map[string]bool {
	set := make(map[string]bool, len(voters))
	for _, v := range voters {
		if !v.Bot {
			set[v.ID] = true
		}
	}
	return set
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
