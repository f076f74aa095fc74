// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/xAlexMGGx/LinkGames/models"
	"github.com/xAlexMGGx/LinkGames/roster"
	"github.com/xAlexMGGx/LinkGames/scoring"
)

// ErrUnknownPlayer is returned for submissions from outside the roster.
var ErrUnknownPlayer = roster.ErrUnknownPlayer

// Submission is one player's results for the day, keyed by game key.
// A timed game with no entry, or an empty one, is recorded as not
// finished. A boolean game with no entry is recorded as No.
type Submission struct {
	Player string
	Times  map[string]string
	Flags  map[string]bool
}

// ValidationError lists the games whose input was rejected. Nothing is
// recorded when a submission fails validation.
type ValidationError struct {
	Games  []string
	Causes map[string]error
}

func (e *ValidationError) Error() string {
	return "invalid input for " + strings.Join(e.Games, ", ")
}

// Result is what was recorded for a submission.
type Result struct {
	Player string
	Date   string
}

// SubmitDailyResult records a player's results into today's document,
// replacing anything they submitted earlier today.
func (e *Engine) SubmitDailyResult(ctx context.Context, sub Submission) (Result, error) {
	player, err := e.roster.Player(sub.Player)
	if err != nil {
		e.metrics.submission(outcomeUnknownPlayer)
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownPlayer, sub.Player)
	}

	st, _, err := e.sync(ctx)
	if err != nil {
		e.metrics.submission(outcomeError)
		return Result{}, err
	}

	values, err := e.validate(sub)
	if err != nil {
		e.metrics.submission(outcomeInvalid)
		return Result{}, err
	}

	doc := st.today
	for game, value := range values {
		doc.Set(game, player, value)
	}
	doc.Set(models.TimestampKey, player, st.date)

	if err := e.store.Put(ctx, models.DocToday, doc); err != nil {
		e.metrics.submission(outcomeError)
		return Result{}, fmt.Errorf("failed to record results: %w", err)
	}

	e.metrics.submission(outcomeAccepted)
	slog.Info("results recorded", "player", player, "date", st.date)
	return Result{Player: player, Date: st.date}, nil
}

// validate converts a submission into stored values keyed by document
// name, or returns a *ValidationError naming every bad game.
func (e *Engine) validate(sub Submission) (map[string]string, error) {
	causes := make(map[string]error)

	for key := range sub.Times {
		if g, err := e.roster.Game(key); err != nil {
			causes[key] = err
		} else if !g.Timed() {
			causes[key] = fmt.Errorf("%s takes a yes/no answer, not a time", g.Key)
		}
	}
	for key := range sub.Flags {
		if g, err := e.roster.Game(key); err != nil {
			causes[key] = err
		} else if g.Timed() {
			causes[key] = fmt.Errorf("%s takes a time, not a yes/no answer", g.Key)
		}
	}

	values := make(map[string]string, len(e.roster.Games))
	for _, g := range e.roster.Games {
		if !g.Timed() {
			if lookup(sub.Flags, g) {
				values[g.Name] = models.Yes
			} else {
				values[g.Name] = models.No
			}
			continue
		}

		secs, err := scoring.ParseSubmittedTime(lookup(sub.Times, g))
		if err != nil {
			causes[g.Key] = err
			continue
		}
		values[g.Name] = strconv.Itoa(secs)
	}

	if len(causes) > 0 {
		games := make([]string, 0, len(causes))
		for key := range causes {
			games = append(games, key)
		}
		sort.Strings(games)
		return nil, &ValidationError{Games: games, Causes: causes}
	}
	return values, nil
}

// lookup reads a game's entry by key, falling back to its display name.
func lookup[V any](m map[string]V, g roster.Game) V {
	if v, ok := m[g.Key]; ok {
		return v
	}
	return m[g.Name]
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
