// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"context"
	"time"

	"github.com/xAlexMGGx/LinkGames/models"
	"github.com/xAlexMGGx/LinkGames/roster"
	"github.com/xAlexMGGx/LinkGames/scoring"
	"github.com/xAlexMGGx/LinkGames/store"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// Clock tells the engine what time it is.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Engine owns the league documents. Every read and write first brings the
// documents up to date with the current day.
type Engine struct {
	roster  roster.Roster
	store   store.Store
	loc     *time.Location
	clock   Clock
	metrics *Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithLocation sets the timezone where days end.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) { e.loc = loc }
}

// WithMetrics records rollover and submission counters.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// New creates an engine over a store. Days end at midnight UTC unless
// WithLocation says otherwise.
func New(r roster.Roster, s store.Store, opts ...Option) *Engine {
	e := &Engine{
		roster: r,
		store:  s,
		loc:    time.UTC,
		clock:  SystemClock{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Roster returns the games and players the engine scores.
func (e *Engine) Roster() roster.Roster {
	return e.roster
}

func (e *Engine) now() time.Time {
	return e.clock.Now().In(e.loc)
}

// TodayDocument returns the current day's results.
func (e *Engine) TodayDocument(ctx context.Context) (models.Document, error) {
	st, _, err := e.sync(ctx)
	if err != nil {
		return nil, err
	}
	return st.today, nil
}

// MonthDocument returns the month's accumulator cells.
func (e *Engine) MonthDocument(ctx context.Context) (models.Document, error) {
	st, _, err := e.sync(ctx)
	if err != nil {
		return nil, err
	}
	return st.month, nil
}

// MonthStandings returns the month's cells with their decoded totals.
func (e *Engine) MonthStandings(ctx context.Context) (models.Document, map[string]map[string]float64, error) {
	st, _, err := e.sync(ctx)
	if err != nil {
		return nil, nil, err
	}
	return st.month, scoring.Standings(e.roster, st.month), nil
}

// GlobalDocument returns the all-time leaderboard.
func (e *Engine) GlobalDocument(ctx context.Context) (models.Document, error) {
	st, _, err := e.sync(ctx)
	if err != nil {
		return nil, err
	}
	return st.global, nil
}

// LastDayDocument returns the most recently closed day and its winners.
func (e *Engine) LastDayDocument(ctx context.Context) (models.Document, scoring.Winners, error) {
	doc, err := e.snapshot(ctx, models.DocLastDay)
	if err != nil {
		return nil, nil, err
	}
	return doc, scoring.DailyWinners(e.roster, doc), nil
}

// LastMonthDocument returns the most recently closed month and its winners.
func (e *Engine) LastMonthDocument(ctx context.Context) (models.Document, scoring.Winners, error) {
	doc, err := e.snapshot(ctx, models.DocLastMonth)
	if err != nil {
		return nil, nil, err
	}
	return doc, scoring.MonthlyWinners(e.roster, doc), nil
}

// snapshot syncs, then reads a last-period document. A corrupt snapshot
// reads as empty; the next rollover replaces it.
func (e *Engine) snapshot(ctx context.Context, name string) (models.Document, error) {
	if _, _, err := e.sync(ctx); err != nil {
		return nil, err
	}
	doc, repaired, err := e.load(ctx, name)
	if err != nil {
		return nil, err
	}
	if repaired {
		return models.Document{}, nil
	}
	return doc, nil
}
