// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xAlexMGGx/LinkGames/models"
	"github.com/xAlexMGGx/LinkGames/scoring"
	"github.com/xAlexMGGx/LinkGames/store"
)

// state is the working copy of the live documents for one request.
type state struct {
	date   string
	today  models.Document
	month  models.Document
	global models.Document
}

// SyncPeriod closes the recorded day if it is no longer today, and the
// accumulated month if it is no longer this month.
//
// Closing a day snapshots it to last_day, settles pending global ties with
// its results, credits its winners to the month and clears it. Closing a
// month snapshots it to last_month, credits its winners to the global
// leaderboard and clears it. All changes are written in one batch.
func (e *Engine) SyncPeriod(ctx context.Context) (models.SyncReport, error) {
	_, report, err := e.sync(ctx)
	return report, err
}

func (e *Engine) sync(ctx context.Context) (*state, models.SyncReport, error) {
	now := e.now()
	thisMonth := now.Format(monthLayout)
	st := &state{date: now.Format(dateLayout)}
	report := models.SyncReport{Today: st.date, SyncedAt: now}

	dirty := make(map[string]bool)

	today, repaired, err := e.load(ctx, models.DocToday)
	if err != nil {
		return nil, report, err
	}
	if repaired {
		report.CorruptRepairs = append(report.CorruptRepairs, models.DocToday)
		dirty[models.DocToday] = true
	}
	st.today = e.normalizeDaily(today)

	month, repaired, err := e.load(ctx, models.DocMonth)
	if err != nil {
		return nil, report, err
	}
	st.month = e.normalizeMonth(month)
	if repaired {
		report.CorruptRepairs = append(report.CorruptRepairs, models.DocMonth)
		// a day still waiting to close belongs to the month it was played in
		marker := thisMonth
		if recorded := st.today.RecordedDate(); len(recorded) >= len(monthLayout) {
			marker = recorded[:len(monthLayout)]
		}
		st.month.SetMonthMarker(marker)
		dirty[models.DocMonth] = true
	}

	global, repaired, err := e.load(ctx, models.DocGlobal)
	if err != nil {
		return nil, report, err
	}
	if repaired {
		report.CorruptRepairs = append(report.CorruptRepairs, models.DocGlobal)
		dirty[models.DocGlobal] = true
	}
	st.global = e.normalizeGlobal(global)

	var lastDay, lastMonth models.Document

	if closed := st.today.RecordedDate(); closed != "" && closed != st.date {
		lastDay, err = e.closeDay(st, closed, &report)
		if err != nil {
			return nil, report, err
		}
		dirty[models.DocToday] = true
		dirty[models.DocMonth] = true
		dirty[models.DocGlobal] = true
	}

	if marker := st.month.MonthMarker(); marker != "" && marker < thisMonth {
		lastMonth, err = e.closeMonth(st, thisMonth, &report)
		if err != nil {
			return nil, report, err
		}
		dirty[models.DocMonth] = true
		dirty[models.DocGlobal] = true
	}

	// snapshots first, the daily reset last
	var writes []store.Named
	if lastDay != nil {
		writes = append(writes, store.Named{Name: models.DocLastDay, Document: lastDay})
	}
	if lastMonth != nil {
		writes = append(writes, store.Named{Name: models.DocLastMonth, Document: lastMonth})
	}
	if dirty[models.DocGlobal] {
		writes = append(writes, store.Named{Name: models.DocGlobal, Document: st.global})
	}
	if dirty[models.DocMonth] {
		writes = append(writes, store.Named{Name: models.DocMonth, Document: st.month})
	}
	if dirty[models.DocToday] {
		writes = append(writes, store.Named{Name: models.DocToday, Document: st.today})
	}

	if len(writes) == 0 {
		return st, report, nil
	}

	if err := e.store.PutMany(ctx, writes); err != nil {
		slog.Error("rollover write failed", "today", st.date, "error", err)
		return nil, report, fmt.Errorf("failed to write rollover: %w", err)
	}

	if report.DayClosed != "" {
		e.metrics.dayClosed(len(report.TiesResolved), len(report.SkippedGames))
		slog.Info("day closed",
			"day", report.DayClosed,
			"winners", report.DayWinners,
			"ties_resolved", len(report.TiesResolved),
			"skipped", report.SkippedGames,
		)
	}
	if report.MonthClosed != "" {
		e.metrics.monthClosed()
		slog.Info("month closed", "month", report.MonthClosed, "winners", report.MonthWinners)
	}

	return st, report, nil
}

// closeDay folds the recorded day into the month and global documents and
// returns its snapshot.
func (e *Engine) closeDay(st *state, closed string, report *models.SyncReport) (models.Document, error) {
	snapshot := st.today.Clone()

	global, resolutions, err := scoring.Reconcile(e.roster, st.global, st.today)
	if err != nil {
		return nil, fmt.Errorf("failed to settle ties: %w", err)
	}
	st.global = global
	for _, res := range resolutions {
		slog.Info("global tie settled", "game", res.Game, "tied", res.Tied, "winners", res.Winners)
		report.TiesResolved = append(report.TiesResolved, models.TieResolution{
			Game:    res.Game,
			Tied:    res.Tied,
			Winners: res.Winners,
		})
	}

	winners := scoring.DailyWinners(e.roster, st.today)
	skipped, err := scoring.ApplyDayWinners(e.roster, st.month, winners)
	if err != nil {
		return nil, fmt.Errorf("failed to credit day winners: %w", err)
	}
	for _, game := range skipped {
		slog.Warn("tie too wide to split, no points awarded", "day", closed, "game", game, "winners", winners[game])
	}

	if st.month.MonthMarker() == "" && len(closed) >= len(monthLayout) {
		st.month.SetMonthMarker(closed[:len(monthLayout)])
	}
	st.today = e.emptyDaily()

	report.DayClosed = closed
	report.DayWinners = winners
	report.SkippedGames = skipped
	return snapshot, nil
}

// closeMonth credits the month's winners to the global document and
// returns the month's snapshot.
func (e *Engine) closeMonth(st *state, thisMonth string, report *models.SyncReport) (models.Document, error) {
	snapshot := st.month.Clone()
	closed := st.month.MonthMarker()

	winners := scoring.MonthlyWinners(e.roster, st.month)
	if err := scoring.ApplyMonthWinners(e.roster, st.global, winners); err != nil {
		return nil, fmt.Errorf("failed to credit month winners: %w", err)
	}
	st.month = e.emptyMonth(thisMonth)

	report.MonthClosed = closed
	report.MonthWinners = winners
	return snapshot, nil
}
