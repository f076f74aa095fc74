// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine runs the league: it records daily results and rolls days
into months and months into the global leaderboard.

# Usage

	eng := engine.New(roster.Default(), docs,
		engine.WithLocation(loc),
		engine.WithMetrics(engine.NewMetrics(registry)),
	)

	res, err := eng.SubmitDailyResult(ctx, engine.Submission{
		Player: "Alex",
		Times:  map[string]string{"queens": "1:15", "zip": "42"},
		Flags:  map[string]bool{"pinpoint": true},
	})

# Rollover

Every call first runs a sync against the clock:

 1. If today's document holds results from an earlier date, the day is
    closed: it is copied to last_day, pending global ties are settled with
    its results, its winners are credited to the month and it is cleared.
 2. If the month document accumulates an earlier month, the month is
    closed: it is copied to last_month, its winners are credited to the
    global document (a tie adds a "?" marker instead of a point) and it is
    cleared for the current month.

Changes are written with one store.PutMany call, snapshots first and the
cleared daily document last. A failed write leaves the stored documents as
they were and the next call retries the rollover.

# Errors

  - *ValidationError: one or more games had bad input; nothing recorded
  - ErrUnknownPlayer: player not on the roster
  - store.ErrStoreUnavailable: passed through from the store

Corrupt stored documents are replaced with empty ones and logged.
*/
package engine
