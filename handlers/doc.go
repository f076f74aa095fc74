// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the LinkGames API.

# Handler Types

Each handler is a struct holding the engine:

  - ResultsHandler: result submission and manual rollover
  - DocumentHandler: roster and document retrieval

Handlers are created via constructor functions that accept *engine.Engine:

	resultsHandler := handlers.NewResultsHandler(eng)

Handlers never compute scores. They decode input, call the engine and
encode what it returns.

# Submitting Results

	POST /results
	{"player": "Alex", "times": {"queens": "1:15", "zip": "42"}, "flags": {"pinpoint": true}}

Times are "X" seconds or "M:SS". A missing or blank time means the player
did not finish. Responses:

	201 Created              - recorded
	400 Bad Request          - invalid JSON, missing or unknown player
	422 Unprocessable Entity - {"games": [...]} lists every bad game; nothing recorded
	503 Service Unavailable  - store unreachable

# Documents

	GET /results/today      → GetToday
	GET /results/month      → GetMonth (cells plus decoded standings)
	GET /results/global     → GetGlobal
	GET /results/last-day   → GetLastDay (with winners)
	GET /results/last-month → GetLastMonth (with winners)
	GET /roster             → GetRoster

Every read first rolls the documents over if the day or month has changed.

# Rollover

	POST /sync → Sync

Returns a models.SyncReport describing what was closed.
*/
package handlers
