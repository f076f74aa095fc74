// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the stored document shape and the API types.

# Documents

Every period is stored as a Document, a map of game name to player name to
string value:

	today       raw daily results, plus "timestamp": player -> date
	month       accumulator cells ("5Ii."), plus "timestamp": {"month": "2006-01"}
	global      all-time wins ("3", or "3?" while a tie is pending)
	last_day    copy of today taken at the last day close
	last_month  copy of month taken at the last month close

The "timestamp" pseudo-game is never scored.

# Request Types

  - SubmitResultRequest: player, times (game key -> "X" or "M:SS"), flags

# Response Types

  - SubmitResultResponse: player, date, message
  - ValidationErrorResponse: error, message, games
  - DocumentResponse, WinnersResponse, MonthResponse: document views
  - RosterResponse: games and players
  - SyncReport: what a period sync closed and resolved
  - ErrorResponse: error, message
*/
package models
