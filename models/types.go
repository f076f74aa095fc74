// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"github.com/xAlexMGGx/LinkGames/roster"
)

// Request types

// SubmitResultRequest carries one player's results for the day.
// Times is keyed by game key ("queens") and holds raw "X" or "M:SS" input;
// an empty or missing time means the player did not finish.
type SubmitResultRequest struct {
	Player string            `json:"player"`
	Times  map[string]string `json:"times"`
	Flags  map[string]bool   `json:"flags"`
}

// Response types

type SubmitResultResponse struct {
	Player  string `json:"player"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

// ValidationErrorResponse lists the games whose input could not be parsed.
type ValidationErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Games   []string `json:"games"`
}

// DocumentResponse carries a stored document. Daily documents also come
// with Formatted, where times read "m:ss".
type DocumentResponse struct {
	Name      string   `json:"name"`
	Document  Document `json:"document"`
	Formatted Document `json:"formatted,omitempty"`
}

// WinnersResponse is a snapshot document with the winners to highlight.
type WinnersResponse struct {
	Name      string              `json:"name"`
	Document  Document            `json:"document"`
	Formatted Document            `json:"formatted,omitempty"`
	Winners   map[string][]string `json:"winners"`
}

// MonthResponse pairs the symbolic cells with their decoded totals.
type MonthResponse struct {
	Name      string                        `json:"name"`
	Document  Document                      `json:"document"`
	Standings map[string]map[string]float64 `json:"standings"`
}

type RosterResponse struct {
	Games   []roster.Game `json:"games"`
	Players []string      `json:"players"`
}

// SyncReport describes what a period sync did.
type SyncReport struct {
	Today          string              `json:"today"`
	DayClosed      string              `json:"day_closed,omitempty"`
	MonthClosed    string              `json:"month_closed,omitempty"`
	DayWinners     map[string][]string `json:"day_winners,omitempty"`
	MonthWinners   map[string][]string `json:"month_winners,omitempty"`
	TiesResolved   []TieResolution     `json:"ties_resolved,omitempty"`
	SkippedGames   []string            `json:"skipped_games,omitempty"`
	CorruptRepairs []string            `json:"corrupt_repairs,omitempty"`
	SyncedAt       time.Time           `json:"synced_at"`
}

// TieResolution records a pending global tie that a later day settled.
type TieResolution struct {
	Game    string   `json:"game"`
	Tied    []string `json:"tied"`
	Winners []string `json:"winners"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
