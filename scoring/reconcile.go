// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"fmt"

	"github.com/xAlexMGGx/LinkGames/models"
	"github.com/xAlexMGGx/LinkGames/roster"
)

// Resolution describes a pending global tie settled by a day's results.
type Resolution struct {
	Game    string
	Tied    []string
	Winners []string
}

// PendingTies lists, per game, the players whose global cell carries a tie
// marker. Games without pending ties are absent.
func PendingTies(r roster.Roster, global models.Document) map[string][]string {
	pending := make(map[string][]string)
	for _, g := range r.Games {
		for _, player := range r.Players {
			cell, _ := global.Get(g.Name, player)
			if HasPendingTie(cell) {
				pending[g.Name] = append(pending[g.Name], player)
			}
		}
	}
	return pending
}

// Reconcile settles pending global ties using a day's results and returns
// the updated copy of global.
//
// For each game with pending ties the day is re-scored among the tied
// players only. When that yields winners and does not simply repeat the
// tie, every marker on the game is cleared (one result settles all pending
// ties of that game at once) and each winner is credited as a month winner
// would be. Otherwise the markers stay for the next day.
func Reconcile(r roster.Roster, global, day models.Document) (models.Document, []Resolution, error) {
	out := global.Clone()
	var resolutions []Resolution

	for _, g := range r.Games {
		tied := PendingTies(r, out)[g.Name]
		if len(tied) == 0 {
			continue
		}

		winners := DailyWinners(r, day, OnlyGame(g.Name), OnlyPlayers(tied...))[g.Name]
		if len(winners) == 0 || len(winners) == len(tied) {
			continue
		}

		for _, player := range tied {
			cell, _ := out.Get(g.Name, player)
			out.Set(g.Name, player, StripTieMarkers(cell))
		}
		for _, player := range winners {
			cell, _ := out.Get(g.Name, player)
			updated, err := UpdateGlobalScore(cell, len(winners))
			if err != nil {
				return global, nil, fmt.Errorf("game %s, player %s: %w", g.Name, player, err)
			}
			out.Set(g.Name, player, updated)
		}

		resolutions = append(resolutions, Resolution{Game: g.Name, Tied: tied, Winners: winners})
	}

	return out, resolutions, nil
}
