// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"github.com/xAlexMGGx/LinkGames/models"
	"github.com/xAlexMGGx/LinkGames/roster"
)

// MonthlyWinners finds each game's highest accumulated score in a monthly
// document. Equal totals share the win.
//
// A zero total never wins, so a game nobody won all month has no winners
// instead of every player tying at zero. This departs from the old sheet
// on purpose: an unplayed game should not leave a "?" on every global cell.
func MonthlyWinners(r roster.Roster, month models.Document) Winners {
	winners := make(Winners)
	for _, g := range r.Games {
		list := []string{}
		best := 0

		for _, player := range r.Players {
			cell, _ := month.Get(g.Name, player)
			total := cellSixths(cell)
			if total == 0 {
				continue
			}
			switch {
			case total > best:
				best = total
				list = []string{player}
			case total == best:
				list = append(list, player)
			}
		}

		winners[g.Name] = list
	}
	return winners
}

// Standings decodes every cell of a monthly document.
func Standings(r roster.Roster, month models.Document) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(r.Games))
	for _, g := range r.Games {
		row := make(map[string]float64, len(r.Players))
		for _, player := range r.Players {
			cell, _ := month.Get(g.Name, player)
			row[player] = DecodeCell(cell)
		}
		out[g.Name] = row
	}
	return out
}

// ApplyDayWinners credits a day's winners to the monthly document in place.
// Games whose tie cannot be represented are left untouched and returned.
func ApplyDayWinners(r roster.Roster, month models.Document, day Winners) ([]string, error) {
	var skipped []string
	for _, g := range r.Games {
		players := day[g.Name]
		if len(players) == 0 {
			continue
		}

		share, err := ShareFor(g.Kind, len(players))
		if err != nil {
			skipped = append(skipped, g.Name)
			continue
		}

		for _, player := range players {
			cell, _ := month.Get(g.Name, player)
			updated, err := ApplyWin(cell, share)
			if err != nil {
				return skipped, err
			}
			month.Set(g.Name, player, updated)
		}
	}
	return skipped, nil
}
