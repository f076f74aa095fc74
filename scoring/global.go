// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xAlexMGGx/LinkGames/models"
	"github.com/xAlexMGGx/LinkGames/roster"
)

var ErrInvalidGlobalScore = errors.New("invalid global score")

// TieMarker flags a month win that is still tied.
const TieMarker = "?"

// GlobalScore is an all-time cell: confirmed wins plus pending ties.
type GlobalScore struct {
	Wins    int
	Pending int
}

// ParseGlobalScore reads "3" or "3??". An empty cell is zero.
func ParseGlobalScore(s string) (GlobalScore, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimRight(s, TieMarker)
	pending := len(s) - len(digits)

	wins := 0
	if digits != "" {
		n, err := strconv.Atoi(digits)
		if err != nil || n < 0 {
			return GlobalScore{}, fmt.Errorf("%w: %q", ErrInvalidGlobalScore, s)
		}
		wins = n
	}
	return GlobalScore{Wins: wins, Pending: pending}, nil
}

func (g GlobalScore) String() string {
	return strconv.Itoa(g.Wins) + strings.Repeat(TieMarker, g.Pending)
}

// UpdateGlobalScore records a month win shared by nWinners players.
// A single winner gets a confirmed point; a tie adds a marker.
func UpdateGlobalScore(cell string, nWinners int) (string, error) {
	g, err := ParseGlobalScore(cell)
	if err != nil {
		return cell, err
	}
	switch {
	case nWinners == 1:
		g.Wins++
	case nWinners > 1:
		g.Pending++
	default:
		return cell, fmt.Errorf("%w: %d winners", ErrUnsupportedShare, nWinners)
	}
	return g.String(), nil
}

// HasPendingTie reports whether a global cell ends with a tie marker.
func HasPendingTie(cell string) bool {
	return strings.HasSuffix(strings.TrimSpace(cell), TieMarker)
}

// StripTieMarkers drops every marker from a global cell.
func StripTieMarkers(cell string) string {
	return strings.ReplaceAll(cell, TieMarker, "")
}

// ApplyMonthWinners folds a month's winners into the global document in
// place.
func ApplyMonthWinners(r roster.Roster, global models.Document, month Winners) error {
	for _, g := range r.Games {
		players := month[g.Name]
		for _, player := range players {
			cell, _ := global.Get(g.Name, player)
			updated, err := UpdateGlobalScore(cell, len(players))
			if err != nil {
				return fmt.Errorf("game %s, player %s: %w", g.Name, player, err)
			}
			global.Set(g.Name, player, updated)
		}
	}
	return nil
}
