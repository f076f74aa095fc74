// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"github.com/xAlexMGGx/LinkGames/models"
	"github.com/xAlexMGGx/LinkGames/roster"
)

// Winners maps a game's document name to its winning players.
// Several winners mean a tie.
type Winners map[string][]string

// scope narrows a winner computation to some games and players.
type scope struct {
	games   map[string]bool
	players map[string]bool
}

func (s scope) game(name string) bool {
	return s.games == nil || s.games[name]
}

func (s scope) player(name string) bool {
	return s.players == nil || s.players[name]
}

// Option restricts DailyWinners.
type Option func(*scope)

// OnlyGame limits the computation to one game, by document name.
func OnlyGame(name string) Option {
	return func(s *scope) {
		if s.games == nil {
			s.games = make(map[string]bool)
		}
		s.games[name] = true
	}
}

// OnlyPlayers limits the candidates to the given players.
func OnlyPlayers(players ...string) Option {
	return func(s *scope) {
		if s.players == nil {
			s.players = make(map[string]bool)
		}
		for _, p := range players {
			s.players[p] = true
		}
	}
}

// DailyWinners finds each game's winners in a daily document.
//
// Timed games go to the lowest time, equal times share the win. Players
// without an entry are not candidates, and a sentinel time never wins.
// Boolean games go to every player who answered Yes.
func DailyWinners(r roster.Roster, day models.Document, opts ...Option) Winners {
	var s scope
	for _, opt := range opts {
		opt(&s)
	}

	winners := make(Winners)
	for _, g := range r.Games {
		if !s.game(g.Name) {
			continue
		}

		list := []string{}
		best := SentinelSeconds

		for _, player := range r.Players {
			if !s.player(player) {
				continue
			}
			value, ok := day.Get(g.Name, player)
			if !ok {
				continue
			}

			if !g.Timed() {
				if value == models.Yes {
					list = append(list, player)
				}
				continue
			}

			secs, err := ParseTime(value)
			if err != nil || secs >= SentinelSeconds {
				continue
			}
			switch {
			case secs < best:
				best = secs
				list = []string{player}
			case secs == best:
				list = append(list, player)
			}
		}

		winners[g.Name] = list
	}

	return winners
}

// FormatDay copies a daily document with every timed value rendered as
// "m:ss". Values that are not times are copied unchanged.
func FormatDay(r roster.Roster, day models.Document) models.Document {
	out := day.Clone()
	for _, g := range r.Games {
		if !g.Timed() {
			continue
		}
		for player, value := range out[g.Name] {
			if secs, err := ParseTime(value); err == nil {
				out[g.Name][player] = FormatTime(secs)
			}
		}
	}
	return out
}
