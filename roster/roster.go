// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind tells how a game's daily winner is decided.
type Kind string

const (
	// KindTimed games are won by the lowest time in seconds.
	KindTimed Kind = "timed"
	// KindBoolean games are won by every player who answered "Yes".
	KindBoolean Kind = "boolean"
)

var (
	ErrUnknownGame   = errors.New("unknown game")
	ErrUnknownPlayer = errors.New("unknown player")
	ErrInvalidRoster = errors.New("invalid roster")
)

// Game describes one puzzle of the daily set.
type Game struct {
	// Key is the short form used in requests ("queens").
	Key string `yaml:"key" json:"key"`
	// Name is the display name and the key inside stored documents.
	Name string `yaml:"name" json:"name"`
	Kind Kind   `yaml:"kind" json:"kind"`
}

// Timed reports whether lower times win the game.
func (g Game) Timed() bool {
	return g.Kind == KindTimed
}

// Roster is the fixed set of games and players shared by every document.
type Roster struct {
	Games   []Game   `yaml:"games" json:"games"`
	Players []string `yaml:"players" json:"players"`
}

// Default returns the roster the league has always played with.
func Default() Roster {
	return Roster{
		Games: []Game{
			{Key: "queens", Name: "Queens 👑", Kind: KindTimed},
			{Key: "tango", Name: "Tango 🔵🟠", Kind: KindTimed},
			{Key: "pinpoint", Name: "Pinpoint 🟦", Kind: KindBoolean},
			{Key: "cross", Name: "Cross 🧗", Kind: KindTimed},
			{Key: "zip", Name: "Zip 🐍", Kind: KindTimed},
		},
		Players: []string{"Alex", "Jorge", "Mazu", "Galo", "Priti"},
	}
}

// Load reads a roster from a YAML file.
func Load(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, fmt.Errorf("failed to read roster file: %w", err)
	}

	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Roster{}, fmt.Errorf("failed to unmarshal roster: %w", err)
	}

	if err := r.Validate(); err != nil {
		return Roster{}, err
	}
	return r, nil
}

// Validate checks that games and players are non-empty and unique.
func (r Roster) Validate() error {
	if len(r.Games) == 0 {
		return fmt.Errorf("%w: no games", ErrInvalidRoster)
	}
	if len(r.Players) == 0 {
		return fmt.Errorf("%w: no players", ErrInvalidRoster)
	}

	seen := make(map[string]bool)
	for _, g := range r.Games {
		if g.Key == "" || g.Name == "" {
			return fmt.Errorf("%w: game needs key and name", ErrInvalidRoster)
		}
		if g.Kind != KindTimed && g.Kind != KindBoolean {
			return fmt.Errorf("%w: game %q has kind %q", ErrInvalidRoster, g.Key, g.Kind)
		}
		// "timestamp" is reserved for the date entry of documents
		if strings.EqualFold(g.Key, "timestamp") || strings.EqualFold(g.Name, "timestamp") {
			return fmt.Errorf("%w: timestamp is reserved", ErrInvalidRoster)
		}
		if seen["g:"+g.Key] || seen["g:"+g.Name] {
			return fmt.Errorf("%w: duplicate game %q", ErrInvalidRoster, g.Key)
		}
		seen["g:"+g.Key] = true
		seen["g:"+g.Name] = true
	}

	for _, p := range r.Players {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: empty player name", ErrInvalidRoster)
		}
		// Player matches names case-insensitively
		folded := "p:" + strings.ToLower(strings.TrimSpace(p))
		if seen[folded] {
			return fmt.Errorf("%w: duplicate player %q", ErrInvalidRoster, p)
		}
		seen[folded] = true
	}

	return nil
}

// Game looks a game up by key or by display name.
func (r Roster) Game(keyOrName string) (Game, error) {
	for _, g := range r.Games {
		if g.Key == keyOrName || g.Name == keyOrName {
			return g, nil
		}
	}
	return Game{}, fmt.Errorf("%w: %q", ErrUnknownGame, keyOrName)
}

// Player returns the canonical spelling of a player name.
// Matching is case-insensitive, the old form lowercased names.
func (r Roster) Player(name string) (string, error) {
	name = strings.TrimSpace(name)
	for _, p := range r.Players {
		if strings.EqualFold(p, name) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
}

