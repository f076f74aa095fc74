// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xAlexMGGx/LinkGames/models"
	"github.com/xAlexMGGx/LinkGames/roster"
)

const (
	queens   = "Queens 👑"
	tango    = "Tango 🔵🟠"
	pinpoint = "Pinpoint 🟦"
	cross    = "Cross 🧗"
	zip      = "Zip 🐍"
)

func TestDailyWinnersTimed(t *testing.T) {
	r := roster.Default()

	tests := []struct {
		name  string
		cells map[string]string
		want  []string
	}{
		{"two tie for best", map[string]string{"Alex": "45", "Jorge": "45", "Mazu": "50"}, []string{"Alex", "Jorge"}},
		{"single entry wins", map[string]string{"Alex": "30"}, []string{"Alex"}},
		{"later lower time replaces", map[string]string{"Alex": "60", "Galo": "20", "Priti": "40"}, []string{"Galo"}},
		{"legacy minutes format", map[string]string{"Alex": "1:30", "Mazu": "85"}, []string{"Mazu"}},
		{"sentinel never wins", map[string]string{"Alex": "6039", "Jorge": "99:99"}, []string{}},
		{"sentinel loses to a time", map[string]string{"Alex": "6039", "Jorge": "300"}, []string{"Jorge"}},
		{"garbage skipped", map[string]string{"Alex": "fast", "Jorge": "70"}, []string{"Jorge"}},
		{"zero seconds wins", map[string]string{"Alex": "0", "Jorge": "1"}, []string{"Alex"}},
		{"nobody played", map[string]string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := models.Document{queens: tt.cells}
			got := DailyWinners(r, day)
			assert.Equal(t, tt.want, got[queens])
		})
	}
}

func TestDailyWinnersBoolean(t *testing.T) {
	r := roster.Default()

	day := models.Document{pinpoint: {"Alex": "Yes", "Jorge": "No", "Mazu": "Yes"}}
	assert.Equal(t, []string{"Alex", "Mazu"}, DailyWinners(r, day)[pinpoint])

	day = models.Document{pinpoint: {"Alex": "No", "Jorge": "No"}}
	assert.Empty(t, DailyWinners(r, day)[pinpoint])
}

func TestDailyWinnersEveryGamePresent(t *testing.T) {
	r := roster.Default()
	day := models.Document{
		models.TimestampKey: {"Alex": "2025-03-04"},
		zip:                 {"Alex": "12"},
	}

	got := DailyWinners(r, day)
	assert.Len(t, got, len(r.Games))
	assert.NotContains(t, got, models.TimestampKey)
	assert.Equal(t, []string{"Alex"}, got[zip])
	assert.Empty(t, got[tango])
}

func TestDailyWinnersScoped(t *testing.T) {
	r := roster.Default()
	day := models.Document{
		cross: {"Alex": "10", "Jorge": "20", "Mazu": "30"},
		zip:   {"Alex": "5"},
	}

	got := DailyWinners(r, day, OnlyGame(cross), OnlyPlayers("Jorge", "Mazu"))
	assert.Equal(t, Winners{cross: {"Jorge"}}, got)
}

func TestFormatDay(t *testing.T) {
	r := roster.Default()
	day := models.Document{
		queens:              {"Alex": "75", "Jorge": "6039"},
		zip:                 {"Mazu": "fast"},
		pinpoint:            {"Alex": models.Yes},
		models.TimestampKey: {"Alex": "2024-03-05"},
	}

	got := FormatDay(r, day)

	assert.Equal(t, "1:15", got[queens]["Alex"])
	assert.Equal(t, SentinelInput, got[queens]["Jorge"])
	assert.Equal(t, "fast", got[zip]["Mazu"])
	assert.Equal(t, models.Yes, got[pinpoint]["Alex"])
	assert.Equal(t, "2024-03-05", got[models.TimestampKey]["Alex"])
	assert.Equal(t, "75", day[queens]["Alex"], "source document must not change")
}
