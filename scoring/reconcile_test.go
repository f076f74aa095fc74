// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xAlexMGGx/LinkGames/models"
	"github.com/xAlexMGGx/LinkGames/roster"
)

func TestReconcileBreaksTie(t *testing.T) {
	r := roster.Default()
	global := models.Document{
		queens: {"Alex": "3?", "Jorge": "1?", "Mazu": "7"},
	}
	day := models.Document{
		queens: {"Alex": "40", "Jorge": "55", "Mazu": "10"},
	}

	got, res, err := Reconcile(r, global, day)
	require.NoError(t, err)

	// Mazu is fastest but was not part of the tie
	assert.Equal(t, map[string]string{"Alex": "4", "Jorge": "1", "Mazu": "7"}, got[queens])
	require.Len(t, res, 1)
	assert.Equal(t, Resolution{Game: queens, Tied: []string{"Alex", "Jorge"}, Winners: []string{"Alex"}}, res[0])

	// input untouched
	assert.Equal(t, "3?", global[queens]["Alex"])
}

func TestReconcileKeepsMarkers(t *testing.T) {
	r := roster.Default()
	global := models.Document{
		queens:   {"Alex": "3?", "Jorge": "1?"},
		pinpoint: {"Alex": "2?", "Galo": "2?"},
	}

	tests := []struct {
		name string
		day  models.Document
	}{
		{"no results yet", models.Document{}},
		{"still tied", models.Document{queens: {"Alex": "30", "Jorge": "30"}, pinpoint: {"Alex": "Yes", "Galo": "Yes"}}},
		{"nobody finished", models.Document{queens: {"Alex": "6039", "Jorge": "6039"}, pinpoint: {"Alex": "No", "Galo": "No"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, res, err := Reconcile(r, global, tt.day)
			require.NoError(t, err)
			assert.Empty(t, res)
			assert.Equal(t, global, got)
		})
	}
}

func TestReconcileSingleTiedPlayerPresent(t *testing.T) {
	r := roster.Default()
	global := models.Document{pinpoint: {"Alex": "2?", "Galo": "0?"}}
	day := models.Document{pinpoint: {"Galo": "Yes"}}

	got, res, err := Reconcile(r, global, day)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "2", got[pinpoint]["Alex"])
	assert.Equal(t, "1", got[pinpoint]["Galo"])
}

func TestReconcileNarrowsThreeWayTie(t *testing.T) {
	r := roster.Default()
	global := models.Document{zip: {"Alex": "1?", "Jorge": "1?", "Mazu": "1?"}}
	day := models.Document{zip: {"Alex": "20", "Jorge": "20", "Mazu": "25"}}

	got, res, err := Reconcile(r, global, day)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, map[string]string{"Alex": "1?", "Jorge": "1?", "Mazu": "1"}, got[zip])
}

func TestPendingTies(t *testing.T) {
	r := roster.Default()
	global := models.Document{
		queens: {"Alex": "3?", "Jorge": "1"},
		zip:    {"Priti": "0??", "Galo": "2?"},
	}

	assert.Equal(t, map[string][]string{
		queens: {"Alex"},
		zip:    {"Galo", "Priti"},
	}, PendingTies(r, global))
}
