// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "sort"

// Document names
const (
	DocToday     = "today"
	DocMonth     = "month"
	DocGlobal    = "global"
	DocLastDay   = "last_day"
	DocLastMonth = "last_month"
)

// DocumentNames is the fixed set of documents kept by the store.
var DocumentNames = []string{DocToday, DocMonth, DocGlobal, DocLastDay, DocLastMonth}

// IsDocumentName reports whether name belongs to the fixed document set.
func IsDocumentName(name string) bool {
	for _, n := range DocumentNames {
		if n == name {
			return true
		}
	}
	return false
}

// TimestampKey is the pseudo-game holding dates. It is never scored.
const TimestampKey = "timestamp"

// MonthMarkerKey is the entry under TimestampKey of the monthly document
// naming the month ("2006-01") it accumulates.
const MonthMarkerKey = "month"

// Boolean game answers
const (
	Yes = "Yes"
	No  = "No"
)

// Document is the stored shape of every period: game -> player -> value.
type Document map[string]map[string]string

// Clone returns a deep copy.
func (d Document) Clone() Document {
	if d == nil {
		return Document{}
	}
	out := make(Document, len(d))
	for game, cells := range d {
		c := make(map[string]string, len(cells))
		for player, v := range cells {
			c[player] = v
		}
		out[game] = c
	}
	return out
}

// Set stores a value, creating the game entry if needed.
func (d Document) Set(game, player, value string) {
	if d[game] == nil {
		d[game] = make(map[string]string)
	}
	d[game][player] = value
}

// Get returns the value and whether the player has an entry for game.
func (d Document) Get(game, player string) (string, bool) {
	cells, ok := d[game]
	if !ok {
		return "", false
	}
	v, ok := cells[player]
	return v, ok
}

// RecordedDate returns the date of the entries in a daily document,
// or "" when nothing has been recorded. All timestamp values share one
// date; the smallest is returned so the answer does not depend on map order.
func (d Document) RecordedDate() string {
	var dates []string
	for _, v := range d[TimestampKey] {
		if v != "" {
			dates = append(dates, v)
		}
	}
	if len(dates) == 0 {
		return ""
	}
	sort.Strings(dates)
	return dates[0]
}

// MonthMarker returns the month a monthly document accumulates, if known.
func (d Document) MonthMarker() string {
	return d[TimestampKey][MonthMarkerKey]
}

// SetMonthMarker records the month a monthly document accumulates.
func (d Document) SetMonthMarker(month string) {
	d.Set(TimestampKey, MonthMarkerKey, month)
}
