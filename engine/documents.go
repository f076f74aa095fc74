// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/xAlexMGGx/LinkGames/models"
	"github.com/xAlexMGGx/LinkGames/scoring"
	"github.com/xAlexMGGx/LinkGames/store"
)

// load reads a document. Corrupt content is replaced by an empty document
// and reported as repaired; any other store error is returned.
func (e *Engine) load(ctx context.Context, name string) (models.Document, bool, error) {
	doc, err := e.store.Get(ctx, name)
	if errors.Is(err, store.ErrCorruptDocument) {
		slog.Warn("corrupt document reset", "document", name, "error", err)
		return models.Document{}, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return doc, false, nil
}

// emptyDaily is the daily document with no results.
func (e *Engine) emptyDaily() models.Document {
	doc := make(models.Document, len(e.roster.Games)+1)
	for _, g := range e.roster.Games {
		doc[g.Name] = map[string]string{}
	}
	doc[models.TimestampKey] = map[string]string{}
	return doc
}

// emptyMonth is a monthly document with every cell blank.
func (e *Engine) emptyMonth(month string) models.Document {
	doc := make(models.Document, len(e.roster.Games)+1)
	for _, g := range e.roster.Games {
		cells := make(map[string]string, len(e.roster.Players))
		for _, p := range e.roster.Players {
			cells[p] = ""
		}
		doc[g.Name] = cells
	}
	if month != "" {
		doc.SetMonthMarker(month)
	}
	return doc
}

func (e *Engine) normalizeDaily(doc models.Document) models.Document {
	out := doc.Clone()
	for _, g := range e.roster.Games {
		if out[g.Name] == nil {
			out[g.Name] = map[string]string{}
		}
	}
	if out[models.TimestampKey] == nil {
		out[models.TimestampKey] = map[string]string{}
	}
	return out
}

// normalizeMonth fills missing cells and rewrites the rest canonically.
func (e *Engine) normalizeMonth(doc models.Document) models.Document {
	out := e.emptyMonth(doc.MonthMarker())
	for game, cells := range doc {
		if game == models.TimestampKey {
			continue
		}
		for player, cell := range cells {
			out.Set(game, player, scoring.CanonicalCell(cell))
		}
	}
	return out
}

// normalizeGlobal fills missing cells with "0". Unreadable cells are
// reset to "0" as well.
func (e *Engine) normalizeGlobal(doc models.Document) models.Document {
	out := doc.Clone()
	for _, g := range e.roster.Games {
		for _, p := range e.roster.Players {
			cell, _ := out.Get(g.Name, p)
			if cell == "" {
				out.Set(g.Name, p, "0")
				continue
			}
			if _, err := scoring.ParseGlobalScore(cell); err != nil {
				slog.Warn("unreadable global cell reset", "game", g.Name, "player", p, "cell", cell)
				out.Set(g.Name, p, "0")
			}
		}
	}
	return out
}
