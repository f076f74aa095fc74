// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/xAlexMGGx/LinkGames/engine"
	"github.com/xAlexMGGx/LinkGames/middleware"
	"github.com/xAlexMGGx/LinkGames/models"
	"github.com/xAlexMGGx/LinkGames/scoring"
)

type DocumentHandler struct {
	eng *engine.Engine
}

func NewDocumentHandler(eng *engine.Engine) *DocumentHandler {
	return &DocumentHandler{eng: eng}
}

// GetRoster handles GET /roster
func (h *DocumentHandler) GetRoster(w http.ResponseWriter, r *http.Request) {
	ros := h.eng.Roster()
	middleware.JSONResponse(w, http.StatusOK, models.RosterResponse{
		Games:   ros.Games,
		Players: ros.Players,
	})
}

// GetToday handles GET /results/today
// Returns the stored values and a copy with times as "m:ss".
func (h *DocumentHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	doc, err := h.eng.TodayDocument(r.Context())
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.DocumentResponse{
		Name:      models.DocToday,
		Document:  doc,
		Formatted: scoring.FormatDay(h.eng.Roster(), doc),
	})
}

// GetMonth handles GET /results/month
// Returns the symbolic cells and their decoded totals.
func (h *DocumentHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	doc, standings, err := h.eng.MonthStandings(r.Context())
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.MonthResponse{
		Name:      models.DocMonth,
		Document:  doc,
		Standings: standings,
	})
}

// GetGlobal handles GET /results/global
func (h *DocumentHandler) GetGlobal(w http.ResponseWriter, r *http.Request) {
	doc, err := h.eng.GlobalDocument(r.Context())
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.DocumentResponse{Name: models.DocGlobal, Document: doc})
}

// GetLastDay handles GET /results/last-day
func (h *DocumentHandler) GetLastDay(w http.ResponseWriter, r *http.Request) {
	doc, winners, err := h.eng.LastDayDocument(r.Context())
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.WinnersResponse{
		Name:      models.DocLastDay,
		Document:  doc,
		Formatted: scoring.FormatDay(h.eng.Roster(), doc),
		Winners:   winners,
	})
}

// GetLastMonth handles GET /results/last-month
func (h *DocumentHandler) GetLastMonth(w http.ResponseWriter, r *http.Request) {
	doc, winners, err := h.eng.LastMonthDocument(r.Context())
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.WinnersResponse{
		Name:     models.DocLastMonth,
		Document: doc,
		Winners:  winners,
	})
}
