// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/xAlexMGGx/LinkGames/engine"
	"github.com/xAlexMGGx/LinkGames/middleware"
	"github.com/xAlexMGGx/LinkGames/models"
	"github.com/xAlexMGGx/LinkGames/store"
)

type ResultsHandler struct {
	eng *engine.Engine
}

func NewResultsHandler(eng *engine.Engine) *ResultsHandler {
	return &ResultsHandler{eng: eng}
}

// SubmitResult handles POST /results
// Records one player's results for today; resubmitting replaces them.
func (h *ResultsHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitResultRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Player) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "player is required")
		return
	}

	res, err := h.eng.SubmitDailyResult(r.Context(), engine.Submission{
		Player: req.Player,
		Times:  req.Times,
		Flags:  req.Flags,
	})
	if err != nil {
		writeEngineError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResultResponse{
		Player:  res.Player,
		Date:    res.Date,
		Message: "Results recorded",
	})
}

// Sync handles POST /sync
// Runs the day and month rollover now instead of on the next request.
func (h *ResultsHandler) Sync(w http.ResponseWriter, r *http.Request) {
	report, err := h.eng.SyncPeriod(r.Context())
	if err != nil {
		writeEngineError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, report)
}

// writeEngineError maps engine and store errors to HTTP responses.
func writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *engine.ValidationError

	switch {
	case errors.As(err, &verr):
		middleware.JSONResponse(w, http.StatusUnprocessableEntity, models.ValidationErrorResponse{
			Error:   http.StatusText(http.StatusUnprocessableEntity),
			Message: verr.Error(),
			Games:   verr.Games,
		})
	case errors.Is(err, engine.ErrUnknownPlayer):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown player")
	case errors.Is(err, store.ErrStoreUnavailable):
		slog.Error("store unavailable", "request_id", middleware.RequestID(r.Context()), "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Store unavailable")
	default:
		slog.Error("request failed", "request_id", middleware.RequestID(r.Context()), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
