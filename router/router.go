// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xAlexMGGx/LinkGames/engine"
	"github.com/xAlexMGGx/LinkGames/handlers"
	"github.com/xAlexMGGx/LinkGames/middleware"
)

// NewRouter registers every route. When reg is non-nil, requests are timed
// into it and it is served on /metrics.
func NewRouter(eng *engine.Engine, reg *prometheus.Registry) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	resultsHandler := handlers.NewResultsHandler(eng)
	documentHandler := handlers.NewDocumentHandler(eng)

	var metrics *middleware.Metrics
	if reg != nil {
		metrics = middleware.NewMetrics(reg)
	}
	route := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(metrics.Instrument(pattern, h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if reg != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	route("GET /roster", documentHandler.GetRoster)

	// Results
	route("POST /results", resultsHandler.SubmitResult)
	route("GET /results/today", documentHandler.GetToday)
	route("GET /results/month", documentHandler.GetMonth)
	route("GET /results/global", documentHandler.GetGlobal)
	route("GET /results/last-day", documentHandler.GetLastDay)
	route("GET /results/last-month", documentHandler.GetLastMonth)

	// Rollover
	route("POST /sync", resultsHandler.Sync)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("LinkGames API v1"))
	})

	return mux
}
