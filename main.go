// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/xAlexMGGx/LinkGames/cliparse"
	"github.com/xAlexMGGx/LinkGames/engine"
	"github.com/xAlexMGGx/LinkGames/middleware"
	"github.com/xAlexMGGx/LinkGames/roster"
	"github.com/xAlexMGGx/LinkGames/router"
	"github.com/xAlexMGGx/LinkGames/store"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	loc, _ := cfg.Location()

	players := roster.Default()
	if cfg.RosterFile != "" {
		players, err = roster.Load(cfg.RosterFile)
		if err != nil {
			slog.Error("roster load failed", "file", cfg.RosterFile, "error", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open the document store
	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	docs, err := store.Open(openCtx, cfg)
	cancel()
	if err != nil {
		slog.Error("store open failed", "store", cfg.StoreType, "error", err)
		os.Exit(1)
	}
	defer docs.Close()
	slog.Info("Document store ready", "store", cfg.StoreType)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	eng := engine.New(players, docs,
		engine.WithLocation(loc),
		engine.WithMetrics(engine.NewMetrics(reg)),
	)

	// Close whatever day or month ended while the server was down
	if report, err := eng.SyncPeriod(ctx); err != nil {
		slog.Warn("startup sync failed", "error", err)
	} else {
		slog.Info("Documents synced", "today", report.Today, "day_closed", report.DayClosed, "month_closed", report.MonthClosed)
	}

	mux := router.NewRouter(eng, reg)

	server := http.Server{
		Handler:      middleware.CORS(mux),
		Addr:         ":" + strconv.Itoa(cfg.Port),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("Listening", "port", cfg.Port, "timezone", loc.String(), "games", len(players.Games), "players", len(players.Players))
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}
}
