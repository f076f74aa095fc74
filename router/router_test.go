// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/xAlexMGGx/LinkGames/engine"
	"github.com/xAlexMGGx/LinkGames/models"
	"github.com/xAlexMGGx/LinkGames/roster"
	"github.com/xAlexMGGx/LinkGames/store"
	"github.com/xAlexMGGx/LinkGames/testutil"
)

func newTestEngine(t *testing.T) (*engine.Engine, *testutil.FixedClock) {
	t.Helper()
	clock := testutil.NewClock(testutil.At(t, "2024-03-05 10:00"))
	eng := engine.New(roster.Default(), store.NewMemory(),
		engine.WithClock(clock),
		engine.WithLocation(testutil.Pacific),
	)
	return eng, clock
}

func TestHealthEndpoint(t *testing.T) {
	eng, _ := newTestEngine(t)
	mux := NewRouter(eng, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	eng, _ := newTestEngine(t)
	mux := NewRouter(eng, nil)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "LinkGames API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	eng, _ := newTestEngine(t)
	mux := NewRouter(eng, prometheus.NewRegistry())

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/metrics"},
		{"GET", "/roster"},
		{"POST", "/results"},
		{"GET", "/results/today"},
		{"GET", "/results/month"},
		{"GET", "/results/global"},
		{"GET", "/results/last-day"},
		{"GET", "/results/last-month"},
		{"POST", "/sync"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			// POST /results without a body is a 400, which still means the route exists
			if w.Code == http.StatusMethodNotAllowed || w.Code == http.StatusNotFound {
				t.Errorf("Route %s %s returned %d, expected route handler to exist", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	eng, _ := newTestEngine(t)
	mux := NewRouter(eng, nil)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/results/today"},
		{"PUT", "/results"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

// TestSubmitThroughRouter walks a submission from one day into the next
// through the full middleware chain.
func TestSubmitThroughRouter(t *testing.T) {
	eng, clock := newTestEngine(t)
	reg := prometheus.NewRegistry()
	mux := NewRouter(eng, reg)

	req := testutil.MakeRequest("POST", "/results", models.SubmitResultRequest{
		Player: "Alex",
		Times:  map[string]string{"queens": "1:15"},
	}, map[string]string{"X-Request-ID": "test-req-1"})
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)
	if w.Header().Get("X-Request-ID") != "test-req-1" {
		t.Errorf("Expected request ID echoed, got '%s'", w.Header().Get("X-Request-ID"))
	}

	clock.Set(testutil.At(t, "2024-03-06 10:00"))

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/results/last-day", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var lastDay models.WinnersResponse
	testutil.AssertJSON(t, w, &lastDay)
	if got := lastDay.Winners["Queens 👑"]; len(got) != 1 || got[0] != "Alex" {
		t.Errorf("Expected Alex to win Queens, got %v", got)
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "linkgames_http_request_duration_seconds") {
		t.Error("Expected request histogram in /metrics output")
	}
}
