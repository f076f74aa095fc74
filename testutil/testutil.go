// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/xAlexMGGx/LinkGames/models"
	"github.com/xAlexMGGx/LinkGames/store"
)

// Pacific is the league's timezone.
var Pacific = mustLoad("America/Los_Angeles")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// At parses "2006-01-02 15:04" in Pacific time.
func At(t *testing.T, value string) time.Time {
	t.Helper()
	tm, err := time.ParseInLocation("2006-01-02 15:04", value, Pacific)
	if err != nil {
		t.Fatalf("Failed to parse time %q: %v", value, err)
	}
	return tm
}

// FixedClock is a settable clock for tests.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to a new time.
func (c *FixedClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// ErrInjected is the failure returned by FailingStore.
var ErrInjected = errors.New("injected failure")

// FailingStore wraps a store and fails reads or writes on demand.
type FailingStore struct {
	store.Store

	mu         sync.Mutex
	failGets   bool
	failWrites bool
}

func NewFailingStore(inner store.Store) *FailingStore {
	return &FailingStore{Store: inner}
}

// FailGets makes every Get fail with ErrStoreUnavailable.
func (f *FailingStore) FailGets(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failGets = fail
}

// FailWrites makes every Put and PutMany fail with ErrStoreUnavailable.
func (f *FailingStore) FailWrites(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWrites = fail
}

func (f *FailingStore) Get(ctx context.Context, name string) (models.Document, error) {
	f.mu.Lock()
	fail := f.failGets
	f.mu.Unlock()
	if fail {
		return nil, errors.Join(store.ErrStoreUnavailable, ErrInjected)
	}
	return f.Store.Get(ctx, name)
}

func (f *FailingStore) Put(ctx context.Context, name string, doc models.Document) error {
	return f.PutMany(ctx, []store.Named{{Name: name, Document: doc}})
}

func (f *FailingStore) PutMany(ctx context.Context, docs []store.Named) error {
	f.mu.Lock()
	fail := f.failWrites
	f.mu.Unlock()
	if fail {
		return errors.Join(store.ErrStoreUnavailable, ErrInjected)
	}
	return f.Store.PutMany(ctx, docs)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
