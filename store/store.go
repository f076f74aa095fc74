// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/xAlexMGGx/LinkGames/cliparse"
	"github.com/xAlexMGGx/LinkGames/db"
	"github.com/xAlexMGGx/LinkGames/models"
)

var (
	ErrCorruptDocument  = errors.New("corrupt document")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrUnknownDocument  = errors.New("unknown document")
)

// Named pairs a document with the name it is stored under.
type Named struct {
	Name     string
	Document models.Document
}

// Store keeps the named result documents. Documents are read and written
// whole; a missing document reads as empty.
type Store interface {
	// Get returns the document, or an empty one if it was never written.
	// Unparseable content returns ErrCorruptDocument.
	Get(ctx context.Context, name string) (models.Document, error)
	// Put overwrites the document.
	Put(ctx context.Context, name string, doc models.Document) error
	// PutMany writes documents in order. Backends that support it write
	// them atomically.
	PutMany(ctx context.Context, docs []Named) error
	Close() error
}

// Open connects the store selected by the configuration.
func Open(ctx context.Context, cfg cliparse.Config) (Store, error) {
	switch cfg.StoreType {
	case cliparse.StoreMemory:
		return NewMemory(), nil
	case cliparse.StorePostgres:
		return OpenSQL(ctx, db.Postgres, cfg.DatabaseURL)
	case cliparse.StoreSQLite:
		return OpenSQL(ctx, db.SQLite, cfg.DatabaseURL)
	case cliparse.StoreRedis:
		return OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	}
	return nil, fmt.Errorf("unknown store type %q", cfg.StoreType)
}

func checkName(name string) error {
	if !models.IsDocumentName(name) {
		return fmt.Errorf("%w: %q", ErrUnknownDocument, name)
	}
	return nil
}

func unavailable(op, name string, err error) error {
	return fmt.Errorf("%w: %s %s: %v", ErrStoreUnavailable, op, name, err)
}
