// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/xAlexMGGx/LinkGames/db"
	"github.com/xAlexMGGx/LinkGames/models"
)

// SQL keeps documents in the document table of PostgreSQL or SQLite.
type SQL struct {
	db      *sql.DB
	dialect db.Dialect
}

// OpenSQL connects, pings and creates the schema.
func OpenSQL(ctx context.Context, dialect db.Dialect, dsn string) (*SQL, error) {
	conn, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if dialect == db.SQLite {
		// one writer; also keeps ":memory:" databases on a single connection
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, unavailable("ping", string(dialect), err)
	}

	if err := db.CreateSchema(conn, dialect); err != nil {
		conn.Close()
		return nil, err
	}

	return &SQL{db: conn, dialect: dialect}, nil
}

// NewSQL wraps an open connection whose schema already exists.
func NewSQL(conn *sql.DB, dialect db.Dialect) *SQL {
	return &SQL{db: conn, dialect: dialect}
}

func (s *SQL) Get(ctx context.Context, name string) (models.Document, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	var payload []byte
	err := s.db.QueryRowContext(ctx, s.rebind(`SELECT payload FROM document WHERE name = $1`), name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Document{}, nil
	}
	if err != nil {
		return nil, unavailable("get", name, err)
	}

	return Decode(payload)
}

func (s *SQL) Put(ctx context.Context, name string, doc models.Document) error {
	return s.PutMany(ctx, []Named{{Name: name, Document: doc}})
}

// PutMany writes every document in one transaction.
func (s *SQL) PutMany(ctx context.Context, docs []Named) error {
	payloads := make([]string, len(docs))
	for i, d := range docs {
		if err := checkName(d.Name); err != nil {
			return err
		}
		data, err := Encode(d.Document)
		if err != nil {
			return err
		}
		payloads[i] = string(data)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return unavailable("begin", "batch", err)
	}
	defer tx.Rollback()

	query := s.rebind(`
		INSERT INTO document (name, payload, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE
		SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP
	`)
	for i, d := range docs {
		if _, err := tx.ExecContext(ctx, query, d.Name, payloads[i]); err != nil {
			return unavailable("put", d.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return unavailable("commit", "batch", err)
	}
	return nil
}

// setRaw writes a payload without encoding it.
func (s *SQL) setRaw(ctx context.Context, name string, payload string) error {
	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO document (name, payload) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET payload = excluded.payload
	`), name, payload)
	return err
}

func (s *SQL) Close() error {
	return s.db.Close()
}

// rebind turns $N placeholders into ? for SQLite.
func (s *SQL) rebind(query string) string {
	if s.dialect != db.SQLite {
		return query
	}
	out := make([]byte, 0, len(query))
	for i := 0; i < len(query); i++ {
		if query[i] == '$' && i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
			out = append(out, '?')
			for i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
				i++
			}
			continue
		}
		out = append(out, query[i])
	}
	return string(out)
}
