// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open(SQLite.DriverName(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := openSQLite(t)

	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn, SQLite); err != nil {
			t.Fatalf("CreateSchema call %d failed: %v", i+1, err)
		}
	}

	if _, err := conn.Exec(`INSERT INTO document (name, payload) VALUES ('today', '{}')`); err != nil {
		t.Fatalf("Expected insert into document to succeed, got %v", err)
	}
}

func TestCreateSchema_RejectsUnknownDocument(t *testing.T) {
	conn := openSQLite(t)
	if err := CreateSchema(conn, SQLite); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	if _, err := conn.Exec(`INSERT INTO document (name, payload) VALUES ('yesterday', '{}')`); err == nil {
		t.Error("Expected the name check to reject an unknown document")
	}
}

func TestCreateSchema_UnknownDialect(t *testing.T) {
	conn := openSQLite(t)
	if err := CreateSchema(conn, Dialect("oracle")); err == nil {
		t.Error("Expected error for unknown dialect")
	}
}
