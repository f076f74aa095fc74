// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes the document table for a dialect:

	if err := db.CreateSchema(conn, db.Postgres); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Dialects

  - Postgres: opened with the "postgres" driver (github.com/lib/pq),
    payload stored as JSONB
  - SQLite: opened with the "sqlite" driver (modernc.org/sqlite),
    payload stored as TEXT

# Tables

  - document: one row per named document (today, month, global,
    last_day, last_month) holding its JSON payload

Documents are always read and written whole.
*/
package db
