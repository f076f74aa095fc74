// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the five named result documents.

# Documents

Every document is a models.Document (game -> player -> value) and is read
and written whole. Names are fixed:

	today, month, global, last_day, last_month

Any other name fails with ErrUnknownDocument. A document that was never
written reads as an empty document.

# Backends

	store.NewMemory()                                  // process-local
	store.OpenSQL(ctx, db.Postgres, "postgres://...")  // lib/pq, JSONB payload
	store.OpenSQL(ctx, db.SQLite, "linkgames.db")      // modernc.org/sqlite
	store.OpenRedis(ctx, "localhost:6379", "", 0)      // go-redis, linkgames:doc:<name>

Open picks one from a cliparse.Config.

# Errors

  - ErrStoreUnavailable: the backend could not be reached or the write failed
  - ErrCorruptDocument: stored bytes are not a document
  - ErrUnknownDocument: name outside the fixed set

# Atomicity

PutMany writes a batch in one transaction on SQL and in a MULTI/EXEC block
on Redis. The memory store applies the batch under one lock.

# Encoding

Documents are stored as JSON objects of string values. Decode also accepts
numbers (kept as decimal text), booleans (Yes/No) and null (empty string).
*/
package store
