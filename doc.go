// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the LinkGames API server.

LinkGames keeps a small league of daily puzzle results. Players submit their
times for the day's games; at each day boundary the fastest player of every
game is credited in a monthly accumulator, and at each month boundary the
month's leaders are credited on an all-time leaderboard.

# Starting the Server

With no configuration the server stores documents in a local SQLite file:

	go run .

Or with flags:

	go run . -p 8080 -store postgres -d "postgres://..."
	go run . -store redis -redis-addr localhost:6379 -tz Europe/Madrid

# Configuration

Flags win over the environment, and the environment wins over .env:

  - PORT (-p): Server port (default: 8080)
  - STORE_TYPE (-store): memory, sqlite, postgres or redis (default: sqlite)
  - DATABASE_URL (-d): Postgres URL or SQLite path (default: linkgames.db)
  - REDIS_ADDR (-redis-addr), REDIS_PASSWORD, REDIS_DB
  - TIMEZONE (-tz): Where days end (default: America/Los_Angeles)
  - ROSTER_FILE (-roster): YAML roster; the built-in roster otherwise
  - LOG_LEVEL (-log-level): debug, info, warn or error

# Architecture

  - engine: Submission, rollover and document getters
  - scoring: Pure winner and accumulator rules
  - store: Document stores (memory, SQL, Redis)
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, request metrics, JSON helpers
  - models: Documents and request/response types
  - roster: Games and players
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
