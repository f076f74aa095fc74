// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - StoreType: memory, postgres, sqlite or redis (default: sqlite)
  - DatabaseURL: PostgreSQL connection string or SQLite path
    (required for postgres, default linkgames.db for sqlite)
  - RedisAddr, RedisPassword, RedisDB: Redis connection
  - Timezone: where a day ends (default: America/Los_Angeles)
  - RosterFile: YAML roster (default: built-in five players, five games)
  - LogLevel: debug, info, warn or error (default: info)

# CLI Flags

	-p           Server port
	-store       Document store
	-d           Database URL
	-redis-addr  Redis address
	-tz          Timezone
	-roster      Roster file
	-log-level   Log level
	-env-file    Env file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	STORE_TYPE     → -store
	DATABASE_URL   → -d
	REDIS_ADDR     → -redis-addr
	REDIS_PASSWORD
	REDIS_DB
	TIMEZONE       → -tz
	ROSTER_FILE    → -roster
	LOG_LEVEL      → -log-level

CLI flags take precedence over environment variables. The env file is
loaded with godotenv before the environment is read and never overrides
variables that are already set.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	docs, err := store.Open(ctx, cfg)
	// ...
	mux := router.NewRouter(eng, registry)
*/
package cliparse
