// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the LinkGames API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(eng, registry)

Pass a nil registry to skip request metrics and the /metrics endpoint.

# Endpoints

Health and monitoring:

	GET /health
	GET /metrics - Prometheus exposition

Roster:

	GET /roster - Games (key, name, kind) and players

Results:

	POST /results            - Submit a player's results for today
	GET  /results/today      - Today's results
	GET  /results/month      - Monthly cells and decoded standings
	GET  /results/global     - All-time leaderboard
	GET  /results/last-day   - Last closed day, with winners
	GET  /results/last-month - Last closed month, with winners

Rollover:

	POST /sync - Close the day or month now

# Handler Initialization

The router creates handler instances with dependency injection:

	resultsHandler := handlers.NewResultsHandler(eng)
	documentHandler := handlers.NewDocumentHandler(eng)

Every route except /health and /metrics is wrapped in
middleware.WithLogging and timed by middleware.Metrics.
*/
package router
