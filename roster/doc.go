// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster holds the static list of games and players.

Every scoring function takes a Roster explicitly instead of reading
package-level literals, so the line-up can change without touching the
scoring code.

# Games

Each game has a key used in requests, a display name used as the key of
stored documents, and a kind:

	timed    lowest time in seconds wins (Queens, Tango, Cross, Zip)
	boolean  every "Yes" wins (Pinpoint)

# Loading

	r := roster.Default()
	r, err := roster.Load("roster.yaml")

A roster file looks like:

	games:
	  - key: queens
	    name: "Queens 👑"
	    kind: timed
	  - key: pinpoint
	    name: "Pinpoint 🟦"
	    kind: boolean
	players: [Alex, Jorge, Mazu, Galo, Priti]
*/
package roster
