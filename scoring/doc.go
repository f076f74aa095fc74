// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring implements the league's scoring rules.

Nothing here touches storage or the clock; every function takes the
roster and the documents it works on.

# Time Codec

	secs, err := scoring.ParseTime("1:30") // 90
	secs, err := scoring.ParseTime("90")   // 90
	scoring.ParseSubmittedTime("")         // SentinelSeconds (99:99)

# Daily Winners

Timed games go to the lowest time, Pinpoint to every "Yes":

	winners := scoring.DailyWinners(r, today)
	winners := scoring.DailyWinners(r, today, scoring.OnlyGame(name), scoring.OnlyPlayers("Alex", "Mazu"))

# Monthly Cells

A monthly cell is a string of symbols worth

	'5' = 5   'I' = 1   'i' = 1/2   '.' = 1/3

Each daily win appends the winner's share (1, 1/2 or 1/3 for a timed game
tied two or three ways) and carries: three '.' make an 'I', two 'i' make
an 'I', five 'I' make a '5'.

	cell, err := scoring.ApplyWin("I.", scoring.Third) // "I.."
	v := scoring.DecodeCell("5Ii.")                    // 6.8333

Cells are handled as a Cell struct of unit counts and only serialised to
symbols for storage.

# Monthly and Global Winners

MonthlyWinners picks the highest decoded total per game. A single month
winner gets a global point; tied winners get a "?" marker instead, which
Reconcile settles once a later day breaks the tie among them.
*/
package scoring
