package models

// ScoreEntry is a single player's standing in the points ledger
type ScoreEntry struct {
	// PlayerID is the stable handle the ledger is keyed by
	PlayerID string

	// Points is the player's current redeemable balance
	Points int
}

// Standings is an ordered leaderboard snapshot, highest balance first
type Standings struct {
	Entries []ScoreEntry
}
