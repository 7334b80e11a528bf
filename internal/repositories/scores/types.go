package scores

import "github.com/KirkDiggler/showdown/internal/models"

// AddPointsInput contains parameters for incrementing a player's balance
type AddPointsInput struct {
	// PlayerID is the stable handle the ledger is keyed by
	PlayerID string

	// Amount is the number of points to add; must be non-negative
	Amount int
}

// GetPointsInput contains parameters for reading a player's balance
type GetPointsInput struct {
	PlayerID string
}

// GetPointsOutput contains the result of reading a player's balance
type GetPointsOutput struct {
	Points int
}

// RedeemAllInput contains parameters for a full redemption
type RedeemAllInput struct {
	PlayerID string
}

// RedeemAllOutput contains the result of a full redemption
type RedeemAllOutput struct {
	// Redeemed is the balance that was cashed out; 0 is a valid no-op
	Redeemed int
}

// RedeemAmountInput contains parameters for a partial redemption
type RedeemAmountInput struct {
	PlayerID string
	Amount   int
}

// RedeemAmountOutput contains the result of a partial redemption
type RedeemAmountOutput struct {
	// Redeemed is Amount on success, 0 when the balance was insufficient
	Redeemed int
}

// GetLeaderboardInput contains parameters for retrieving the standings
type GetLeaderboardInput struct {
	// Limit truncates the standings; 0 or negative returns everything
	Limit int
}

// GetLeaderboardOutput contains the ranked standings
type GetLeaderboardOutput struct {
	Entries []models.ScoreEntry
}
