package scores

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/showdown/internal/repositories/scores Repository

import (
	"context"
)

// Repository defines the interface for the points ledger persistence
type Repository interface {
	// AddPoints increments a player's balance, creating the entry if needed
	AddPoints(ctx context.Context, input *AddPointsInput) error

	// GetPoints retrieves a player's balance; a missing entry is balance 0
	GetPoints(ctx context.Context, input *GetPointsInput) (*GetPointsOutput, error)

	// RedeemAll returns a player's full balance and resets it to 0
	RedeemAll(ctx context.Context, input *RedeemAllInput) (*RedeemAllOutput, error)

	// RedeemAmount subtracts the requested amount if the balance covers it;
	// an insufficient balance redeems 0 and leaves the entry unchanged
	RedeemAmount(ctx context.Context, input *RedeemAmountInput) (*RedeemAmountOutput, error)

	// GetLeaderboard retrieves the ranked standings, highest balance first
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
