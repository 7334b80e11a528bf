package tournament

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/showdown/internal/services/tournament Service

import "context"

// Service defines the interface for tournament operations
type Service interface {
	// BeginSignup opens a signup roster for an arena
	BeginSignup(ctx context.Context, input *BeginSignupInput) (*BeginSignupOutput, error)

	// JoinSignup adds a participant to an open roster
	JoinSignup(ctx context.Context, input *JoinSignupInput) (*JoinSignupOutput, error)

	// StartTournament draws the opening bracket and prompts the first match
	StartTournament(ctx context.Context, input *StartTournamentInput) (*StartTournamentOutput, error)

	// ConfirmReady records a readiness confirmation for the current match
	ConfirmReady(ctx context.Context, input *ConfirmReadyInput) (*ConfirmReadyOutput, error)

	// RollDice performs a duel roll in the arena's current match
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// AbortTournament ends a tournament early without a champion
	AbortTournament(ctx context.Context, input *AbortTournamentInput) (*AbortTournamentOutput, error)

	// GetRoster reads an arena's stage and signup roster
	GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error)

	// RedeemPoints cashes out some or all of a player's balance
	RedeemPoints(ctx context.Context, input *RedeemPointsInput) (*RedeemPointsOutput, error)

	// GetBalance reads a player's balance
	GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error)

	// GetLeaderboard reads the ranked standings
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
