package tournament

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/showdown/internal/common/clock"
	"github.com/KirkDiggler/showdown/internal/common/timer"
	"github.com/KirkDiggler/showdown/internal/common/uuid"
	"github.com/KirkDiggler/showdown/internal/dice"
	"github.com/KirkDiggler/showdown/internal/models"
	"github.com/KirkDiggler/showdown/internal/repositories/scores"
)

// Awards holds the point amounts attributed to final placements.
// A zero amount is valid and skips the ledger write for that place.
type Awards struct {
	First  int
	Second int
	Third  int
}

// Config holds configuration and dependencies for the tournament service
type Config struct {
	// ScoreRepo is the durable points ledger
	ScoreRepo scores.Repository

	// Roller supplies all randomness: duel rolls, first-roller picks,
	// and bracket shuffles
	Roller dice.Roller

	// Scheduler arms the readiness and per-turn deadlines
	Scheduler timer.Scheduler

	// Clock supplies timestamps
	Clock clock.Clock

	// UUID generates match identifiers
	UUID uuid.UUID

	// Notifier receives outbound engine events
	Notifier Notifier

	// Logger; a zerolog.Nop() is used when left zero-valued
	Logger zerolog.Logger

	// BestOf is the duel length; the win target is BestOf/2 + 1.
	// Defaults to 3.
	BestOf int

	// DiceSides defaults to 6
	DiceSides int

	// ReadyTimeout is the readiness confirmation window. Defaults to 60s.
	ReadyTimeout time.Duration

	// RollTimeout is the per-turn rolling window. Defaults to 60s.
	RollTimeout time.Duration

	// RequireFullBracket enables the strict roster policy: tournament
	// start fails unless the roster size is a power of two, which
	// forbids byes entirely. Default allows a single bye per round.
	RequireFullBracket bool

	// Awards for final placements; nil applies the defaults (100/50/25)
	Awards *Awards
}

// BeginSignupInput contains parameters for opening a signup roster
type BeginSignupInput struct {
	// ArenaID is the isolated context the tournament runs in
	ArenaID string

	// RequesterID is the admin who opened the signup; authorization is
	// the transport's responsibility
	RequesterID string
}

// BeginSignupOutput contains the result of opening a signup roster
type BeginSignupOutput struct{}

// JoinSignupInput contains parameters for adding a participant
type JoinSignupInput struct {
	ArenaID  string
	PlayerID string
}

// JoinSignupOutput contains the result of adding a participant
type JoinSignupOutput struct {
	// Joined is false when the player was already present or signup is
	// over; duplicate joins are expected UI noise, not errors
	Joined bool

	// Roster is the roster after the call
	Roster []string
}

// StartTournamentInput contains parameters for starting the bracket
type StartTournamentInput struct {
	ArenaID     string
	RequesterID string
}

// StartTournamentOutput contains the opening round
type StartTournamentOutput struct {
	Round *models.Round

	// FirstMatch is the pair prompted to confirm readiness
	FirstMatch models.Pair
}

// ConfirmReadyInput contains parameters for a readiness confirmation
type ConfirmReadyInput struct {
	ArenaID string

	// MatchIndex guards against stale prompts; it must match the pair
	// currently being played
	MatchIndex int

	PlayerID string
}

// ConfirmReadyOutput contains the result of a readiness confirmation
type ConfirmReadyOutput struct {
	// Accepted is false for duplicate confirmations
	Accepted bool

	// DuelStarted is true when this was the second confirmation
	DuelStarted bool

	// FirstRoller is set when DuelStarted is true
	FirstRoller string
}

// RollDiceInput contains parameters for a duel roll
type RollDiceInput struct {
	ArenaID string

	// PlayerID implicitly targets the arena's current match
	PlayerID string
}

// RollDiceOutput contains the result of a duel roll
type RollDiceOutput struct {
	Value int

	// Tie is true when this second roll equalled the first and the
	// sub-round restarts
	Tie bool

	// SubRoundWinner is set when this roll decided a sub-round
	SubRoundWinner string

	// MatchWinner is set when this roll decided the match
	MatchWinner string

	// NextRoller is set while the match continues
	NextRoller string
}

// AbortTournamentInput contains parameters for aborting a tournament
type AbortTournamentInput struct {
	ArenaID     string
	RequesterID string
	Reason      string
}

// AbortTournamentOutput contains the result of aborting a tournament
type AbortTournamentOutput struct{}

// GetRosterInput contains parameters for reading an arena's state
type GetRosterInput struct {
	ArenaID string
}

// GetRosterOutput contains an arena's stage and roster
type GetRosterOutput struct {
	Stage  models.Stage
	Roster []string
}

// RedeemPointsInput contains parameters for a redemption
type RedeemPointsInput struct {
	PlayerID string

	// All redeems the full balance; Amount is ignored when set
	All bool

	Amount int
}

// RedeemPointsOutput contains the result of a redemption
type RedeemPointsOutput struct {
	Redeemed int
}

// GetBalanceInput contains parameters for reading a balance
type GetBalanceInput struct {
	PlayerID string
}

// GetBalanceOutput contains a player's balance
type GetBalanceOutput struct {
	Points int
}

// GetLeaderboardInput contains parameters for the standings
type GetLeaderboardInput struct {
	Limit int
}

// GetLeaderboardOutput contains the ranked standings
type GetLeaderboardOutput struct {
	Entries []models.ScoreEntry
}
