package tournament

// TournamentError is a custom error type for tournament-related errors
type TournamentError string

// Error implements the error interface
func (e TournamentError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInsufficientPlayers TournamentError = "not enough players signed up"
	ErrInvalidRosterSize   TournamentError = "roster size must be a power of two"
	ErrAlreadyRunning      TournamentError = "a tournament is already running in this arena"
	ErrNoActiveTournament  TournamentError = "no active tournament in this arena"
	ErrNoActiveMatch       TournamentError = "no match is currently awaiting this action"
	ErrNotInMatch          TournamentError = "player is not part of the current match"
	ErrNotYourTurn         TournamentError = "it is not this player's turn to roll"
	ErrInsufficientFunds   TournamentError = "balance does not cover the requested redemption"
	ErrInvalidAmount       TournamentError = "redemption amount must be positive"
	ErrNilConfig           TournamentError = "config cannot be nil"
	ErrNilScoreRepo        TournamentError = "scores repository cannot be nil"
	ErrNilDiceRoller       TournamentError = "dice roller cannot be nil"
	ErrNilScheduler        TournamentError = "scheduler cannot be nil"
	ErrNilClock            TournamentError = "clock cannot be nil"
	ErrNilUUIDGenerator    TournamentError = "UUID generator cannot be nil"
	ErrNilNotifier         TournamentError = "notifier cannot be nil"
)
