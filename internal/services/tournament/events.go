package tournament

import (
	"context"

	"github.com/KirkDiggler/showdown/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/showdown/internal/services/tournament Notifier

// Notifier receives engine events for delivery to an arena's transport.
// Publish is called with the arena's session lock held and must not call
// back into the Service.
type Notifier interface {
	Publish(ctx context.Context, arenaID string, event Event)
}

// EventKind identifies an event's type without reflection
type EventKind string

const (
	EventRosterUpdated      EventKind = "roster_updated"
	EventBracketAnnounced   EventKind = "bracket_announced"
	EventMatchPrompt        EventKind = "match_prompt"
	EventReadyAcknowledged  EventKind = "ready_acknowledged"
	EventDuelStarted        EventKind = "duel_started"
	EventRollResult         EventKind = "roll_result"
	EventTurnPrompt         EventKind = "turn_prompt"
	EventMatchDecided       EventKind = "match_decided"
	EventRoundAdvanced      EventKind = "round_advanced"
	EventTournamentFinished EventKind = "tournament_finished"
	EventTournamentAborted  EventKind = "tournament_aborted"
	EventPointsAwarded      EventKind = "points_awarded"
	EventRedemptionResult   EventKind = "redemption_result"
)

// Event is an outbound engine notification. Events carry data only; any
// formatting or markup belongs to the transport.
type Event interface {
	Kind() EventKind
}

// RosterUpdated is emitted whenever the signup roster changes
type RosterUpdated struct {
	Players []string
}

func (RosterUpdated) Kind() EventKind { return EventRosterUpdated }

// BracketAnnounced is emitted when a round's pairings are drawn
type BracketAnnounced struct {
	Round int
	Byes  []string
	Pairs []models.Pair
}

func (BracketAnnounced) Kind() EventKind { return EventBracketAnnounced }

// MatchPrompt invites a pair to confirm readiness
type MatchPrompt struct {
	PairIndex int
	Pair      models.Pair
}

func (MatchPrompt) Kind() EventKind { return EventMatchPrompt }

// ReadyAcknowledged is emitted when a confirmation is recorded
type ReadyAcknowledged struct {
	PairIndex int
	Player    string

	// AwaitingOpponent is true while the other confirmation is outstanding
	AwaitingOpponent bool
}

func (ReadyAcknowledged) Kind() EventKind { return EventReadyAcknowledged }

// DuelStarted is emitted when both players confirmed and the duel begins
type DuelStarted struct {
	PairIndex   int
	FirstRoller string
}

func (DuelStarted) Kind() EventKind { return EventDuelStarted }

// RollResult reports a single dice roll
type RollResult struct {
	Player string
	Value  int
}

func (RollResult) Kind() EventKind { return EventRollResult }

// TurnPrompt names the player expected to roll next
type TurnPrompt struct {
	NextRoller string

	// Reroll is true when the previous sub-round tied
	Reroll bool
}

func (TurnPrompt) Kind() EventKind { return EventTurnPrompt }

// MatchDecided reports a match reaching a terminal state. Winner is
// empty when both players forfeited.
type MatchDecided struct {
	PairIndex int
	Winner    string
	Forfeit   bool
}

func (MatchDecided) Kind() EventKind { return EventMatchDecided }

// RoundAdvanced is emitted before the next round's bracket is announced
type RoundAdvanced struct {
	Round int
}

func (RoundAdvanced) Kind() EventKind { return EventRoundAdvanced }

// TournamentFinished reports the final standings. RunnerUp may be empty
// when the champion advanced out of the final by bye or double forfeit.
type TournamentFinished struct {
	Champion string
	RunnerUp string
	Thirds   []string
}

func (TournamentFinished) Kind() EventKind { return EventTournamentFinished }

// TournamentAborted is emitted when a tournament ends without a champion
type TournamentAborted struct {
	Reason string
}

func (TournamentAborted) Kind() EventKind { return EventTournamentAborted }

// PointsAwarded reports a placement award written to the ledger
type PointsAwarded struct {
	Player string
	Amount int

	// Place is 1 for champion, 2 for runner-up, 3 for semifinal losers
	Place int
}

func (PointsAwarded) Kind() EventKind { return EventPointsAwarded }

// RedemptionResult reports a successful redemption
type RedemptionResult struct {
	Player   string
	Redeemed int
}

func (RedemptionResult) Kind() EventKind { return EventRedemptionResult }
