package tournament

import (
	"time"

	"github.com/KirkDiggler/showdown/internal/common/timer"
	"github.com/KirkDiggler/showdown/internal/models"
)

// matchStatus represents the lifecycle state of a match
type matchStatus string

const (
	// matchAwaitingReady means the pair has been prompted and not both
	// players have confirmed
	matchAwaitingReady matchStatus = "awaiting_ready"

	// matchInProgress means the duel is being rolled
	matchInProgress matchStatus = "in_progress"

	// matchComplete means a winner was decided by play
	matchComplete matchStatus = "complete"

	// matchForfeited means a timeout decided the outcome
	matchForfeited matchStatus = "forfeited"
)

// match tracks one pair's lifecycle from the readiness handshake through
// the best-of-N duel. All fields are guarded by the owning session's
// mutex. Timer callbacks revalidate status (and turnSeq for roll timers)
// before acting: cancellation is best-effort and a timeout can fire
// concurrently with the normal event it guards.
type match struct {
	id        string
	pairIndex int
	pair      models.Pair

	status matchStatus

	// readiness handshake
	ready        map[string]bool
	firstReadyAt time.Time

	// duel state; roles persist across sub-rounds
	wins          map[string]int
	firstRoller   string
	secondRoller  string
	currentRoller string

	// firstRoll holds the first roll of the current sub-round; 0 means
	// none recorded (die values are 1-based)
	firstRoll int

	winner  string
	forfeit bool

	// one live handle per purpose; always cancel before replacing
	readyTimer timer.Handle
	rollTimer  timer.Handle

	// turnSeq increments every time the roll deadline is re-armed, so a
	// stale roll timeout can recognize it lost the race
	turnSeq int
}

func newMatch(id string, pairIndex int, pair models.Pair) *match {
	return &match{
		id:        id,
		pairIndex: pairIndex,
		pair:      pair,
		status:    matchAwaitingReady,
		ready:     make(map[string]bool),
		wins:      make(map[string]int),
	}
}

// isPlayer reports whether the player belongs to this match
func (m *match) isPlayer(playerID string) bool {
	return m.pair.Contains(playerID)
}

// readyCount returns how many confirmations have been recorded
func (m *match) readyCount() int {
	return len(m.ready)
}

// confirmedPlayer returns the single confirmed player, or "" when the
// confirmation count is not exactly one
func (m *match) confirmedPlayer() string {
	if len(m.ready) != 1 {
		return ""
	}
	for playerID := range m.ready {
		return playerID
	}
	return ""
}

// terminal reports whether the match has reached complete or forfeited
func (m *match) terminal() bool {
	return m.status == matchComplete || m.status == matchForfeited
}

// cancelTimers cancels any live deadlines. Safe to call on a match with
// none armed.
func (m *match) cancelTimers() {
	if m.readyTimer != nil {
		m.readyTimer.Cancel()
		m.readyTimer = nil
	}
	if m.rollTimer != nil {
		m.rollTimer.Cancel()
		m.rollTimer = nil
	}
}
