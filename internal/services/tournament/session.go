package tournament

import (
	"sync"

	"github.com/KirkDiggler/showdown/internal/models"
)

// session holds one arena's tournament run: the signup roster, the round
// being played, and the match currently in play. Sessions never share
// state across arenas; each is guarded by its own mutex and every entry
// point (external event or timer fire) locks it for the duration of the
// transition.
type session struct {
	mu sync.Mutex

	arenaID string
	stage   models.Stage
	roster  []string

	round      *models.Round
	matchIndex int
	current    *match

	// winners accumulates this round's survivors, seeded with the byes
	winners []string

	// semifinalLosers tracks the losers of the most recent round that
	// had exactly two pairs, and semifinalRound which round that was;
	// third place is only awarded when that round fed the final
	semifinalLosers []string
	semifinalRound  int
}

func newSession(arenaID string) *session {
	return &session{
		arenaID: arenaID,
		stage:   models.StageSignup,
	}
}

// hasPlayer reports whether the player is already on the roster
func (s *session) hasPlayer(playerID string) bool {
	for _, id := range s.roster {
		if id == playerID {
			return true
		}
	}
	return false
}

// addPlayer appends a player to the roster; duplicates are rejected
func (s *session) addPlayer(playerID string) bool {
	if s.stage != models.StageSignup || s.hasPlayer(playerID) {
		return false
	}
	s.roster = append(s.roster, playerID)
	return true
}

// rosterCopy returns a defensive copy for publication outside the lock
func (s *session) rosterCopy() []string {
	out := make([]string, len(s.roster))
	copy(out, s.roster)
	return out
}

// cancelTimers cancels every live timer handle owned by this session.
// Called on abort so no orphaned callback touches a discarded session.
func (s *session) cancelTimers() {
	if s.current != nil {
		s.current.cancelTimers()
	}
}
