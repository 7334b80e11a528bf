package tournament

import (
	"github.com/KirkDiggler/showdown/internal/dice"
	"github.com/KirkDiggler/showdown/internal/models"
)

// buildRound shuffles the roster uniformly and pairs it off for one
// bracket round. An odd roster drops one uniformly random player into
// the bye list; pairing only ever reduces evenly, so at most one bye
// exists per round. Randomness flows through the injected roller so the
// draw is deterministic under test.
func buildRound(number int, roster []string, roller dice.Roller) (*models.Round, error) {
	if len(roster) < 2 {
		return nil, ErrInsufficientPlayers
	}

	shuffled := make([]string, len(roster))
	copy(shuffled, roster)

	// Fisher-Yates
	for i := len(shuffled) - 1; i > 0; i-- {
		j := roller.Roll(i+1) - 1
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	round := &models.Round{
		Number: number,
	}

	if len(shuffled)%2 == 1 {
		byeIndex := roller.Roll(len(shuffled)) - 1
		round.Byes = append(round.Byes, shuffled[byeIndex])
		shuffled = append(shuffled[:byeIndex], shuffled[byeIndex+1:]...)
	}

	for i := 0; i+1 < len(shuffled); i += 2 {
		round.Pairs = append(round.Pairs, models.Pair{
			PlayerA: shuffled[i],
			PlayerB: shuffled[i+1],
		})
	}

	return round, nil
}

// isPowerOfTwo reports whether n is a positive power of two
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
