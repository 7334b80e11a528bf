package tournament

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/showdown/internal/dice"
)

func TestBuildRoundInsufficientPlayers(t *testing.T) {
	roller := dice.New(&dice.Config{Seed: 1})

	_, err := buildRound(1, nil, roller)
	assert.ErrorIs(t, err, ErrInsufficientPlayers)

	_, err = buildRound(1, []string{"alone"}, roller)
	assert.ErrorIs(t, err, ErrInsufficientPlayers)
}

func TestBuildRoundShapes(t *testing.T) {
	// every roster size must produce floor(n/2) pairs and n mod 2 byes,
	// with each player appearing exactly once across pairs and byes
	for n := 2; n <= 9; n++ {
		t.Run(fmt.Sprintf("roster_of_%d", n), func(t *testing.T) {
			roller := dice.New(&dice.Config{Seed: int64(n)})

			roster := make([]string, n)
			for i := range roster {
				roster[i] = fmt.Sprintf("player-%d", i)
			}

			round, err := buildRound(1, roster, roller)
			require.NoError(t, err)

			assert.Len(t, round.Pairs, n/2)
			assert.Len(t, round.Byes, n%2)

			seen := make(map[string]int)
			for _, pair := range round.Pairs {
				seen[pair.PlayerA]++
				seen[pair.PlayerB]++
			}
			for _, bye := range round.Byes {
				seen[bye]++
			}

			require.Len(t, seen, n)
			for _, player := range roster {
				assert.Equal(t, 1, seen[player], "player %s should appear exactly once", player)
			}
		})
	}
}

func TestBuildRoundDoesNotMutateRoster(t *testing.T) {
	roller := dice.New(&dice.Config{Seed: 42})
	roster := []string{"a", "b", "c", "d", "e"}

	_, err := buildRound(1, roster, roller)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, roster)
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 16, 64} {
		assert.True(t, isPowerOfTwo(n), "%d", n)
	}
	for _, n := range []int{0, -2, 3, 5, 6, 7, 12} {
		assert.False(t, isPowerOfTwo(n), "%d", n)
	}
}
