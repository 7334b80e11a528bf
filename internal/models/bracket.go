package models

// Pair is a single matchup inside a bracket round
type Pair struct {
	// PlayerA is the first player in the pair
	PlayerA string

	// PlayerB is the second player in the pair
	PlayerB string
}

// Contains reports whether the player is one of the pair's two members
func (p Pair) Contains(playerID string) bool {
	return p.PlayerA == playerID || p.PlayerB == playerID
}

// Opponent returns the other member of the pair, or "" if the player is not in it
func (p Pair) Opponent(playerID string) string {
	switch playerID {
	case p.PlayerA:
		return p.PlayerB
	case p.PlayerB:
		return p.PlayerA
	}
	return ""
}

// Round is one bracket round: the pairs to be played in order, plus any
// byes that advance without playing
type Round struct {
	// Number is the 1-based round number within the tournament
	Number int

	// Pairs are played sequentially in slice order
	Pairs []Pair

	// Byes advance straight into the next round's seed list
	Byes []string
}
