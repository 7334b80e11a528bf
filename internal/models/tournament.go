package models

// Stage represents the current state of a tournament session
type Stage string

const (
	// StageSignup indicates the session is collecting participants
	StageSignup Stage = "signup"

	// StageRound indicates a bracket round is being played
	StageRound Stage = "round"

	// StageFinished indicates the tournament completed with a champion
	StageFinished Stage = "finished"

	// StageAborted indicates the tournament ended without a champion
	StageAborted Stage = "aborted"
)

// IsActive reports whether the stage still holds the arena
func (s Stage) IsActive() bool {
	return s == StageSignup || s == StageRound
}
