package session

// State is the phase of the current cycle
type State int

const (
	// CollectingAnswers asks every question to build a fresh key
	CollectingAnswers State = iota

	// PresentingCandidates shows the outcomes compatible with the key
	PresentingCandidates

	// Resolving waits for the operator's choice and applies it
	Resolving
)

func (s State) String() string {
	switch s {
	case CollectingAnswers:
		return "collecting_answers"
	case PresentingCandidates:
		return "presenting_candidates"
	case Resolving:
		return "resolving"
	default:
		return "unknown"
	}
}
