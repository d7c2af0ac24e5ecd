package session

import (
	"errors"

	"github.com/ppiankov/triage/internal/model"
)

// ErrMalformedChoice is returned by an Input for a selection outside the
// presented candidates. The session re-prompts; it never picks a default.
var ErrMalformedChoice = errors.New("malformed choice")

// Candidate is one presented outcome
type Candidate struct {
	ID    model.OutcomeID
	Label string
}

// Input asks the operator for answers, choices, and free text.
// Implementations block until the operator responds and return io.EOF
// once no more input will arrive.
type Input interface {
	// AskAnswer returns a ground answer or Absent when the operator declines
	AskAnswer(prompt string) (model.Answer, error)
	// AskChoice returns the id of the chosen candidate
	AskChoice(candidates []Candidate) (model.OutcomeID, error)
	AskFreeText(prompt string) (string, error)
}

// Output shows lines to the operator
type Output interface {
	DisplayLine(text string)
}

// Warner is implemented by outputs that render warnings differently
type Warner interface {
	Warn(text string)
}
