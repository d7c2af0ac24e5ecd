package registry

import (
	"fmt"

	"github.com/ppiankov/triage/internal/model"
)

// QuestionRegistry is the append-only log of questions
type QuestionRegistry struct {
	log Log[model.Question]
}

// NewQuestionRegistry creates an empty question registry
func NewQuestionRegistry() *QuestionRegistry {
	return &QuestionRegistry{}
}

// Append stores a new question and returns its id
func (r *QuestionRegistry) Append(text string) model.QuestionID {
	id := r.log.AppendFunc(func(id int) model.Question {
		return model.Question{ID: model.QuestionID(id), Text: text}
	})
	return model.QuestionID(id)
}

// All returns every question in append order
func (r *QuestionRegistry) All() []model.Question {
	return r.log.Snapshot()
}

// TextOf returns the text of question id
func (r *QuestionRegistry) TextOf(id model.QuestionID) (string, bool) {
	q, ok := r.log.At(int(id))
	if !ok {
		return "", false
	}
	return q.Text, true
}

// Len returns the number of questions
func (r *QuestionRegistry) Len() int {
	return r.log.Len()
}

// RestoreQuestionRegistry rebuilds a registry from questions listed in id order
func RestoreQuestionRegistry(questions []model.Question) (*QuestionRegistry, error) {
	r := NewQuestionRegistry()
	for i, q := range questions {
		if int(q.ID) != i {
			return nil, fmt.Errorf("restore questions: id %d at position %d: %w", q.ID, i, ErrNotDense)
		}
		r.Append(q.Text)
	}
	return r, nil
}
