// Package kb owns the three append-only logs that make up a triage
// knowledge base and converts them to and from a serializable snapshot.
package kb

import (
	"github.com/ppiankov/triage/internal/registry"
	"github.com/ppiankov/triage/internal/store"
)

// KnowledgeBase is created at session start and handed to a Persister at
// session end. Entries are only ever appended.
type KnowledgeBase struct {
	Questions *registry.QuestionRegistry
	Outcomes  *registry.OutcomeRegistry
	Cases     *store.AnswerSetStore
}

// New creates an empty knowledge base: no questions, the "(other)"
// outcome, and the seed case
func New(opts ...store.Option) *KnowledgeBase {
	return &KnowledgeBase{
		Questions: registry.NewQuestionRegistry(),
		Outcomes:  registry.NewOutcomeRegistry(),
		Cases:     store.New(opts...),
	}
}

// Stats summarizes the size of a knowledge base
type Stats struct {
	Questions int
	Outcomes  int
	Cases     int
}

// Stats returns the current size of each log
func (k *KnowledgeBase) Stats() Stats {
	return Stats{
		Questions: k.Questions.Len(),
		Outcomes:  k.Outcomes.Len(),
		Cases:     k.Cases.Len(),
	}
}
