package session

import "github.com/ppiankov/triage/internal/model"

// OrderingPolicy decides the order questions are asked in.
// It may read outcome frequencies to front-load the most telling questions.
type OrderingPolicy interface {
	Order(questions []model.Question, outcomes []model.Outcome) []model.Question
}

// RegistryOrder asks questions in the order they were learned
type RegistryOrder struct{}

// Order returns questions unchanged
func (RegistryOrder) Order(questions []model.Question, _ []model.Outcome) []model.Question {
	return questions
}
