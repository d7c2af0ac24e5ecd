package model

import "iter"

// AnswerSet is a taught case: a partial key bound to an outcome.
// It is created once and never mutated afterward.
type AnswerSet struct {
	key     Key
	outcome OutcomeID
}

// NewAnswerSet binds a copy of key to outcome
func NewAnswerSet(key Key, outcome OutcomeID) AnswerSet {
	return AnswerSet{key: key.Clone(), outcome: outcome}
}

// Key returns a copy of the answer set's key
func (s AnswerSet) Key() Key {
	return s.key.Clone()
}

// Outcome returns the outcome the case resolves to
func (s AnswerSet) Outcome() OutcomeID {
	return s.outcome
}

// Get reads one answer of the key. A missing entry reads as Absent.
func (s AnswerSet) Get(id QuestionID) Answer {
	return s.key.Get(id)
}

// Len returns the number of explicit entries in the key
func (s AnswerSet) Len() int {
	return len(s.key)
}

// Entries iterates the explicit entries of the key
func (s AnswerSet) Entries() iter.Seq2[QuestionID, Answer] {
	return s.key.Entries()
}
