// Package store holds the append-only log of taught cases and answers
// "which outcomes could this partial key resolve to?".
package store

import (
	"time"

	"go.uber.org/zap"

	"github.com/ppiankov/triage/internal/cache"
	"github.com/ppiankov/triage/internal/match"
	"github.com/ppiankov/triage/internal/model"
	"github.com/ppiankov/triage/internal/registry"
)

// AnswerSetStore is an append-only log of answer sets. It is seeded with
// one case mapping the all-Absent key to "(other)".
type AnswerSetStore struct {
	log    registry.Log[model.AnswerSet]
	memo   cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// Option configures an AnswerSetStore
type Option func(*AnswerSetStore)

// WithCache memoizes CandidateOutcomes in c for ttl
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *AnswerSetStore) {
		s.memo = c
		s.ttl = ttl
	}
}

// WithLogger sets the store's logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *AnswerSetStore) {
		s.logger = logger
	}
}

// New creates a store holding only the seed case
func New(opts ...Option) *AnswerSetStore {
	s := &AnswerSetStore{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.log.Append(model.NewAnswerSet(model.Key{}, model.OtherOutcome))
	return s
}

// Restore creates a store from answer sets in append order. The seed case
// is expected to be among them; nothing is added.
func Restore(sets []model.AnswerSet, opts ...Option) *AnswerSetStore {
	s := &AnswerSetStore{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	for _, set := range sets {
		s.log.Append(set)
	}
	return s
}

// Append stores a new case. Cases are never merged, even when they are
// not discernible from an existing one.
func (s *AnswerSetStore) Append(set model.AnswerSet) int {
	idx := s.log.Append(set)
	s.logger.Debug("answer set stored",
		zap.Int("index", idx),
		zap.Int("outcome", int(set.Outcome())),
		zap.Int("key_size", set.Len()),
	)
	return idx
}

// All returns every stored case in append order
func (s *AnswerSetStore) All() []model.AnswerSet {
	return s.log.Snapshot()
}

// Len returns the number of stored cases, seed included
func (s *AnswerSetStore) Len() int {
	return s.log.Len()
}

// CandidateOutcomes returns the outcomes of every stored case that matches
// key, plus "(other)"
func (s *AnswerSetStore) CandidateOutcomes(key model.KeyReader) Candidates {
	sets := s.log.View()

	var memoKey string
	if s.memo != nil {
		memoKey = cache.CandidateKey(len(sets), key)
		if ids, found := s.memo.Get(memoKey); found {
			return newCandidates(ids...)
		}
	}

	c := newCandidates(model.OtherOutcome)
	for _, set := range sets {
		if match.Matches(set, key) {
			c.add(set.Outcome())
		}
	}

	if s.memo != nil {
		if err := s.memo.Set(memoKey, c.Sorted(), s.ttl); err != nil {
			s.logger.Warn("cache candidate outcomes", zap.Error(err))
		}
	}
	return c
}
