package store

import (
	"maps"
	"slices"

	"github.com/ppiankov/triage/internal/model"
)

// Candidates is a set of outcome ids that could apply to a query.
// It always contains "(other)".
type Candidates struct {
	ids map[model.OutcomeID]struct{}
}

func newCandidates(ids ...model.OutcomeID) Candidates {
	c := Candidates{ids: map[model.OutcomeID]struct{}{model.OtherOutcome: {}}}
	for _, id := range ids {
		c.add(id)
	}
	return c
}

func (c Candidates) add(id model.OutcomeID) {
	c.ids[id] = struct{}{}
}

// Contains reports whether id is a candidate
func (c Candidates) Contains(id model.OutcomeID) bool {
	_, ok := c.ids[id]
	return ok
}

// Len returns the number of distinct candidates, "(other)" included
func (c Candidates) Len() int {
	return len(c.ids)
}

// OnlyOther reports whether nothing besides "(other)" is a candidate
func (c Candidates) OnlyOther() bool {
	return c.Len() == 1
}

// Sorted returns the candidates in ascending id order
func (c Candidates) Sorted() []model.OutcomeID {
	return slices.Sorted(maps.Keys(c.ids))
}
