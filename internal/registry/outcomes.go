package registry

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/ppiankov/triage/internal/model"
)

var (
	// ErrUnknownOutcome is returned for an outcome id that was never appended
	ErrUnknownOutcome = errors.New("unknown outcome")

	// ErrMissingOther is returned when restored outcomes do not start with "(other)"
	ErrMissingOther = errors.New("outcome 0 must be " + model.OtherLabel)

	// ErrNotDense is returned when restored ids are not their positions
	ErrNotDense = errors.New("ids must be dense and in append order")
)

type outcomeEntry struct {
	label     string
	frequency atomic.Int64
}

// OutcomeRegistry is the append-only log of outcomes with a frequency
// counter per outcome. Outcome 0 is "(other)" and always present.
type OutcomeRegistry struct {
	log Log[*outcomeEntry]
}

// NewOutcomeRegistry creates a registry seeded with the "(other)" outcome
func NewOutcomeRegistry() *OutcomeRegistry {
	r := &OutcomeRegistry{}
	r.log.Append(&outcomeEntry{label: model.OtherLabel})
	return r
}

// Append stores a new outcome and returns its id.
// Duplicate labels are allowed and get distinct ids.
func (r *OutcomeRegistry) Append(label string) model.OutcomeID {
	return model.OutcomeID(r.log.Append(&outcomeEntry{label: label}))
}

// IncrementFrequency adds one to the frequency of outcome id
func (r *OutcomeRegistry) IncrementFrequency(id model.OutcomeID) error {
	e, ok := r.log.At(int(id))
	if !ok {
		return fmt.Errorf("increment frequency of %d: %w", id, ErrUnknownOutcome)
	}
	e.frequency.Add(1)
	return nil
}

// Get returns outcome id with its current frequency
func (r *OutcomeRegistry) Get(id model.OutcomeID) (model.Outcome, bool) {
	e, ok := r.log.At(int(id))
	if !ok {
		return model.Outcome{}, false
	}
	return e.outcome(id), true
}

// LabelOf returns the label of outcome id
func (r *OutcomeRegistry) LabelOf(id model.OutcomeID) (string, bool) {
	e, ok := r.log.At(int(id))
	if !ok {
		return "", false
	}
	return e.label, true
}

// All returns every outcome in id order with current frequencies
func (r *OutcomeRegistry) All() []model.Outcome {
	entries := r.log.View()
	out := make([]model.Outcome, len(entries))
	for i, e := range entries {
		out[i] = e.outcome(model.OutcomeID(i))
	}
	return out
}

// Len returns the number of outcomes, "(other)" included
func (r *OutcomeRegistry) Len() int {
	return r.log.Len()
}

// RestoreOutcomeRegistry rebuilds a registry from outcomes listed in id order.
// The first outcome must be "(other)" and ids must be dense from 0.
func RestoreOutcomeRegistry(outcomes []model.Outcome) (*OutcomeRegistry, error) {
	if len(outcomes) == 0 || outcomes[0].ID != model.OtherOutcome || outcomes[0].Label != model.OtherLabel {
		return nil, fmt.Errorf("restore outcomes: %w", ErrMissingOther)
	}

	r := &OutcomeRegistry{}
	for i, o := range outcomes {
		if int(o.ID) != i {
			return nil, fmt.Errorf("restore outcomes: id %d at position %d: %w", o.ID, i, ErrNotDense)
		}
		e := &outcomeEntry{label: o.Label}
		e.frequency.Store(o.Frequency)
		r.log.Append(e)
	}
	return r, nil
}

func (e *outcomeEntry) outcome(id model.OutcomeID) model.Outcome {
	return model.Outcome{ID: id, Label: e.label, Frequency: e.frequency.Load()}
}
