package model

// OutcomeID is the position of an outcome in the outcome log
type OutcomeID int

// OtherOutcome is the reserved catch-all outcome, always offered as a candidate
const OtherOutcome OutcomeID = 0

// OtherLabel is the label of OtherOutcome
const OtherLabel = "(other)"

// Outcome is a disposition the triage can resolve to
type Outcome struct {
	ID        OutcomeID `json:"id" yaml:"id"`
	Label     string    `json:"label" yaml:"label"`
	Frequency int64     `json:"frequency" yaml:"frequency"` // Times a resolution selected it
}

// IsOther reports whether the outcome is the reserved catch-all
func (o Outcome) IsOther() bool {
	return o.ID == OtherOutcome
}
