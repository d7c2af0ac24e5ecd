package kb

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/triage/internal/model"
	"github.com/ppiankov/triage/internal/registry"
	"github.com/ppiankov/triage/internal/store"
)

// SnapshotVersion is the current snapshot format version
const SnapshotVersion = 1

// ErrInvalidSnapshot is returned when a snapshot's references do not resolve
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Snapshot is the serializable form of a knowledge base. Every list is in
// append order, so positions are ids.
type Snapshot struct {
	Version     int            `yaml:"version"`
	Questions   []string       `yaml:"questions"`
	Outcomes    []string       `yaml:"outcomes"`
	Frequencies []int64        `yaml:"frequencies"` // Parallel to Outcomes
	Cases       []SnapshotCase `yaml:"cases"`
}

// SnapshotCase is one answer set. Only ground answers are written:
// an explicit Absent and an omitted entry read back the same way.
type SnapshotCase struct {
	Outcome int            `yaml:"outcome"`
	Answers map[int]string `yaml:"answers,omitempty"`
}

// Snapshot captures the current contents of the knowledge base
func (k *KnowledgeBase) Snapshot() *Snapshot {
	snap := &Snapshot{Version: SnapshotVersion}

	for _, q := range k.Questions.All() {
		snap.Questions = append(snap.Questions, q.Text)
	}
	for _, o := range k.Outcomes.All() {
		snap.Outcomes = append(snap.Outcomes, o.Label)
		snap.Frequencies = append(snap.Frequencies, o.Frequency)
	}
	for _, set := range k.Cases.All() {
		c := SnapshotCase{Outcome: int(set.Outcome())}
		for id, a := range set.Entries() {
			if v, ok := a.Value(); ok {
				if c.Answers == nil {
					c.Answers = make(map[int]string)
				}
				c.Answers[int(id)] = v
			}
		}
		snap.Cases = append(snap.Cases, c)
	}
	return snap
}

// FromSnapshot rebuilds a knowledge base, validating every reference
func FromSnapshot(snap *Snapshot, opts ...store.Option) (*KnowledgeBase, error) {
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, snap.Version)
	}
	if len(snap.Frequencies) != len(snap.Outcomes) {
		return nil, fmt.Errorf("%w: %d frequencies for %d outcomes", ErrInvalidSnapshot, len(snap.Frequencies), len(snap.Outcomes))
	}

	questions := make([]model.Question, len(snap.Questions))
	for i, text := range snap.Questions {
		questions[i] = model.Question{ID: model.QuestionID(i), Text: text}
	}
	qreg, err := registry.RestoreQuestionRegistry(questions)
	if err != nil {
		return nil, err
	}

	outcomes := make([]model.Outcome, len(snap.Outcomes))
	for i, label := range snap.Outcomes {
		outcomes[i] = model.Outcome{ID: model.OutcomeID(i), Label: label, Frequency: snap.Frequencies[i]}
	}
	oreg, err := registry.RestoreOutcomeRegistry(outcomes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	sets := make([]model.AnswerSet, 0, len(snap.Cases))
	for i, c := range snap.Cases {
		if c.Outcome < 0 || c.Outcome >= len(outcomes) {
			return nil, fmt.Errorf("%w: case %d refers to outcome %d", ErrInvalidSnapshot, i, c.Outcome)
		}
		key := make(model.Key, len(c.Answers))
		for _, qid := range slices.Sorted(maps.Keys(c.Answers)) {
			if qid < 0 || qid >= len(questions) {
				return nil, fmt.Errorf("%w: case %d refers to question %d", ErrInvalidSnapshot, i, qid)
			}
			key.Set(model.QuestionID(qid), model.Ground(c.Answers[qid]))
		}
		sets = append(sets, model.NewAnswerSet(key, model.OutcomeID(c.Outcome)))
	}

	return &KnowledgeBase{
		Questions: qreg,
		Outcomes:  oreg,
		Cases:     store.Restore(sets, opts...),
	}, nil
}

// Encode writes snap as YAML
func Encode(w io.Writer, snap *Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Decode reads a YAML snapshot
func Decode(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := yaml.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}
