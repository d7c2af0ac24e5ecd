package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ppiankov/triage/internal/kb"
	"github.com/ppiankov/triage/internal/model"
)

// Operator prompts
const (
	PromptIntro    = "Triage expert: please answer some questions."
	PromptOutcome  = "Please enter the correct outcome for this item"
	PromptQuestion = "Please enter the question that would discriminate between this outcome and others"
	PromptAnswer   = "Please enter the answer to that question for this outcome"
)

// Session runs resolve/learn cycles against one knowledge base
type Session struct {
	id     string
	kb     *kb.KnowledgeBase
	in     Input
	out    Output
	order  OrderingPolicy
	logger *zap.Logger
	state  State
}

// Option configures a Session
type Option func(*Session)

// WithOrderingPolicy replaces the default registry order
func WithOrderingPolicy(p OrderingPolicy) Option {
	return func(s *Session) {
		s.order = p
	}
}

// WithLogger sets the session's logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New creates a session over k that talks to the operator through in and out
func New(k *kb.KnowledgeBase, in Input, out Output, opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		kb:     k,
		in:     in,
		out:    out,
		order:  RegistryOrder{},
		logger: zap.NewNop(),
		state:  CollectingAnswers,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session_id", s.id))
	return s
}

// ID returns the session id
func (s *Session) ID() string {
	return s.id
}

// State returns the phase the session is in
func (s *Session) State() State {
	return s.state
}

// KnowledgeBase returns the knowledge base the session grows
func (s *Session) KnowledgeBase() *kb.KnowledgeBase {
	return s.kb
}

// Resolution describes how one cycle ended
type Resolution struct {
	Key        model.Key
	Candidates []model.OutcomeID
	Chosen     model.OutcomeID
	Learned    *Learned // Set when the operator chose "(other)"
}

// Learned describes what a cycle added to the knowledge base
type Learned struct {
	Outcome  model.Outcome
	Question *model.Question // Set when a discriminating question was added
	Case     int             // Position of the new answer set
}

// Run repeats cycles until the input is exhausted or ctx is done.
// End of input is a normal stop and returns nil.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("session started", zap.Int("questions", s.kb.Questions.Len()), zap.Int("outcomes", s.kb.Outcomes.Len()))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := s.RunCycle(ctx)
		if errors.Is(err, io.EOF) {
			stats := s.kb.Stats()
			s.logger.Info("session ended",
				zap.Int("questions", stats.Questions),
				zap.Int("outcomes", stats.Outcomes),
				zap.Int("cases", stats.Cases),
			)
			return nil
		}
		if err != nil {
			return err
		}

		s.logger.Debug("cycle resolved", zap.Int("chosen", int(res.Chosen)), zap.Bool("learned", res.Learned != nil))
	}
}

// RunCycle runs one collect/present/resolve cycle
func (s *Session) RunCycle(ctx context.Context) (*Resolution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.state = CollectingAnswers
	key, err := s.collectAnswers()
	if err != nil {
		return nil, err
	}

	s.state = PresentingCandidates
	found := s.kb.Cases.CandidateOutcomes(key)
	candidates := s.present(found.Sorted())

	s.state = Resolving
	res := &Resolution{Key: key, Candidates: found.Sorted()}

	chosen, err := s.choose(candidates)
	if err != nil {
		return nil, err
	}
	res.Chosen = chosen

	if chosen == model.OtherOutcome {
		learned, err := s.learn(key, found.OnlyOther())
		if err != nil {
			return nil, err
		}
		res.Learned = learned
	}

	if err := s.kb.Outcomes.IncrementFrequency(chosen); err != nil {
		return nil, err
	}

	s.state = CollectingAnswers
	return res, nil
}

func (s *Session) collectAnswers() (model.Key, error) {
	s.out.DisplayLine(PromptIntro)

	questions := s.order.Order(s.kb.Questions.All(), s.kb.Outcomes.All())
	key := make(model.Key, len(questions))
	for _, q := range questions {
		answer, err := s.in.AskAnswer(fmt.Sprintf("%d. %s", q.ID, q.Text))
		if err != nil {
			return nil, fmt.Errorf("ask question %d: %w", q.ID, err)
		}
		key.Set(q.ID, answer)
	}
	return key, nil
}

func (s *Session) present(ids []model.OutcomeID) []Candidate {
	candidates := make([]Candidate, 0, len(ids))
	for i, id := range ids {
		label, _ := s.kb.Outcomes.LabelOf(id)
		candidates = append(candidates, Candidate{ID: id, Label: label})
		s.out.DisplayLine(fmt.Sprintf("%d %s", i, label))
	}
	return candidates
}

func (s *Session) choose(candidates []Candidate) (model.OutcomeID, error) {
	for {
		id, err := s.in.AskChoice(candidates)
		if errors.Is(err, ErrMalformedChoice) {
			s.warn(fmt.Sprintf("Please choose a number between 0 and %d.", len(candidates)-1))
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("ask choice: %w", err)
		}
		if !offered(candidates, id) {
			s.logger.Debug("choice not offered", zap.Int("outcome", int(id)))
			s.warn(fmt.Sprintf("Please choose a number between 0 and %d.", len(candidates)-1))
			continue
		}
		return id, nil
	}
}

// learn records a new outcome for key. A discriminating question is asked
// for unless "(other)" was the only candidate. The new question is written
// into this case's key only; earlier cases stay Absent there.
func (s *Session) learn(key model.Key, onlyOther bool) (*Learned, error) {
	label, err := s.askNonEmpty(PromptOutcome)
	if err != nil {
		return nil, err
	}

	var (
		questionText string
		answer       model.Answer
	)
	if !onlyOther {
		questionText, err = s.askNonEmpty(PromptQuestion)
		if err != nil {
			return nil, err
		}
		answer, err = s.in.AskAnswer(PromptAnswer)
		if err != nil {
			return nil, fmt.Errorf("ask answer to new question: %w", err)
		}
	}

	learned := &Learned{}
	if !onlyOther {
		qid := s.kb.Questions.Append(questionText)
		key.Set(qid, answer)
		learned.Question = &model.Question{ID: qid, Text: questionText}
		s.out.DisplayLine("New question is stored.")
		s.logger.Info("question learned", zap.Int("question", int(qid)), zap.String("text", questionText), zap.Stringer("answer", answer))
	}

	oid := s.kb.Outcomes.Append(label)
	learned.Outcome, _ = s.kb.Outcomes.Get(oid)
	learned.Case = s.kb.Cases.Append(model.NewAnswerSet(key, oid))

	s.logger.Info("outcome learned",
		zap.Int("outcome", int(oid)),
		zap.String("label", label),
		zap.Int("case", learned.Case),
		zap.Int("ground_answers", key.GroundCount()),
	)
	return learned, nil
}

// askNonEmpty re-prompts until the operator enters something
func (s *Session) askNonEmpty(prompt string) (string, error) {
	for {
		text, err := s.in.AskFreeText(prompt)
		if err != nil {
			return "", fmt.Errorf("ask %q: %w", prompt, err)
		}
		if text = strings.TrimSpace(text); text != "" {
			return text, nil
		}
		s.warn("A value is required.")
	}
}

func (s *Session) warn(text string) {
	if w, ok := s.out.(Warner); ok {
		w.Warn(text)
		return
	}
	s.out.DisplayLine(text)
}

func offered(candidates []Candidate, id model.OutcomeID) bool {
	for _, c := range candidates {
		if c.ID == id {
			return true
		}
	}
	return false
}
