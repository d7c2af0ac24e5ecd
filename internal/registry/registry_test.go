package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/triage/internal/model"
)

func TestQuestionRegistry_DenseIDs(t *testing.T) {
	r := NewQuestionRegistry()
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.All())

	texts := []string{"Is it a hardware fault?", "Is the customer on the paid plan?", "Does it reproduce?"}
	for i, text := range texts {
		assert.Equal(t, model.QuestionID(i), r.Append(text))
	}

	all := r.All()
	require.Len(t, all, len(texts))
	for i, q := range all {
		assert.Equal(t, model.QuestionID(i), q.ID)
		assert.Equal(t, texts[i], q.Text)
	}

	text, ok := r.TextOf(1)
	require.True(t, ok)
	assert.Equal(t, texts[1], text)

	_, ok = r.TextOf(3)
	assert.False(t, ok)
}

func TestOutcomeRegistry_SeededWithOther(t *testing.T) {
	r := NewOutcomeRegistry()

	require.Equal(t, 1, r.Len())
	other, ok := r.Get(model.OtherOutcome)
	require.True(t, ok)
	assert.Equal(t, model.OtherLabel, other.Label)
	assert.Equal(t, int64(0), other.Frequency)
	assert.True(t, other.IsOther())
}

func TestOutcomeRegistry_DenseIDs(t *testing.T) {
	r := NewOutcomeRegistry()

	const n = 5
	for i := 1; i <= n; i++ {
		assert.Equal(t, model.OutcomeID(i), r.Append("outcome"))
	}

	all := r.All()
	require.Len(t, all, n+1)
	for i, o := range all {
		assert.Equal(t, model.OutcomeID(i), o.ID)
	}
}

func TestOutcomeRegistry_IncrementFrequency(t *testing.T) {
	r := NewOutcomeRegistry()
	hw := r.Append("send to hardware team")
	billing := r.Append("send to billing")

	const k = 7
	for i := 0; i < k; i++ {
		require.NoError(t, r.IncrementFrequency(hw))
	}

	got, _ := r.Get(hw)
	assert.Equal(t, int64(k), got.Frequency)

	got, _ = r.Get(billing)
	assert.Equal(t, int64(0), got.Frequency)

	got, _ = r.Get(model.OtherOutcome)
	assert.Equal(t, int64(0), got.Frequency)
}

func TestOutcomeRegistry_IncrementUnknown(t *testing.T) {
	r := NewOutcomeRegistry()

	err := r.IncrementFrequency(4)
	assert.ErrorIs(t, err, ErrUnknownOutcome)
}

func TestOutcomeRegistry_DuplicateLabels(t *testing.T) {
	r := NewOutcomeRegistry()
	first := r.Append("escalate")
	second := r.Append("escalate")

	assert.NotEqual(t, first, second)

	require.NoError(t, r.IncrementFrequency(second))
	a, _ := r.Get(first)
	b, _ := r.Get(second)
	assert.Equal(t, int64(0), a.Frequency)
	assert.Equal(t, int64(1), b.Frequency)

	label, ok := r.LabelOf(first)
	require.True(t, ok)
	assert.Equal(t, "escalate", label)
}

func TestRestoreOutcomeRegistry(t *testing.T) {
	r, err := RestoreOutcomeRegistry([]model.Outcome{
		{ID: 0, Label: model.OtherLabel, Frequency: 2},
		{ID: 1, Label: "reboot", Frequency: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, []model.Outcome{
		{ID: 0, Label: model.OtherLabel, Frequency: 2},
		{ID: 1, Label: "reboot", Frequency: 5},
	}, r.All())

	_, err = RestoreOutcomeRegistry(nil)
	assert.ErrorIs(t, err, ErrMissingOther)

	_, err = RestoreOutcomeRegistry([]model.Outcome{{ID: 0, Label: model.OtherLabel}, {ID: 2, Label: "gap"}})
	assert.ErrorIs(t, err, ErrNotDense)
}

func TestRestoreQuestionRegistry(t *testing.T) {
	r, err := RestoreQuestionRegistry([]model.Question{{ID: 0, Text: "a"}, {ID: 1, Text: "b"}})
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	_, err = RestoreQuestionRegistry([]model.Question{{ID: 1, Text: "b"}})
	assert.ErrorIs(t, err, ErrNotDense)
}
