package chat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntake_CompletesExactlyOnce(t *testing.T) {
	it := NewIntake()
	total := len(it.Questions())
	require.Equal(t, 6, total)

	for i := 0; i < total; i++ {
		question, ok := it.Current()
		require.True(t, ok, "question %d should be available", i)
		assert.NotEmpty(t, question)
		assert.False(t, it.Completed())

		require.NoError(t, it.Submit(fmt.Sprintf("answer %d", i)))
	}

	assert.True(t, it.Completed())
	_, ok := it.Current()
	assert.False(t, ok)

	// Further submissions are rejected once complete.
	assert.ErrorIs(t, it.Submit("extra"), ErrCompleted)
}

func TestIntake_RejectsBlankAnswerWithoutAdvancing(t *testing.T) {
	it := NewIntake()
	before, _ := it.Current()

	assert.ErrorIs(t, it.Submit("   "), ErrEmptyAnswer)
	assert.ErrorIs(t, it.Submit(""), ErrEmptyAnswer)

	after, ok := it.Current()
	require.True(t, ok)
	assert.Equal(t, before, after)

	answered, _ := it.Progress()
	assert.Zero(t, answered)
}

func TestIntake_ProfileOnlyAfterCompletion(t *testing.T) {
	it := NewIntake()
	_, err := it.Profile()
	assert.ErrorIs(t, err, ErrIncomplete)

	answers := []string{
		"Jane Doe",
		"Engineer | Acme | 2019-2022 | Built things",
		"Python, Go\nRust",
		"PortfolioSite | A site",
		"BSc | MIT | | ",
		"Nothing else",
	}
	for _, answer := range answers {
		require.NoError(t, it.Submit(answer))
	}

	profile, err := it.Profile()
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.Name)
	require.Len(t, profile.WorkExperience, 1)
	assert.Equal(t, "Engineer", profile.WorkExperience[0].Company)
	assert.Equal(t, "Acme", profile.WorkExperience[0].Designation)
	assert.Equal(t, "2019-2022", profile.WorkExperience[0].Duration)
	assert.Equal(t, "Built things", profile.WorkExperience[0].Description)
}

func TestIntake_CustomQuestions(t *testing.T) {
	it := NewIntakeWithQuestions([]string{"Only question?"})
	question, ok := it.Current()
	require.True(t, ok)
	assert.Equal(t, "Only question?", question)

	require.NoError(t, it.Submit("yes"))
	assert.True(t, it.Completed())
	assert.Equal(t, []string{"yes"}, it.Answers())
}
