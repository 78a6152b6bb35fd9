package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain json untouched", input: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", input: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "fence with language", input: "```javascript\n[1,2]\n```", want: "[1,2]"},
		{name: "surrounding whitespace", input: "  \n```json\n[]\n```\n  ", want: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanTextBlock(t *testing.T) {
	assert.Equal(t, "Hello there.", CleanTextBlock("Hello there."))
	assert.Equal(t, "Hello there.", CleanTextBlock("```\nHello there.\n```"))
	assert.Equal(t, "Hello there.", CleanTextBlock("```text\nHello there.\n```"))
}

func TestExtractJSONObject(t *testing.T) {
	got, ok := ExtractJSONObject(`Sure! Here you go: {"a": {"b": 1}} Enjoy.`)
	require.True(t, ok)
	assert.Equal(t, `{"a": {"b": 1}}`, got)

	_, ok = ExtractJSONObject("no json here")
	assert.False(t, ok)
}
