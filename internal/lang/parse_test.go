package lang

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineMix(t *testing.T) {
	tests := []struct {
		line string
		want MixStatement
	}{
		{"mix flour and eggs", MixStatement{Action: ActionMix, Left: Flour, Right: Eggs}},
		{"add sugar and butter", MixStatement{Action: ActionAdd, Left: Sugar, Right: Butter}},
		{"mix milk and milk", MixStatement{Action: ActionMix, Left: Milk, Right: Milk}},
		// case-insensitive, extra whitespace tolerated
		{"  MIX Flour AND Eggs  ", MixStatement{Action: ActionMix, Left: Flour, Right: Eggs}},
		{"Add\tvanilla   and water", MixStatement{Action: ActionAdd, Left: Vanilla, Right: Water}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			st, err := ParseLine(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.want, st)
		})
	}
}

func TestParseLineTimed(t *testing.T) {
	tests := []struct {
		line string
		want TimedStatement
	}{
		{"bake for 30 minutes", TimedStatement{Action: ActionBake, Duration: 30, Unit: Minutes}},
		{"heat for 1 hours", TimedStatement{Action: ActionHeat, Duration: 1, Unit: Hours}},
		{"cool for 90 seconds", TimedStatement{Action: ActionCool, Duration: 90, Unit: Seconds}},
		{"BAKE FOR 5 MINUTES", TimedStatement{Action: ActionBake, Duration: 5, Unit: Minutes}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			st, err := ParseLine(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.want, st)
		})
	}
}

func TestParseLineSkip(t *testing.T) {
	for _, line := range []string{"", "   ", "\t", "# a comment", "   # indented comment"} {
		st, err := ParseLine(line)
		assert.Nil(t, st, "line %q", line)
		assert.ErrorIs(t, err, ErrSkip, "line %q", line)
	}
}

func TestParseLineErrors(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		kind  ErrorKind
		token string
	}{
		{"unknown action", "whisk flour and eggs", UnknownAction, "whisk"},
		{"single unknown token", "whisk", UnknownAction, "whisk"},
		{"unknown left ingredient", "mix cheese and eggs", UnknownIngredient, "cheese"},
		{"unknown right ingredient", "mix flour and cheese", UnknownIngredient, "cheese"},
		{"mix missing and", "mix flour with eggs", MalformedMix, ""},
		{"mix wrong arity", "mix flour and eggs and sugar", MalformedMix, ""},
		{"mix lone action", "mix", MalformedMix, ""},
		{"timed missing for", "bake 30 minutes", MalformedTimed, ""},
		{"timed non-numeric duration", "bake for ten minutes", MalformedTimed, ""},
		{"timed zero duration", "bake for 0 minutes", MalformedTimed, ""},
		{"timed negative duration", "cool for -5 minutes", MalformedTimed, ""},
		{"timed unknown unit", "heat for 10 fortnights", MalformedTimed, ""},
		{"timed action with mix shape", "bake flour and eggs", MalformedTimed, ""},
		{"mix action with timed shape", "mix for 10 minutes", MalformedMix, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := ParseLine(tt.line)
			require.Nil(t, st)
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "want *ParseError, got %T", err)
			assert.Equal(t, tt.kind, perr.Kind)
			if tt.token != "" {
				assert.Equal(t, tt.token, perr.Token)
				assert.Contains(t, perr.Error(), tt.token)
			}
		})
	}
}

func TestStatementText(t *testing.T) {
	st, err := ParseLine("mix flour and eggs")
	require.NoError(t, err)
	assert.Equal(t, "Mix flour and eggs", st.Text())
	assert.Equal(t, "mix flour and eggs", st.Source())

	st, err = ParseLine("BAKE for 30 Minutes")
	require.NoError(t, err)
	assert.Equal(t, "Bake for 30 minutes", st.Text())
	assert.Equal(t, "bake for 30 minutes", st.Source())
}

func TestVocabularies(t *testing.T) {
	assert.Equal(t,
		[]Action{ActionAdd, ActionBake, ActionCool, ActionHeat, ActionMix},
		Actions())
	assert.Equal(t,
		[]Ingredient{Butter, Eggs, Flour, Milk, Salt, Sugar, Vanilla, Water},
		Ingredients())
	assert.Equal(t, []Unit{Hours, Minutes, Seconds}, Units())
}
