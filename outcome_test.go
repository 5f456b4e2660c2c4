package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		out := Success[cliError]()
		assert.True(t, out.IsSuccess())
		assert.False(t, out.IsFailure())
		_, ok := out.Err()
		assert.False(t, ok)
	})
	t.Run("failure", func(t *testing.T) {
		t.Parallel()
		out := Failure(cliError{message: "nope"})
		assert.False(t, out.IsSuccess())
		assert.True(t, out.IsFailure())
		value, ok := out.Err()
		require.True(t, ok)
		assert.Equal(t, "nope", value.message)
	})
	t.Run("zero value is neither variant", func(t *testing.T) {
		t.Parallel()
		var out Outcome[cliError]
		assert.False(t, out.IsSuccess())
		assert.False(t, out.IsFailure())
	})
}

func TestRenderFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{
			name:     "error value",
			value:    errors.New("broken pipe"),
			expected: "broken pipe",
		},
		{
			name:     "stringer value",
			value:    cliError{message: "bad input"},
			expected: "bad input",
		},
		{
			name:     "plain string",
			value:    "just text",
			expected: "just text",
		},
		{
			name:     "plain struct",
			value:    struct{ Code int }{Code: 7},
			expected: "{7}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderFailure(tt.value))
		})
	}
}
