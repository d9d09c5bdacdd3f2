package oaserrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "/path/to/file.yaml",
			Line:    42,
			Column:  10,
			Message: "invalid syntax",
			Cause:   cause,
		}
		assert.Equal(t, "parse error in /path/to/file.yaml at line 42, column 10: invalid syntax: underlying error", err.Error())
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		assert.Equal(t, "parse error", (&ParseError{}).Error())
	})

	t.Run("Is matches ErrParse only", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		assert.ErrorIs(t, err, ErrParse)
		assert.NotErrorIs(t, err, ErrReference)
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		assert.ErrorIs(t, err, cause)
	})
}

func TestReferenceError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ReferenceError
		expected string
	}{
		{
			name:     "missing reference",
			err:      &ReferenceError{Ref: "#/components/schemas/Pet", Message: "reference not defined"},
			expected: "reference error: #/components/schemas/Pet: reference not defined",
		},
		{
			name:     "circular reference with chain",
			err:      &ReferenceError{Ref: "#/components/schemas/A", IsCircular: true, Chain: []string{"A", "B", "A"}},
			expected: "circular reference: #/components/schemas/A (A -> B -> A)",
		},
		{
			name:     "empty",
			err:      &ReferenceError{},
			expected: "reference error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}

	t.Run("Is matches sentinels", func(t *testing.T) {
		plain := &ReferenceError{Ref: "#/x"}
		assert.ErrorIs(t, plain, ErrReference)
		assert.NotErrorIs(t, plain, ErrCircularReference)

		circular := &ReferenceError{Ref: "#/x", IsCircular: true}
		assert.ErrorIs(t, circular, ErrReference)
		assert.ErrorIs(t, circular, ErrCircularReference)
	})

	t.Run("As extracts ReferenceError through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("dereferencing: %w", &ReferenceError{Ref: "#/components/schemas/A", Category: "schemas"})
		var refErr *ReferenceError
		require.ErrorAs(t, wrapped, &refErr)
		assert.Equal(t, "schemas", refErr.Category)
	})
}

func TestResourceLimitError(t *testing.T) {
	err := &ResourceLimitError{ResourceType: "nesting_depth", Limit: 1000, Actual: 1001}
	assert.Equal(t, "resource limit exceeded: nesting_depth (limit: 1000, actual: 1001)", err.Error())
	assert.ErrorIs(t, err, ErrResourceLimit)
	assert.NoError(t, err.Unwrap())
}

func TestConfigError(t *testing.T) {
	cause := errors.New("boom")
	err := &ConfigError{Option: "input", Value: 2, Message: "must specify exactly one input source", Cause: cause}
	assert.Equal(t, "configuration error for input (value: 2): must specify exactly one input source: boom", err.Error())
	assert.ErrorIs(t, err, ErrConfig)
	assert.ErrorIs(t, err, cause)
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{ErrParse, ErrReference, ErrCircularReference, ErrResourceLimit, ErrConfig}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b, "%v should not match %v", a, b)
			}
		}
	}
}
