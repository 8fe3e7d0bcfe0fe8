package inquiry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRuleFilter(t *testing.T) {
	tests := []struct {
		name      string
		rules     []string
		wantError bool
	}{
		{
			name:  "no rules",
			rules: nil,
		},
		{
			name:  "valid rules",
			rules: []string{`message.contains("bit.ly")`, `name == email`},
		},
		{
			name:      "syntax error",
			rules:     []string{`not valid cel!!!`},
			wantError: true,
		},
		{
			name:      "non-bool rule",
			rules:     []string{`message`},
			wantError: true,
		},
		{
			name:      "undefined variable",
			rules:     []string{`subject.contains("x")`},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRuleFilter(tt.rules)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRuleFilterMatch(t *testing.T) {
	filter, err := NewRuleFilter([]string{
		`message.contains("bit.ly")`,
		`country == "" && message.size() > 500`,
	})
	require.NoError(t, err)

	ctx := context.Background()

	matched, rule, err := filter.Match(ctx, SubmitRequest{
		Message: "cheap deals https://bit.ly/xyz",
	})
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, `message.contains("bit.ly")`, rule)

	matched, _, err = filter.Match(ctx, SubmitRequest{
		Name:    "Jane",
		Country: "Kenya",
		Message: "Interested in the Prado",
	})
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestRuleFilterNilSafe(t *testing.T) {
	var filter *RuleFilter
	matched, _, err := filter.Match(context.Background(), SubmitRequest{Message: "anything"})
	assert.NoError(t, err)
	assert.False(t, matched)
}
