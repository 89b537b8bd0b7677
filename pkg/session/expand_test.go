package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dotuperr "github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/session"
)

func TestExpand(t *testing.T) {
	env := session.FromEnviron([]string{"HOME=/home/alice", "USER=alice"})

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no placeholders", "/etc/motd", "/etc/motd"},
		{"single placeholder", "${HOME}/.bashrc", "/home/alice/.bashrc"},
		{"multiple placeholders", "${HOME}/run/${USER}", "/home/alice/run/alice"},
		{"adjacent text", "pre${USER}post", "prealicepost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := env.Expand(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExpandUnsetVariable(t *testing.T) {
	env := session.New()

	_, err := env.Expand("${MISSING}/file")
	require.Error(t, err)
	assert.True(t, dotuperr.IsCode(err, dotuperr.ErrEnvUnset))
	assert.Contains(t, err.Error(), "MISSING")
}

func TestExpandLeavesBarePlaceholderAlone(t *testing.T) {
	env := session.FromEnviron([]string{"HOME=/home/alice"})

	// Only ${...} is substituted; bare $VAR passes through untouched.
	result, err := env.Expand("$HOME/${HOME}")
	require.NoError(t, err)
	assert.Equal(t, "$HOME//home/alice", result)
}
