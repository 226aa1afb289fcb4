package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyCode(t *testing.T) {
	tests := []struct {
		name     string
		expected KeyCode
	}{
		{"left", KEY_LEFT},
		{"Right", KEY_RIGHT},
		{" up ", KEY_UP},
		{"down", KEY_DOWN},
		{"escape", KEY_ESCAPE},
		{"esc", KEY_ESCAPE},
		{"w", KEY_W},
		{"A", KEY_A},
		{"7", KEY_7},
		{"f12", KEY_F12},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, err := ParseKeyCode(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, k)
		})
	}

	_, err := ParseKeyCode("hyper")
	assert.ErrorIs(t, err, ErrConfig)
}

func TestKeyCodeString(t *testing.T) {
	assert.Equal(t, "escape", KEY_ESCAPE.String())
	assert.Equal(t, "q", KEY_Q.String())
	assert.Equal(t, "3", KEY_3.String())
	assert.Equal(t, "key(0xff)", KeyCode(0xFF).String())

	for k, name := range keyNames {
		parsed, err := ParseKeyCode(name)
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
}
