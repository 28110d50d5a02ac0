package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyInput(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected *KeyEvent
	}{
		{
			name:     "regular_char",
			input:    []byte{'q'},
			expected: &KeyEvent{Key: 'q', Type: KeyChar},
		},
		{
			name:     "ctrl_c",
			input:    []byte{3},
			expected: &KeyEvent{Key: 3, Type: KeyChar},
		},
		{
			name:     "space",
			input:    []byte{' '},
			expected: &KeyEvent{Key: ' ', Type: KeyChar},
		},
		{
			name:     "enter",
			input:    []byte{'\r'},
			expected: &KeyEvent{Type: KeyEnter},
		},
		{
			name:     "bare_escape",
			input:    []byte{27},
			expected: &KeyEvent{Key: 27, Type: KeyEscape},
		},
		{
			name:     "arrow_up",
			input:    []byte{27, '[', 'A'},
			expected: &KeyEvent{Type: KeyUp},
		},
		{
			name:     "arrow_down",
			input:    []byte{27, '[', 'B'},
			expected: &KeyEvent{Type: KeyDown},
		},
		{
			name:     "unknown_escape_sequence",
			input:    []byte{27, '[', 'Z'},
			expected: nil,
		},
		{
			name:     "empty",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := ParseKeyInput(tt.input)
			if tt.expected == nil {
				assert.Nil(t, event)
				return
			}
			require.NotNil(t, event)
			assert.Equal(t, *tt.expected, *event)
		})
	}
}
