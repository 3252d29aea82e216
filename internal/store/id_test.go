package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id := NewID()

	parsed, err := ParseID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseIDMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "abc123"},
		{"not hex", "zzzzzzzzzzzzzzzzzzzzzzzz"},
		{"right length wrong alphabet", "64f1a2b3c4d5e6f7a8b9c0gg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseID(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidID))
		})
	}
}

func TestCollectionsManifest(t *testing.T) {
	assert.Contains(t, Collections, "lead")
	assert.Contains(t, Collections, "followup")
	assert.Contains(t, Collections, "quotation")
	assert.Len(t, Collections, 8)
}
