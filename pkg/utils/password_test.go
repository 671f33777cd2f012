package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("Str0ng_Pass!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Str0ng_Pass!", hash)

	assert.True(t, CheckPassword(hash, "Str0ng_Pass!"))
	assert.False(t, CheckPassword(hash, "Str0ng_Pass?"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestHashPasswordProducesDistinctSalts(t *testing.T) {
	h1, err := HashPassword("Str0ng_Pass!")
	require.NoError(t, err)
	h2, err := HashPassword("Str0ng_Pass!")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword(h1, "Str0ng_Pass!"))
	assert.True(t, CheckPassword(h2, "Str0ng_Pass!"))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Abcdef1@", false},
		{"valid with underscore", "Passw0rd_", false},
		{"too short", "Ab1@xyz", true},
		{"missing uppercase", "abcdef1@", true},
		{"missing lowercase", "ABCDEF1@", true},
		{"missing digit", "Abcdefg@", true},
		{"missing symbol", "Abcdefg1", true},
		{"symbol outside the accepted set", "Abcdef1~", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
