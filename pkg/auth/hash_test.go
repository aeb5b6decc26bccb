package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name          string
		service       *HashService
		password      string
		expectedError error
		expectedCost  int
	}{
		{
			name:         "Default cost",
			service:      &HashService{},
			password:     "correct horse battery",
			expectedCost: bcrypt.DefaultCost,
		},
		{
			name:         "Explicit cost",
			service:      &HashService{Cost: bcrypt.MinCost},
			password:     "correct horse battery",
			expectedCost: bcrypt.MinCost,
		},
		{
			name:          "Empty password",
			service:       &HashService{},
			expectedError: ErrEmptyPassword,
		},
		{
			name:          "Longer than bcrypt accepts",
			service:       &HashService{},
			password:      strings.Repeat("x", maxPasswordBytes+1),
			expectedError: ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed, err := tt.service.HashPassword(tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, hashed)
				return
			}
			require.NoError(t, err)
			cost, err := bcrypt.Cost([]byte(hashed))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCost, cost)
		})
	}
}

func TestComparePassword(t *testing.T) {
	service := &HashService{Cost: bcrypt.MinCost}
	hashed, err := service.HashPassword("correct horse battery")
	require.NoError(t, err)

	assert.True(t, service.ComparePassword(hashed, "correct horse battery"))
	assert.False(t, service.ComparePassword(hashed, "wrong horse battery"))
	assert.False(t, service.ComparePassword(hashed, ""))
	assert.False(t, service.ComparePassword("", "correct horse battery"))
	assert.False(t, service.ComparePassword("not-a-hash", "correct horse battery"))
}
