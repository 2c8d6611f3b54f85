package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRegistrableRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   Role
		wantOK bool
	}{
		{"USER", RoleUser, true},
		{"user", RoleUser, true},
		{" Organization ", RoleOrganization, true},
		{"ADMIN", "", false},
		{"Invalid", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseRegistrableRole(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerificationToken_IsExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tok := &VerificationToken{ExpiresAt: now.Add(time.Hour)}

	assert.False(t, tok.IsExpired(now))
	assert.True(t, tok.IsExpired(now.Add(time.Hour)))
	assert.True(t, tok.IsExpired(now.Add(2*time.Hour)))
}
