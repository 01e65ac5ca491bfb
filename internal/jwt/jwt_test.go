package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GeneratePairAndParse(t *testing.T) {
	j := New("access-secret", "refresh-secret", time.Minute, time.Hour)

	userID := uuid.New()
	ctx := context.Background()

	access, refresh, err := j.GeneratePair(ctx, userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	gotID, err := j.ParseAccess(ctx, access)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotID)

	gotID, err = j.ParseRefresh(ctx, refresh)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotID)
}

func TestJWT_TypeDiscrimination(t *testing.T) {
	j := New("access-secret", "refresh-secret", time.Minute, time.Hour)
	ctx := context.Background()

	access, refresh, err := j.GeneratePair(ctx, uuid.New())
	assert.NoError(t, err)

	// A refresh token must never validate as an access token and vice versa,
	// even though both signatures are valid.
	_, err = j.ParseAccess(ctx, refresh)
	assert.Error(t, err)

	_, err = j.ParseRefresh(ctx, access)
	assert.Error(t, err)
}

func TestJWT_SameSecretsStillRejectWrongType(t *testing.T) {
	// Type claim alone must be enough to separate the token purposes.
	j := New("shared-secret", "shared-secret", time.Minute, time.Hour)
	ctx := context.Background()

	access, refresh, err := j.GeneratePair(ctx, uuid.New())
	assert.NoError(t, err)

	_, err = j.ParseAccess(ctx, refresh)
	assert.Error(t, err)

	_, err = j.ParseRefresh(ctx, access)
	assert.Error(t, err)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("access-secret", "refresh-secret", -time.Minute, -time.Minute)
	ctx := context.Background()

	access, refresh, err := j.GeneratePair(ctx, uuid.New())
	assert.NoError(t, err)

	_, err = j.ParseAccess(ctx, access)
	assert.Error(t, err)

	_, err = j.ParseRefresh(ctx, refresh)
	assert.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	j := New("access-secret", "refresh-secret", time.Minute, time.Hour)
	other := New("other-access", "other-refresh", time.Minute, time.Hour)
	ctx := context.Background()

	access, refresh, err := j.GeneratePair(ctx, uuid.New())
	assert.NoError(t, err)

	_, err = other.ParseAccess(ctx, access)
	assert.Error(t, err)

	_, err = other.ParseRefresh(ctx, refresh)
	assert.Error(t, err)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("access-secret", "refresh-secret", time.Minute, time.Hour)
	ctx := context.Background()

	_, err := j.ParseAccess(ctx, "invalid.token.string")
	assert.Error(t, err)

	_, err = j.ParseRefresh(ctx, "invalid.token.string")
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("a", "r", time.Minute, time.Hour)
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"MissingToken", "Bearer", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
