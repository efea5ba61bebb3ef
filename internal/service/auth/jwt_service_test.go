package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/timension/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func newTestJWTService(t *testing.T, secret string, now func() time.Time) JWTService {
	t.Helper()
	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:                   secret,
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 1440,
	}, WithTimeFunc(now))
	require.NoError(t, err)
	return svc
}

func TestNewJWTService_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 1, RefreshTokenLifetimeMinutes: 1})
	assert.Error(t, err)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: testSecret})
	assert.Error(t, err)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, testSecret, func() time.Time { return fixedTime })
	id := Identity{UserID: uuid.New(), Email: "ada@example.com"}

	token, err := svc.GenerateToken(context.Background(), id)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, id, claims.Identity())
	assert.Equal(t, id.UserID.String(), claims.Subject)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, time.Hour, svc.AccessTokenLifetime())
}

func TestGenerateToken_UniqueIDs(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t, testSecret, time.Now)
	id := Identity{UserID: uuid.New()}

	t1, err := svc.GenerateToken(context.Background(), id)
	require.NoError(t, err)
	t2, err := svc.GenerateToken(context.Background(), id)
	require.NoError(t, err)

	c1, err := svc.ValidateToken(context.Background(), t1)
	require.NoError(t, err)
	c2, err := svc.ValidateToken(context.Background(), t2)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	at := func(t time.Time) func() time.Time { return func() time.Time { return t } }
	id := Identity{UserID: uuid.New(), Email: "ada@example.com", Offline: true}

	tests := []struct {
		name      string
		setupFunc func(t *testing.T) (JWTService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				svc := newTestJWTService(t, testSecret, at(fixedTime))
				token, _ := svc.GenerateToken(context.Background(), id)
				return svc, token
			},
		},
		{
			name: "within clock skew",
			setupFunc: func(t *testing.T) (JWTService, string) {
				token, _ := newTestJWTService(t, testSecret, at(fixedTime)).GenerateToken(context.Background(), id)
				return newTestJWTService(t, testSecret, at(fixedTime.Add(time.Hour+time.Minute))), token
			},
		},
		{
			name: "expired token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				token, _ := newTestJWTService(t, testSecret, at(fixedTime)).GenerateToken(context.Background(), id)
				return newTestJWTService(t, testSecret, at(fixedTime.Add(2*time.Hour))), token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "not yet valid",
			setupFunc: func(t *testing.T) (JWTService, string) {
				token, _ := newTestJWTService(t, testSecret, at(fixedTime)).GenerateToken(context.Background(), id)
				return newTestJWTService(t, testSecret, at(fixedTime.Add(-time.Hour))), token
			},
			wantErr: ErrTokenNotYetValid,
		},
		{
			name: "invalid signature",
			setupFunc: func(t *testing.T) (JWTService, string) {
				token, _ := newTestJWTService(t, testSecret, at(fixedTime)).GenerateToken(context.Background(), id)
				return newTestJWTService(t, "wrong-secret-that-is-long-enough-for-testing", at(fixedTime)), token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				return newTestJWTService(t, testSecret, at(fixedTime)), "this.is.not.a.valid.jwt.token"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "empty token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				return newTestJWTService(t, testSecret, at(fixedTime)), ""
			},
			wantErr: ErrMissingToken,
		},
		{
			name: "refresh token used as access token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				svc := newTestJWTService(t, testSecret, at(fixedTime))
				token, _ := svc.GenerateRefreshToken(context.Background(), id)
				return svc, token
			},
			wantErr: ErrWrongTokenType,
		},
		{
			name: "none algorithm",
			setupFunc: func(t *testing.T) (JWTService, string) {
				claims := jwt.MapClaims{"uid": id.UserID.String(), "type": "access", "exp": fixedTime.Add(time.Hour).Unix()}
				token, _ := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
				return newTestJWTService(t, testSecret, at(fixedTime)), token
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, token := tt.setupFunc(t)
			claims, err := svc.ValidateToken(context.Background(), token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, claims.Identity())
		})
	}
}

func TestValidateRefreshToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, testSecret, func() time.Time { return fixedTime })
	id := Identity{UserID: uuid.New(), Email: "ada@example.com"}

	refresh, err := svc.GenerateRefreshToken(context.Background(), id)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		claims, err := svc.ValidateRefreshToken(context.Background(), refresh)
		require.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.TokenType)
		assert.Equal(t, fixedTime.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
	})

	t.Run("access token rejected", func(t *testing.T) {
		access, err := svc.GenerateToken(context.Background(), id)
		require.NoError(t, err)
		_, err = svc.ValidateRefreshToken(context.Background(), access)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})

	t.Run("expired", func(t *testing.T) {
		later := newTestJWTService(t, testSecret, func() time.Time { return fixedTime.Add(48 * time.Hour) })
		_, err := later.ValidateRefreshToken(context.Background(), refresh)
		assert.ErrorIs(t, err, ErrExpiredRefreshToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateRefreshToken(context.Background(), "garbage")
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}
