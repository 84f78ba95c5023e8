package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daninc24/myshop/internal/infrastructure/config"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret-0123456789abcdef",
		RefreshSecret:          "test-refresh-secret-0123456789abcdef",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "myshop-test",
	})
}

func TestJWTService_GenerateTokenPair(t *testing.T) {
	svc := newTestJWTService()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID: userID,
		Name:   "Jane Cashier",
		Role:   "cashier",
	})
	require.NoError(t, err)
	require.NotNil(t, pair)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.True(t, pair.AccessTokenExpiresAt.Before(pair.RefreshTokenExpiresAt))

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "Jane Cashier", claims.Name)
	assert.Equal(t, "cashier", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.NotEmpty(t, claims.ID, "access token must carry a JTI")

	parsed, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestJWTService_ValidateAccessToken(t *testing.T) {
	svc := newTestJWTService()

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects refresh token as access token", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New(), Role: "user"})
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(pair.RefreshToken)
		assert.Error(t, err)
	})

	t.Run("rejects access token signed with the wrong secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:                 "a-completely-different-secret-value",
			AccessTokenExpiration:  15 * time.Minute,
			RefreshTokenExpiration: time.Hour,
			Issuer:                 "myshop-test",
		})
		pair, err := other.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New(), Role: "user"})
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := NewJWTService(config.JWTConfig{
			Secret:                 "test-access-secret-0123456789abcdef",
			AccessTokenExpiration:  -time.Minute,
			RefreshTokenExpiration: time.Hour,
			Issuer:                 "myshop-test",
		})
		pair, err := expired.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New(), Role: "user"})
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestJWTService_RefreshTokenPair(t *testing.T) {
	svc := newTestJWTService()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID: userID,
		Name:   "Sam",
		Role:   "staff",
	})
	require.NoError(t, err)

	t.Run("issues a fresh pair with updated role", func(t *testing.T) {
		newPair, err := svc.RefreshTokenPair(pair.RefreshToken, "Sam", "manager")
		require.NoError(t, err)

		claims, err := svc.ValidateAccessToken(newPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.UserID)
		assert.Equal(t, "manager", claims.Role)
	})

	t.Run("rejects access token used as refresh token", func(t *testing.T) {
		_, err := svc.RefreshTokenPair(pair.AccessToken, "Sam", "staff")
		assert.Error(t, err)
	})
}

func TestClaims_GetRemainingTTL(t *testing.T) {
	svc := newTestJWTService()
	pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New(), Role: "user"})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	ttl := claims.GetRemainingTTL()
	assert.Greater(t, ttl, 14*time.Minute)
	assert.LessOrEqual(t, ttl, 15*time.Minute)
}

func TestJWTService_FallsBackToAccessSecretForRefresh(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:                 "only-one-secret-0123456789abcdef",
		AccessTokenExpiration:  time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "myshop-test",
	})

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New(), Role: "user"})
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(pair.RefreshToken)
	assert.NoError(t, err)
}

func TestInMemoryTokenBlacklist(t *testing.T) {
	ctx := t.Context()
	bl := NewInMemoryTokenBlacklist()

	t.Run("blacklisted jti is rejected until ttl passes", func(t *testing.T) {
		require.NoError(t, bl.AddToBlacklist(ctx, "jti-1", time.Hour))

		blacklisted, err := bl.IsBlacklisted(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, blacklisted)

		blacklisted, err = bl.IsBlacklisted(ctx, "jti-unknown")
		require.NoError(t, err)
		assert.False(t, blacklisted)
	})

	t.Run("user invalidation rejects older tokens only", func(t *testing.T) {
		issuedBefore := time.Now().Add(-time.Minute)
		require.NoError(t, bl.AddUserTokensToBlacklist(ctx, "user-1", time.Hour))
		issuedAfter := time.Now().Add(time.Minute)

		invalidated, err := bl.IsUserTokenInvalidated(ctx, "user-1", issuedBefore)
		require.NoError(t, err)
		assert.True(t, invalidated)

		invalidated, err = bl.IsUserTokenInvalidated(ctx, "user-1", issuedAfter)
		require.NoError(t, err)
		assert.False(t, invalidated)
	})
}
