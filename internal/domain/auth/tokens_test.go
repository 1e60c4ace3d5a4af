package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/shiji-energy/pkg/errors"
)

func testIssuer() tokenIssuer {
	return newTokenIssuer(Config{
		Secret:          "test-secret",
		TokenTTL:        time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	})
}

func TestTokenIssuerPairRoundTrip(t *testing.T) {
	ti := testIssuer()
	user := User{ID: 7, Email: "user@example.com"}

	access, refresh, err := ti.pair(user)
	require.NoError(t, err)
	require.NotEqual(t, access, refresh)

	claims, err := ti.verify(access, tokenTypeAccess)
	require.NoError(t, err)
	require.Equal(t, int64(7), claims.UserID)
	require.Equal(t, "user@example.com", claims.Email)
	require.Equal(t, tokenTypeAccess, claims.TokenType)

	claims, err = ti.verify(refresh, tokenTypeRefresh)
	require.NoError(t, err)
	require.Equal(t, tokenTypeRefresh, claims.TokenType)
}

func TestTokenIssuerRejectsTypeMismatch(t *testing.T) {
	ti := testIssuer()

	access, refresh, err := ti.pair(User{ID: 7, Email: "user@example.com"})
	require.NoError(t, err)

	_, err = ti.verify(refresh, tokenTypeAccess)
	require.True(t, apperrors.IsCode(err, "invalid_token"))

	_, err = ti.verify(access, tokenTypeRefresh)
	require.True(t, apperrors.IsCode(err, "invalid_token"))
}

func TestTokenIssuerRejectsForeignSecret(t *testing.T) {
	access, _, err := testIssuer().pair(User{ID: 7, Email: "user@example.com"})
	require.NoError(t, err)

	other := newTokenIssuer(Config{Secret: "another-secret", TokenTTL: time.Hour, RefreshTokenTTL: time.Hour})
	_, err = other.verify(access, tokenTypeAccess)
	require.True(t, apperrors.IsCode(err, "invalid_token"))
}

func TestTokenIssuerRejectsExpired(t *testing.T) {
	ti := newTokenIssuer(Config{Secret: "test-secret", TokenTTL: -time.Minute, RefreshTokenTTL: time.Hour})

	access, err := ti.sign(User{ID: 7}, tokenTypeAccess, -time.Minute)
	require.NoError(t, err)

	_, err = ti.verify(access, tokenTypeAccess)
	require.True(t, apperrors.IsCode(err, "invalid_token"))
}
