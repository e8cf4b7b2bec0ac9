package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "portfolio_backend/internals/features/users/user/model"
)

func TestComputeRefreshHashDeterministic(t *testing.T) {
	h1 := computeRefreshHash("token-abc", "rahasia")
	h2 := computeRefreshHash("token-abc", "rahasia")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64) // hex sha256

	// token disimpan sebagai hash, bukan plaintext
	assert.NotContains(t, h1, "token-abc")
}

func TestComputeRefreshHashSecretMatters(t *testing.T) {
	assert.NotEqual(t,
		computeRefreshHash("token-abc", "rahasia-1"),
		computeRefreshHash("token-abc", "rahasia-2"),
	)
}

func TestBuildAccessClaims(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	u := userModel.UserModel{
		ID:       uuid.New(),
		UserName: "admin",
		Email:    "admin@example.com",
	}

	claims := buildAccessClaims(u, now)
	assert.Equal(t, u.ID.String(), claims["sub"])
	assert.Equal(t, "admin", claims["user_name"])
	assert.Equal(t, "admin@example.com", claims["email"])
	assert.Equal(t, now.Unix(), claims["iat"])
	assert.Equal(t, now.Add(accessTTLDefault).Unix(), claims["exp"])
}

func TestNewResetToken(t *testing.T) {
	tok1, err := newResetToken()
	require.NoError(t, err)
	tok2, err := newResetToken()
	require.NoError(t, err)

	assert.Len(t, tok1, 64)
	assert.NotEqual(t, tok1, tok2)
}

func TestStrptr(t *testing.T) {
	assert.Nil(t, strptr(""))
	require.NotNil(t, strptr("x"))
	assert.Equal(t, "x", *strptr("x"))
}
