package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/openshelf-server/internal/model"
)

func TestJWT_IssueAccess_ParseRoundTrip(t *testing.T) {
	j := NewJWT("secret", 15*time.Minute, 30*24*time.Hour)
	userID := uuid.New()

	raw, err := j.IssueAccess(userID, true, true)
	require.NoError(t, err)

	claims, err := j.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, model.TokenKindAccess, claims.Kind)
	assert.True(t, claims.Fresh)
	assert.True(t, claims.Admin)
	assert.NotEmpty(t, claims.JTI)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt, 5*time.Second)
}

func TestJWT_IssueAccess_NotFreshNotAdmin(t *testing.T) {
	j := NewJWT("secret", 15*time.Minute, 30*24*time.Hour)

	raw, err := j.IssueAccess(uuid.New(), false, false)
	require.NoError(t, err)

	claims, err := j.Parse(raw)
	require.NoError(t, err)
	assert.False(t, claims.Fresh)
	assert.False(t, claims.Admin)
}

func TestJWT_IssueRefresh_NeverFreshNeverAdmin(t *testing.T) {
	j := NewJWT("secret", 15*time.Minute, 30*24*time.Hour)
	userID := uuid.New()

	raw, err := j.IssueRefresh(userID)
	require.NoError(t, err)

	claims, err := j.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, model.TokenKindRefresh, claims.Kind)
	assert.False(t, claims.Fresh)
	assert.False(t, claims.Admin)
	assert.NotEmpty(t, claims.JTI)
}

func TestJWT_Parse_UniqueJTIPerToken(t *testing.T) {
	j := NewJWT("secret", 15*time.Minute, 30*24*time.Hour)
	userID := uuid.New()

	first, err := j.IssueAccess(userID, true, false)
	require.NoError(t, err)
	second, err := j.IssueAccess(userID, true, false)
	require.NoError(t, err)

	firstClaims, err := j.Parse(first)
	require.NoError(t, err)
	secondClaims, err := j.Parse(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.JTI, secondClaims.JTI)
}

func TestJWT_Parse_WrongSecret(t *testing.T) {
	issuer := NewJWT("secret", 15*time.Minute, 30*24*time.Hour)
	verifier := NewJWT("other", 15*time.Minute, 30*24*time.Hour)

	raw, err := issuer.IssueAccess(uuid.New(), false, false)
	require.NoError(t, err)

	_, err = verifier.Parse(raw)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_Parse_Expired(t *testing.T) {
	j := NewJWT("secret", -time.Minute, 30*24*time.Hour)

	raw, err := j.IssueAccess(uuid.New(), false, false)
	require.NoError(t, err)

	_, err = j.Parse(raw)
	require.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestJWT_Parse_Garbage(t *testing.T) {
	j := NewJWT("secret", 15*time.Minute, 30*24*time.Hour)

	_, err := j.Parse("not.a.token")
	require.ErrorIs(t, err, model.ErrInvalidToken)
}
