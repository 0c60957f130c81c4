package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("test-secret", 24*time.Hour)

	raw, err := m.Issue(42, true)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	identity, err := m.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), identity.UserID)
	assert.True(t, identity.IsAdmin)
}

func TestManager_Parse_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	raw, err := m.Issue(42, false)
	require.NoError(t, err)

	_, err = m.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Parse_WrongSecret(t *testing.T) {
	issuer := NewManager("one-secret", time.Hour)
	verifier := NewManager("another-secret", time.Hour)

	raw, err := issuer.Issue(42, false)
	require.NoError(t, err)

	_, err = verifier.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Parse_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
