package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_IssueAndParse(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)

	tok, exp, err := mgr.Issue("user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	email, err := mgr.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
}

func TestJWTManager_RejectsTamperedToken(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)

	tok, _, err := mgr.Issue("user@example.com")
	require.NoError(t, err)

	// портим один символ
	b := []byte(tok)
	i := len(b) / 2
	if b[i] == 'a' {
		b[i] = 'b'
	} else {
		b[i] = 'a'
	}
	_, err = mgr.Parse(string(b))
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	tok, _, err := NewJWTManager("secret-a", time.Hour).Issue("user@example.com")
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestJWTManager_ExpiredLooksLikeForged(t *testing.T) {
	mgr := NewJWTManager("test-secret", -time.Minute)

	tok, _, err := mgr.Issue("user@example.com")
	require.NoError(t, err)

	_, err = mgr.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}
