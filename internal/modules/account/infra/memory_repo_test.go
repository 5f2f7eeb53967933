package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuauhvip07/cripto/internal/modules/account/domain"
)

func newAccount(t *testing.T, r domain.AccountRepo, email string) *domain.Account {
	t.Helper()
	a, err := r.Create(domain.CreateAccountParams{
		Email:        email,
		Name:         "Ana",
		PasswordHash: "$2a$10$hash",
		PendingToken: "10234",
		PublicKey:    "pub",
		PrivateKey:   "priv",
	})
	require.NoError(t, err)
	return a
}

func TestMemAccountRepo_CreateAndGet(t *testing.T) {
	r := NewMemAccountRepo()
	a := newAccount(t, r, "Ana@X.com")

	assert.Equal(t, "ana@x.com", a.Email)
	assert.False(t, a.Verified)

	got, err := r.GetByEmail("ANA@x.com")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, "10234", got.PendingToken)
}

func TestMemAccountRepo_DuplicateEmail(t *testing.T) {
	r := NewMemAccountRepo()
	newAccount(t, r, "ana@x.com")

	_, err := r.Create(domain.CreateAccountParams{Email: "ana@x.com", Name: "Ana"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestMemAccountRepo_NotFound(t *testing.T) {
	r := NewMemAccountRepo()
	_, err := r.GetByEmail("nobody@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, r.MarkVerified("missing-id"), domain.ErrNotFound)
}

func TestMemAccountRepo_MarkVerified(t *testing.T) {
	r := NewMemAccountRepo()
	a := newAccount(t, r, "ana@x.com")

	require.NoError(t, r.MarkVerified(a.ID))

	got, err := r.GetByEmail("ana@x.com")
	require.NoError(t, err)
	assert.True(t, got.Verified)
}
