package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("not_found")
	ErrEmailTaken = errors.New("email_taken")
)

type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	PendingToken string // opaque 5-digit code, compared verbatim
	Verified     bool
	PublicKey    string
	PrivateKey   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateAccountParams struct {
	Email        string
	Name         string
	PasswordHash string
	PendingToken string
	PublicKey    string
	PrivateKey   string
}

type AccountRepo interface {
	Create(p CreateAccountParams) (*Account, error)
	GetByEmail(email string) (*Account, error)
	ExistsByEmail(email string) (bool, error)
	MarkVerified(accountID string) error
}
