package infra

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cuauhvip07/cripto/internal/modules/account/domain"
)

type memAccountRepo struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account // id -> account
	byEmail  map[string]string          // email -> id
}

func NewMemAccountRepo() domain.AccountRepo {
	return &memAccountRepo{
		accounts: make(map[string]*domain.Account),
		byEmail:  make(map[string]string),
	}
}

func (r *memAccountRepo) Create(p domain.CreateAccountParams) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email := strings.ToLower(p.Email)
	if _, ok := r.byEmail[email]; ok {
		return nil, domain.ErrEmailTaken
	}
	id := uuid.New().String()
	now := time.Now().UTC()
	a := &domain.Account{
		ID: id, Email: email, Name: p.Name,
		PasswordHash: p.PasswordHash, PendingToken: p.PendingToken,
		PublicKey: p.PublicKey, PrivateKey: p.PrivateKey,
		CreatedAt: now, UpdatedAt: now,
	}
	r.accounts[id] = a
	r.byEmail[email] = id
	return a, nil
}

func (r *memAccountRepo) GetByEmail(email string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r.accounts[id]
	return &cp, nil
}

func (r *memAccountRepo) ExistsByEmail(email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[strings.ToLower(email)]
	return ok, nil
}

func (r *memAccountRepo) MarkVerified(accountID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[accountID]
	if !ok {
		return domain.ErrNotFound
	}
	a.Verified = true
	a.UpdatedAt = time.Now().UTC()
	return nil
}
