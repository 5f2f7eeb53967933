package pg

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cuauhvip07/cripto/internal/modules/account/domain"
)

const queryTimeout = 5 * time.Second

type AccountRepo struct{ db *pgxpool.Pool }

func NewAccountRepo(db *pgxpool.Pool) *AccountRepo { return &AccountRepo{db: db} }

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	if err := row.Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.PendingToken,
		&a.Verified, &a.PublicKey, &a.PrivateKey, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepo) Create(p domain.CreateAccountParams) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	q := `
INSERT INTO accounts (email, name, password_hash, pending_token, public_key, private_key)
VALUES (LOWER($1), $2, $3, $4, $5, $6)
RETURNING id, email, name, password_hash, pending_token, verified,
          public_key, private_key, created_at, updated_at`
	row := r.db.QueryRow(ctx, q, p.Email, p.Name, p.PasswordHash, p.PendingToken, p.PublicKey, p.PrivateKey)
	a, err := scanAccount(row)
	if err != nil {
		var pgErr *pgconn.PgError
		// unique_violation на email — не перезаписываем
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return a, nil
}

func (r *AccountRepo) GetByEmail(email string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	q := `SELECT id, email, name, password_hash, pending_token, verified,
	             public_key, private_key, created_at, updated_at
	      FROM accounts WHERE email = LOWER($1)`
	return scanAccount(r.db.QueryRow(ctx, q, strings.ToLower(email)))
}

func (r *AccountRepo) ExistsByEmail(email string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	var ok bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE email=LOWER($1))`, email).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *AccountRepo) MarkVerified(accountID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	tag, err := r.db.Exec(ctx, `UPDATE accounts SET verified=true, updated_at=now() WHERE id=$1`, accountID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
