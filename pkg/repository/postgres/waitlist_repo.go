package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumic/backend/pkg/waitlist"
)

// WaitlistRepository implements waitlist.Repository backed by PostgreSQL (pgx).
type WaitlistRepository struct {
	pool *pgxpool.Pool
}

func NewWaitlistRepository(pool *pgxpool.Pool) *WaitlistRepository {
	return &WaitlistRepository{pool: pool}
}

func (r *WaitlistRepository) Create(ctx context.Context, e waitlist.Entry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO waitlist (id, name, email, joined_at)
		VALUES ($1, $2, $3, $4)
	`, e.ID, e.Name, e.Email, e.JoinedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return waitlist.ErrAlreadyJoined
		}
		return err
	}
	return nil
}

func (r *WaitlistRepository) Exists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM waitlist WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}
