package profile

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"anirex/internal/platform/pgerr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Get(ctx context.Context, userID string) (Profile, error) {
	const query = `
	SELECT user_id, name, bio, phone, email, created_at, updated_at
	FROM profiles WHERE user_id = $1
	`
	var p Profile
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, userID).Scan(
		&p.UserID, &p.Name, &p.Bio, &p.Phone, &p.Email, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, pgerr.Wrap(err)
	}
	return p, nil
}

// Create inserts p. A concurrent first read may have created the row
// already, in which case p is filled from the stored row.
func (r *PostgresRepo) Create(ctx context.Context, p *Profile) error {
	const query = `
	INSERT INTO profiles (user_id, name, bio, phone, email)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (user_id) DO NOTHING
	RETURNING created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, p.UserID, p.Name, p.Bio, p.Phone, p.Email).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		stored, getErr := r.Get(ctx, p.UserID)
		if getErr != nil {
			return getErr
		}
		*p = stored
		return nil
	}
	return pgerr.Wrap(err)
}

func (r *PostgresRepo) Update(ctx context.Context, userID string, updates map[string]any) error {
	keys := make([]string, 0, len(updates))
	for key := range updates {
		switch key {
		case "name", "bio", "phone":
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Strings(keys)

	fields := make([]string, 0, len(keys)+1)
	args := make([]any, 0, len(keys)+1)
	for i, key := range keys {
		fields = append(fields, key+" = $"+strconv.Itoa(i+1))
		args = append(args, updates[key])
	}
	fields = append(fields, "updated_at = now()")
	args = append(args, userID)

	query := "UPDATE profiles SET " + strings.Join(fields, ", ") + " WHERE user_id = $" + strconv.Itoa(len(args))
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, args...)
	if err != nil {
		return pgerr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
