package review

import (
	"context"
	"time"

	"anirex/internal/platform/pgerr"

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

func (r *PostgresRepo) Create(ctx context.Context, e *Entry) error {
	const query = `
	INSERT INTO reviews (id, item_id, user_id, user_name, text, rating, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, query, e.ID, e.ItemID, e.AuthorID, e.AuthorName, e.Text, e.Rating, e.CreatedAt)
	return pgerr.Wrap(err)
}

func (r *PostgresRepo) ListByItem(ctx context.Context, itemID string) ([]Entry, error) {
	const query = `
	SELECT id, item_id, user_id, user_name, text, rating, created_at
	FROM reviews
	WHERE item_id = $1
	ORDER BY created_at DESC, id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query, itemID)
	if err != nil {
		return nil, pgerr.Wrap(err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.ItemID, &e.AuthorID, &e.AuthorName, &e.Text, &e.Rating, &e.CreatedAt); err != nil {
			return nil, pgerr.Wrap(err)
		}
		entries = append(entries, e)
	}
	return entries, pgerr.Wrap(rows.Err())
}
