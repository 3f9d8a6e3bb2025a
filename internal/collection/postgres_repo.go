package collection

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

func (r *PostgresRepo) Upsert(ctx context.Context, userID string, kind Kind, e Entry) error {
	const upsertSQL = `
		INSERT INTO collection_entries (user_id, kind, item_id, title, image_url, synopsis, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, kind, item_id)
		DO UPDATE SET title = EXCLUDED.title, image_url = EXCLUDED.image_url,
		              synopsis = EXCLUDED.synopsis, added_at = EXCLUDED.added_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, upsertSQL, userID, string(kind), e.ItemID, e.Title, e.ImageURL, e.Synopsis, e.AddedAt)
	return pgerr.Wrap(err)
}

func (r *PostgresRepo) Delete(ctx context.Context, userID string, kind Kind, itemID string) error {
	const deleteSQL = `DELETE FROM collection_entries WHERE user_id = $1 AND kind = $2 AND item_id = $3`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, deleteSQL, userID, string(kind), itemID)
	return pgerr.Wrap(err)
}

func (r *PostgresRepo) List(ctx context.Context, userID string, kind Kind) ([]Entry, error) {
	const dataSQL = `
		SELECT item_id, title, image_url, synopsis, added_at
		FROM collection_entries
		WHERE user_id = $1 AND kind = $2
		ORDER BY added_at DESC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, dataSQL, userID, string(kind))
	if err != nil {
		return nil, pgerr.Wrap(err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ItemID, &e.Title, &e.ImageURL, &e.Synopsis, &e.AddedAt); err != nil {
			return nil, pgerr.Wrap(err)
		}
		entries = append(entries, e)
	}
	return entries, pgerr.Wrap(rows.Err())
}
