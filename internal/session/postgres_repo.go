package session

import (
	"context"
	"errors"
	"time"

	"anirex/internal/platform/pgerr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const sessionColumns = `id, user_id, refresh_token_hash, user_agent, ip_address, remember_me, expires_at, created_at, last_used_at`

// pg carries the pool and per-query timeout shared by both repositories.
type pg struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func (p pg) exec(ctx context.Context, query string, args ...any) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	tag, err := p.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, pgerr.Wrap(err)
	}
	return tag.RowsAffected(), nil
}

type PostgresRepo struct {
	pg
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{pg{db: db, timeout: timeout}}
}

func (r *PostgresRepo) Create(ctx context.Context, s *Session) error {
	const query = `
	INSERT INTO sessions (user_id, refresh_token_hash, user_agent, ip_address, remember_me, expires_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at, last_used_at`

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	err := r.db.QueryRow(ctx, query, s.UserID, s.RefreshTokenHash, s.UserAgent, s.IPAddress, s.RememberMe, s.ExpiresAt).
		Scan(&s.ID, &s.CreatedAt, &s.LastUsedAt)
	return pgerr.Wrap(err)
}

// GetByTokenHash finds a live session. Expired rows count as missing.
func (r *PostgresRepo) GetByTokenHash(ctx context.Context, tokenHash string) (Session, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE refresh_token_hash = $1 AND expires_at > now()`, tokenHash)
	if err != nil {
		return Session{}, pgerr.Wrap(err)
	}
	s, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Session])
	if errors.Is(err, pgx.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	return s, pgerr.Wrap(err)
}

func (r *PostgresRepo) ListByUserID(ctx context.Context, userID string) ([]Session, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE user_id = $1 AND expires_at > now() ORDER BY last_used_at DESC`, userID)
	if err != nil {
		return nil, pgerr.Wrap(err)
	}
	sessions, err := pgx.CollectRows(rows, pgx.RowToStructByName[Session])
	return sessions, pgerr.Wrap(err)
}

// DeleteForUser removes one of the user's sessions; another user's session
// id reports ErrNotFound.
func (r *PostgresRepo) DeleteForUser(ctx context.Context, userID, sessionID string) error {
	n, err := r.exec(ctx, `DELETE FROM sessions WHERE id = $1 AND user_id = $2`, sessionID, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	_, err := r.exec(ctx, `DELETE FROM sessions WHERE refresh_token_hash = $1`, tokenHash)
	return err
}

func (r *PostgresRepo) CleanupExpired(ctx context.Context) error {
	_, err := r.exec(ctx, `DELETE FROM sessions WHERE expires_at < now()`)
	return err
}

// BlacklistPostgresRepo stores revoked access token ids until they expire.
type BlacklistPostgresRepo struct {
	pg
}

func NewBlacklistPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *BlacklistPostgresRepo {
	return &BlacklistPostgresRepo{pg{db: db, timeout: timeout}}
}

func (r *BlacklistPostgresRepo) AddToken(ctx context.Context, jti, userID string, expiresAt time.Time) error {
	_, err := r.exec(ctx, `INSERT INTO token_blacklist (jti, user_id, expires_at) VALUES ($1, $2, $3) ON CONFLICT (jti) DO NOTHING`,
		jti, userID, expiresAt)
	return err
}

func (r *BlacklistPostgresRepo) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var revoked bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM token_blacklist WHERE jti = $1 AND expires_at > now())`, jti).Scan(&revoked)
	return revoked, pgerr.Wrap(err)
}

func (r *BlacklistPostgresRepo) CleanupExpired(ctx context.Context) error {
	_, err := r.exec(ctx, `DELETE FROM token_blacklist WHERE expires_at < now()`)
	return err
}
