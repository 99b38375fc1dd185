package authcode

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is the Repository backed by the shared connection
// pool. A pool, not a single *pgx.Conn, is used deliberately: HTTP handlers
// call into it from many goroutines at once.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var _ Repository = (*PostgresRepository)(nil)

func (r *PostgresRepository) CountActive(ctx context.Context, userID uuid.UUID) (int, error) {
	const q = `
		SELECT count(*) FROM auth_codes
		WHERE user_id = $1 AND used_at IS NULL AND expires_at > now()
	`
	var n int
	if err := r.pool.QueryRow(ctx, q, userID.String()).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, code AuthCode, event OutboxEvent) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const insertCode = `
		INSERT INTO auth_codes (id, user_id, code, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.Exec(ctx, insertCode,
		code.ID.String(), code.UserID.String(), code.Code, code.ExpiresAt, code.CreatedAt,
	); err != nil {
		return err
	}

	const insertEvent = `
		INSERT INTO outbox_events
			(id, kind, payload, idempotency_key, attempts, created_at, next_attempt_at)
		VALUES ($1, $2, $3, $4, 0, $5, $5)
	`
	if _, err := tx.Exec(ctx, insertEvent,
		event.ID.String(), event.Kind, event.Payload, event.IdempotencyKey, event.CreatedAt,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) ConsumeValid(ctx context.Context, userID uuid.UUID, code string) (*AuthCode, error) {
	const q = `
		UPDATE auth_codes SET used_at = now()
		WHERE user_id = $1 AND code = $2 AND used_at IS NULL AND expires_at > now()
		RETURNING id, user_id, code, expires_at, created_at
	`
	row := r.pool.QueryRow(ctx, q, userID.String(), code)

	var (
		id, uid, c string
		expiresAt  time.Time
		createdAt  time.Time
	)
	if err := row.Scan(&id, &uid, &c, &expiresAt, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	parsedUID, err := uuid.Parse(uid)
	if err != nil {
		return nil, err
	}

	usedAt := time.Now()
	return &AuthCode{
		ID:        parsedID,
		UserID:    parsedUID,
		Code:      c,
		ExpiresAt: expiresAt,
		UsedAt:    &usedAt,
		CreatedAt: createdAt,
	}, nil
}
