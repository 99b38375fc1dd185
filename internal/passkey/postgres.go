package passkey

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository stores the credential blob as JSON so the full
// go-webauthn.Credential (including the signature counter) round-trips
// without a bespoke binary format.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var _ Repository = (*PostgresRepository)(nil)

func (r *PostgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Record, error) {
	const q = `
		SELECT credential_id, user_id, aaguid, credential, created_at
		FROM passkeys WHERE user_id = $1
	`
	rows, err := r.pool.Query(ctx, q, userID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			credID    []byte
			uid       string
			aaguidStr string
			blob      []byte
			createdAt time.Time
		)
		if err := rows.Scan(&credID, &uid, &aaguidStr, &blob, &createdAt); err != nil {
			return nil, err
		}

		var cred webauthn.Credential
		if err := json.Unmarshal(blob, &cred); err != nil {
			continue
		}

		parsedUID, err := uuid.Parse(uid)
		if err != nil {
			continue
		}
		aaguid, err := uuid.Parse(aaguidStr)
		if err != nil {
			aaguid = uuid.Nil
		}

		out = append(out, Record{
			CredentialID: credID,
			UserID:       parsedUID,
			AAGUID:       aaguid,
			Credential:   cred,
			CreatedAt:    createdAt,
		})
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Insert(ctx context.Context, rec Record) error {
	blob, err := json.Marshal(rec.Credential)
	if err != nil {
		return err
	}
	const q = `
		INSERT INTO passkeys (credential_id, user_id, aaguid, credential, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.pool.Exec(ctx, q, rec.CredentialID, rec.UserID.String(), rec.AAGUID.String(), blob, rec.CreatedAt)
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, rec Record) error {
	blob, err := json.Marshal(rec.Credential)
	if err != nil {
		return err
	}
	const q = `UPDATE passkeys SET credential = $1 WHERE credential_id = $2`
	tag, err := r.pool.Exec(ctx, q, blob, rec.CredentialID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, credentialID []byte, userID uuid.UUID) error {
	const q = `DELETE FROM passkeys WHERE credential_id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, q, credentialID, userID.String())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
