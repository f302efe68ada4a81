package postgresql

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/hrpms/pms-backend-go/internal/domain/auth"
	"github.com/hrpms/pms-backend-go/internal/pkg/database"
)

type TokenRepository interface {
	CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error
	IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error)
	RefreshTokenUserID(ctx context.Context, token string) (string, error)
	RevokeRefreshToken(ctx context.Context, token string) error

	CreatePasswordResetToken(ctx context.Context, userID string, token string, expiresAt time.Time) error
	ConsumePasswordResetToken(ctx context.Context, token string) (string, error)
}

type tokenRepositoryImpl struct {
	db *database.DB
}

// NewTokenRepository creates a new instance of TokenRepository.
func NewTokenRepository(db *database.DB) TokenRepository {
	return &tokenRepositoryImpl{db: db}
}

// hashToken hashes the input string using SHA256 and encodes the result in base64.
func (t *tokenRepositoryImpl) hashToken(input string) string {
	hash := sha256.Sum256([]byte(input))
	return base64.StdEncoding.EncodeToString(hash[:])
}

func (t *tokenRepositoryImpl) CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error {
	q := GetQuerier(ctx, t.db)
	query := `
		INSERT INTO refresh_tokens (user_id, token_hash, expires_at, user_agent, ip_address)
		VALUES ($1, $2, $3, $4, $5)
	`
	tokenHash := t.hashToken(token)
	_, err := q.Exec(ctx, query, userID, tokenHash, time.Unix(expiresAt, 0).UTC(), sessionReq.UserAgent, sessionReq.IPAddress)
	return err
}

func (t *tokenRepositoryImpl) IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT revoked_at, expires_at
		FROM refresh_tokens
		WHERE token_hash = $1
		ORDER BY expires_at DESC
		LIMIT 1
	`
	tokenHash := t.hashToken(token)

	var revokedAt *time.Time
	var expiresAt time.Time

	err := q.QueryRow(ctx, query, tokenHash).Scan(&revokedAt, &expiresAt)
	if err != nil {
		return false, err
	}

	now := time.Now()
	if revokedAt != nil || !expiresAt.After(now) {
		return true, nil
	}
	return false, nil
}

func (t *tokenRepositoryImpl) RefreshTokenUserID(ctx context.Context, token string) (string, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT user_id
		FROM refresh_tokens
		WHERE token_hash = $1 AND revoked_at IS NULL AND expires_at > NOW()
		ORDER BY expires_at DESC
		LIMIT 1
	`
	tokenHash := t.hashToken(token)

	var userID string
	err := q.QueryRow(ctx, query, tokenHash).Scan(&userID)
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (t *tokenRepositoryImpl) RevokeRefreshToken(ctx context.Context, token string) error {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE token_hash = $1 AND revoked_at IS NULL
	`
	tokenHash := t.hashToken(token)
	_, err := q.Exec(ctx, query, tokenHash)
	return err
}

func (t *tokenRepositoryImpl) CreatePasswordResetToken(ctx context.Context, userID string, token string, expiresAt time.Time) error {
	q := GetQuerier(ctx, t.db)
	query := `
		INSERT INTO password_reset_tokens (user_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
	`
	tokenHash := t.hashToken(token)
	_, err := q.Exec(ctx, query, userID, tokenHash, expiresAt.UTC())
	return err
}

// ConsumePasswordResetToken marks an unused, unexpired token as used and
// returns its user. Consuming is atomic: a token can only ever succeed once.
func (t *tokenRepositoryImpl) ConsumePasswordResetToken(ctx context.Context, token string) (string, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE password_reset_tokens
		SET used_at = NOW()
		WHERE token_hash = $1 AND used_at IS NULL AND expires_at > NOW()
		RETURNING user_id
	`
	tokenHash := t.hashToken(token)

	var userID string
	err := q.QueryRow(ctx, query, tokenHash).Scan(&userID)
	if err != nil {
		return "", err
	}
	return userID, nil
}
