package db

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/secureauth/internal/identity/entity"
)

// SaveOTP stores a new code. With revokePrevious, every other pending code of
// the user is revoked in the same transaction.
func (s *DB) SaveOTP(ctx context.Context, otp entity.OTP, revokePrevious bool) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "SaveOTP")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rollback", "error", rErr)
		}
	}()

	if revokePrevious {
		if _, err := tx.Exec(ctx, `
			UPDATE identity_otp_codes SET is_revoked = TRUE
			WHERE user_id = $1 AND is_used = FALSE AND is_revoked = FALSE`,
			otp.UserID,
		); err != nil {
			return 0, s.mapError(err)
		}
	}

	var id int64
	if err := tx.QueryRow(ctx, `
		INSERT INTO identity_otp_codes (id, user_id, code, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		otp.ID, otp.UserID, otp.Code, otp.CreatedAt, otp.ExpiresAt,
	).Scan(&id); err != nil {
		return 0, s.mapError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, s.mapError(err)
	}

	return id, nil
}

// GetValidOTP returns the newest unused, unrevoked and unexpired code of the
// user matching codeDigest.
func (s *DB) GetValidOTP(ctx context.Context, userID int64, codeDigest string, now time.Time) (_ *entity.OTP, err error) {
	ctx, span := s.startSpan(ctx, "GetValidOTP")
	defer func() { s.endSpan(span, err) }()

	query := `
		SELECT id, user_id, code, created_at, expires_at, is_used, is_revoked, used_at
		FROM identity_otp_codes
		WHERE user_id = $1 AND code = $2
			AND is_used = FALSE AND is_revoked = FALSE AND expires_at > $3
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	var otp entity.OTP
	if err := s.conn.QueryRow(ctx, query, userID, codeDigest, now).Scan(
		&otp.ID,
		&otp.UserID,
		&otp.Code,
		&otp.CreatedAt,
		&otp.ExpiresAt,
		&otp.IsUsed,
		&otp.IsRevoked,
		&otp.UsedAt,
	); err != nil {
		return nil, s.mapError(err)
	}

	return &otp, nil
}

// MarkOTPUsed consumes the code. It reports false when the code was already
// used or revoked, including by a concurrent request.
func (s *DB) MarkOTPUsed(ctx context.Context, id int64, at time.Time) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "MarkOTPUsed")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE identity_otp_codes SET is_used = TRUE, used_at = $2
		WHERE id = $1 AND is_used = FALSE AND is_revoked = FALSE`,
		id, at,
	)
	if err != nil {
		return false, s.mapError(err)
	}

	return tag.RowsAffected() == 1, nil
}
