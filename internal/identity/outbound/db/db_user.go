package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/secureauth/internal/identity/entity"
	"github.com/shandysiswandi/secureauth/internal/pkg/goerror"
)

const (
	constraintUsersUsername = "identity_users_username_key"
	constraintUsersEmail    = "identity_users_email_key"
)

const userColumns = `id, username, email, phone, password_hash, created_at, last_login, is_active`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.Phone,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.LastLogin,
		&u.IsActive,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts the user and returns its id. A unique violation is
// reported as entity.ErrDuplicateUsername or entity.ErrDuplicateEmail.
func (s *DB) CreateUser(ctx context.Context, user entity.NewUser) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	query := `
		INSERT INTO identity_users (username, email, phone, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err = s.conn.QueryRow(ctx, query,
		user.Username, user.Email, user.Phone, user.PasswordHash, user.CreatedAt,
	).Scan(&id)
	if err == nil {
		return id, nil
	}

	switch constraintName(err) {
	case constraintUsersUsername:
		return 0, entity.ErrDuplicateUsername
	case constraintUsersEmail:
		return 0, entity.ErrDuplicateEmail
	}

	return 0, s.mapError(err)
}

func (s *DB) GetUserByEmail(ctx context.Context, email string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + userColumns + ` FROM identity_users WHERE email = $1`

	user, err := scanUser(s.conn.QueryRow(ctx, query, email))
	if err != nil {
		return nil, s.mapError(err)
	}

	return user, nil
}

func (s *DB) GetUserByID(ctx context.Context, id int64) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + userColumns + ` FROM identity_users WHERE id = $1`

	user, err := scanUser(s.conn.QueryRow(ctx, query, id))
	if err != nil {
		return nil, s.mapError(err)
	}

	return user, nil
}

func (s *DB) UpdatePassword(ctx context.Context, id int64, hash string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdatePassword")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `UPDATE identity_users SET password_hash = $2 WHERE id = $1`, id, hash)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) UpdateLastLogin(ctx context.Context, id int64, at time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateLastLogin")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `UPDATE identity_users SET last_login = $2 WHERE id = $1`, id, at)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
