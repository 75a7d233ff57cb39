package mysql

import (
	"context"
	"database/sql"
	"time"

	"mall-backend/internal/model"
	"mall-backend/internal/user/repository"
)

// GetByUsername returns zero-value User (ID == 0) when not found.
func (r *implRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	const query = `SELECT id, username, password FROM users WHERE username = ? LIMIT 1`

	var u model.User
	err := r.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetByUsername"), err)
		return model.User{}, repository.ErrFailedToGet
	}
	return u, nil
}

// GetByID returns zero-value User (ID == 0) when not found.
func (r *implRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	const query = `SELECT id, username, password FROM users WHERE id = ? LIMIT 1`

	var u model.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetByID"), err)
		return model.User{}, repository.ErrFailedToGet
	}
	return u, nil
}

// CreateUser inserts a new account and returns its generated ID.
func (r *implRepository) CreateUser(ctx context.Context, username, passwordHash string) (int64, error) {
	const query = `INSERT INTO users (username, password) VALUES (?, ?)`

	res, err := r.db.ExecContext(ctx, query, username, passwordHash)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return 0, repository.ErrFailedToInsert
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return 0, repository.ErrFailedToInsert
	}
	return id, nil
}

// BlacklistToken records a revoked token's JTI until it expires.
func (r *implRepository) BlacklistToken(ctx context.Context, jti string, expiresAt time.Time) error {
	const query = `INSERT INTO token_blacklist (jti, created_at, expires_at) VALUES (?, NOW(), ?)`

	if _, err := r.db.ExecContext(ctx, query, jti, expiresAt); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("BlacklistToken"), err)
		return repository.ErrFailedToRevoke
	}
	return nil
}

// IsTokenBlacklisted reports whether a JTI has been revoked.
func (r *implRepository) IsTokenBlacklisted(ctx context.Context, jti string) (bool, error) {
	const query = `SELECT id FROM token_blacklist WHERE jti = ? LIMIT 1`

	var id int64
	err := r.db.QueryRowContext(ctx, query, jti).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("IsTokenBlacklisted"), err)
		return false, repository.ErrFailedToCheck
	}
	return true, nil
}

// DeleteExpiredTokens removes blacklist rows past their expiry.
func (r *implRepository) DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	const query = `DELETE FROM token_blacklist WHERE expires_at < ?`

	res, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteExpiredTokens"), err)
		return 0, repository.ErrFailedToPurge
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return affected, nil
}
