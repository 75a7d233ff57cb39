package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"mall-backend/config"
)

// Connect opens a MySQL pool and verifies connectivity.
func Connect(ctx context.Context, cfg config.MySQLConfig) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	return db, nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id       BIGINT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(80) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          VARCHAR(64) PRIMARY KEY,
		name        VARCHAR(255) NOT NULL,
		price       DOUBLE NOT NULL,
		image       VARCHAR(512),
		images      TEXT,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS cart_items (
		id         BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id    BIGINT NOT NULL,
		product_id VARCHAR(64) NOT NULL,
		quantity   INT NOT NULL DEFAULT 1,
		updated_at DATETIME,
		KEY idx_cart_user (user_id),
		KEY idx_cart_product (product_id)
	)`,
	`CREATE TABLE IF NOT EXISTS ai_messages (
		id        BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id   BIGINT NOT NULL,
		role      VARCHAR(16) NOT NULL,
		content   TEXT NOT NULL,
		timestamp BIGINT NOT NULL,
		KEY idx_msg_user (user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS token_blacklist (
		id         BIGINT AUTO_INCREMENT PRIMARY KEY,
		jti        VARCHAR(64) NOT NULL UNIQUE,
		created_at DATETIME NOT NULL,
		expires_at DATETIME NOT NULL,
		KEY idx_blacklist_expiry (expires_at)
	)`,
}

// EnsureSchema creates any missing tables. Statements are idempotent so the
// server can run it unconditionally at startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
