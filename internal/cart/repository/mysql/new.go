package mysql

import (
	"database/sql"
	"fmt"

	"mall-backend/internal/cart/repository"
	"mall-backend/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new MySQL-backed Repository for cart items.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("cart/repository/mysql: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("cart/repository/mysql.%s", method)
}
