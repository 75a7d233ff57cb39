package mysql

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"mall-backend/internal/product/repository"
	"mall-backend/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new MySQL-backed Repository for the product catalog.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("product/repository/mysql: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("product/repository/mysql.%s", method)
}

// encodeImages stores the extra image list as a JSON string column.
func encodeImages(images []string) string {
	if len(images) == 0 {
		return "[]"
	}
	data, err := json.Marshal(images)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// decodeImages tolerates malformed stored values and returns an empty list.
func decodeImages(raw string) []string {
	if raw == "" {
		return nil
	}
	var images []string
	if err := json.Unmarshal([]byte(raw), &images); err != nil {
		return nil
	}
	return images
}
