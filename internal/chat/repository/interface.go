package repository

import (
	"context"
	"time"

	"mall-backend/internal/model"
)

// Repository defines all data access methods for persisted chat turns.
type Repository interface {
	ListMessages(ctx context.Context, userID int64) ([]model.AIMessage, error)
	GetMessage(ctx context.Context, id int64) (model.AIMessage, error)
	SaveMessage(ctx context.Context, opt SaveMessageOptions) (model.AIMessage, error)
	DeleteMessage(ctx context.Context, id int64) error

	// DedupeAndSave persists the message unless an identical-content message
	// from the same user was stored within the trailing window. Returns
	// whether a new record was actually written.
	DedupeAndSave(ctx context.Context, opt DedupeAndSaveOptions) (bool, error)
}

type SaveMessageOptions struct {
	UserID    int64
	Role      string
	Content   string
	Timestamp int64
}

type DedupeAndSaveOptions struct {
	UserID    int64
	Role      string
	Content   string
	Timestamp int64
	Window    time.Duration
}
