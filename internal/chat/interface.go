package chat

import (
	"context"

	"mall-backend/internal/model"
)

// UseCase is the chat domain entry point.
type UseCase interface {
	// Chat runs the augmentation pipeline and forwards the conversation to
	// the completion provider.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// Message history
	ListMessages(ctx context.Context, sc model.Scope) ([]model.AIMessage, error)
	SaveMessage(ctx context.Context, sc model.Scope, input SaveMessageInput) (model.AIMessage, error)
	DeleteMessage(ctx context.Context, sc model.Scope, id int64) error

	// ReloadKeywords rebuilds the keyword index on administrative request.
	ReloadKeywords(ctx context.Context) (ReloadOutput, error)
}

// Catalog is the read-only product collaborator used for candidate retrieval.
type Catalog interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	SearchByKeywords(ctx context.Context, keywords []string) ([]model.Product, error)
}
