package usecase

import (
	"context"

	"mall-backend/internal/chat"
	"mall-backend/internal/chat/repository"
	"mall-backend/internal/model"
)

// ListMessages returns the user's chat history ordered by timestamp.
func (uc *implUseCase) ListMessages(ctx context.Context, sc model.Scope) ([]model.AIMessage, error) {
	msgs, err := uc.repo.ListMessages(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "ListMessages: %v", err)
		return nil, err
	}
	return msgs, nil
}

// SaveMessage stores a single chat turn supplied by the client.
func (uc *implUseCase) SaveMessage(ctx context.Context, sc model.Scope, input chat.SaveMessageInput) (model.AIMessage, error) {
	if input.Content == "" || input.Timestamp == 0 {
		return model.AIMessage{}, chat.ErrMissingParams
	}
	role := input.Role
	if role == "" {
		role = "user"
	}

	msg, err := uc.repo.SaveMessage(ctx, repository.SaveMessageOptions{
		UserID:    sc.UserID,
		Role:      role,
		Content:   input.Content,
		Timestamp: input.Timestamp,
	})
	if err != nil {
		uc.l.Errorf(ctx, "SaveMessage: %v", err)
		return model.AIMessage{}, err
	}
	return msg, nil
}

// DeleteMessage removes one message; only its owner may delete it.
func (uc *implUseCase) DeleteMessage(ctx context.Context, sc model.Scope, id int64) error {
	msg, err := uc.repo.GetMessage(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "DeleteMessage get: %v", err)
		return err
	}
	if msg.ID == 0 {
		return chat.ErrMessageNotFound
	}
	if msg.UserID != sc.UserID {
		return chat.ErrMessageForbidden
	}

	if err := uc.repo.DeleteMessage(ctx, id); err != nil {
		uc.l.Errorf(ctx, "DeleteMessage: %v", err)
		return err
	}
	return nil
}
