package usecase

import (
	"context"

	"mall-backend/internal/chat"
)

// ReloadKeywords rebuilds the keyword index synchronously and reports the
// resulting global vocabulary size. A failed rebuild leaves the previous
// index in place.
func (uc *implUseCase) ReloadKeywords(ctx context.Context) (chat.ReloadOutput, error) {
	if err := uc.index.Build(ctx); err != nil {
		uc.l.Errorf(ctx, "ReloadKeywords: %v", err)
		return chat.ReloadOutput{}, err
	}
	return chat.ReloadOutput{VocabularySize: uc.index.VocabularySize()}, nil
}
