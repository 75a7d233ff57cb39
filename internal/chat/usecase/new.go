package usecase

import (
	"time"

	"mall-backend/internal/chat"
	"mall-backend/internal/chat/intent"
	"mall-backend/internal/chat/keyword"
	"mall-backend/internal/chat/repository"
	"mall-backend/pkg/ark"
	"mall-backend/pkg/log"
)

// Config holds the orchestrator tunables.
type Config struct {
	DefaultModel         string
	UserDedupWindow      time.Duration
	AssistantDedupWindow time.Duration
	MaxCandidates        int
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	catalog    chat.Catalog
	index      *keyword.Index
	extractor  *keyword.Extractor
	classifier *intent.Classifier
	llm        ark.IArk
	cfg        Config

	// now is swappable in tests.
	now func() time.Time
}

// New creates a new chat UseCase implementation.
func New(
	l log.Logger,
	repo repository.Repository,
	catalog chat.Catalog,
	index *keyword.Index,
	extractor *keyword.Extractor,
	classifier *intent.Classifier,
	llm ark.IArk,
	cfg Config,
) *implUseCase {
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = 10
	}
	if cfg.UserDedupWindow <= 0 {
		cfg.UserDedupWindow = 5 * time.Second
	}
	if cfg.AssistantDedupWindow <= 0 {
		cfg.AssistantDedupWindow = 3 * time.Second
	}

	return &implUseCase{
		l:          l,
		repo:       repo,
		catalog:    catalog,
		index:      index,
		extractor:  extractor,
		classifier: classifier,
		llm:        llm,
		cfg:        cfg,
		now:        time.Now,
	}
}
