package usecase

import (
	"regexp"
	"time"

	"mall-backend/internal/user"
	"mall-backend/internal/user/repository"
	"mall-backend/pkg/log"
	"mall-backend/pkg/scope"
)

// usernamePattern enforces the six-digit account number format.
var usernamePattern = regexp.MustCompile(`^\d{6}$`)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo repository.Repository
	jwt  scope.Manager
	l    log.Logger

	// now is swappable in tests.
	now func() time.Time
}

// New creates a new user UseCase implementation.
func New(repo repository.Repository, jwt scope.Manager, l log.Logger) user.UseCase {
	return &implUseCase{
		repo: repo,
		jwt:  jwt,
		l:    l,
		now:  time.Now,
	}
}
