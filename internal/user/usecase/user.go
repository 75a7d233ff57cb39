package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"mall-backend/internal/model"
	"mall-backend/internal/user"
)

// Register creates an account. Usernames are six-digit account numbers and
// passwords are stored as bcrypt hashes, never in the clear.
func (uc *implUseCase) Register(ctx context.Context, ip user.RegisterInput) (user.RegisterOutput, error) {
	if !usernamePattern.MatchString(ip.Username) {
		return user.RegisterOutput{}, user.ErrInvalidUsername
	}
	if ip.Password == "" || len(ip.Password) > 20 {
		return user.RegisterOutput{}, user.ErrInvalidPassword
	}

	existing, err := uc.repo.GetByUsername(ctx, ip.Username)
	if err != nil {
		return user.RegisterOutput{}, err
	}
	if existing.ID != 0 {
		return user.RegisterOutput{}, user.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(ip.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "user/usecase.Register: hash password: %v", err)
		return user.RegisterOutput{}, err
	}

	id, err := uc.repo.CreateUser(ctx, ip.Username, string(hash))
	if err != nil {
		return user.RegisterOutput{}, err
	}

	return user.RegisterOutput{UserID: id}, nil
}

// Login verifies credentials and issues an access token. Unknown usernames
// and wrong passwords produce the same error.
func (uc *implUseCase) Login(ctx context.Context, ip user.LoginInput) (user.LoginOutput, error) {
	u, err := uc.repo.GetByUsername(ctx, ip.Username)
	if err != nil {
		return user.LoginOutput{}, err
	}
	if u.ID == 0 {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(ip.Password)); err != nil {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	token, err := uc.jwt.Generate(u.ID)
	if err != nil {
		uc.l.Errorf(ctx, "user/usecase.Login: generate token: %v", err)
		return user.LoginOutput{}, err
	}

	return user.LoginOutput{
		AccessToken: token,
		UserID:      u.ID,
		Username:    u.Username,
	}, nil
}

// Logout blacklists the presented token's JTI until the token would have
// expired on its own.
func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope, token user.TokenInfo) error {
	return uc.repo.BlacklistToken(ctx, token.JTI, token.ExpiresAt)
}

// CleanupExpiredTokens drops blacklist rows whose tokens expired anyway.
func (uc *implUseCase) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	return uc.repo.DeleteExpiredTokens(ctx, uc.now())
}
