package user

import "time"

type RegisterInput struct {
	Username string
	Password string
}

type RegisterOutput struct {
	UserID int64
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	AccessToken string
	UserID      int64
	Username    string
}

// TokenInfo identifies the token being revoked on logout.
type TokenInfo struct {
	JTI       string
	ExpiresAt time.Time
}
