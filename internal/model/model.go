package model

import "time"

// Environment represents the deployment environment
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the authenticated identity through a request.
type Scope struct {
	UserID   int64
	Username string
}

// User is an account that can log in and own a cart and chat history.
type User struct {
	ID       int64
	Username string // 6-digit account number
	Password string // bcrypt hash
}

// Product is a catalog item.
type Product struct {
	ID          string
	Name        string
	Price       float64
	Image       string   // primary image
	Images      []string // additional image URLs
	Description string
}

// CartItem is one product line in a user's cart.
type CartItem struct {
	ID        int64
	UserID    int64
	ProductID string
	Quantity  int
	UpdatedAt *time.Time
	Product   Product // joined catalog row
}

// AIMessage is a persisted chat turn.
type AIMessage struct {
	ID        int64
	UserID    int64
	Role      string // "user" or "assistant"
	Content   string
	Timestamp int64 // unix milliseconds
}

// BlacklistedToken is a revoked JWT, kept until its natural expiry.
type BlacklistedToken struct {
	ID        int64
	JTI       string
	CreatedAt time.Time
	ExpiresAt time.Time
}
