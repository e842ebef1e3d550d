package auth

import (
	"database/sql"
	"errors"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUsernameTaken      = errors.New("username already taken")
)

// User is an API account. Password hashes never leave this package.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    int64
}

// Claims represents the JWT claims for an authenticated user.
type Claims struct {
	Username string `json:"username"`
	UserID   int64  `json:"user_id"`
	jwt.RegisteredClaims
}

// store handles user persistence.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
