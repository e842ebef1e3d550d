package auth

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
)

// NewStore creates a new UserStore.
func NewStore(db *sql.DB) UserStore {
	return &store{
		db: db,
	}
}

func (s *store) CreateUser(username, passwordHash string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)", username).Scan(&exists)
	if err != nil {
		return User{}, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return User{}, ErrUsernameTaken
	}

	res, err := s.db.Exec("INSERT INTO users (username, password_hash) VALUES (?, ?)", username, passwordHash)
	if err != nil {
		return User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return User{}, fmt.Errorf("failed to read user id: %w", err)
	}
	log.Info("Registered new user", "userID", id, "username", username)
	return s.getUserLocked("id = ?", id)
}

func (s *store) GetUserByUsername(username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getUserLocked("username = ?", username)
}

func (s *store) getUserLocked(where string, arg any) (User, error) {
	var u User
	err := s.db.QueryRow("SELECT id, username, password_hash, created_at FROM users WHERE "+where, arg).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}
