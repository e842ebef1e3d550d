package auth

// UserStore defines the persistence interface for API accounts.
type UserStore interface {
	CreateUser(username, passwordHash string) (User, error)
	GetUserByUsername(username string) (User, error)
}
