package services

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/avelaro/bookstore-be/internal/models"
	"github.com/avelaro/bookstore-be/internal/store"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(email, password string) (models.User, error)
	Authenticate(email, password string) (models.User, error)
}

// UserService provides registration and credential verification.
type UserService struct {
	users store.UserStore
}

// NewUserService creates a new UserService.
func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

// Register creates a new user, hashing their password. The email must not
// match any existing user's exactly.
func (s *UserService) Register(email, password string) (models.User, error) {
	users, err := s.users.LoadAll()
	if err != nil {
		return models.User{}, fmt.Errorf("loading users: %w", err)
	}

	for _, u := range users {
		if u.Email == email {
			return models.User{}, ErrDuplicateEmail
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	users = append(users, user)
	if err := s.users.SaveAll(users); err != nil {
		return models.User{}, fmt.Errorf("saving users: %w", err)
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// Authenticate verifies a user's credentials. An unknown email and a wrong
// password return the same error so callers cannot tell which it was.
func (s *UserService) Authenticate(email, password string) (models.User, error) {
	users, err := s.users.LoadAll()
	if err != nil {
		return models.User{}, fmt.Errorf("loading users: %w", err)
	}

	for _, u := range users {
		if u.Email == email {
			if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
				return models.User{}, ErrInvalidCredentials
			}
			u.PasswordHash = ""
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}
