package services

import (
	"errors"
	"fmt"

	"inkpress/app/models"
	"inkpress/app/repositories"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrUnknownEmail  = errors.New("email not registered")
	ErrWrongPassword = errors.New("password incorrect")
)

// AuthService handles registration and credential checks.
type AuthService struct {
	users repositories.UserRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register hashes the password and creates the account. The very first
// account is created with the admin role. A duplicate email returns
// ErrEmailTaken, whether caught by the pre-check or by the unique column.
func (s *AuthService) Register(name, email, password string) (*models.User, error) {
	taken, err := s.users.EmailExists(email)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	role := models.RoleUser
	count, err := s.users.Count()
	if err != nil {
		return nil, fmt.Errorf("counting users: %w", err)
	}
	if count == 0 {
		role = models.RoleAdmin
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

// Authenticate verifies an email/password pair and returns the matching
// user. ErrUnknownEmail and ErrWrongPassword distinguish the two failure
// notices the login page shows.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnknownEmail
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrWrongPassword
	}
	return user, nil
}
