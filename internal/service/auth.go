package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/psharda/fieldforce/backend/internal/domain"
	"github.com/psharda/fieldforce/backend/internal/repo"
)

// AuthService implements the basic credential check for the login endpoint.
// There is no session or token machinery here; the mobile client stores the
// returned user record and sends its id with subsequent submissions.
type AuthService struct {
	users repo.UserRepo
}

// NewAuthService constructs an AuthService backed by the provided repo.
func NewAuthService(users repo.UserRepo) *AuthService {
	return &AuthService{users: users}
}

// Login verifies email+password against the stored bcrypt hash.
// Returns domain.ErrInvalidCredentials for both an unknown email and a wrong
// password so responses do not reveal which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("service.AuthService.Login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	return user, nil
}
