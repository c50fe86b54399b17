package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"zeros.dev/launchpad/internal/modules/user/dto"
	"zeros.dev/launchpad/internal/modules/user/repository"
	"zeros.dev/launchpad/internal/session"
	"zeros.dev/launchpad/pkg/apperror"
)

type AuthService interface {
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
	// CheckEmail reports whether the email belongs to a program account.
	// Used by the first-time-login flow before a password is set.
	CheckEmail(ctx context.Context, email string) error
	SetPassword(ctx context.Context, input dto.SetPasswordInput) error
}

type authService struct {
	repo     repository.UserRepository
	sessions *session.Manager
}

func NewAuthService(repo repository.UserRepository, sessions *session.Manager) AuthService {
	return &authService{repo: repo, sessions: sessions}
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	// A single combined message for unknown email and wrong password.
	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, errors.New("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	token, err := s.sessions.Issue(user)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.sessions.TTL().Seconds()),
		User:        user,
	}, nil
}

func (s *authService) CheckEmail(ctx context.Context, email string) error {
	if _, err := s.repo.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return errors.New("this email address is not registered for the program, contact your orchestrator")
		}
		return err
	}
	return nil
}

func (s *authService) SetPassword(ctx context.Context, input dto.SetPasswordInput) error {
	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashed)
	return s.repo.Update(ctx, *user)
}

// HashPassword is shared by user provisioning paths.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
