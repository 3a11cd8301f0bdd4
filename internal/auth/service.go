package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redmonkez12/devconnector-api/internal/apperr"
	"github.com/redmonkez12/devconnector-api/internal/logging"
	"github.com/redmonkez12/devconnector-api/internal/user"
	"github.com/redmonkez12/devconnector-api/internal/validation"
)

const minPasswordLength = 6

var (
	ErrUserExists         = apperr.Listed(apperr.Conflict, "User already exists")
	ErrInvalidCredentials = apperr.Listed(apperr.Conflict, "Invalid Credentials")
	ErrUserNotFound       = apperr.New(apperr.NotFound, "User not found")
)

// RegisterInput is the registration payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Service handles account business logic
type Service struct {
	users  UserStore
	tokens TokenService
	logger *logging.Logger
}

func NewService(users UserStore, tokens TokenService, logger *logging.Logger) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates an account and returns a session token for it
func (s *Service) Register(ctx context.Context, in RegisterInput) (string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	var check validation.Checker
	check.Required("name", in.Name, "Name is required")
	check.Email("email", in.Email, "Please include a valid email")
	check.MinLength("password", in.Password, minPasswordLength, "Please enter a password with 6 or more characters")
	if err := check.Err(); err != nil {
		return "", err
	}

	passwordHash, err := HashPassword(in.Password)
	if err != nil {
		return "", apperr.Wrap(apperr.Internal, "failed to hash password", err)
	}

	newUser, err := s.users.Create(ctx, in.Name, in.Email, passwordHash, GravatarURL(in.Email))
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return "", ErrUserExists
		}
		return "", apperr.Wrap(apperr.Persistence, "failed to create user", err)
	}

	s.logger.Info("user registered", "user_id", newUser.ID)

	return s.issue(newUser)
}

// Login checks credentials and returns a session token
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)

	var check validation.Checker
	check.Email("email", email, "Please include a valid email")
	check.Required("password", password, "Password is required")
	if err := check.Err(); err != nil {
		return "", err
	}

	existingUser, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", apperr.Wrap(apperr.Persistence, "failed to get user", err)
	}

	if !VerifyPassword(existingUser.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	return s.issue(existingUser)
}

// CurrentUser loads the account of the authenticated caller
func (s *Service) CurrentUser(ctx context.Context, userID string) (*user.User, error) {
	id, err := user.ParseID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apperr.Wrap(apperr.Persistence, "failed to get user", err)
	}

	return u, nil
}

func (s *Service) issue(u *user.User) (string, error) {
	token, err := s.tokens.Issue(u.ID.String())
	if err != nil {
		return "", apperr.Wrap(apperr.Internal, "failed to issue token", fmt.Errorf("user %s: %w", u.ID, err))
	}
	return token, nil
}
