package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"discuss/internal/models"
	"discuss/internal/repository"
	"discuss/internal/utils"

	"github.com/go-playground/validator/v10"
)

const (
	minPasswordLength = 8
	maxUsernameLength = 50
)

var fieldValidator = validator.New()

type SignUpInput struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (*models.User, error)
	LogIn(ctx context.Context, username, password string) (*models.User, error)
}

type authService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

// normalizeUsername lower-cases and trims so "Alice " and "alice" collide.
func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func (in SignUpInput) validate() error {
	switch {
	case in.Username == "":
		return invalidInput("Username is required")
	case utf8.RuneCountInString(in.Username) > maxUsernameLength:
		return invalidInput("Username is too long")
	case strings.ContainsAny(in.Username, " \t\r\n@/"):
		return invalidInput("Username contains invalid characters")
	case in.Name == "":
		return invalidInput("Name is required")
	case in.Email == "":
		return invalidInput("Email is required")
	case utf8.RuneCountInString(in.Password) < minPasswordLength:
		return invalidInput("Password must be at least 8 characters")
	}
	if err := fieldValidator.Var(in.Email, "email"); err != nil {
		return invalidInput("Email is invalid")
	}
	return nil
}

func (s *authService) SignUp(ctx context.Context, in SignUpInput) (*models.User, error) {
	in.Username = normalizeUsername(in.Username)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := in.validate(); err != nil {
		return nil, err
	}

	_, err := s.users.FindByUsername(ctx, in.Username)
	if err == nil {
		return nil, ErrConflictingUsername
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, unknown("SignUp", err)
	}

	taken, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, unknown("SignUp", err)
	}
	if taken {
		return nil, ErrConflictingEmail
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, unknown("SignUp", err)
	}

	user := &models.User{
		Username: in.Username,
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// lost a race with a concurrent sign-up; see which unique column collided
			if taken, checkErr := s.users.ExistsByEmail(ctx, in.Email); checkErr == nil && taken {
				return nil, ErrConflictingEmail
			}
			return nil, ErrConflictingUsername
		}
		return nil, unknown("SignUp", err)
	}
	return user, nil
}

func (s *authService) LogIn(ctx context.Context, username, password string) (*models.User, error) {
	username = normalizeUsername(username)
	if username == "" || password == "" {
		return nil, ErrIncorrectLogin
	}

	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrIncorrectLogin
	}
	if err != nil {
		return nil, unknown("LogIn", err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrIncorrectLogin
	}
	return user, nil
}
