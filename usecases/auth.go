package usecases

import (
	"context"
	"fmt"

	"starwars-api/apierror"
	"starwars-api/auth"
	"starwars-api/entities"
	"starwars-api/logging"
	"starwars-api/repositories"
)

type AuthUseCase struct {
	UserRepo repositories.UserRepository
	Tokens   *auth.TokenIssuer
}

func NewAuthUseCase(userRepo repositories.UserRepository, tokens *auth.TokenIssuer) *AuthUseCase {
	return &AuthUseCase{UserRepo: userRepo, Tokens: tokens}
}

// Login verifies the credentials and issues a token for the username.
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (string, *entities.User, error) {
	username = normalizeUsername(username)
	if username == "" || password == "" {
		return "", nil, ErrMissingCredentials
	}

	user, err := uc.UserRepo.GetByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}
	if !user.IsActive || !auth.CheckPassword(user.Password, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := uc.Tokens.Issue(user.Username)
	if err != nil {
		return "", nil, err
	}

	logging.WithFields(ctx, map[string]interface{}{"user.id": user.ID}).Info("user logged in")
	return token, user, nil
}

// Authenticate resolves a bearer token to its active user.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	username, err := uc.Tokens.Parse(token)
	if err != nil {
		return nil, apierror.Unauthorized("Invalid or expired token")
	}

	user, err := uc.UserRepo.GetByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.Unauthorized("Unknown identity")
		}
		return nil, fmt.Errorf("resolve identity: %w", err)
	}
	if !user.IsActive {
		return nil, apierror.Unauthorized("User is inactive")
	}
	return user, nil
}
