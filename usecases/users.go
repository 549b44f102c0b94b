package usecases

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"starwars-api/auth"
	"starwars-api/entities"
	"starwars-api/logging"
	"starwars-api/repositories"
)

type UserUseCase struct {
	UserRepo repositories.UserRepository
}

func NewUserUseCase(userRepo repositories.UserRepository) *UserUseCase {
	return &UserUseCase{UserRepo: userRepo}
}

// ListUsers returns every user; an empty store yields an empty slice.
func (uc *UserUseCase) ListUsers(ctx context.Context) ([]entities.User, error) {
	users, err := uc.UserRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (uc *UserUseCase) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	user, err := uc.UserRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

// Register creates an active user with a hashed password.
func (uc *UserUseCase) Register(ctx context.Context, username, password string) (*entities.User, error) {
	username = normalizeUsername(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if len(password) > auth.MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	// uniqueness is also enforced by the index; this gives the caller a 409
	if _, err := uc.UserRepo.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entities.User{
		Username: username,
		Password: hashed,
		IsActive: true,
	}
	if err := uc.UserRepo.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	logging.WithFields(ctx, map[string]interface{}{
		"user.id":       user.ID,
		"user.username": user.Username,
	}).Info("user registered")
	return user, nil
}
