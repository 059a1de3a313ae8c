package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/UmerAzizGujjar/portfolio/internal/domain/user"
	"github.com/UmerAzizGujjar/portfolio/pkg/apperror"
	"github.com/UmerAzizGujjar/portfolio/pkg/auth"
	"github.com/UmerAzizGujjar/portfolio/pkg/logger"
)

type RegisterUseCase struct {
	userRepo user.Repository
	logger   logger.Logger
}

func NewRegisterUseCase(repo user.Repository, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{userRepo: repo, logger: log}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type RegisterOutput struct {
	User *user.User
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, apperror.NewInvalidInput("username, email and password are required", nil)
	}

	_, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, apperror.NewInvalidInput("email already registered", nil)
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	newUser := &user.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         user.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		return nil, err
	}

	return &RegisterOutput{User: newUser}, nil
}
