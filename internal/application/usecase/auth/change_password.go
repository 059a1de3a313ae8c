package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/UmerAzizGujjar/portfolio/pkg/apperror"
	"github.com/UmerAzizGujjar/portfolio/pkg/auth"
	"github.com/UmerAzizGujjar/portfolio/internal/domain/user"
	"github.com/UmerAzizGujjar/portfolio/pkg/logger"
)

const minPasswordLength = 6

type ChangePasswordUseCase struct {
	userRepo user.Repository
	logger   logger.Logger
}

func NewChangePasswordUseCase(repo user.Repository, log logger.Logger) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{userRepo: repo, logger: log}
}

type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, input ChangePasswordInput) error {
	if len(input.NewPassword) < minPasswordLength {
		return apperror.NewInvalidInput("new password must be at least 6 characters", nil)
	}

	u, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return err
	}

	if !auth.CheckPasswordHash(input.CurrentPassword, u.PasswordHash) {
		return apperror.NewUnauthorized("current password is incorrect", nil)
	}

	hash, err := auth.HashPassword(input.NewPassword)
	if err != nil {
		return apperror.NewInternal("failed to hash password", err)
	}

	return uc.userRepo.UpdatePassword(ctx, u.ID, hash)
}
