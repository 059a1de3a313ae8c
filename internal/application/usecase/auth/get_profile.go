package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/UmerAzizGujjar/portfolio/internal/domain/user"
)

type GetProfileUseCase struct {
	userRepo user.Repository
}

func NewGetProfileUseCase(repo user.Repository) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: repo}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	return uc.userRepo.FindByID(ctx, userID)
}
