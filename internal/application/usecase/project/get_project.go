package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/UmerAzizGujjar/portfolio/internal/domain/project"
)

type GetProjectUseCase struct {
	projectRepo project.Repository
}

func NewGetProjectUseCase(repo project.Repository) *GetProjectUseCase {
	return &GetProjectUseCase{projectRepo: repo}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	return uc.projectRepo.FindByID(ctx, id)
}
