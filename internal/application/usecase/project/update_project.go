package project

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	mediaUC "github.com/UmerAzizGujjar/portfolio/internal/application/usecase/media"
	"github.com/UmerAzizGujjar/portfolio/internal/application/service"
	"github.com/UmerAzizGujjar/portfolio/internal/domain/project"
	"github.com/UmerAzizGujjar/portfolio/pkg/logger"
)

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	mediaUC     *mediaUC.UploadImageUseCase
	cache       service.ContentCache
	logger      logger.Logger
}

func NewUpdateProjectUseCase(repo project.Repository, uploadUC *mediaUC.UploadImageUseCase, cache service.ContentCache, log logger.Logger) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: repo,
		mediaUC:     uploadUC,
		cache:       cache,
		logger:      log,
	}
}

// UpdateProjectInput is a partial update: nil fields keep their stored values.
type UpdateProjectInput struct {
	ProjectID     uuid.UUID
	Title         *string
	Description   *string
	Technologies  *[]string
	Github        *string
	LiveLink      *string
	Featured      *bool
	Image         *ImageFile
	ExistingImage *string
}

type UpdateProjectOutput struct {
	Project *project.Project
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	p, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Technologies != nil {
		p.Technologies = *input.Technologies
	}
	if input.Github != nil {
		p.Github = *input.Github
	}
	if input.LiveLink != nil {
		p.LiveLink = *input.LiveLink
	}
	if input.Featured != nil {
		p.Featured = *input.Featured
	}

	if input.Image != nil {
		uploaded, err := uc.mediaUC.Execute(ctx, mediaUC.UploadImageInput{
			File:        input.Image.File,
			Size:        input.Image.Size,
			ContentType: input.Image.ContentType,
			Prefix:      "project",
		})
		if err != nil {
			return nil, err
		}
		p.Image = uploaded.URL
	} else if input.ExistingImage != nil {
		p.Image = *input.ExistingImage
	}

	p.UpdatedAt = time.Now().UTC()

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err := uc.cache.Delete(ctx, service.CacheKeyProjects); err != nil {
		uc.logger.Warn("Failed to invalidate project cache", zap.Error(err))
	}
	return &UpdateProjectOutput{Project: p}, nil
}
