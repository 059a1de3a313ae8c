package project

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	mediaUC "github.com/UmerAzizGujjar/portfolio/internal/application/usecase/media"
	"github.com/UmerAzizGujjar/portfolio/internal/application/service"
	"github.com/UmerAzizGujjar/portfolio/internal/domain/project"
	"github.com/UmerAzizGujjar/portfolio/pkg/apperror"
	"github.com/UmerAzizGujjar/portfolio/pkg/logger"
)

type ImageFile struct {
	File        io.Reader
	Size        int64
	ContentType string
}

type CreateProjectUseCase struct {
	projectRepo project.Repository
	mediaUC     *mediaUC.UploadImageUseCase
	cache       service.ContentCache
	logger      logger.Logger
}

func NewCreateProjectUseCase(repo project.Repository, uploadUC *mediaUC.UploadImageUseCase, cache service.ContentCache, log logger.Logger) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: repo,
		mediaUC:     uploadUC,
		cache:       cache,
		logger:      log,
	}
}

type CreateProjectInput struct {
	Title        string
	Description  string
	Technologies []string
	Github       string
	LiveLink     string
	Featured     bool
	// Image is uploaded when present; otherwise ExistingImage is stored as-is.
	Image         *ImageFile
	ExistingImage string
}

type CreateProjectOutput struct {
	Project *project.Project
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	if input.Title == "" || input.Description == "" {
		return nil, apperror.NewInvalidInput("title and description are required", nil)
	}

	imageURL := input.ExistingImage
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
		imageURL = uploaded.URL
	}

	now := time.Now().UTC()
	newProject := &project.Project{
		ID:           uuid.New(),
		Title:        input.Title,
		Description:  input.Description,
		Technologies: input.Technologies,
		Github:       input.Github,
		LiveLink:     input.LiveLink,
		Image:        imageURL,
		Featured:     input.Featured,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		return nil, err
	}

	if err := uc.cache.Delete(ctx, service.CacheKeyProjects); err != nil {
		uc.logger.Warn("Failed to invalidate project cache", zap.Error(err))
	}
	return &CreateProjectOutput{Project: newProject}, nil
}
