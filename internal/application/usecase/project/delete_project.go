package project

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/UmerAzizGujjar/portfolio/internal/application/service"
	"github.com/UmerAzizGujjar/portfolio/internal/domain/project"
	"github.com/UmerAzizGujjar/portfolio/pkg/logger"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	cache       service.ContentCache
	logger      logger.Logger
}

func NewDeleteProjectUseCase(repo project.Repository, cache service.ContentCache, log logger.Logger) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{projectRepo: repo, cache: cache, logger: log}
}

// Execute removes the record only. The image stays in object storage; nothing
// in the app deletes uploaded files.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.projectRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := uc.cache.Delete(ctx, service.CacheKeyProjects); err != nil {
		uc.logger.Warn("Failed to invalidate project cache", zap.Error(err))
	}
	return nil
}
