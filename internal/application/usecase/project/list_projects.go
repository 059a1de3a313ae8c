package project

import (
	"context"

	"go.uber.org/zap"

	"github.com/UmerAzizGujjar/portfolio/internal/application/service"
	"github.com/UmerAzizGujjar/portfolio/internal/domain/project"
	"github.com/UmerAzizGujjar/portfolio/pkg/logger"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
	cache       service.ContentCache
	logger      logger.Logger
}

func NewListProjectsUseCase(repo project.Repository, cache service.ContentCache, log logger.Logger) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: repo, cache: cache, logger: log}
}

// Execute returns every project, newest first.
func (uc *ListProjectsUseCase) Execute(ctx context.Context) ([]*project.Project, error) {
	cached := []*project.Project{}
	if found, err := uc.cache.GetJSON(ctx, service.CacheKeyProjects, &cached); err == nil && found {
		return cached, nil
	}

	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.SetJSON(ctx, service.CacheKeyProjects, projects, service.CacheTTL); err != nil {
		uc.logger.Warn("Failed to cache project list", zap.Error(err))
	}
	return projects, nil
}
