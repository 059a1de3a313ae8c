package bio

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/UmerAzizGujjar/portfolio/internal/application/service"
	"github.com/UmerAzizGujjar/portfolio/internal/domain/bio"
	"github.com/UmerAzizGujjar/portfolio/pkg/apperror"
	"github.com/UmerAzizGujjar/portfolio/pkg/logger"
)

type BioUseCase struct {
	bioRepo bio.Repository
	cache   service.ContentCache
	logger  logger.Logger
}

func NewBioUseCase(repo bio.Repository, cache service.ContentCache, log logger.Logger) *BioUseCase {
	return &BioUseCase{
		bioRepo: repo,
		cache:   cache,
		logger:  log,
	}
}

// Get returns the singleton bio, creating the default document on first read
// of an empty store. Repeated calls return the same document.
func (uc *BioUseCase) Get(ctx context.Context) (*bio.Bio, error) {
	cached := &bio.Bio{}
	if found, err := uc.cache.GetJSON(ctx, service.CacheKeyBio, cached); err == nil && found {
		return cached, nil
	}

	b, err := uc.bioRepo.FindSingleton(ctx)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		b = bio.Default()
		if err := uc.bioRepo.Save(ctx, b); err != nil {
			return nil, err
		}
		uc.logger.Info("Created default bio document", zap.String("bio_id", b.ID.String()))
	}

	if err := uc.cache.SetJSON(ctx, service.CacheKeyBio, b, service.CacheTTL); err != nil {
		uc.logger.Warn("Failed to cache bio", zap.Error(err))
	}
	return b, nil
}

// Update merges the patch over the stored document: top-level fields override,
// education merges sub-field-wise, workExperience and certifications replace
// the stored lists wholesale when supplied.
func (uc *BioUseCase) Update(ctx context.Context, patch bio.Patch) (*bio.Bio, error) {
	b, err := uc.bioRepo.FindSingleton(ctx)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		b = bio.Default()
		if err := uc.bioRepo.Save(ctx, b); err != nil {
			return nil, err
		}
	}

	b.Apply(patch)
	b.UpdatedAt = time.Now().UTC()

	if err := uc.bioRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	if err := uc.cache.Delete(ctx, service.CacheKeyBio); err != nil {
		uc.logger.Warn("Failed to invalidate bio cache", zap.Error(err))
	}
	return b, nil
}
