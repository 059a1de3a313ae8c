package bio

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UmerAzizGujjar/portfolio/internal/domain/bio"
	"github.com/UmerAzizGujjar/portfolio/pkg/apperror"
	"github.com/UmerAzizGujjar/portfolio/pkg/logger"
)

type fakeBioRepo struct {
	stored  *bio.Bio
	saves   int
	updates int
}

func (r *fakeBioRepo) FindSingleton(ctx context.Context) (*bio.Bio, error) {
	if r.stored == nil {
		return nil, apperror.NewNotFound("bio", "singleton")
	}
	cp := *r.stored
	return &cp, nil
}

func (r *fakeBioRepo) Save(ctx context.Context, b *bio.Bio) error {
	cp := *b
	r.stored = &cp
	r.saves++
	return nil
}

func (r *fakeBioRepo) Update(ctx context.Context, b *bio.Bio) error {
	cp := *b
	r.stored = &cp
	r.updates++
	return nil
}

type nopCache struct{}

func (nopCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) { return false, nil }
func (nopCache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	return nil
}
func (nopCache) Delete(ctx context.Context, keys ...string) error { return nil }

func newBioUseCase(repo *fakeBioRepo) *BioUseCase {
	return NewBioUseCase(repo, nopCache{}, logger.NewZapLogger("development"))
}

func TestGet_CreatesDefaultOnEmptyStore(t *testing.T) {
	repo := &fakeBioRepo{}
	uc := newBioUseCase(repo)

	b, err := uc.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.Equal(t, "Umer Aziz", b.Name)
	assert.Equal(t, 1, repo.saves, "default document must be persisted")
}

func TestGet_ReturnsSameDocumentOnRepeatedReads(t *testing.T) {
	repo := &fakeBioRepo{}
	uc := newBioUseCase(repo)

	first, err := uc.Get(context.Background())
	require.NoError(t, err)

	second, err := uc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, repo.saves, "default must only be created once")
}

func TestUpdate_MergesPatchOverStored(t *testing.T) {
	repo := &fakeBioRepo{}
	uc := newBioUseCase(repo)

	_, err := uc.Get(context.Background())
	require.NoError(t, err)

	title := "Go Developer"
	updated, err := uc.Update(context.Background(), bio.Patch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Go Developer", updated.Title)
	assert.Equal(t, "Umer Aziz", updated.Name, "fields not in the patch survive")
	assert.Equal(t, 1, repo.updates)
	assert.Equal(t, "Go Developer", repo.stored.Title)
}

func TestUpdate_LazilyCreatesThenPatches(t *testing.T) {
	repo := &fakeBioRepo{}
	uc := newBioUseCase(repo)

	degree := "BSc Computer Science"
	updated, err := uc.Update(context.Background(), bio.Patch{
		Education: &bio.EducationPatch{Degree: &degree},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.saves, "empty store gets the default document first")
	assert.Equal(t, degree, updated.Education.Degree)
	assert.Equal(t, "Umer Aziz", updated.Name)
}
