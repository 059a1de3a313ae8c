package project

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mediaUC "github.com/UmerAzizGujjar/portfolio/internal/application/usecase/media"
	"github.com/UmerAzizGujjar/portfolio/internal/domain/project"
	"github.com/UmerAzizGujjar/portfolio/pkg/apperror"
	"github.com/UmerAzizGujjar/portfolio/pkg/logger"
)

type fakeProjectRepo struct {
	projects map[uuid.UUID]*project.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[uuid.UUID]*project.Project{}}
}

func (r *fakeProjectRepo) Save(ctx context.Context, p *project.Project) error {
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, p *project.Project) error {
	if _, ok := r.projects[p.ID]; !ok {
		return apperror.NewNotFound("project", p.ID.String())
	}
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.projects[id]; !ok {
		return apperror.NewNotFound("project", id.String())
	}
	delete(r.projects, id)
	return nil
}

func (r *fakeProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, apperror.NewNotFound("project", id.String())
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	out := make([]*project.Project, 0, len(r.projects))
	for _, p := range r.projects {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type recordingUploader struct {
	calls int
}

func (u *recordingUploader) Upload(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	u.calls++
	return "https://res.cloudinary.com/demo/image/upload/" + publicID, nil
}

func (u *recordingUploader) Delete(ctx context.Context, publicID string) error { return nil }

type nopCache struct{}

func (nopCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) { return false, nil }
func (nopCache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	return nil
}
func (nopCache) Delete(ctx context.Context, keys ...string) error { return nil }

func testDeps(repo *fakeProjectRepo) (*CreateProjectUseCase, *UpdateProjectUseCase, *DeleteProjectUseCase, *ListProjectsUseCase, *recordingUploader) {
	log := logger.NewZapLogger("development")
	uploader := &recordingUploader{}
	upload := mediaUC.NewUploadImageUseCase(uploader, log)
	return NewCreateProjectUseCase(repo, upload, nopCache{}, log),
		NewUpdateProjectUseCase(repo, upload, nopCache{}, log),
		NewDeleteProjectUseCase(repo, nopCache{}, log),
		NewListProjectsUseCase(repo, nopCache{}, log),
		uploader
}

func pngImage() *ImageFile {
	b := make([]byte, 1024)
	copy(b, []byte("\x89PNG\r\n\x1a\n"))
	return &ImageFile{File: bytes.NewReader(b), Size: int64(len(b)), ContentType: "image/png"}
}

func TestCreateProject_RequiresTitleAndDescription(t *testing.T) {
	repo := newFakeProjectRepo()
	createUC, _, _, _, uploader := testDeps(repo)

	_, err := createUC.Execute(context.Background(), CreateProjectInput{Title: "Portfolio"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	assert.Empty(t, repo.projects)
	assert.Zero(t, uploader.calls)
}

func TestCreateProject_WithoutImageKeepsExistingURL(t *testing.T) {
	repo := newFakeProjectRepo()
	createUC, _, _, _, uploader := testDeps(repo)

	out, err := createUC.Execute(context.Background(), CreateProjectInput{
		Title:         "Portfolio",
		Description:   "Personal site",
		Technologies:  []string{"Go", "Postgres"},
		ExistingImage: "https://img/old.png",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://img/old.png", out.Project.Image)
	assert.Equal(t, []string{"Go", "Postgres"}, out.Project.Technologies)
	assert.Zero(t, uploader.calls)
	assert.Len(t, repo.projects, 1)
}

func TestCreateProject_UploadsImage(t *testing.T) {
	repo := newFakeProjectRepo()
	createUC, _, _, _, uploader := testDeps(repo)

	out, err := createUC.Execute(context.Background(), CreateProjectInput{
		Title:       "Portfolio",
		Description: "Personal site",
		Image:       pngImage(),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, uploader.calls)
	assert.Contains(t, out.Project.Image, "project-")
}

func TestUpdateProject_PartialFieldsOnly(t *testing.T) {
	repo := newFakeProjectRepo()
	createUC, updateUC, _, _, _ := testDeps(repo)

	created, err := createUC.Execute(context.Background(), CreateProjectInput{
		Title:        "Portfolio",
		Description:  "Personal site",
		Technologies: []string{"Go"},
		Github:       "https://github.com/umeraziz/portfolio",
	})
	require.NoError(t, err)

	title := "Portfolio v2"
	out, err := updateUC.Execute(context.Background(), UpdateProjectInput{
		ProjectID: created.Project.ID,
		Title:     &title,
	})
	require.NoError(t, err)

	assert.Equal(t, "Portfolio v2", out.Project.Title)
	assert.Equal(t, "Personal site", out.Project.Description)
	assert.Equal(t, []string{"Go"}, out.Project.Technologies)
	assert.Equal(t, created.Project.Github, out.Project.Github)
}

func TestUpdateProject_UnknownIDIsNotFound(t *testing.T) {
	repo := newFakeProjectRepo()
	_, updateUC, _, _, _ := testDeps(repo)

	title := "anything"
	_, err := updateUC.Execute(context.Background(), UpdateProjectInput{
		ProjectID: uuid.New(),
		Title:     &title,
	})

	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestDeleteProject_UnknownIDLeavesListUnchanged(t *testing.T) {
	repo := newFakeProjectRepo()
	createUC, _, deleteUC, listUC, _ := testDeps(repo)

	_, err := createUC.Execute(context.Background(), CreateProjectInput{
		Title: "Portfolio", Description: "Personal site",
	})
	require.NoError(t, err)

	err = deleteUC.Execute(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	projects, err := listUC.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestDeleteProject_RemovesRecord(t *testing.T) {
	repo := newFakeProjectRepo()
	createUC, _, deleteUC, listUC, _ := testDeps(repo)

	created, err := createUC.Execute(context.Background(), CreateProjectInput{
		Title: "Portfolio", Description: "Personal site",
	})
	require.NoError(t, err)

	require.NoError(t, deleteUC.Execute(context.Background(), created.Project.ID))

	projects, err := listUC.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}
