package http

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	projectUC "github.com/UmerAzizGujjar/portfolio/internal/application/usecase/project"
	"github.com/UmerAzizGujjar/portfolio/internal/domain/project"
	"github.com/UmerAzizGujjar/portfolio/pkg/apperror"
)

type ProjectHandler struct {
	createUC *projectUC.CreateProjectUseCase
	updateUC *projectUC.UpdateProjectUseCase
	deleteUC *projectUC.DeleteProjectUseCase
	getUC    *projectUC.GetProjectUseCase
	listUC   *projectUC.ListProjectsUseCase
}

func NewProjectHandler(
	createUC *projectUC.CreateProjectUseCase,
	updateUC *projectUC.UpdateProjectUseCase,
	deleteUC *projectUC.DeleteProjectUseCase,
	getUC *projectUC.GetProjectUseCase,
	listUC *projectUC.ListProjectsUseCase,
) *ProjectHandler {
	return &ProjectHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
	}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}

	p, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// openImageFile returns the optional project image from the multipart form.
// The caller owns the returned closer.
func openImageFile(c *gin.Context) (*projectUC.ImageFile, multipart.File, error) {
	fileHeader, err := c.FormFile("projectImage")
	if err != nil {
		return nil, nil, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, apperror.NewInternal("failed to open file", err)
	}
	return &projectUC.ImageFile{
		File:        file,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}, file, nil
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	image, closer, err := openImageFile(c)
	if err != nil {
		c.Error(err)
		return
	}
	if closer != nil {
		defer closer.Close()
	}

	featured, _ := strconv.ParseBool(c.PostForm("featured"))

	input := projectUC.CreateProjectInput{
		Title:         c.PostForm("title"),
		Description:   c.PostForm("description"),
		Technologies:  project.ParseTechnologies(c.PostForm("technologies")),
		Github:        c.PostForm("github"),
		LiveLink:      c.PostForm("liveLink"),
		Featured:      featured,
		Image:         image,
		ExistingImage: c.PostForm("existingImage"),
	}

	output, err := h.createUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, output.Project)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}

	image, closer, err := openImageFile(c)
	if err != nil {
		c.Error(err)
		return
	}
	if closer != nil {
		defer closer.Close()
	}

	input := projectUC.UpdateProjectInput{ProjectID: id, Image: image}

	// Only form fields actually present make it into the patch.
	if v, ok := c.GetPostForm("title"); ok {
		input.Title = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		input.Description = &v
	}
	if v, ok := c.GetPostForm("technologies"); ok {
		techs := project.ParseTechnologies(v)
		input.Technologies = &techs
	}
	if v, ok := c.GetPostForm("github"); ok {
		input.Github = &v
	}
	if v, ok := c.GetPostForm("liveLink"); ok {
		input.LiveLink = &v
	}
	if v, ok := c.GetPostForm("featured"); ok {
		featured, _ := strconv.ParseBool(v)
		input.Featured = &featured
	}
	if v, ok := c.GetPostForm("existingImage"); ok {
		input.ExistingImage = &v
	}

	output, err := h.updateUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Project)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project removed"})
}
