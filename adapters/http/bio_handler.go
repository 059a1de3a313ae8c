package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	bioUC "github.com/UmerAzizGujjar/portfolio/internal/application/usecase/bio"
	"github.com/UmerAzizGujjar/portfolio/internal/domain/bio"
	"github.com/UmerAzizGujjar/portfolio/pkg/apperror"
)

type BioHandler struct {
	bioUseCase    *bioUC.BioUseCase
	uploadImageUC *bioUC.UploadImageUseCase
}

func NewBioHandler(uc *bioUC.BioUseCase, uploadUC *bioUC.UploadImageUseCase) *BioHandler {
	return &BioHandler{
		bioUseCase:    uc,
		uploadImageUC: uploadUC,
	}
}

func (h *BioHandler) GetBio(c *gin.Context) {
	b, err := h.bioUseCase.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BioHandler) UpdateBio(c *gin.Context) {
	var patch bio.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for bio update", err))
		return
	}

	b, err := h.bioUseCase.Update(c.Request.Context(), patch)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BioHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'image' file is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open file", err))
		return
	}
	defer file.Close()

	output, err := h.uploadImageUC.Execute(c.Request.Context(), bioUC.UploadImageInput{
		File:        file,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": output.ImageURL, "message": "Image uploaded successfully"})
}
