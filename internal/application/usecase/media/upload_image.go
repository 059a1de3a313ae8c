package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/UmerAzizGujjar/portfolio/internal/application/service"
	"github.com/UmerAzizGujjar/portfolio/pkg/apperror"
	"github.com/UmerAzizGujjar/portfolio/pkg/logger"
)

const (
	MaxFileSize = 5 << 20 // 5 MiB

	uploadFolder = "portfolio"
)

var allowedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type UploadImageUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadImageUseCase(u service.Uploader, log logger.Logger) *UploadImageUseCase {
	return &UploadImageUseCase{uploader: u, logger: log}
}

type UploadImageInput struct {
	File io.Reader
	Size int64
	// ContentType is the client-declared MIME type; the first bytes of the
	// file are sniffed as well before anything leaves the process.
	ContentType string
	// Prefix distinguishes generated public IDs, e.g. "profile" or "project".
	Prefix string
}

type UploadImageOutput struct {
	URL      string
	PublicID string
}

// Execute validates the file locally and only then forwards it to object
// storage. Oversized or non-image files never reach the provider.
func (uc *UploadImageUseCase) Execute(ctx context.Context, input UploadImageInput) (*UploadImageOutput, error) {
	if input.Size > MaxFileSize {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("file exceeds the %d MB limit", MaxFileSize>>20), nil)
	}
	if !allowedMIMETypes[input.ContentType] {
		return nil, apperror.NewInvalidInput("only image files are allowed", nil)
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(input.File, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, apperror.NewInternal("failed to read file", err)
	}
	head = head[:n]
	if !allowedMIMETypes[http.DetectContentType(head)] {
		return nil, apperror.NewInvalidInput("file content is not a supported image type", nil)
	}

	publicID := fmt.Sprintf("%s-%s", input.Prefix, uuid.New().String())
	body := io.MultiReader(bytes.NewReader(head), input.File)

	url, err := uc.uploader.Upload(ctx, body, uploadFolder, publicID)
	if err != nil {
		return nil, apperror.NewUpload("storage provider rejected the file", err)
	}

	return &UploadImageOutput{URL: url, PublicID: publicID}, nil
}
