package bio

import (
	"context"
	"io"

	domainbio "github.com/UmerAzizGujjar/portfolio/internal/domain/bio"
	mediaUC "github.com/UmerAzizGujjar/portfolio/internal/application/usecase/media"
)

type UploadImageUseCase struct {
	bioUseCase *BioUseCase
	mediaUC    *mediaUC.UploadImageUseCase
}

func NewUploadImageUseCase(bioUC *BioUseCase, uploadUC *mediaUC.UploadImageUseCase) *UploadImageUseCase {
	return &UploadImageUseCase{bioUseCase: bioUC, mediaUC: uploadUC}
}

type UploadImageInput struct {
	File        io.Reader
	Size        int64
	ContentType string
}

type UploadImageOutput struct {
	ImageURL string
}

// Execute uploads a new profile picture and stores its URL on the singleton
// bio. The previous image is left in object storage, as the app never deletes
// uploaded files.
func (uc *UploadImageUseCase) Execute(ctx context.Context, input UploadImageInput) (*UploadImageOutput, error) {
	uploaded, err := uc.mediaUC.Execute(ctx, mediaUC.UploadImageInput{
		File:        input.File,
		Size:        input.Size,
		ContentType: input.ContentType,
		Prefix:      "profile",
	})
	if err != nil {
		return nil, err
	}

	patch := domainbio.Patch{ImageURL: &uploaded.URL}
	if _, err := uc.bioUseCase.Update(ctx, patch); err != nil {
		return nil, err
	}

	return &UploadImageOutput{ImageURL: uploaded.URL}, nil
}
