package media

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UmerAzizGujjar/portfolio/pkg/apperror"
	"github.com/UmerAzizGujjar/portfolio/pkg/logger"
)

type fakeUploader struct {
	calls     int
	publicIDs []string
	failWith  error
}

func (u *fakeUploader) Upload(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	u.calls++
	u.publicIDs = append(u.publicIDs, publicID)
	if u.failWith != nil {
		return "", u.failWith
	}
	// Drain so MultiReader re-assembly is exercised.
	if _, err := io.Copy(io.Discard, file); err != nil {
		return "", err
	}
	return "https://res.cloudinary.com/demo/image/upload/" + publicID, nil
}

func (u *fakeUploader) Delete(ctx context.Context, publicID string) error { return nil }

// pngBytes returns a buffer opening with the PNG signature so content sniffing
// recognises it.
func pngBytes(size int) []byte {
	b := make([]byte, size)
	copy(b, []byte("\x89PNG\r\n\x1a\n"))
	return b
}

func newUseCase(u *fakeUploader) *UploadImageUseCase {
	return NewUploadImageUseCase(u, logger.NewZapLogger("development"))
}

func TestExecute_RejectsOversizedFileBeforeUpload(t *testing.T) {
	uploader := &fakeUploader{}
	uc := newUseCase(uploader)

	_, err := uc.Execute(context.Background(), UploadImageInput{
		File:        bytes.NewReader(pngBytes(64)),
		Size:        6 << 20,
		ContentType: "image/png",
		Prefix:      "profile",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	assert.Zero(t, uploader.calls, "oversized file must never reach the provider")
}

func TestExecute_RejectsNonImageContentType(t *testing.T) {
	uploader := &fakeUploader{}
	uc := newUseCase(uploader)

	_, err := uc.Execute(context.Background(), UploadImageInput{
		File:        strings.NewReader("%PDF-1.4"),
		Size:        128,
		ContentType: "application/pdf",
		Prefix:      "profile",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	assert.Zero(t, uploader.calls)
}

func TestExecute_RejectsMislabelledContent(t *testing.T) {
	uploader := &fakeUploader{}
	uc := newUseCase(uploader)

	// Declared as an image but the bytes are plain text.
	_, err := uc.Execute(context.Background(), UploadImageInput{
		File:        strings.NewReader("#!/bin/sh\nrm -rf /\n"),
		Size:        128,
		ContentType: "image/png",
		Prefix:      "profile",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	assert.Zero(t, uploader.calls)
}

func TestExecute_UploadsValidImage(t *testing.T) {
	uploader := &fakeUploader{}
	uc := newUseCase(uploader)

	body := pngBytes(2 << 20)
	out, err := uc.Execute(context.Background(), UploadImageInput{
		File:        bytes.NewReader(body),
		Size:        int64(len(body)),
		ContentType: "image/png",
		Prefix:      "project",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, uploader.calls)
	require.Len(t, uploader.publicIDs, 1)
	assert.True(t, strings.HasPrefix(uploader.publicIDs[0], "project-"))
	assert.Equal(t, out.PublicID, uploader.publicIDs[0])
	assert.Contains(t, out.URL, out.PublicID)
}

func TestExecute_ProviderFailureMapsToUploadError(t *testing.T) {
	uploader := &fakeUploader{failWith: errors.New("provider unavailable")}
	uc := newUseCase(uploader)

	body := pngBytes(1024)
	_, err := uc.Execute(context.Background(), UploadImageInput{
		File:        bytes.NewReader(body),
		Size:        int64(len(body)),
		ContentType: "image/png",
		Prefix:      "profile",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUpload))
}
