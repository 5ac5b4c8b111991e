package impl

import (
	"context"
	"io"
	"regexp"
	"strings"
	"testing"

	"apikit/config"
	domainerrors "apikit/internal/domain/errors"
	mockService "apikit/internal/mocks/service"
	"apikit/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUploadPolicy() UploadPolicy {
	return UploadPolicy{
		MaxSize: 1 << 20,
		Allowed: map[string][]string{
			"image":    {"png", "jpg", "svg"},
			"document": {"pdf"},
		},
		Disallowed: map[string][]string{
			"image": {"svg"},
		},
	}
}

func TestUploadPolicy_Check(t *testing.T) {
	policy := newTestUploadPolicy()

	tests := []struct {
		name         string
		contentType  string
		file         string
		size         int64
		wantCategory string
		wantErr      error
	}{
		{name: "allowed image", contentType: "image/png", file: "avatar.PNG", size: 100, wantCategory: "image"},
		{name: "document with params", contentType: "application/pdf; charset=binary", file: "cv.pdf", size: 100, wantCategory: "document"},
		{name: "disallowed extension", contentType: "image/svg+xml", file: "logo.svg", size: 100, wantErr: domainerrors.ErrUnsupportedFileType},
		{name: "category not configured", contentType: "video/mp4", file: "clip.mp4", size: 100, wantErr: domainerrors.ErrUnsupportedFileType},
		{name: "extension outside category", contentType: "image/png", file: "avatar.pdf", size: 100, wantErr: domainerrors.ErrUnsupportedFileType},
		{name: "no extension", contentType: "image/png", file: "avatar", size: 100, wantErr: domainerrors.ErrUnsupportedFileType},
		{name: "malformed content type", contentType: "???", file: "avatar.png", size: 100, wantErr: domainerrors.ErrUnsupportedFileType},
		{name: "too large", contentType: "image/png", file: "avatar.png", size: 2 << 20, wantErr: domainerrors.ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, err := policy.Check(tt.contentType, tt.file, tt.size)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCategory, category)
		})
	}
}

func TestUploadPolicy_TooLargeNamesLimit(t *testing.T) {
	_, err := newTestUploadPolicy().Check("image/png", "a.png", 5<<20)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "1 MB")
}

func createTestUploadService(t *testing.T, storage *mockService.MockObjectStorage) usecase.UploadUsecase {
	policy := newTestUploadPolicy()
	cfg := &config.Config{Storage: &config.StorageConfig{
		MaxUploadSize:   policy.MaxSize,
		AllowedTypes:    policy.Allowed,
		DisallowedTypes: policy.Disallowed,
	}}
	params := UploadServiceParams{Config: cfg, Logger: newDiscardLogger()}
	if storage != nil {
		params.Storage = storage
	}

	return NewUploadService(params)
}

func TestUploadService_Upload(t *testing.T) {
	storage := mockService.NewMockObjectStorage(t)
	srv := createTestUploadService(t, storage)
	ctx := context.Background()
	keyPattern := regexp.MustCompile(`^avatars/[0-9A-Za-z]{27}\.png$`)

	var storedKey string
	storage.EXPECT().
		Put(ctx, mock.MatchedBy(keyPattern.MatchString), mock.Anything, int64(1536), "image/png").
		Run(func(_ context.Context, key string, _ io.Reader, _ int64, _ string) { storedKey = key }).
		Return(nil)
	storage.EXPECT().URL(mock.Anything).RunAndReturn(func(key string) string { return "https://cdn.example.com/" + key })

	file, err := srv.Upload(ctx, "avatars", &usecase.FileUpload{
		Name:        "Me.PNG",
		ContentType: "image/png",
		Size:        1536,
		Content:     strings.NewReader("png"),
	})
	require.NoError(t, err)

	assert.Equal(t, storedKey, file.Key)
	assert.Equal(t, "https://cdn.example.com/"+storedKey, file.URL)
	assert.Equal(t, "1.5 KB", file.Metadata.Size)
	assert.Equal(t, "png", file.Metadata.Extension)
	assert.Equal(t, "Me.PNG", file.Metadata.OriginalName)
	assert.Equal(t, "image/png", file.Metadata.MimeType)
}

func TestUploadService_Upload_RefusedFileNeverReachesStorage(t *testing.T) {
	storage := mockService.NewMockObjectStorage(t)
	srv := createTestUploadService(t, storage)

	_, err := srv.Upload(context.Background(), "avatars", &usecase.FileUpload{
		Name:        "logo.svg",
		ContentType: "image/svg+xml",
		Size:        10,
		Content:     strings.NewReader("<svg/>"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)
}

func TestUploadService_Upload_StorageFailure(t *testing.T) {
	storage := mockService.NewMockObjectStorage(t)
	srv := createTestUploadService(t, storage)

	storage.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("bucket gone"))

	_, err := srv.Upload(context.Background(), "thumbnails", &usecase.FileUpload{
		Name: "a.jpg", ContentType: "image/jpeg", Size: 10, Content: strings.NewReader("x"),
	})
	assert.Error(t, err)
}

func TestUploadService_WithoutStorage(t *testing.T) {
	srv := createTestUploadService(t, nil)
	ctx := context.Background()

	_, err := srv.Upload(ctx, "avatars", &usecase.FileUpload{Name: "a.png", ContentType: "image/png"})
	assert.Error(t, err)
	assert.NoError(t, srv.Remove(ctx, "avatars/a.png"))
}

func TestUploadService_Remove(t *testing.T) {
	storage := mockService.NewMockObjectStorage(t)
	srv := createTestUploadService(t, storage)
	ctx := context.Background()

	storage.EXPECT().Remove(ctx, "avatars/a.png").Return(nil)

	require.NoError(t, srv.Remove(ctx, "avatars/a.png"))
	require.NoError(t, srv.Remove(ctx, ""))
}
