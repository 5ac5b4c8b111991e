package usecase

import (
	"context"
	"io"

	"apikit/internal/domain/entity"
)

// FileUpload is a file received from a client.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadUsecase stores client uploads in object storage.
type UploadUsecase interface {
	// Upload checks file against the upload policy and stores it under folder.
	Upload(ctx context.Context, folder string, file *FileUpload) (*entity.UploadedFile, error)

	// Remove deletes a stored upload.
	Remove(ctx context.Context, key string) error
}
