package impl

import (
	"context"
	"log/slog"
	"mime"
	"path"
	"slices"
	"strings"

	"apikit/config"
	deliverycontext "apikit/internal/delivery/context"
	"apikit/internal/domain/entity"
	domainerrors "apikit/internal/domain/errors"
	"apikit/internal/domain/service"
	"apikit/internal/usecase"
	"apikit/internal/util"

	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
	"go.uber.org/fx"
)

// UploadPolicy decides which uploads are accepted.
type UploadPolicy struct {
	MaxSize int64
	// Allowed maps a category to its accepted extensions. Categories missing here are refused.
	Allowed map[string][]string
	// Disallowed maps a category to extensions refused even when allowed.
	Disallowed map[string][]string
}

// Check returns the category of an upload or ErrUnsupportedFileType / ErrFileTooLarge.
func (p UploadPolicy) Check(contentType, name string, size int64) (string, error) {
	if p.MaxSize > 0 && size > p.MaxSize {
		return "", errors.Wrapf(domainerrors.ErrFileTooLarge.WithDetails("maximum size is "+util.FormatBytes(p.MaxSize)), "upload %s", name)
	}

	category := fileCategory(contentType)
	ext := util.FileExtension(name)

	if category == "" || ext == "" ||
		!slices.Contains(p.Allowed[category], ext) ||
		slices.Contains(p.Disallowed[category], ext) {
		return "", errors.Wrapf(domainerrors.ErrUnsupportedFileType, "upload %s (%s)", name, contentType)
	}

	return category, nil
}

// fileCategory maps the top-level MIME type to an upload category.
func fileCategory(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}

	top, _, _ := strings.Cut(mediaType, "/")
	switch top {
	case "image", "audio", "video":
		return top
	case "application", "document":
		return "document"
	default:
		return ""
	}
}

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	storage service.ObjectStorage
	policy  UploadPolicy
	logger  *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Storage service.ObjectStorage `optional:"true"`
	Config  *config.Config
	Logger  *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	var policy UploadPolicy
	if cfg := params.Config.Storage; cfg != nil {
		policy = UploadPolicy{
			MaxSize:    cfg.MaxUploadSize,
			Allowed:    cfg.AllowedTypes,
			Disallowed: cfg.DisallowedTypes,
		}
	}

	return &uploadService{
		storage: params.Storage,
		policy:  policy,
		logger:  params.Logger,
	}
}

// Upload checks file against the upload policy and stores it under folder.
func (srv *uploadService) Upload(ctx context.Context, folder string, file *usecase.FileUpload) (*entity.UploadedFile, error) {
	if srv.storage == nil {
		return nil, errors.New("object storage is not configured")
	}

	if _, err := srv.policy.Check(file.ContentType, file.Name, file.Size); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Upload refused",
			slog.String("name", file.Name), slog.String("content_type", file.ContentType), slog.Int64("size", file.Size))

		return nil, err
	}

	ext := util.FileExtension(file.Name)
	key := path.Join(folder, ksuid.New().String()+"."+ext)

	if err := srv.storage.Put(ctx, key, file.Content, file.Size, file.ContentType); err != nil {
		return nil, errors.Wrap(err, "failed to store upload")
	}

	return &entity.UploadedFile{
		Key: key,
		URL: srv.storage.URL(key),
		Metadata: entity.UploadMetadata{
			MimeType:     file.ContentType,
			Size:         util.FormatBytes(file.Size),
			OriginalName: file.Name,
			Extension:    ext,
		},
	}, nil
}

// Remove deletes a stored upload.
func (srv *uploadService) Remove(ctx context.Context, key string) error {
	if srv.storage == nil || key == "" {
		return nil
	}

	return errors.Wrap(srv.storage.Remove(ctx, key), "failed to remove upload")
}
