// Package storage stores uploaded files in an S3-compatible object store.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"apikit/config"
	"apikit/internal/domain/lifecycle"
	"apikit/internal/domain/service"
	"apikit/internal/errors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/fx"
)

// minioStorage implements ObjectStorage on MinIO
type minioStorage struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// Params defines the parameters for the object storage
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewMinioStorage creates the storage client and makes sure the bucket exists on start.
// It returns nil when storage is not configured; uploads are then refused.
func NewMinioStorage(params Params) (service.ObjectStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.Endpoint == "" || cfg.Bucket == "" {
		params.Logger.Warn("Object storage is not configured, uploads are disabled")

		return nil, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MinIO client")
	}

	s := &minioStorage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: publicBaseURL(cfg),
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return s.ensureBucket(ctx, params.Logger)
		},
	})

	return s, nil
}

func (s *minioStorage) ensureBucket(ctx context.Context, logger *slog.Logger) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return errors.Wrapf(err, "check bucket %s", s.bucket)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return errors.Wrapf(err, "create bucket %s", s.bucket)
	}
	logger.Info("Created storage bucket", slog.String("bucket", s.bucket))

	return nil
}

func (s *minioStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})

	return errors.Wrapf(err, "put object %s", key)
}

func (s *minioStorage) Remove(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil && minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return nil
	}

	return errors.Wrapf(err, "remove object %s", key)
}

func (s *minioStorage) URL(key string) string {
	return objectURL(s.baseURL, key)
}

func publicBaseURL(cfg *config.StorageConfig) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
}

func objectURL(base, key string) string {
	segments := strings.Split(strings.TrimLeft(key, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}

	return base + "/" + strings.Join(segments, "/")
}
