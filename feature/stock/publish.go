package stock

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"uniform-manager/core/storage"
)

// ErrStorageDisabled is returned by Publish when no storage client is configured.
var ErrStorageDisabled = errors.New("object storage is not configured")

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PublishResult describes an uploaded workbook.
type PublishResult struct {
	Bucket string `json:"bucket"`
	Object string `json:"object"`
	Size   int64  `json:"size"`
	ETag   string `json:"etag"`
}

// Export builds the workbook for the current snapshot.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Workbook(snap)
}

// Publish uploads the current workbook to object storage for the forecasting job.
func (s *Service) Publish(ctx context.Context) (*PublishResult, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}

	data, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}
	if err := storage.EnsureBucket(ctx, s.client, s.bucket, s.region); err != nil {
		return nil, err
	}

	info, err := s.client.PutObject(ctx, s.bucket, s.cfg.Object, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: xlsxContentType})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", s.cfg.Object, err)
	}

	s.logger.Info("Published stock snapshot",
		zap.String("bucket", s.bucket),
		zap.String("object", s.cfg.Object),
		zap.Int("bytes", len(data)))
	return &PublishResult{Bucket: s.bucket, Object: s.cfg.Object, Size: int64(len(data)), ETag: info.ETag}, nil
}
