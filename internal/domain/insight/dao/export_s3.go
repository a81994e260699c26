package dao

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vadim/neo-insights/internal/domain/insight/entity"
	"github.com/vadim/neo-insights/internal/retry"
	"github.com/vadim/neo-insights/internal/storage"
)

// ObjectReader is the object storage used by S3Source
type ObjectReader interface {
	GetObject(ctx context.Context, name string) ([]byte, error)
}

// S3Source reads export documents from an S3-compatible bucket
type S3Source struct {
	store  ObjectReader
	retry  retry.Config
	logger *slog.Logger
}

// NewS3Source creates a new S3 export source
func NewS3Source(store ObjectReader, cfg retry.Config, logger *slog.Logger) *S3Source {
	return &S3Source{
		store:  store,
		retry:  cfg,
		logger: logger,
	}
}

// Fetch downloads the named document
func (s *S3Source) Fetch(ctx context.Context, name string) ([]byte, error) {
	var body []byte
	err := retry.Do(ctx, s.logger, "get object "+name, func() error {
		b, err := s.store.GetObject(ctx, name)
		if errors.Is(err, storage.ErrObjectNotFound) {
			return retry.Permanent(fmt.Errorf("%s: %w", name, entity.ErrSourceNotFound))
		}
		if err != nil {
			return err
		}
		body = b
		return nil
	}, s.retry)
	if err != nil {
		return nil, err
	}

	return body, nil
}
