package dao

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/vadim/neo-insights/internal/domain/insight/entity"
	"github.com/vadim/neo-insights/internal/httpx/upstream/exports"
	"github.com/vadim/neo-insights/internal/retry"
)

// DocumentGetter is the upstream client used by HTTPSource
type DocumentGetter interface {
	Get(ctx context.Context, name string) ([]byte, error)
}

// HTTPSource reads export documents from a static web host, retrying
// transport failures and 5xx/429 responses
type HTTPSource struct {
	client DocumentGetter
	retry  retry.Config
	logger *slog.Logger
}

// NewHTTPSource creates a new HTTP export source
func NewHTTPSource(client DocumentGetter, cfg retry.Config, logger *slog.Logger) *HTTPSource {
	return &HTTPSource{
		client: client,
		retry:  cfg,
		logger: logger,
	}
}

// Fetch downloads the named document
func (s *HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	var body []byte
	err := retry.Do(ctx, s.logger, "fetch "+name, func() error {
		b, err := s.client.Get(ctx, name)
		if err != nil {
			var se *exports.StatusError
			if errors.As(err, &se) {
				if se.StatusCode == http.StatusNotFound {
					return retry.Permanent(fmt.Errorf("%s: %w", name, entity.ErrSourceNotFound))
				}
				if !se.Temporary() {
					return retry.Permanent(err)
				}
			}
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
