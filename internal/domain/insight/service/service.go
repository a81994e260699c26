package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vadim/neo-insights/internal/domain/insight/dao"
	"github.com/vadim/neo-insights/internal/domain/insight/entity"
)

// Service loads export documents into immutable datasets and serves the current one
type Service struct {
	source dao.ExportSource
	logger *slog.Logger
	now    func() time.Time

	current atomic.Pointer[entity.Dataset]
}

// New creates a new insight service
func New(source dao.ExportSource, logger *slog.Logger) *Service {
	return &Service{
		source: source,
		logger: logger,
		now:    time.Now,
	}
}

// Load fetches all export documents concurrently and builds a dataset.
// Any failure of a required document aborts the load. The prior-day posts
// are optional and fall back to an empty collection.
func (s *Service) Load(ctx context.Context) (*entity.Dataset, error) {
	var (
		posts     []rawPost
		followers []rawFollower
		daily     []rawDaily
		meta      entity.Meta
		yesterday []rawPost
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.fetchJSON(gctx, dao.DocPosts, &posts) })
	g.Go(func() error { return s.fetchJSON(gctx, dao.DocFollowers, &followers) })
	g.Go(func() error { return s.fetchJSON(gctx, dao.DocDailyReport, &daily) })
	g.Go(func() error { return s.fetchJSON(gctx, dao.DocMeta, &meta) })
	g.Go(func() error {
		if err := s.fetchJSON(gctx, dao.DocPostsYesterday, &yesterday); err != nil {
			s.logger.Warn("optional export unavailable, using empty collection",
				"document", dao.DocPostsYesterday,
				"error", err,
			)
			yesterday = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ds := &entity.Dataset{
		ID:        uuid.New().String(),
		LoadedAt:  s.now(),
		Meta:      meta,
		Followers: make([]entity.FollowerSnapshot, len(followers)),
		Daily:     make([]entity.DailyReportEntry, len(daily)),
	}

	var issues, yIssues []entity.DataIssue
	ds.Posts, issues = normalizePosts("posts", posts)
	ds.PostsYesterday, yIssues = normalizePosts("posts_yesterday", yesterday)
	ds.Issues = append(issues, yIssues...)

	for i, f := range followers {
		ds.Followers[i] = f.snapshot()
	}
	for i, d := range daily {
		ds.Daily[i] = d.entry()
	}

	for _, issue := range ds.Issues {
		s.logger.Warn("export data issue",
			"kind", issue.Kind,
			"collection", issue.Collection,
			"key", issue.Key,
			"index", issue.Index,
		)
	}

	return ds, nil
}

// Reload loads a new dataset and makes it current. On failure the previous
// dataset stays current.
func (s *Service) Reload(ctx context.Context) (*entity.Dataset, error) {
	start := time.Now()

	ds, err := s.Load(ctx)
	if err != nil {
		s.logger.Error("dataset reload failed", "error", err)
		return nil, err
	}

	s.current.Store(ds)
	s.logger.Info("dataset loaded",
		"dataset_id", ds.ID,
		"posts", len(ds.Posts),
		"followers", len(ds.Followers),
		"daily", len(ds.Daily),
		"posts_yesterday", len(ds.PostsYesterday),
		"issues", len(ds.Issues),
		"duration", time.Since(start).String(),
	)
	return ds, nil
}

// Current returns the dataset in use
func (s *Service) Current() (*entity.Dataset, error) {
	ds := s.current.Load()
	if ds == nil {
		return nil, entity.ErrDatasetNotLoaded
	}
	return ds, nil
}

// Ready reports whether a dataset has been loaded
func (s *Service) Ready() bool {
	return s.current.Load() != nil
}

func (s *Service) fetchJSON(ctx context.Context, name string, out any) error {
	body, err := s.source.Fetch(ctx, name)
	if err != nil {
		return fmt.Errorf("loading %s: %w", name, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("loading %s: %w: %w", name, entity.ErrMalformedSource, err)
	}
	return nil
}
