package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vadim/neo-insights/internal/domain/insight/aggregate"
	"github.com/vadim/neo-insights/internal/domain/insight/entity"
	"github.com/vadim/neo-insights/internal/domain/insight/period"
	"github.com/vadim/neo-insights/internal/domain/insight/policy"
	"github.com/vadim/neo-insights/internal/httpx/response"
)

// InsightPolicy defines the interface for insight operations
// Interface is defined by consumer (handler), not provider (policy)
type InsightPolicy interface {
	Overview(vc entity.ViewContext) (*policy.OverviewOutput, error)
	Posts(vc entity.ViewContext, in policy.PostsInput) (*policy.PostsOutput, error)
	Post(id string) (*entity.Post, error)
	Diagnose(vc entity.ViewContext, id string) (*entity.DiagnosisResult, error)
	Breakdown(vc entity.ViewContext, dim aggregate.Dimension) (*policy.BreakdownOutput, error)
	Periods(vc entity.ViewContext, mode period.Mode) (*policy.PeriodsOutput, error)
	Followers() (*entity.FollowerGrowth, error)
	FollowInflow(vc entity.ViewContext) (*entity.FollowInflow, error)
	Contribution(vc entity.ViewContext) (*policy.ContributionOutput, error)
	Benchmarks() []entity.BenchmarkTable
	Reload(ctx context.Context) (*policy.ReloadOutput, error)
}

// InsightHandler handles HTTP requests for insights
type InsightHandler struct {
	policy    InsightPolicy
	milestone time.Time
	location  *time.Location
	now       func() time.Time
}

// NewInsightHandler creates a new insight handler. milestone is used when a
// request does not name one; location decides which calendar day "today" is.
func NewInsightHandler(p InsightPolicy, milestone time.Time, location *time.Location) *InsightHandler {
	if location == nil {
		location = time.UTC
	}
	return &InsightHandler{
		policy:    p,
		milestone: milestone,
		location:  location,
		now:       time.Now,
	}
}

// RegisterRoutes registers insight routes
func (h *InsightHandler) RegisterRoutes(r chi.Router) {
	r.Get("/overview", h.Overview())
	r.Route("/posts", func(r chi.Router) {
		r.Get("/", h.ListPosts())
		r.Get("/{id}", h.GetPost())
		r.Get("/{id}/diagnosis", h.Diagnose())
	})
	r.Get("/breakdowns/{dimension}", h.Breakdown())
	r.Get("/periods", h.Periods())
	r.Get("/followers", h.Followers())
	r.Get("/follow-inflow", h.FollowInflow())
	r.Get("/contribution", h.Contribution())
	r.Get("/benchmarks", h.Benchmarks())
	r.Post("/reload", h.Reload())
}

// viewContext builds the view from the scope and milestone query parameters
func (h *InsightHandler) viewContext(r *http.Request) (entity.ViewContext, error) {
	q := r.URL.Query()

	scope, err := entity.ParseScope(q.Get("scope"))
	if err != nil {
		return entity.ViewContext{}, err
	}

	milestone := h.milestone
	if s := q.Get("milestone"); s != "" {
		milestone, err = time.Parse(time.DateOnly, s)
		if err != nil {
			return entity.ViewContext{}, entity.ErrInvalidMilestone
		}
	}

	return entity.ViewContext{
		Milestone: milestone,
		Scope:     scope,
		Now:       h.now().In(h.location),
	}, nil
}

// Overview handles GET /overview
func (h *InsightHandler) Overview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vc, err := h.viewContext(r)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		out, err := h.policy.Overview(vc)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, out)
	}
}

// ListPosts handles GET /posts
// Query params: scope, milestone, sort, dir, category, type, q
func (h *InsightHandler) ListPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vc, err := h.viewContext(r)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		q := r.URL.Query()
		out, err := h.policy.Posts(vc, policy.PostsInput{
			Sort: q.Get("sort"),
			Dir:  aggregate.SortDir(q.Get("dir")),
			Filter: aggregate.PostFilter{
				Category:  q.Get("category"),
				MediaType: entity.MediaType(q.Get("type")),
				Search:    q.Get("q"),
			},
		})
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, out)
	}
}

// GetPost handles GET /posts/{id}
func (h *InsightHandler) GetPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := h.policy.Post(chi.URLParam(r, "id"))
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, post)
	}
}

// Diagnose handles GET /posts/{id}/diagnosis
func (h *InsightHandler) Diagnose() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vc, err := h.viewContext(r)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		res, err := h.policy.Diagnose(vc, chi.URLParam(r, "id"))
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, res)
	}
}

// Breakdown handles GET /breakdowns/{dimension}
func (h *InsightHandler) Breakdown() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dim, err := aggregate.ParseDimension(chi.URLParam(r, "dimension"))
		if err != nil {
			handleDomainError(w, err)
			return
		}
		vc, err := h.viewContext(r)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		out, err := h.policy.Breakdown(vc, dim)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, out)
	}
}

// Periods handles GET /periods?mode=day|iso_week|month|year
func (h *InsightHandler) Periods() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("mode")
		if raw == "" {
			raw = string(period.ModeMonth)
		}
		mode, err := period.ParseMode(raw)
		if err != nil {
			handleDomainError(w, err)
			return
		}
		vc, err := h.viewContext(r)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		out, err := h.policy.Periods(vc, mode)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, out)
	}
}

// Followers handles GET /followers
func (h *InsightHandler) Followers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := h.policy.Followers()
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, out)
	}
}

// FollowInflow handles GET /follow-inflow
func (h *InsightHandler) FollowInflow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vc, err := h.viewContext(r)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		out, err := h.policy.FollowInflow(vc)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, out)
	}
}

// Contribution handles GET /contribution
func (h *InsightHandler) Contribution() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vc, err := h.viewContext(r)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		out, err := h.policy.Contribution(vc)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, out)
	}
}

// Benchmarks handles GET /benchmarks
func (h *InsightHandler) Benchmarks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]any{"tables": h.policy.Benchmarks()})
	}
}

// Reload handles POST /reload
func (h *InsightHandler) Reload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := h.policy.Reload(r.Context())
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, out)
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrPostNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, entity.ErrInvalidMetric), errors.Is(err, entity.ErrInvalidMode),
		errors.Is(err, entity.ErrInvalidScope), errors.Is(err, entity.ErrInvalidDimension),
		errors.Is(err, entity.ErrInvalidSortDir), errors.Is(err, entity.ErrInvalidMilestone):
		response.BadRequest(w, err.Error())
	case errors.Is(err, entity.ErrDatasetNotLoaded):
		response.ServiceUnavailable(w, err.Error())
	case errors.Is(err, entity.ErrSourceNotFound), errors.Is(err, entity.ErrMalformedSource):
		response.BadGateway(w, err.Error())
	default:
		response.InternalError(w, "internal server error")
	}
}
