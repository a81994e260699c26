package policy

import (
	"context"
	"time"

	"github.com/vadim/neo-insights/internal/domain/insight/aggregate"
	"github.com/vadim/neo-insights/internal/domain/insight/benchmark"
	"github.com/vadim/neo-insights/internal/domain/insight/comparison"
	"github.com/vadim/neo-insights/internal/domain/insight/contribution"
	"github.com/vadim/neo-insights/internal/domain/insight/diagnosis"
	"github.com/vadim/neo-insights/internal/domain/insight/entity"
	"github.com/vadim/neo-insights/internal/domain/insight/period"
)

// DatasetProvider defines the interface for obtaining the loaded dataset
// This interface is defined here (consumer) not in the service package (provider)
type DatasetProvider interface {
	Current() (*entity.Dataset, error)
	Reload(ctx context.Context) (*entity.Dataset, error)
}

// Policy orchestrates insight use-cases over the current dataset.
// Every query takes a ViewContext; nothing about a view is kept between calls.
type Policy struct {
	datasets DatasetProvider
}

// New creates a new insight policy
func New(datasets DatasetProvider) *Policy {
	return &Policy{datasets: datasets}
}

// view is the dataset narrowed to a ViewContext
type view struct {
	ds    *entity.Dataset
	vc    entity.ViewContext
	posts []entity.Post
}

func (p *Policy) view(vc entity.ViewContext) (*view, error) {
	ds, err := p.datasets.Current()
	if err != nil {
		return nil, err
	}
	if vc.Milestone.IsZero() {
		vc.Milestone = period.DefaultMilestone
	}
	if vc.Scope == "" {
		vc.Scope = entity.ScopeAll
	}
	if vc.Now.IsZero() {
		vc.Now = time.Now()
	}

	return &view{
		ds:    ds,
		vc:    vc,
		posts: aggregate.Select(ds.Posts, period.Scope(vc.Scope, vc.Milestone)),
	}, nil
}

// OverviewOutput is the headline KPI set of a view
type OverviewOutput struct {
	DatasetID string                `json:"dataset_id"`
	Meta      entity.Meta           `json:"meta"`
	Scope     entity.Scope          `json:"scope"`
	Milestone string                `json:"milestone"`
	Stats     entity.AggregateStats `json:"stats"`
	Grades    []entity.GradedValue  `json:"grades"`

	Followers      *int64   `json:"followers"`
	FollowerChange *int64   `json:"follower_change"` // Last snapshot minus the one before
	ReachRate      *float64 `json:"reach_rate"`      // Average reach as % of followers

	DailyChanges               map[entity.DailyField]entity.Change `json:"daily_changes"`
	AvgReachPerPostChange      *entity.Change                      `json:"avg_reach_per_post_change"`
	AvgEngagementPerPostChange *entity.Change                      `json:"avg_engagement_per_post_change"`

	TopPost *entity.Post       `json:"top_post"`
	Issues  []entity.DataIssue `json:"issues"`
}

// dailyChangeFields are the report columns compared day over day on the overview
var dailyChangeFields = []entity.DailyField{
	entity.DailyTotalReach,
	entity.DailyTotalViews,
	entity.DailyTotalLikes,
	entity.DailyTotalSaves,
	entity.DailyTotalShares,
	entity.DailyTotalComments,
	entity.DailyTotalEngagement,
	entity.DailyAvgEngagementRate,
	entity.DailyAvgSaveRate,
	entity.DailyAvgShareRate,
}

// Overview computes the headline KPIs of a view
func (p *Policy) Overview(vc entity.ViewContext) (*OverviewOutput, error) {
	v, err := p.view(vc)
	if err != nil {
		return nil, err
	}

	stats := aggregate.Aggregate(v.posts)
	out := &OverviewOutput{
		DatasetID:    v.ds.ID,
		Meta:         v.ds.Meta,
		Scope:        v.vc.Scope,
		Milestone:    v.vc.Milestone.Format(time.DateOnly),
		Stats:        stats,
		DailyChanges: make(map[entity.DailyField]entity.Change),
		Issues:       v.ds.Issues,
	}

	followers, ok := v.ds.LatestFollowers()
	if ok {
		out.Followers = &followers
		rate := benchmark.ReachRate(stats.Reach.Average, followers)
		out.ReachRate = &rate
	}
	if n := len(v.ds.Followers); n >= 2 {
		change := v.ds.Followers[n-1].Count() - v.ds.Followers[n-2].Count()
		out.FollowerChange = &change
	}
	out.Grades = benchmark.GradeAll(stats, followers)

	for _, f := range dailyChangeFields {
		if c, ok := comparison.DailyChange(v.ds.Daily, f); ok {
			out.DailyChanges[f] = c
		}
	}
	if c, ok := comparison.AvgPerPostChange(v.ds.Daily, entity.DailyTotalReach); ok {
		out.AvgReachPerPostChange = &c
	}
	if c, ok := comparison.AvgPerPostChange(v.ds.Daily, entity.DailyTotalEngagement); ok {
		out.AvgEngagementPerPostChange = &c
	}

	if top := aggregate.Top(v.posts, 1); len(top) == 1 && top[0].Rank != nil {
		post := top[0].Post
		out.TopPost = &post
	}

	return out, nil
}

// PostsInput selects ordering and filtering of the post list
type PostsInput struct {
	Sort   string
	Dir    aggregate.SortDir
	Filter aggregate.PostFilter
}

// PostsOutput is an ordered post list
type PostsOutput struct {
	Posts []entity.RankedPost `json:"posts"`
	Total int                 `json:"total"`
	// Natural keys that could not be joined with the prior-day export
	AmbiguousKeys []string `json:"ambiguous_keys,omitempty"`
}

// Posts ranks the posts of a view, then applies the filter. Positions are
// assigned before filtering so they stay comparable across filters.
func (p *Policy) Posts(vc entity.ViewContext, in PostsInput) (*PostsOutput, error) {
	v, err := p.view(vc)
	if err != nil {
		return nil, err
	}

	if in.Sort == "" {
		in.Sort = aggregate.SortByRank
	}
	switch in.Dir {
	case "":
		in.Dir = aggregate.SortDesc
		if in.Sort == aggregate.SortByRank {
			in.Dir = aggregate.SortAsc
		}
	case aggregate.SortAsc, aggregate.SortDesc:
	default:
		return nil, entity.ErrInvalidSortDir
	}

	ranked, err := aggregate.Rank(v.posts, in.Sort, in.Dir)
	if err != nil {
		return nil, err
	}

	deltas, ambiguous := comparison.PostDeltas(v.ds.Posts, v.ds.PostsYesterday)

	out := &PostsOutput{Posts: make([]entity.RankedPost, 0, len(ranked)), AmbiguousKeys: ambiguous}
	for _, rp := range ranked {
		if !in.Filter.Match(rp.Post) {
			continue
		}
		rp.Deltas = deltas[rp.ID]
		out.Posts = append(out.Posts, rp)
	}
	out.Total = len(out.Posts)

	return out, nil
}

// Post returns one post by ID. Lookups ignore the view scope.
func (p *Policy) Post(id string) (*entity.Post, error) {
	ds, err := p.datasets.Current()
	if err != nil {
		return nil, err
	}
	post, err := ds.PostByID(id)
	if err != nil {
		return nil, err
	}
	out := *post
	return &out, nil
}

// Diagnose positions a post within the posts of a view
func (p *Policy) Diagnose(vc entity.ViewContext, id string) (*entity.DiagnosisResult, error) {
	v, err := p.view(vc)
	if err != nil {
		return nil, err
	}
	post, err := v.ds.PostByID(id)
	if err != nil {
		return nil, err
	}

	res := diagnosis.Diagnose(*post, v.posts)
	return &res, nil
}

// bestMetrics lists the metrics a breakdown names a leader for
var bestMetrics = map[aggregate.Dimension][]entity.Metric{
	aggregate.DimensionCategory:  {entity.MetricEngagementRate, entity.MetricReach, entity.MetricSaves},
	aggregate.DimensionMediaType: {entity.MetricReach, entity.MetricSaveRate, entity.MetricShareRate},
	aggregate.DimensionWeekday:   {entity.MetricReach, entity.MetricSaves},
}

// BreakdownOutput groups a view by one dimension
type BreakdownOutput struct {
	Dimension aggregate.Dimension    `json:"dimension"`
	Groups    []entity.Group         `json:"groups"`
	Best      []entity.BestPerformer `json:"best"`
}

// Breakdown groups the posts of a view by category, media type or weekday
func (p *Policy) Breakdown(vc entity.ViewContext, dim aggregate.Dimension) (*BreakdownOutput, error) {
	v, err := p.view(vc)
	if err != nil {
		return nil, err
	}
	if _, err := aggregate.ParseDimension(string(dim)); err != nil {
		return nil, err
	}

	out := &BreakdownOutput{
		Dimension: dim,
		Groups:    aggregate.Breakdown(v.posts, dim),
		Best:      []entity.BestPerformer{},
	}
	for _, m := range bestMetrics[dim] {
		if best, ok := aggregate.BestBy(out.Groups, m); ok {
			out.Best = append(out.Best, best)
		}
	}
	return out, nil
}

// PeriodsOutput buckets a view by calendar window
type PeriodsOutput struct {
	Mode    period.Mode    `json:"mode"`
	Periods []entity.Group `json:"periods"`
	Undated int            `json:"undated"` // Posts left out because their date did not parse
}

// Periods aggregates the posts of a view per day, ISO week, month or year
func (p *Policy) Periods(vc entity.ViewContext, mode period.Mode) (*PeriodsOutput, error) {
	v, err := p.view(vc)
	if err != nil {
		return nil, err
	}
	switch mode {
	case period.ModeDay, period.ModeISOWeek, period.ModeMonth, period.ModeYear:
	default:
		return nil, entity.ErrInvalidMode
	}

	out := &PeriodsOutput{
		Mode:    mode,
		Periods: aggregate.GroupByPeriod(v.posts, mode),
	}
	for i := range v.posts {
		if !v.posts[i].HasDate() {
			out.Undated++
		}
	}
	return out, nil
}

// Followers summarises follower growth. Follower history is account-wide and
// not narrowed by the view scope.
func (p *Policy) Followers() (*entity.FollowerGrowth, error) {
	ds, err := p.datasets.Current()
	if err != nil {
		return nil, err
	}
	g := comparison.FollowerGrowth(ds.Followers)
	return &g, nil
}

// FollowInflow compares follow inflow of the windows around vc.Now
func (p *Policy) FollowInflow(vc entity.ViewContext) (*entity.FollowInflow, error) {
	v, err := p.view(vc)
	if err != nil {
		return nil, err
	}
	res := comparison.CompareFollowInflow(v.posts, v.ds.Followers, v.vc.Now)
	return &res, nil
}

// ContributionOutput ranks metrics by the share produced after the milestone
type ContributionOutput struct {
	Milestone     string                `json:"milestone"`
	Contributions []entity.Contribution `json:"contributions"`
}

// Contribution attributes metric totals to the epoch after the milestone.
// It always covers every post; the scope would make the split meaningless.
func (p *Policy) Contribution(vc entity.ViewContext) (*ContributionOutput, error) {
	v, err := p.view(vc)
	if err != nil {
		return nil, err
	}
	return &ContributionOutput{
		Milestone:     v.vc.Milestone.Format(time.DateOnly),
		Contributions: contribution.Rank(v.ds.Posts, v.vc.Milestone),
	}, nil
}

// Benchmarks returns the reference grading tables
func (p *Policy) Benchmarks() []entity.BenchmarkTable {
	return benchmark.Tables()
}

// ReloadOutput describes a freshly loaded dataset
type ReloadOutput struct {
	DatasetID string             `json:"dataset_id"`
	LoadedAt  time.Time          `json:"loaded_at"`
	Posts     int                `json:"posts"`
	Issues    []entity.DataIssue `json:"issues"`
}

// Reload loads the exports again and swaps the dataset
func (p *Policy) Reload(ctx context.Context) (*ReloadOutput, error) {
	ds, err := p.datasets.Reload(ctx)
	if err != nil {
		return nil, err
	}
	return &ReloadOutput{
		DatasetID: ds.ID,
		LoadedAt:  ds.LoadedAt,
		Posts:     len(ds.Posts),
		Issues:    ds.Issues,
	}, nil
}
