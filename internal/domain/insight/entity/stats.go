package entity

// MetricSummary is the null-aware summary of one metric over a set of posts
type MetricSummary struct {
	Count   int     `json:"count"` // Number of posts with a value
	Sum     float64 `json:"sum"`
	Average float64 `json:"average"` // Sum / Count, 0 for no values
}

// AggregateStats represents aggregated statistics over a set of posts
type AggregateStats struct {
	PostCount int `json:"post_count"`

	Reach    MetricSummary `json:"reach"`
	Views    MetricSummary `json:"views"`
	Likes    MetricSummary `json:"likes"`
	Saves    MetricSummary `json:"saves"`
	Shares   MetricSummary `json:"shares"`
	Comments MetricSummary `json:"comments"`
	Follows  MetricSummary `json:"follows"`

	EngagementRate MetricSummary `json:"engagement_rate"`
	SaveRate       MetricSummary `json:"save_rate"`
	ShareRate      MetricSummary `json:"share_rate"`
	FollowRate     MetricSummary `json:"follow_rate"`
	CompositeScore MetricSummary `json:"composite_score"`

	TotalEngagement      int64   `json:"total_engagement"`        // likes+saves+shares+comments
	AvgEngagementPerPost float64 `json:"avg_engagement_per_post"` // TotalEngagement / PostCount
}

// Summary returns the summary for a metric
func (s AggregateStats) Summary(m Metric) (MetricSummary, bool) {
	switch m {
	case MetricReach:
		return s.Reach, true
	case MetricViews:
		return s.Views, true
	case MetricLikes:
		return s.Likes, true
	case MetricSaves:
		return s.Saves, true
	case MetricShares:
		return s.Shares, true
	case MetricComments:
		return s.Comments, true
	case MetricFollows:
		return s.Follows, true
	case MetricEngagementRate:
		return s.EngagementRate, true
	case MetricSaveRate:
		return s.SaveRate, true
	case MetricShareRate:
		return s.ShareRate, true
	case MetricFollowRate:
		return s.FollowRate, true
	case MetricCompositeScore:
		return s.CompositeScore, true
	default:
		return MetricSummary{}, false
	}
}

// Group is an aggregate over a subset of posts sharing a key
type Group struct {
	Key   string         `json:"key"`
	Stats AggregateStats `json:"stats"`
}

// BestPerformer names the group that leads a metric
type BestPerformer struct {
	Metric Metric  `json:"metric"`
	Key    string  `json:"key"`
	Value  float64 `json:"value"`
}

// RankedPost is a post with its position under the current sort
type RankedPost struct {
	Post
	Position int                `json:"position"`
	Deltas   map[Metric]float64 `json:"deltas,omitempty"` // Change since the previous day's export
}
