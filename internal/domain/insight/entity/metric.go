package entity

// Metric names a numeric post field
type Metric string

const (
	MetricReach    Metric = "reach"
	MetricViews    Metric = "views"
	MetricLikes    Metric = "likes"
	MetricSaves    Metric = "saves"
	MetricShares   Metric = "shares"
	MetricComments Metric = "comments"
	MetricFollows  Metric = "follows"

	MetricEngagementRate Metric = "engagement_rate"
	MetricSaveRate       Metric = "save_rate"
	MetricShareRate      Metric = "share_rate"
	MetricFollowRate     Metric = "follow_rate"
	MetricCompositeScore Metric = "composite_score"
	MetricRank           Metric = "rank"
)

// CountMetrics are the raw counters, in display order
var CountMetrics = []Metric{
	MetricReach,
	MetricViews,
	MetricLikes,
	MetricSaves,
	MetricShares,
	MetricComments,
	MetricFollows,
}

// ParseMetric validates a metric name
func ParseMetric(s string) (Metric, error) {
	switch m := Metric(s); m {
	case MetricReach, MetricViews, MetricLikes, MetricSaves, MetricShares, MetricComments, MetricFollows,
		MetricEngagementRate, MetricSaveRate, MetricShareRate, MetricFollowRate, MetricCompositeScore, MetricRank:
		return m, nil
	default:
		return "", ErrInvalidMetric
	}
}
