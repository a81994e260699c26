// Package aggregate computes null-aware statistics over posts.
package aggregate

import (
	"github.com/vadim/neo-insights/internal/domain/insight/entity"
)

// Sum adds all present values; missing values count as 0
func Sum(values []*float64) float64 {
	var total float64
	for _, v := range values {
		if v != nil {
			total += *v
		}
	}
	return total
}

// Average is the mean of the present values only, 0 when there are none
func Average(values []*float64) float64 {
	var total float64
	n := 0
	for _, v := range values {
		if v != nil {
			total += *v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// Values extracts a metric from each post, nil where the post has no value
func Values(posts []entity.Post, m entity.Metric) []*float64 {
	out := make([]*float64, len(posts))
	for i := range posts {
		if v, ok := posts[i].Value(m); ok {
			out[i] = &v
		}
	}
	return out
}

// Present returns only the present values of a metric
func Present(posts []entity.Post, m entity.Metric) []float64 {
	out := make([]float64, 0, len(posts))
	for i := range posts {
		if v, ok := posts[i].Value(m); ok {
			out = append(out, v)
		}
	}
	return out
}

// Summarize computes count, sum and average of one metric
func Summarize(posts []entity.Post, m entity.Metric) entity.MetricSummary {
	var s entity.MetricSummary
	for i := range posts {
		if v, ok := posts[i].Value(m); ok {
			s.Count++
			s.Sum += v
		}
	}
	if s.Count > 0 {
		s.Average = s.Sum / float64(s.Count)
	}
	return s
}

// Aggregate computes the statistics of a set of posts. Rates are averaged from
// each post's precomputed rate, never recomputed from raw counts.
func Aggregate(posts []entity.Post) entity.AggregateStats {
	stats := entity.AggregateStats{
		PostCount: len(posts),

		Reach:    Summarize(posts, entity.MetricReach),
		Views:    Summarize(posts, entity.MetricViews),
		Likes:    Summarize(posts, entity.MetricLikes),
		Saves:    Summarize(posts, entity.MetricSaves),
		Shares:   Summarize(posts, entity.MetricShares),
		Comments: Summarize(posts, entity.MetricComments),
		Follows:  Summarize(posts, entity.MetricFollows),

		EngagementRate: Summarize(posts, entity.MetricEngagementRate),
		SaveRate:       Summarize(posts, entity.MetricSaveRate),
		ShareRate:      Summarize(posts, entity.MetricShareRate),
		FollowRate:     Summarize(posts, entity.MetricFollowRate),
		CompositeScore: Summarize(posts, entity.MetricCompositeScore),
	}

	for i := range posts {
		stats.TotalEngagement += posts[i].Engagement()
	}
	if stats.PostCount > 0 {
		stats.AvgEngagementPerPost = float64(stats.TotalEngagement) / float64(stats.PostCount)
	}

	return stats
}

// Select returns the posts matching keep, in order, as a new slice
func Select(posts []entity.Post, keep func(entity.Post) bool) []entity.Post {
	out := make([]entity.Post, 0, len(posts))
	for _, p := range posts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
