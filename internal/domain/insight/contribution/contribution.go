// Package contribution attributes metric totals to the epoch after the milestone.
package contribution

import (
	"slices"
	"time"

	"github.com/vadim/neo-insights/internal/domain/insight/aggregate"
	"github.com/vadim/neo-insights/internal/domain/insight/entity"
	"github.com/vadim/neo-insights/internal/domain/insight/period"
)

// HighlightCount is how many leading metrics Rank flags
const HighlightCount = 3

// Share computes the part of a metric's total produced by posts dated on or
// after the milestone. Undated posts count toward the before bucket so the two
// buckets always add up to the total.
func Share(posts []entity.Post, metric entity.Metric, milestone time.Time) entity.Contribution {
	after := aggregate.Select(posts, func(p entity.Post) bool {
		return period.Classify(p.Date, period.ModeMilestoneAfter, milestone)
	})

	c := entity.Contribution{
		Metric:              metric,
		TotalAll:            aggregate.Sum(aggregate.Values(posts, metric)),
		TotalAfterMilestone: aggregate.Sum(aggregate.Values(after, metric)),
	}
	c.TotalBeforeMilestone = c.TotalAll - c.TotalAfterMilestone
	if c.TotalAll > 0 {
		c.Percentage = c.TotalAfterMilestone / c.TotalAll * 100
	}
	return c
}

// Rank computes Share for every count metric and orders them by percentage,
// keeping metric-list order among ties. The first HighlightCount are highlighted.
func Rank(posts []entity.Post, milestone time.Time) []entity.Contribution {
	out := make([]entity.Contribution, 0, len(entity.CountMetrics))
	for _, m := range entity.CountMetrics {
		out = append(out, Share(posts, m, milestone))
	}

	slices.SortStableFunc(out, func(a, b entity.Contribution) int {
		switch {
		case a.Percentage > b.Percentage:
			return -1
		case a.Percentage < b.Percentage:
			return 1
		default:
			return 0
		}
	})

	for i := range out {
		out[i].Highlighted = i < HighlightCount
	}
	return out
}
