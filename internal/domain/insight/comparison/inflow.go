// Package comparison compares windows, days and snapshots with their predecessors.
package comparison

import (
	"time"

	"github.com/vadim/neo-insights/internal/domain/insight/entity"
	"github.com/vadim/neo-insights/internal/domain/insight/period"
)

// CompareFollowInflow sums post follows for the current and previous day,
// ISO week, month and year around now. A granularity is unavailable when
// neither window has a post reporting follows. The daily result falls back to
// the net change between the last two follower snapshots in that case.
func CompareFollowInflow(posts []entity.Post, followers []entity.FollowerSnapshot, now time.Time) entity.FollowInflow {
	today := period.Today(now)

	res := entity.FollowInflow{
		Daily:   compareWindow(posts, period.ModeDay, today),
		Weekly:  compareWindow(posts, period.ModeISOWeek, today),
		Monthly: compareWindow(posts, period.ModeMonth, today),
		Yearly:  compareWindow(posts, period.ModeYear, today),
	}
	if !res.Daily.Available {
		res.Daily = followerDelta(followers)
	}
	return res
}

func compareWindow(posts []entity.Post, mode period.Mode, anchor time.Time) entity.PeriodComparison {
	prevAnchor := period.Previous(anchor, mode)

	cur, curOK := followsIn(posts, mode, anchor)
	prev, prevOK := followsIn(posts, mode, prevAnchor)
	if !curOK && !prevOK {
		return entity.PeriodComparison{}
	}

	return entity.PeriodComparison{
		Available:     true,
		Current:       cur,
		Previous:      prev,
		Delta:         cur - prev,
		CurrentLabel:  period.Key(anchor, mode),
		PreviousLabel: period.Key(prevAnchor, mode),
	}
}

// followsIn sums follows of posts in the window and reports whether any post
// in it carried the metric
func followsIn(posts []entity.Post, mode period.Mode, anchor time.Time) (int64, bool) {
	var (
		total int64
		found bool
	)
	for i := range posts {
		p := &posts[i]
		if p.Follows == nil || !period.Classify(p.Date, mode, anchor) {
			continue
		}
		total += *p.Follows
		found = true
	}
	return total, found
}

func followerDelta(followers []entity.FollowerSnapshot) entity.PeriodComparison {
	if len(followers) < 2 {
		return entity.PeriodComparison{}
	}
	last := followers[len(followers)-1]
	prev := followers[len(followers)-2]

	return entity.PeriodComparison{
		Available:       true,
		Current:         last.Count(),
		Previous:        prev.Count(),
		Delta:           last.Count() - prev.Count(),
		CurrentLabel:    last.Date,
		PreviousLabel:   prev.Date,
		IsFollowerCount: true,
	}
}
