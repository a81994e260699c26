package comparison

import (
	"math"
	"slices"

	"github.com/vadim/neo-insights/internal/domain/insight/entity"
)

// DeltaMetrics are the post cells that carry a day-over-day change
var DeltaMetrics = []entity.Metric{
	entity.MetricReach,
	entity.MetricViews,
	entity.MetricLikes,
	entity.MetricSaves,
	entity.MetricShares,
	entity.MetricComments,
	entity.MetricEngagementRate,
}

// DailyChange compares the last daily report row with the one before it.
// It reports false when there are fewer than two rows or either value is missing.
func DailyChange(daily []entity.DailyReportEntry, field entity.DailyField) (entity.Change, bool) {
	if len(daily) < 2 {
		return entity.Change{}, false
	}
	cur, ok := daily[len(daily)-1].Value(field)
	if !ok {
		return entity.Change{}, false
	}
	prev, ok := daily[len(daily)-2].Value(field)
	if !ok {
		return entity.Change{}, false
	}
	return entity.Change{Change: cur - prev, Previous: prev}, true
}

// AvgPerPostChange compares total/post_count of the last two daily rows,
// rounded to a whole number. Rows with a zero or missing total or post count
// do not compare.
func AvgPerPostChange(daily []entity.DailyReportEntry, total entity.DailyField) (entity.Change, bool) {
	if len(daily) < 2 {
		return entity.Change{}, false
	}
	cur, ok := perPost(daily[len(daily)-1], total)
	if !ok {
		return entity.Change{}, false
	}
	prev, ok := perPost(daily[len(daily)-2], total)
	if !ok {
		return entity.Change{}, false
	}
	return entity.Change{Change: math.Round(cur - prev), Previous: prev}, true
}

func perPost(row entity.DailyReportEntry, total entity.DailyField) (float64, bool) {
	t, _ := row.Value(total)
	n, _ := row.Value(entity.DailyPostCount)
	if t == 0 || n == 0 {
		return 0, false
	}
	return t / n, true
}

// PostDeltas joins today's posts with yesterday's export by natural key and
// returns non-zero metric changes per post ID. Keys that are empty or occur
// more than once in either snapshot are ambiguous and returned instead of joined.
func PostDeltas(today, yesterday []entity.Post) (map[string]map[entity.Metric]float64, []string) {
	prevByKey, prevDup := index(yesterday)
	curByKey, curDup := index(today)

	ambiguous := make(map[string]struct{})
	for k := range prevDup {
		ambiguous[k] = struct{}{}
	}
	for k := range curDup {
		ambiguous[k] = struct{}{}
	}

	out := make(map[string]map[entity.Metric]float64)
	for key, cur := range curByKey {
		if _, bad := ambiguous[key]; bad {
			continue
		}
		prev, ok := prevByKey[key]
		if !ok {
			continue
		}
		deltas := make(map[entity.Metric]float64)
		for _, m := range DeltaMetrics {
			c, okC := cur.Value(m)
			p, okP := prev.Value(m)
			if !okC || !okP || c == p {
				continue
			}
			deltas[m] = c - p
		}
		if len(deltas) > 0 {
			out[cur.ID] = deltas
		}
	}

	skipped := make([]string, 0, len(ambiguous))
	for k := range ambiguous {
		skipped = append(skipped, k)
	}
	slices.Sort(skipped)
	return out, skipped
}

// index maps natural keys to posts. Empty keys are skipped; repeated keys keep
// the first post and are reported as duplicates.
func index(posts []entity.Post) (map[string]*entity.Post, map[string]struct{}) {
	byKey := make(map[string]*entity.Post, len(posts))
	dup := make(map[string]struct{})
	for i := range posts {
		key := posts[i].Key()
		if key == "" {
			continue
		}
		if _, seen := byKey[key]; seen {
			dup[key] = struct{}{}
			continue
		}
		byKey[key] = &posts[i]
	}
	return byKey, dup
}
