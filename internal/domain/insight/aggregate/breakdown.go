package aggregate

import (
	"sort"

	"github.com/vadim/neo-insights/internal/domain/insight/entity"
	"github.com/vadim/neo-insights/internal/domain/insight/period"
)

// Dimension is a post attribute posts can be grouped by
type Dimension string

const (
	DimensionCategory  Dimension = "category"
	DimensionMediaType Dimension = "media_type"
	DimensionWeekday   Dimension = "weekday"
)

// UncategorizedKey is the category of posts without one
const UncategorizedKey = "기타"

// WeekdayKeys in display order, Sunday first
var WeekdayKeys = []string{"일", "월", "화", "수", "목", "금", "토"}

// ParseDimension validates a dimension name
func ParseDimension(s string) (Dimension, error) {
	switch d := Dimension(s); d {
	case DimensionCategory, DimensionMediaType, DimensionWeekday:
		return d, nil
	default:
		return "", entity.ErrInvalidDimension
	}
}

// Breakdown groups posts by a dimension.
// Category groups are ordered by average engagement rate, best first; media type
// groups by first appearance; weekday groups Sunday to Saturday, including empty days.
func Breakdown(posts []entity.Post, dim Dimension) []entity.Group {
	switch dim {
	case DimensionCategory:
		groups := groupBy(posts, func(p entity.Post) (string, bool) {
			if p.Category == "" {
				return UncategorizedKey, true
			}
			return p.Category, true
		}, nil)
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].Stats.EngagementRate.Average > groups[j].Stats.EngagementRate.Average
		})
		return groups
	case DimensionMediaType:
		return groupBy(posts, func(p entity.Post) (string, bool) {
			if p.MediaType == "" {
				return string(entity.MediaTypeOther), true
			}
			return string(p.MediaType), true
		}, nil)
	case DimensionWeekday:
		return groupBy(posts, weekdayOf, WeekdayKeys)
	default:
		return nil
	}
}

// GroupByPeriod buckets dated posts by calendar window, oldest first
func GroupByPeriod(posts []entity.Post, mode period.Mode) []entity.Group {
	groups := groupBy(posts, func(p entity.Post) (string, bool) {
		if !p.HasDate() {
			return "", false
		}
		k := period.Key(p.Date, mode)
		return k, k != ""
	}, nil)
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}

// BestBy returns the group with the highest average of a metric; the first group wins ties
func BestBy(groups []entity.Group, m entity.Metric) (entity.BestPerformer, bool) {
	var best entity.BestPerformer
	found := false
	for _, g := range groups {
		s, ok := g.Stats.Summary(m)
		if !ok {
			return entity.BestPerformer{}, false
		}
		if !found || s.Average > best.Value {
			best = entity.BestPerformer{Metric: m, Key: g.Key, Value: s.Average}
			found = true
		}
	}
	return best, found
}

func weekdayOf(p entity.Post) (string, bool) {
	if w, ok := period.Weekday(p.UploadDate); ok {
		return w, true
	}
	if p.HasDate() {
		return WeekdayKeys[p.Date.Weekday()], true
	}
	return "", false
}

// groupBy keeps first-appearance order; fixed keys are emitted first, even when empty
func groupBy(posts []entity.Post, keyOf func(entity.Post) (string, bool), fixed []string) []entity.Group {
	order := append([]string(nil), fixed...)
	members := make(map[string][]entity.Post, len(fixed))
	for _, k := range fixed {
		members[k] = nil
	}

	for _, p := range posts {
		k, ok := keyOf(p)
		if !ok {
			continue
		}
		if _, seen := members[k]; !seen {
			if fixed != nil {
				continue
			}
			order = append(order, k)
		}
		members[k] = append(members[k], p)
	}

	groups := make([]entity.Group, 0, len(order))
	for _, k := range order {
		groups = append(groups, entity.Group{Key: k, Stats: Aggregate(members[k])})
	}
	return groups
}
