package comparison

import "github.com/vadim/neo-insights/internal/domain/insight/entity"

// FollowerGrowth summarises the follower history. Changes has one entry per
// snapshot; the first one is always 0. Missing counts are treated as 0.
func FollowerGrowth(followers []entity.FollowerSnapshot) entity.FollowerGrowth {
	if len(followers) == 0 {
		return entity.FollowerGrowth{Changes: []entity.FollowerChange{}}
	}

	first := followers[0]
	latest := followers[len(followers)-1]

	g := entity.FollowerGrowth{
		Current:     latest.Count(),
		TotalGrowth: latest.Count() - first.Count(),
		Changes:     make([]entity.FollowerChange, len(followers)),
	}
	if len(followers) > 1 {
		g.AvgGrowthPerDay = float64(g.TotalGrowth) / float64(len(followers)-1)
	}

	for i, f := range followers {
		c := entity.FollowerChange{Date: f.Date}
		if i > 0 {
			c.Change = f.Count() - followers[i-1].Count()
		}
		g.Changes[i] = c
	}

	g.BestDay = g.Changes[0]
	for _, c := range g.Changes[1:] {
		if c.Change > g.BestDay.Change {
			g.BestDay = c
		}
	}
	return g
}
