// Package benchmark grades KPI values against fixed industry threshold tables.
package benchmark

import (
	"github.com/vadim/neo-insights/internal/domain/insight/entity"
)

// Grade returns the first grade whose Min is <= value. Values below every
// threshold get the lowest tier; nil is returned only for an empty table.
func Grade(table entity.BenchmarkTable, value float64) *entity.Grade {
	if len(table.Grades) == 0 {
		return nil
	}
	for i := range table.Grades {
		if table.Grades[i].Min <= value {
			g := table.Grades[i]
			return &g
		}
	}
	g := table.Grades[len(table.Grades)-1]
	return &g
}

// ReachRate is the average reach as a percentage of the follower count
func ReachRate(avgReach float64, followers int64) float64 {
	if followers <= 0 {
		return 0
	}
	return avgReach / float64(followers) * 100
}

// GradeAll grades the overview KPIs of stats. The reach rate is only graded
// when a follower count is known.
func GradeAll(stats entity.AggregateStats, followers int64) []entity.GradedValue {
	kpis := []struct {
		table entity.BenchmarkTable
		value float64
	}{
		{EngagementRate, stats.EngagementRate.Average},
		{SaveRate, stats.SaveRate.Average},
		{ShareRate, stats.ShareRate.Average},
		{EngagementPerPost, stats.AvgEngagementPerPost},
	}
	if followers > 0 {
		kpis = append(kpis, struct {
			table entity.BenchmarkTable
			value float64
		}{ReachRateTable, ReachRate(stats.Reach.Average, followers)})
	}

	out := make([]entity.GradedValue, 0, len(kpis))
	for _, k := range kpis {
		out = append(out, entity.GradedValue{
			Name:  k.table.Name,
			Value: k.value,
			Grade: Grade(k.table, k.value),
		})
	}
	return out
}
