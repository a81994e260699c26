package benchmark

import "github.com/vadim/neo-insights/internal/domain/insight/entity"

func grades(excellent, good, normal float64) []entity.Grade {
	return []entity.Grade{
		{Min: excellent, Label: "Excellent", Tier: entity.TierExcellent},
		{Min: good, Label: "Good", Tier: entity.TierGood},
		{Min: normal, Label: "Normal", Tier: entity.TierNormal},
		{Min: 0, Label: "Low", Tier: entity.TierLow},
	}
}

// Reference tables. Thresholds are percentages except EngagementPerPost,
// which is an interaction count.
var (
	EngagementRate    = entity.BenchmarkTable{Name: "engagement_rate", Grades: grades(3, 1.2, 0.5)}
	SaveRate          = entity.BenchmarkTable{Name: "save_rate", Grades: grades(2, 1, 0.3)}
	ShareRate         = entity.BenchmarkTable{Name: "share_rate", Grades: grades(1.5, 0.7, 0.2)}
	EngagementPerPost = entity.BenchmarkTable{Name: "engagement_per_post", Grades: grades(500, 200, 50)}
	ReachRateTable    = entity.BenchmarkTable{Name: "reach_rate", Grades: grades(30, 15, 5)}
)

// Tables returns every reference table in display order
func Tables() []entity.BenchmarkTable {
	return []entity.BenchmarkTable{EngagementRate, SaveRate, ShareRate, EngagementPerPost, ReachRateTable}
}
