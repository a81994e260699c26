package entity

// PeriodComparison compares one window with the one before it.
// When Available is false no other field is meaningful.
type PeriodComparison struct {
	Available       bool   `json:"available"`
	Current         int64  `json:"current,omitempty"`
	Previous        int64  `json:"previous,omitempty"`
	Delta           int64  `json:"delta,omitempty"`
	CurrentLabel    string `json:"current_label,omitempty"`
	PreviousLabel   string `json:"previous_label,omitempty"`
	IsFollowerCount bool   `json:"is_follower_count,omitempty"` // Net follower change instead of post follows
}

// FollowInflow holds follow-inflow comparisons for the four fixed granularities
type FollowInflow struct {
	Daily   PeriodComparison `json:"daily"`
	Weekly  PeriodComparison `json:"weekly"`
	Monthly PeriodComparison `json:"monthly"`
	Yearly  PeriodComparison `json:"yearly"`
}

// Change is a day-over-day difference
type Change struct {
	Change   float64 `json:"change"`
	Previous float64 `json:"previous"`
}

// FollowerChange is the net follower change on one day
type FollowerChange struct {
	Date   string `json:"date"`
	Change int64  `json:"change"`
}

// FollowerGrowth summarises the follower tracking history
type FollowerGrowth struct {
	Current         int64            `json:"current"`
	TotalGrowth     int64            `json:"total_growth"`
	AvgGrowthPerDay float64          `json:"avg_growth_per_day"`
	BestDay         FollowerChange   `json:"best_day"`
	Changes         []FollowerChange `json:"changes"`
}

// Contribution is the share of a metric produced on or after the milestone
type Contribution struct {
	Metric               Metric  `json:"metric"`
	TotalAll             float64 `json:"total_all"`
	TotalAfterMilestone  float64 `json:"total_after_milestone"`
	TotalBeforeMilestone float64 `json:"total_before_milestone"`
	Percentage           float64 `json:"percentage"`
	Highlighted          bool    `json:"highlighted"`
}
