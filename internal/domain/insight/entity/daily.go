package entity

// DailyField names a numeric column of the daily report
type DailyField string

const (
	DailyTotalReach        DailyField = "total_reach"
	DailyTotalViews        DailyField = "total_views"
	DailyTotalLikes        DailyField = "total_likes"
	DailyTotalSaves        DailyField = "total_saves"
	DailyTotalShares       DailyField = "total_shares"
	DailyTotalComments     DailyField = "total_comments"
	DailyTotalEngagement   DailyField = "total_engagement"
	DailyAvgEngagementRate DailyField = "avg_engagement_rate"
	DailyAvgSaveRate       DailyField = "avg_save_rate"
	DailyAvgShareRate      DailyField = "avg_share_rate"
	DailyPostCount         DailyField = "post_count"
	DailyFollowers         DailyField = "followers"
)

// DailyReportEntry is one row of the daily rollup report
type DailyReportEntry struct {
	Date           string `json:"date"`
	Followers      *int64 `json:"followers,omitempty"`
	FollowerChange *int64 `json:"follower_change,omitempty"`
	Following      *int64 `json:"following,omitempty"`
	PostCount      *int64 `json:"post_count"`

	TotalReach      *int64 `json:"total_reach"`
	TotalViews      *int64 `json:"total_views"`
	TotalLikes      *int64 `json:"total_likes"`
	TotalSaves      *int64 `json:"total_saves"`
	TotalShares     *int64 `json:"total_shares"`
	TotalComments   *int64 `json:"total_comments"`
	TotalEngagement *int64 `json:"total_engagement"`

	AvgEngagementRate *float64 `json:"avg_engagement_rate"`
	AvgSaveRate       *float64 `json:"avg_save_rate"`
	AvgShareRate      *float64 `json:"avg_share_rate"`
}

// Value returns the value of a report column and whether it is present
func (d DailyReportEntry) Value(f DailyField) (float64, bool) {
	switch f {
	case DailyTotalReach:
		return intValue(d.TotalReach)
	case DailyTotalViews:
		return intValue(d.TotalViews)
	case DailyTotalLikes:
		return intValue(d.TotalLikes)
	case DailyTotalSaves:
		return intValue(d.TotalSaves)
	case DailyTotalShares:
		return intValue(d.TotalShares)
	case DailyTotalComments:
		return intValue(d.TotalComments)
	case DailyTotalEngagement:
		return intValue(d.TotalEngagement)
	case DailyAvgEngagementRate:
		return floatValue(d.AvgEngagementRate)
	case DailyAvgSaveRate:
		return floatValue(d.AvgSaveRate)
	case DailyAvgShareRate:
		return floatValue(d.AvgShareRate)
	case DailyPostCount:
		return intValue(d.PostCount)
	case DailyFollowers:
		return intValue(d.Followers)
	default:
		return 0, false
	}
}
