package service

import (
	"math"

	"github.com/vadim/neo-insights/internal/domain/insight/entity"
)

// The pipeline writes spreadsheet numbers as-is, so any numeric column may
// arrive as an integer or a float. Raw documents are decoded into float
// pointers and converted once.

type rawPost struct {
	UploadDate     string   `json:"upload_date"`
	CheckDate      string   `json:"check_date"`
	MediaType      string   `json:"media_type"`
	Rank           *float64 `json:"rank"`
	Category       string   `json:"category"`
	Title          string   `json:"title"`
	URL            string   `json:"url"`
	Reach          *float64 `json:"reach"`
	Views          *float64 `json:"views"`
	Likes          *float64 `json:"likes"`
	Saves          *float64 `json:"saves"`
	Shares         *float64 `json:"shares"`
	Comments       *float64 `json:"comments"`
	Follows        *float64 `json:"follows"`
	EngagementRate *float64 `json:"engagement_rate"`
	SaveRate       *float64 `json:"save_rate"`
	ShareRate      *float64 `json:"share_rate"`
	CompositeScore *float64 `json:"composite_score"`
}

type rawFollower struct {
	Date             string   `json:"date"`
	Followers        *float64 `json:"followers"`
	Following        *float64 `json:"following"`
	DailyChange      *float64 `json:"daily_change"`
	CumulativeChange *float64 `json:"cumulative_change"`
}

type rawDaily struct {
	Date              string   `json:"date"`
	Followers         *float64 `json:"followers"`
	FollowerChange    *float64 `json:"follower_change"`
	Following         *float64 `json:"following"`
	PostCount         *float64 `json:"post_count"`
	TotalReach        *float64 `json:"total_reach"`
	TotalViews        *float64 `json:"total_views"`
	TotalLikes        *float64 `json:"total_likes"`
	TotalSaves        *float64 `json:"total_saves"`
	TotalShares       *float64 `json:"total_shares"`
	TotalComments     *float64 `json:"total_comments"`
	TotalEngagement   *float64 `json:"total_engagement"`
	AvgEngagementRate *float64 `json:"avg_engagement_rate"`
	AvgSaveRate       *float64 `json:"avg_save_rate"`
	AvgShareRate      *float64 `json:"avg_share_rate"`
}

func toInt64(v *float64) *int64 {
	if v == nil {
		return nil
	}
	n := int64(math.Round(*v))
	return &n
}

func toInt(v *float64) *int {
	if v == nil {
		return nil
	}
	n := int(math.Round(*v))
	return &n
}

func (r rawFollower) snapshot() entity.FollowerSnapshot {
	return entity.FollowerSnapshot{
		Date:             r.Date,
		Followers:        toInt64(r.Followers),
		Following:        toInt64(r.Following),
		DailyChange:      toInt64(r.DailyChange),
		CumulativeChange: toInt64(r.CumulativeChange),
	}
}

func (r rawDaily) entry() entity.DailyReportEntry {
	return entity.DailyReportEntry{
		Date:              r.Date,
		Followers:         toInt64(r.Followers),
		FollowerChange:    toInt64(r.FollowerChange),
		Following:         toInt64(r.Following),
		PostCount:         toInt64(r.PostCount),
		TotalReach:        toInt64(r.TotalReach),
		TotalViews:        toInt64(r.TotalViews),
		TotalLikes:        toInt64(r.TotalLikes),
		TotalSaves:        toInt64(r.TotalSaves),
		TotalShares:       toInt64(r.TotalShares),
		TotalComments:     toInt64(r.TotalComments),
		TotalEngagement:   toInt64(r.TotalEngagement),
		AvgEngagementRate: r.AvgEngagementRate,
		AvgSaveRate:       r.AvgSaveRate,
		AvgShareRate:      r.AvgShareRate,
	}
}
