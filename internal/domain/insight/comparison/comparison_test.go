package comparison

import (
	"testing"
	"time"

	"github.com/vadim/neo-insights/internal/domain/insight/entity"
)

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCompareFollowInflowFallsBackToFollowerCount(t *testing.T) {
	followers := []entity.FollowerSnapshot{
		{Date: "26.02.02(월)", Followers: i64(10000)},
		{Date: "26.02.03(화)", Followers: i64(10050)},
	}
	// posts exist but none reports follows
	posts := []entity.Post{
		{Date: day(2026, 2, 3), Reach: i64(100)},
		{Date: day(2026, 2, 2), Reach: i64(100)},
	}
	now := time.Date(2026, 2, 3, 15, 30, 0, 0, time.UTC)

	got := CompareFollowInflow(posts, followers, now)

	if !got.Daily.Available || !got.Daily.IsFollowerCount {
		t.Fatalf("daily = %+v, want follower-count fallback", got.Daily)
	}
	if got.Daily.Delta != 50 {
		t.Errorf("delta = %d, want 50", got.Daily.Delta)
	}
	if got.Weekly.Available || got.Monthly.Available || got.Yearly.Available {
		t.Errorf("non-daily granularities should be unavailable: %+v", got)
	}
}

func TestCompareFollowInflowWindows(t *testing.T) {
	posts := []entity.Post{
		{Date: day(2026, 2, 3), Follows: i64(5)},  // today, Tuesday of W06
		{Date: day(2026, 2, 2), Follows: i64(3)},  // yesterday, same week
		{Date: day(2026, 1, 28), Follows: i64(7)}, // W05, January
		{Date: day(2025, 12, 30), Follows: i64(11)},
		{Date: day(2026, 2, 3)},                   // no follows reported
		{Follows: i64(100)},                       // undated
	}
	now := time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)

	got := CompareFollowInflow(posts, nil, now)

	tests := []struct {
		name          string
		cmp           entity.PeriodComparison
		cur, prev     int64
		curLabel      string
		previousLabel string
	}{
		{"daily", got.Daily, 5, 3, "2026-02-03", "2026-02-02"},
		{"weekly", got.Weekly, 8, 7, "2026-W06", "2026-W05"},
		{"monthly", got.Monthly, 8, 7, "2026-02", "2026-01"},
		{"yearly", got.Yearly, 15, 11, "2026", "2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.cmp.Available || tt.cmp.IsFollowerCount {
				t.Fatalf("comparison = %+v", tt.cmp)
			}
			if tt.cmp.Current != tt.cur || tt.cmp.Previous != tt.prev || tt.cmp.Delta != tt.cur-tt.prev {
				t.Errorf("got %d/%d/%d, want %d/%d/%d", tt.cmp.Current, tt.cmp.Previous, tt.cmp.Delta, tt.cur, tt.prev, tt.cur-tt.prev)
			}
			if tt.cmp.CurrentLabel != tt.curLabel || tt.cmp.PreviousLabel != tt.previousLabel {
				t.Errorf("labels = %q/%q, want %q/%q", tt.cmp.CurrentLabel, tt.cmp.PreviousLabel, tt.curLabel, tt.previousLabel)
			}
		})
	}
}

func TestCompareFollowInflowOnlyPreviousWindow(t *testing.T) {
	posts := []entity.Post{{Date: day(2026, 1, 15), Follows: i64(4)}}
	got := CompareFollowInflow(posts, nil, day(2026, 2, 10))

	if !got.Monthly.Available || got.Monthly.Current != 0 || got.Monthly.Delta != -4 {
		t.Errorf("monthly = %+v, want current 0 and delta -4", got.Monthly)
	}
	if got.Daily.Available {
		t.Errorf("daily = %+v, want unavailable without snapshots", got.Daily)
	}
}

func TestDailyChange(t *testing.T) {
	daily := []entity.DailyReportEntry{
		{Date: "26.02.01", TotalLikes: i64(100), AvgEngagementRate: f64(3.5)},
		{Date: "26.02.02", TotalLikes: i64(130), AvgEngagementRate: f64(3.0)},
	}

	got, ok := DailyChange(daily, entity.DailyTotalLikes)
	if !ok || got.Change != 30 || got.Previous != 100 {
		t.Errorf("likes change = %+v, %v", got, ok)
	}

	got, ok = DailyChange(daily, entity.DailyAvgEngagementRate)
	if !ok || got.Change != -0.5 {
		t.Errorf("engagement change = %+v, %v", got, ok)
	}

	if _, ok := DailyChange(daily, entity.DailyTotalReach); ok {
		t.Error("missing values should not compare")
	}
	if _, ok := DailyChange(daily[:1], entity.DailyTotalLikes); ok {
		t.Error("a single row should not compare")
	}
}

func TestAvgPerPostChange(t *testing.T) {
	daily := []entity.DailyReportEntry{
		{TotalReach: i64(1000), PostCount: i64(4)},
		{TotalReach: i64(1500), PostCount: i64(5)},
	}
	got, ok := AvgPerPostChange(daily, entity.DailyTotalReach)
	if !ok || got.Change != 50 || got.Previous != 250 {
		t.Errorf("change = %+v, %v; want 50 from 250", got, ok)
	}

	daily[0].PostCount = i64(0)
	if _, ok := AvgPerPostChange(daily, entity.DailyTotalReach); ok {
		t.Error("zero post count should not compare")
	}
}

func TestPostDeltas(t *testing.T) {
	today := []entity.Post{
		{ID: "1", URL: "https://ig/p/1", Reach: i64(150), Likes: i64(10), EngagementRate: f64(4.5)},
		{ID: "2", Title: "no url", Reach: i64(80)},
		{ID: "3", URL: "https://ig/p/dup", Reach: i64(10)},
		{ID: "4", URL: "https://ig/p/dup", Reach: i64(20)},
		{ID: "5", URL: "https://ig/p/new", Reach: i64(5)},
	}
	yesterday := []entity.Post{
		{URL: "https://ig/p/1", Reach: i64(100), Likes: i64(10), EngagementRate: f64(4.0)},
		{Title: "no url", Reach: i64(80)},
		{URL: "https://ig/p/dup", Reach: i64(1)},
	}

	deltas, skipped := PostDeltas(today, yesterday)

	d1, ok := deltas["1"]
	if !ok {
		t.Fatalf("no deltas for post 1: %v", deltas)
	}
	if d1[entity.MetricReach] != 50 || d1[entity.MetricEngagementRate] != 0.5 {
		t.Errorf("post 1 deltas = %v", d1)
	}
	if _, ok := d1[entity.MetricLikes]; ok {
		t.Error("unchanged likes reported")
	}
	if _, ok := deltas["2"]; ok {
		t.Error("unchanged post reported")
	}
	if _, ok := deltas["3"]; ok {
		t.Error("ambiguous key joined")
	}
	if _, ok := deltas["5"]; ok {
		t.Error("post missing yesterday joined")
	}
	if len(skipped) != 1 || skipped[0] != "https://ig/p/dup" {
		t.Errorf("skipped = %v", skipped)
	}
}

func TestPostDeltasWithoutYesterday(t *testing.T) {
	deltas, skipped := PostDeltas([]entity.Post{{ID: "1", URL: "u", Reach: i64(1)}}, nil)
	if len(deltas) != 0 || len(skipped) != 0 {
		t.Errorf("deltas = %v, skipped = %v; want none", deltas, skipped)
	}
}

func TestFollowerGrowth(t *testing.T) {
	followers := []entity.FollowerSnapshot{
		{Date: "26.02.01", Followers: i64(1000)},
		{Date: "26.02.02", Followers: i64(1012)},
		{Date: "26.02.03", Followers: i64(1008)},
		{Date: "26.02.04", Followers: i64(1030)},
	}

	g := FollowerGrowth(followers)

	if g.Current != 1030 || g.TotalGrowth != 30 {
		t.Errorf("current/total = %d/%d", g.Current, g.TotalGrowth)
	}
	if g.AvgGrowthPerDay != 10 {
		t.Errorf("avg per day = %v, want 10", g.AvgGrowthPerDay)
	}
	if g.BestDay.Date != "26.02.04" || g.BestDay.Change != 22 {
		t.Errorf("best day = %+v", g.BestDay)
	}
	want := []int64{0, 12, -4, 22}
	for i, c := range g.Changes {
		if c.Change != want[i] {
			t.Errorf("change[%d] = %d, want %d", i, c.Change, want[i])
		}
	}
}

func TestFollowerGrowthEdgeCases(t *testing.T) {
	g := FollowerGrowth(nil)
	if g.Current != 0 || len(g.Changes) != 0 {
		t.Errorf("empty growth = %+v", g)
	}

	g = FollowerGrowth([]entity.FollowerSnapshot{{Date: "26.02.01", Followers: i64(50)}})
	if g.AvgGrowthPerDay != 0 || g.BestDay.Date != "26.02.01" {
		t.Errorf("single snapshot growth = %+v", g)
	}
}
