package diagnosis

import (
	"testing"

	"github.com/vadim/neo-insights/internal/domain/insight/entity"
)

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }

func codes(res entity.DiagnosisResult) []string {
	out := make([]string, 0, len(res.Entries))
	for _, e := range res.Entries {
		out = append(out, e.Code)
	}
	return out
}

func hasCode(res entity.DiagnosisResult, code string) bool {
	for _, c := range codes(res) {
		if c == code {
			return true
		}
	}
	return false
}

func TestPercentileRank(t *testing.T) {
	dist := []float64{1000, 100, 500}

	tests := []struct {
		name  string
		value float64
		dist  []float64
		want  int
	}{
		{"empty distribution", 42, nil, 100},
		{"above every element", 2000, dist, 100},
		{"below every element", 10, dist, 0},
		{"equal to smallest", 100, dist, 0},
		{"equal to middle", 500, dist, 33},
		{"equal to largest", 1000, dist, 67},
		{"between elements", 300, dist, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentileRank(tt.value, tt.dist); got != tt.want {
				t.Errorf("PercentileRank(%v) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestPercentileRankMonotonic(t *testing.T) {
	dist := []float64{3, 9, 1, 4, 4, 7, 12, 0.5}
	prev := -1
	for v := 0.0; v <= 14; v += 0.25 {
		got := PercentileRank(v, dist)
		if got < prev {
			t.Fatalf("PercentileRank(%v) = %d, previous %d", v, got, prev)
		}
		prev = got
	}
}

func TestPercentileRankDoesNotMutate(t *testing.T) {
	dist := []float64{3, 1, 2}
	PercentileRank(2, dist)
	if dist[0] != 3 || dist[1] != 1 || dist[2] != 2 {
		t.Errorf("distribution mutated: %v", dist)
	}
}

func TestDiagnoseScenario(t *testing.T) {
	posts := []entity.Post{
		{ID: "a", Reach: i64(1000), EngagementRate: f64(5.0)},
		{ID: "b", Reach: i64(500), EngagementRate: f64(1.0)},
		{ID: "c", Reach: i64(100), EngagementRate: f64(0.5)},
	}

	res := Diagnose(posts[0], posts)

	if res.PostID != "a" {
		t.Errorf("PostID = %q", res.PostID)
	}
	// 1000 is the largest of three: first index >= value is 2, round(2/3*100) = 67
	if res.ReachPct != 33 {
		t.Errorf("ReachPct = %d, want 33", res.ReachPct)
	}
	if res.EngPct != 33 {
		t.Errorf("EngPct = %d, want 33", res.EngPct)
	}
	// no saves or shares reported anywhere: empty distribution
	if res.SavePct != 0 || res.SharePct != 0 {
		t.Errorf("SavePct = %d, SharePct = %d, want 0, 0", res.SavePct, res.SharePct)
	}

	got := codes(res)
	if len(got) != 1 || got[0] != CodeEngagementOutstanding {
		t.Errorf("codes = %v, want [%s]", got, CodeEngagementOutstanding)
	}
}

func TestDiagnoseReachAboveWholePopulation(t *testing.T) {
	population := []entity.Post{
		{Reach: i64(1000), EngagementRate: f64(5.0)},
		{Reach: i64(500), EngagementRate: f64(1.0)},
		{Reach: i64(100), EngagementRate: f64(0.5)},
	}
	post := entity.Post{ID: "x", Reach: i64(2000), EngagementRate: f64(2.0)}

	res := Diagnose(post, population)
	if res.ReachPct != 0 {
		t.Fatalf("ReachPct = %d, want 0", res.ReachPct)
	}
	// reach, saves and shares all sit at the top, so the summary leads
	got := codes(res)
	if len(got) != 2 || got[0] != CodeOverallExcellent || got[1] != CodeReachTop {
		t.Fatalf("codes = %v, want [%s %s]", got, CodeOverallExcellent, CodeReachTop)
	}
	if res.Entries[1].Kind != entity.DiagnosisGood {
		t.Errorf("kind = %s, want good", res.Entries[1].Kind)
	}
}

// ladder builds n posts whose metrics rise together from 1 to n
func ladder(n int) []entity.Post {
	posts := make([]entity.Post, n)
	for i := range posts {
		v := int64(i + 1)
		posts[i] = entity.Post{
			Reach:          i64(v * 100),
			EngagementRate: f64(float64(v)),
			Saves:          i64(v),
			Shares:         i64(v),
		}
	}
	return posts
}

func TestDiagnoseSummaryIsPrepended(t *testing.T) {
	posts := ladder(10)
	res := Diagnose(posts[9], posts)

	got := codes(res)
	if len(got) < 2 {
		t.Fatalf("codes = %v, want summary and reach entries", got)
	}
	if got[0] != CodeOverallExcellent {
		t.Errorf("first code = %s, want %s", got[0], CodeOverallExcellent)
	}
	if got[1] != CodeReachExcellent {
		t.Errorf("second code = %s, want %s", got[1], CodeReachExcellent)
	}
	if hasCode(res, CodeAverage) {
		t.Error("fallback emitted alongside other entries")
	}
}

func TestDiagnoseHookProblem(t *testing.T) {
	posts := ladder(10)
	// highest reach with the weakest engagement and saves
	posts[9].EngagementRate = f64(1)
	posts[0].EngagementRate = f64(10)
	posts[9].Saves = i64(1)
	posts[0].Saves = i64(10)
	posts[9].Shares = nil

	res := Diagnose(posts[9], posts)

	for _, code := range []string{CodeReachExcellent, CodeEngagementPoor, CodeReachWithoutEngagement} {
		if !hasCode(res, code) {
			t.Errorf("codes = %v, missing %s", codes(res), code)
		}
	}
	if hasCode(res, CodeOverallExcellent) {
		t.Errorf("unexpected summary: %v", codes(res))
	}
}

func TestDiagnoseEngagedButUnderexposed(t *testing.T) {
	posts := ladder(10)
	// lowest reach with the strongest engagement
	posts[0].EngagementRate = f64(10)
	posts[9].EngagementRate = f64(1)

	res := Diagnose(posts[0], posts)

	for _, code := range []string{CodeReachPoor, CodeEngagedUnderexposed} {
		if !hasCode(res, code) {
			t.Errorf("codes = %v, missing %s", codes(res), code)
		}
	}
}

func TestDiagnoseRateRules(t *testing.T) {
	base := func() []entity.Post {
		posts := make([]entity.Post, 4)
		for i := range posts {
			posts[i] = entity.Post{
				Reach:          i64(int64(100 * (i + 1))),
				EngagementRate: f64(2),
				SaveRate:       f64(1),
				ShareRate:      f64(1),
				Comments:       i64(2),
				Saves:          i64(5),
				Shares:         i64(5),
			}
		}
		return posts
	}

	tests := []struct {
		name   string
		modify func(p *entity.Post)
		want   string
		kind   entity.DiagnosisKind
	}{
		{"high save value", func(p *entity.Post) { p.SaveRate = f64(10) }, CodeSaveHigh, entity.DiagnosisGood},
		{"low save rate", func(p *entity.Post) { p.SaveRate = f64(0) }, CodeSaveLow, entity.DiagnosisWarn},
		{"viral share rate", func(p *entity.Post) { p.ShareRate = f64(10) }, CodeShareHigh, entity.DiagnosisGood},
		{"low share rate", func(p *entity.Post) { p.ShareRate = f64(0) }, CodeShareLow, entity.DiagnosisWarn},
		{"many comments", func(p *entity.Post) { p.Comments = i64(40) }, CodeCommentsHigh, entity.DiagnosisGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := base()
			tt.modify(&posts[2])

			res := Diagnose(posts[2], posts)
			var found *entity.DiagnosisEntry
			for i := range res.Entries {
				if res.Entries[i].Code == tt.want {
					found = &res.Entries[i]
				}
			}
			if found == nil {
				t.Fatalf("codes = %v, missing %s", codes(res), tt.want)
			}
			if found.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", found.Kind, tt.kind)
			}
			if found.Label == "" || found.Text == "" {
				t.Errorf("entry without label or text: %+v", *found)
			}
		})
	}
}

func TestDiagnoseFallback(t *testing.T) {
	posts := make([]entity.Post, 4)
	for i := range posts {
		posts[i] = entity.Post{
			Reach:          i64(int64(100 * (i + 1))),
			EngagementRate: f64(1),
			SaveRate:       f64(1),
			ShareRate:      f64(1),
			Comments:       i64(1),
			Saves:          i64(1),
			Shares:         i64(1),
		}
	}

	res := Diagnose(posts[2], posts)

	got := codes(res)
	if len(got) != 1 || got[0] != CodeAverage {
		t.Fatalf("codes = %v, want [%s]", got, CodeAverage)
	}
}

func TestDiagnoseMissingMetrics(t *testing.T) {
	res := Diagnose(entity.Post{ID: "empty"}, nil)
	if res.ReachPct != 0 || res.EngPct != 0 {
		t.Errorf("pcts = %d/%d, want 0/0 for empty population", res.ReachPct, res.EngPct)
	}
	if len(res.Entries) == 0 {
		t.Error("no entries for empty population")
	}
}
