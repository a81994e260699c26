package benchmark

import (
	"testing"

	"github.com/vadim/neo-insights/internal/domain/insight/entity"
)

func TestGradeEngagementRate(t *testing.T) {
	tests := []struct {
		value float64
		want  entity.Tier
	}{
		{2.0, entity.TierGood},
		{0.2, entity.TierLow},
		{3.0, entity.TierExcellent},
		{12, entity.TierExcellent},
		{1.2, entity.TierGood},
		{0.5, entity.TierNormal},
		{0, entity.TierLow},
		{-1, entity.TierLow},
	}

	for _, tt := range tests {
		got := Grade(EngagementRate, tt.value)
		if got == nil {
			t.Fatalf("Grade(%v) = nil", tt.value)
		}
		if got.Tier != tt.want {
			t.Errorf("Grade(%v) = %s, want %s", tt.value, got.Tier, tt.want)
		}
	}
}

func TestGradeEmptyTable(t *testing.T) {
	if got := Grade(entity.BenchmarkTable{Name: "none"}, 10); got != nil {
		t.Errorf("Grade on empty table = %+v, want nil", got)
	}
}

func TestGradeReturnsCopy(t *testing.T) {
	g := Grade(SaveRate, 5)
	g.Label = "changed"
	if SaveRate.Grades[0].Label == "changed" {
		t.Error("Grade returned a pointer into the shared table")
	}
}

func TestTablesAreDescendingWithFloor(t *testing.T) {
	for _, table := range Tables() {
		t.Run(table.Name, func(t *testing.T) {
			for i := 1; i < len(table.Grades); i++ {
				if table.Grades[i].Min >= table.Grades[i-1].Min {
					t.Errorf("grade %d (%v) not below grade %d (%v)", i, table.Grades[i].Min, i-1, table.Grades[i-1].Min)
				}
			}
			if last := table.Grades[len(table.Grades)-1]; last.Min != 0 {
				t.Errorf("floor = %v, want 0", last.Min)
			}
		})
	}
}

func TestGradeAll(t *testing.T) {
	stats := entity.AggregateStats{
		PostCount:            2,
		Reach:                entity.MetricSummary{Count: 2, Sum: 4000, Average: 2000},
		EngagementRate:       entity.MetricSummary{Count: 2, Average: 4},
		SaveRate:             entity.MetricSummary{Count: 2, Average: 0.1},
		ShareRate:            entity.MetricSummary{Count: 2, Average: 0.8},
		AvgEngagementPerPost: 120,
	}

	got := GradeAll(stats, 10000)
	want := map[string]entity.Tier{
		"engagement_rate":     entity.TierExcellent,
		"save_rate":           entity.TierLow,
		"share_rate":          entity.TierGood,
		"engagement_per_post": entity.TierNormal,
		"reach_rate":          entity.TierGood,
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for _, g := range got {
		if g.Grade == nil || g.Grade.Tier != want[g.Name] {
			t.Errorf("%s graded %+v, want %s", g.Name, g.Grade, want[g.Name])
		}
	}

	if got := GradeAll(stats, 0); len(got) != 4 {
		t.Errorf("without followers len = %d, want 4", len(got))
	}
}
