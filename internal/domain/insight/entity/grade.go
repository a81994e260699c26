package entity

// Tier is an ordered benchmark grade
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierNormal    Tier = "normal"
	TierLow       Tier = "low"
)

// Grade is one row of a benchmark table
type Grade struct {
	Min   float64 `json:"min"` // Inclusive lower bound
	Label string  `json:"label"`
	Tier  Tier    `json:"tier"`
}

// BenchmarkTable is a list of grades sorted by Min descending with a floor at 0
type BenchmarkTable struct {
	Name   string  `json:"name"`
	Grades []Grade `json:"grades"`
}

// GradedValue is a KPI value together with its benchmark grade
type GradedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Grade *Grade  `json:"grade"`
}
