package entity

// DiagnosisKind is the tone of a diagnosis entry
type DiagnosisKind string

const (
	DiagnosisGood DiagnosisKind = "good"
	DiagnosisBad  DiagnosisKind = "bad"
	DiagnosisWarn DiagnosisKind = "warn"
)

// DiagnosisEntry is one qualitative statement about a post
type DiagnosisEntry struct {
	Code  string        `json:"code"`
	Kind  DiagnosisKind `json:"kind"`
	Label string        `json:"label"`
	Text  string        `json:"text"`
}

// DiagnosisResult is the percentile position of a post within its population
// plus the ordered diagnosis entries. Percentiles are inverted: 0 is the top.
type DiagnosisResult struct {
	PostID   string           `json:"post_id"`
	ReachPct int              `json:"reach_pct"`
	EngPct   int              `json:"eng_pct"`
	SavePct  int              `json:"save_pct"`
	SharePct int              `json:"share_pct"`
	Entries  []DiagnosisEntry `json:"entries"`
}
