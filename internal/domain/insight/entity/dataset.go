package entity

import "time"

// Meta describes the export run
type Meta struct {
	UpdatedAt    string `json:"updated_at,omitempty"`
	UpdatedAtKo  string `json:"updated_at_ko"`
	PostCount    int    `json:"post_count,omitempty"`
	FollowerDays int    `json:"follower_days,omitempty"`
	ReportDays   int    `json:"report_days,omitempty"`
}

// DataIssueKind classifies a data-quality problem found at load time
type DataIssueKind string

const (
	DataIssueEmptyKey     DataIssueKind = "empty_key"
	DataIssueDuplicateKey DataIssueKind = "duplicate_key"
)

// DataIssue is a data-quality problem surfaced to the consumer instead of being silently fixed
type DataIssue struct {
	Kind       DataIssueKind `json:"kind"`
	Collection string        `json:"collection"`
	Key        string        `json:"key,omitempty"`
	Index      int           `json:"index"`
}

// Dataset is one immutable load of all export documents
type Dataset struct {
	ID             string             `json:"id"`
	LoadedAt       time.Time          `json:"loaded_at"`
	Posts          []Post             `json:"-"`
	Followers      []FollowerSnapshot `json:"-"`
	Daily          []DailyReportEntry `json:"-"`
	Meta           Meta               `json:"meta"`
	PostsYesterday []Post             `json:"-"`
	Issues         []DataIssue        `json:"issues"`
}

// PostByID returns the post with the given ID
func (d *Dataset) PostByID(id string) (*Post, error) {
	for i := range d.Posts {
		if d.Posts[i].ID == id {
			return &d.Posts[i], nil
		}
	}
	return nil, ErrPostNotFound
}

// LatestFollowers returns the current follower count, if any snapshot exists
func (d *Dataset) LatestFollowers() (int64, bool) {
	if len(d.Followers) == 0 {
		return 0, false
	}
	return d.Followers[len(d.Followers)-1].Count(), true
}
