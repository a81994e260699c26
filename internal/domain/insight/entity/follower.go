package entity

// FollowerSnapshot is one observation day of the follower tracking sheet.
// Snapshots are ordered by increasing date; the last one is current.
type FollowerSnapshot struct {
	Date             string `json:"date"`
	Followers        *int64 `json:"followers"`
	Following        *int64 `json:"following,omitempty"`
	DailyChange      *int64 `json:"daily_change,omitempty"`
	CumulativeChange *int64 `json:"cumulative_change,omitempty"`
}

// Count returns the follower count with a missing value as 0
func (f FollowerSnapshot) Count() int64 {
	return valueOrZero(f.Followers)
}
