package entity

import "time"

// MediaType is the upstream Instagram media type of a post
type MediaType string

const (
	MediaTypeCarousel MediaType = "CAROUSEL_ALBUM"
	MediaTypeVideo    MediaType = "VIDEO"
	MediaTypeImage    MediaType = "IMAGE"
	MediaTypeOther    MediaType = "OTHER"
)

// Post is one content unit as exported by the insights pipeline.
// Numeric fields are nullable: the pipeline leaves them empty when Instagram
// does not report the metric (e.g. follows for reels).
type Post struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Title      string    `json:"title"`
	UploadDate string    `json:"upload_date"`
	CheckDate  string    `json:"check_date,omitempty"`
	MediaType  MediaType `json:"media_type"`
	Category   string    `json:"category,omitempty"`
	Rank       *int      `json:"rank"`

	Reach    *int64 `json:"reach"`
	Views    *int64 `json:"views"`
	Likes    *int64 `json:"likes"`
	Saves    *int64 `json:"saves"`
	Shares   *int64 `json:"shares"`
	Comments *int64 `json:"comments"`
	Follows  *int64 `json:"follows"`

	// Percentages in [0, 100] after load-time normalization
	EngagementRate *float64 `json:"engagement_rate"`
	SaveRate       *float64 `json:"save_rate"`
	ShareRate      *float64 `json:"share_rate"`
	FollowRate     *float64 `json:"follow_rate"`

	CompositeScore *float64 `json:"composite_score"`

	// Date is the parsed UploadDate; zero when the date could not be parsed
	Date time.Time `json:"-"`
}

// Key returns the natural key used to join posts across snapshots.
// It is not guaranteed to be unique.
func (p *Post) Key() string {
	if p.URL != "" {
		return p.URL
	}
	return p.Title
}

// HasDate reports whether the upload date was parseable
func (p *Post) HasDate() bool {
	return !p.Date.IsZero()
}

// Engagement returns likes+saves+shares+comments with missing values as 0
func (p *Post) Engagement() int64 {
	return valueOrZero(p.Likes) + valueOrZero(p.Saves) + valueOrZero(p.Shares) + valueOrZero(p.Comments)
}

// Value returns the value of a metric and whether it is present
func (p *Post) Value(m Metric) (float64, bool) {
	switch m {
	case MetricReach:
		return intValue(p.Reach)
	case MetricViews:
		return intValue(p.Views)
	case MetricLikes:
		return intValue(p.Likes)
	case MetricSaves:
		return intValue(p.Saves)
	case MetricShares:
		return intValue(p.Shares)
	case MetricComments:
		return intValue(p.Comments)
	case MetricFollows:
		return intValue(p.Follows)
	case MetricEngagementRate:
		return floatValue(p.EngagementRate)
	case MetricSaveRate:
		return floatValue(p.SaveRate)
	case MetricShareRate:
		return floatValue(p.ShareRate)
	case MetricFollowRate:
		return floatValue(p.FollowRate)
	case MetricCompositeScore:
		return floatValue(p.CompositeScore)
	case MetricRank:
		if p.Rank == nil {
			return 0, false
		}
		return float64(*p.Rank), true
	default:
		return 0, false
	}
}

func valueOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func intValue(v *int64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return float64(*v), true
}

func floatValue(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}
