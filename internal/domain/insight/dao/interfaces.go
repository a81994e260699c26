package dao

import "context"

// Export document names as written by the pipeline
const (
	DocPosts          = "posts.json"
	DocFollowers      = "followers.json"
	DocDailyReport    = "daily_report.json"
	DocMeta           = "meta.json"
	DocPostsYesterday = "posts_yesterday.json"
)

// ExportSource defines the interface for reading raw export documents.
// Implementations wrap a missing document in entity.ErrSourceNotFound.
type ExportSource interface {
	// Fetch returns the raw bytes of the named document
	Fetch(ctx context.Context, name string) ([]byte, error)
}
