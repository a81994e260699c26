package aggregate

import (
	"math"
	"sort"
	"strings"

	"github.com/vadim/neo-insights/internal/domain/insight/entity"
)

// SortField values accepted besides metric names
const (
	SortByRank       = "rank"
	SortByUploadDate = "upload_date"
)

// SortDir is a sort direction
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// PostFilter narrows a post list; empty fields match everything
type PostFilter struct {
	Category  string
	MediaType entity.MediaType
	Search    string // Case-insensitive substring of the title
}

// Match reports whether p passes the filter
func (f PostFilter) Match(p entity.Post) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.MediaType != "" && p.MediaType != f.MediaType {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// Filter returns the posts matching f
func Filter(posts []entity.Post, f PostFilter) []entity.Post {
	return Select(posts, f.Match)
}

// Rank orders posts by a field and assigns 1-based positions.
// "rank" always sorts by the exported composite rank ascending with unranked
// posts last; missing metric values sort as 0. Equal keys keep input order.
func Rank(posts []entity.Post, field string, dir SortDir) ([]entity.RankedPost, error) {
	sorted := make([]entity.Post, len(posts))
	copy(sorted, posts)

	switch field {
	case SortByRank:
		sort.SliceStable(sorted, func(i, j int) bool {
			return rankOrLast(sorted[i]) < rankOrLast(sorted[j])
		})
	case SortByUploadDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			if dir == SortDesc {
				return sorted[i].UploadDate > sorted[j].UploadDate
			}
			return sorted[i].UploadDate < sorted[j].UploadDate
		})
	default:
		m, err := entity.ParseMetric(field)
		if err != nil {
			return nil, err
		}
		sort.SliceStable(sorted, func(i, j int) bool {
			a, _ := sorted[i].Value(m)
			b, _ := sorted[j].Value(m)
			if dir == SortDesc {
				return a > b
			}
			return a < b
		})
	}

	out := make([]entity.RankedPost, len(sorted))
	for i, p := range sorted {
		out[i] = entity.RankedPost{Post: p, Position: i + 1}
	}
	return out, nil
}

// Top returns the first n posts by exported rank
func Top(posts []entity.Post, n int) []entity.RankedPost {
	ranked, _ := Rank(posts, SortByRank, SortAsc)
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

func rankOrLast(p entity.Post) int {
	if p.Rank == nil {
		return math.MaxInt
	}
	return *p.Rank
}
