package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vadim/neo-insights/internal/domain/insight/entity"
	"github.com/vadim/neo-insights/internal/domain/insight/period"
)

// postNamespace scopes post IDs derived from natural keys
var postNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("neo-insights/post"))

// normalizeRate converts fractions to percentages and clamps to [0, 100].
// Any value below 1 is taken as a fraction, so a genuine 0.5% rate is read as 50%.
func normalizeRate(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := *v
	if r < 1 {
		r *= 100
	}
	r = max(0, min(100, r))
	return &r
}

func followRate(follows, reach *int64) *float64 {
	if follows == nil || reach == nil || *reach <= 0 {
		return nil
	}
	r := float64(*follows) / float64(*reach) * 100
	return &r
}

func normalizePost(r rawPost) entity.Post {
	p := entity.Post{
		URL:        r.URL,
		Title:      r.Title,
		UploadDate: r.UploadDate,
		CheckDate:  r.CheckDate,
		MediaType:  entity.MediaType(r.MediaType),
		Category:   r.Category,
		Rank:       toInt(r.Rank),

		Reach:    toInt64(r.Reach),
		Views:    toInt64(r.Views),
		Likes:    toInt64(r.Likes),
		Saves:    toInt64(r.Saves),
		Shares:   toInt64(r.Shares),
		Comments: toInt64(r.Comments),
		Follows:  toInt64(r.Follows),

		EngagementRate: normalizeRate(r.EngagementRate),
		SaveRate:       normalizeRate(r.SaveRate),
		ShareRate:      normalizeRate(r.ShareRate),
		CompositeScore: r.CompositeScore,
	}
	p.FollowRate = followRate(p.Follows, p.Reach)
	if d, ok := period.ParseDate(r.UploadDate); ok {
		p.Date = d
	}
	return p
}

// normalizePosts converts a raw collection and assigns stable IDs.
// Empty and repeated natural keys are reported as issues; the first post
// with a key owns the key-derived ID, later ones get an occurrence suffix.
func normalizePosts(collection string, raw []rawPost) ([]entity.Post, []entity.DataIssue) {
	posts := make([]entity.Post, len(raw))
	seen := make(map[string]int, len(raw))
	var issues []entity.DataIssue

	for i, r := range raw {
		p := normalizePost(r)
		key := p.Key()

		switch n := seen[key]; {
		case key == "":
			issues = append(issues, entity.DataIssue{Kind: entity.DataIssueEmptyKey, Collection: collection, Index: i})
			p.ID = uuid.NewSHA1(postNamespace, []byte(fmt.Sprintf("#%d", i))).String()
		case n > 0:
			issues = append(issues, entity.DataIssue{Kind: entity.DataIssueDuplicateKey, Collection: collection, Key: key, Index: i})
			p.ID = uuid.NewSHA1(postNamespace, []byte(fmt.Sprintf("%s#%d", key, n))).String()
		default:
			p.ID = uuid.NewSHA1(postNamespace, []byte(key)).String()
		}
		if key != "" {
			seen[key]++
		}

		posts[i] = p
	}
	return posts, issues
}
