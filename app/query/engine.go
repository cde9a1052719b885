package query

import (
	"sort"
	"strings"

	"boardapi/app/models"
)

// Run filters, sorts and paginates a snapshot of posts.
//
// The term is matched case-insensitively as a substring of title, author
// or content; an empty or whitespace-only term matches everything. The
// sort is stable, so posts with equal keys keep their snapshot order and
// pagination stays deterministic across pages. Total is the match count
// before pagination. A page starting beyond the last match yields empty
// items, not an error.
//
// Run assumes page >= 1 and size >= 1; the HTTP layer validates both.
// It never mutates the posts it is given.
func Run(posts []*models.Post, term string, field SortField, dir SortDir, page, size int) *models.PageResult {
	items := filter(posts, term)

	less := lessFunc(field)
	if dir == DirDesc {
		asc := less
		less = func(a, b *models.Post) bool { return asc(b, a) }
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })

	total := len(items)
	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &models.PageResult{
		Items: items[start:end],
		Total: total,
		Page:  page,
		Size:  size,
	}
}

// filter keeps posts containing the trimmed, lowercased term in any of
// the three text fields.
func filter(posts []*models.Post, term string) []*models.Post {
	items := make([]*models.Post, 0, len(posts))

	s := strings.ToLower(strings.TrimSpace(term))
	if s == "" {
		return append(items, posts...)
	}

	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), s) ||
			strings.Contains(strings.ToLower(p.Author), s) ||
			strings.Contains(strings.ToLower(p.Content), s) {
			items = append(items, p)
		}
	}
	return items
}

// lessFunc returns the ascending comparison for a sort field.
func lessFunc(field SortField) func(a, b *models.Post) bool {
	switch field {
	case FieldID:
		return func(a, b *models.Post) bool { return a.ID < b.ID }
	case FieldTitle:
		return func(a, b *models.Post) bool { return a.Title < b.Title }
	case FieldAuthor:
		return func(a, b *models.Post) bool { return a.Author < b.Author }
	case FieldUpdatedAt:
		return func(a, b *models.Post) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case FieldViews:
		return func(a, b *models.Post) bool { return a.Views < b.Views }
	default:
		return func(a, b *models.Post) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}
}
