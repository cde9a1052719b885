package query

import "strings"

// SortField names a Post field a listing can be ordered by.
type SortField string

// SortDir is a sort direction, ascending or descending.
type SortDir string

const (
	FieldID        SortField = "id"
	FieldTitle     SortField = "title"
	FieldAuthor    SortField = "author"
	FieldCreatedAt SortField = "created_at"
	FieldUpdatedAt SortField = "updated_at"
	FieldViews     SortField = "views"

	DirAsc  SortDir = "asc"
	DirDesc SortDir = "desc"
)

// DefaultSortField and DefaultSortDir are what ParseSort falls back to.
const (
	DefaultSortField = FieldCreatedAt
	DefaultSortDir   = DirDesc
)

var sortFields = map[SortField]bool{
	FieldID:        true,
	FieldTitle:     true,
	FieldAuthor:    true,
	FieldCreatedAt: true,
	FieldUpdatedAt: true,
	FieldViews:     true,
}

// ParseSort parses a "field:direction" spec into a validated pair.
//
// Malformed input of any kind — missing colon, unknown field, unknown
// direction — falls back to (created_at, desc) instead of failing the
// request. Callers relying on this endpoint have always been able to
// send garbage sort specs, so the fallback is part of the contract.
func ParseSort(spec string) (SortField, SortDir) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return DefaultSortField, DefaultSortDir
	}

	field := SortField(strings.TrimSpace(parts[0]))
	dir := SortDir(strings.ToLower(strings.TrimSpace(parts[1])))

	if !sortFields[field] {
		return DefaultSortField, DefaultSortDir
	}
	if dir != DirAsc && dir != DirDesc {
		return DefaultSortField, DefaultSortDir
	}
	return field, dir
}
