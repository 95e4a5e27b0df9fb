// Package models defines the entities exchanged with the ludoan72-news
// backend and the small value types (dates, media references, filters)
// shared by every resource.
package models

// Page is one fetched page of records. Content keeps the server-provided
// order; it is never re-sorted client-side.
type Page[T any] struct {
	Content    []T
	PageIndex  int
	PageSize   int
	TotalPages int
}

// HasPrev reports whether a previous page exists.
func (p *Page[T]) HasPrev() bool {
	return p.PageIndex > 0
}

// HasNext reports whether a following page exists.
func (p *Page[T]) HasNext() bool {
	return p.PageIndex < p.TotalPages-1
}
