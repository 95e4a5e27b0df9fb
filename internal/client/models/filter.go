package models

import "github.com/DaoQuangHuy2702/ludoan72-news/internal/common"

// CategoryRef is the compact category shape embedded in articles and used
// for category filter options.
type CategoryRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ColorCode string `json:"colorCode"`
}

// Filter is a tagged variant for list filter options: either a plain label
// (status values, article types, the "all" sentinel) or a category
// reference. The variant is resolved once at the boundary; downstream code
// asks for Value/Display instead of branching on shape.
type Filter struct {
	label    string
	category *CategoryRef
}

// LabelFilter wraps a plain string option.
func LabelFilter(s string) Filter {
	return Filter{label: s}
}

// CategoryFilter wraps a category option.
func CategoryFilter(c CategoryRef) Filter {
	return Filter{category: &c}
}

// AllFilter is the sentinel option meaning "no constraint".
func AllFilter() Filter {
	return Filter{label: common.FilterAll}
}

// IsAll reports whether this is the sentinel option.
func (f Filter) IsAll() bool {
	return f.category == nil && f.label == common.FilterAll
}

// Value is what goes into the query string: the label, or the category id.
// Sentinel filters have no query value.
func (f Filter) Value() string {
	if f.IsAll() {
		return ""
	}
	if f.category != nil {
		return f.category.ID
	}
	return f.label
}

// Display is the human-readable option text.
func (f Filter) Display() string {
	if f.category != nil {
		return f.category.Name
	}
	return f.label
}
