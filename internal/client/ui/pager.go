package ui

// PageWindow returns the zero-based page numbers to render: the current page
// plus up to radius neighbors on each side, clipped to [0, totalPages).
// Nothing is rendered for an unknown or single-page result set.
func PageWindow(current, totalPages, radius int) []int {
	if totalPages <= 1 {
		return nil
	}
	lo := current - radius
	if lo < 0 {
		lo = 0
	}
	hi := current + radius
	if hi > totalPages-1 {
		hi = totalPages - 1
	}
	out := make([]int, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		out = append(out, p)
	}
	return out
}

// HasPrevPage reports whether a previous page exists.
func HasPrevPage(current int) bool { return current > 0 }

// HasNextPage reports whether a next page exists.
func HasNextPage(current, totalPages int) bool { return current < totalPages-1 }
