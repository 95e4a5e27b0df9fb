package api

import (
	"net/url"
	"strconv"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/common"
)

// ListParams describes one page request against a list endpoint.
type ListParams struct {
	Page    int    // zero-based
	Size    int    // records per page
	Search  string // free-text query
	Sort    string // "field,direction"
	Filters map[string]string
}

// Values encodes the descriptor as query parameters. Empty and sentinel
// ("all") filter values are omitted entirely.
func (p ListParams) Values() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	for k, v := range p.Filters {
		if v == "" || v == common.FilterAll {
			continue
		}
		q.Set(k, v)
	}
	return q
}
