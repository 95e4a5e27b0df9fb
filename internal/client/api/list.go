package api

import (
	"context"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
)

// pagePayload matches the backend's pagination response shape.
type pagePayload[T any] struct {
	Content    []T `json:"content"`
	TotalPages int `json:"totalPages"`
}

// List fetches one page of T from a list endpoint and stamps it with the
// requested page coordinates.
func List[T any](ctx context.Context, g *Gateway, path string, p ListParams) (*models.Page[T], error) {
	var payload pagePayload[T]
	if err := g.GetJSON(ctx, path, p.Values(), &payload); err != nil {
		return nil, err
	}
	return &models.Page[T]{
		Content:    payload.Content,
		PageIndex:  p.Page,
		PageSize:   p.Size,
		TotalPages: payload.TotalPages,
	}, nil
}
