// Package quizzes is the client for the admin quiz resource. Quizzes are
// authored elsewhere; the admin surface lists and retires them.
package quizzes

import (
	"context"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/api"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
)

type Repository interface {
	List(ctx context.Context, p api.ListParams) (*models.Page[models.Quiz], error)
	Get(ctx context.Context, id string) (*models.Quiz, error)
	Delete(ctx context.Context, id string) error
}

const basePath = "/api/admin/quizzes"

type httpRepository struct {
	gw *api.Gateway
}

func NewHTTPRepository(gw *api.Gateway) Repository {
	return &httpRepository{gw: gw}
}

func (r *httpRepository) List(ctx context.Context, p api.ListParams) (*models.Page[models.Quiz], error) {
	return api.List[models.Quiz](ctx, r.gw, basePath, p)
}

func (r *httpRepository) Get(ctx context.Context, id string) (*models.Quiz, error) {
	var q models.Quiz
	if err := r.gw.GetJSON(ctx, basePath+"/"+id, nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *httpRepository) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, basePath+"/"+id)
}
