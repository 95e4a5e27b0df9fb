package articles

import (
	"context"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/api"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
)

const basePath = "/api/admin/articles"

type httpRepository struct {
	gw *api.Gateway
}

func NewHTTPRepository(gw *api.Gateway) Repository {
	return &httpRepository{gw: gw}
}

func (r *httpRepository) List(ctx context.Context, p api.ListParams) (*models.Page[models.Article], error) {
	return api.List[models.Article](ctx, r.gw, basePath, p)
}

func (r *httpRepository) Get(ctx context.Context, id string) (*models.Article, error) {
	var a models.Article
	if err := r.gw.GetJSON(ctx, basePath+"/"+id, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *httpRepository) Create(ctx context.Context, a *models.Article) (*models.Article, error) {
	var created models.Article
	if err := r.gw.PostJSON(ctx, basePath, a, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *httpRepository) Update(ctx context.Context, id string, a *models.Article) (*models.Article, error) {
	var updated models.Article
	if err := r.gw.PutJSON(ctx, basePath+"/"+id, a, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *httpRepository) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, basePath+"/"+id)
}
