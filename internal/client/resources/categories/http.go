package categories

import (
	"context"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/api"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
)

const basePath = "/api/admin/categories"

type httpRepository struct {
	gw *api.Gateway
}

func NewHTTPRepository(gw *api.Gateway) Repository {
	return &httpRepository{gw: gw}
}

func (r *httpRepository) List(ctx context.Context, p api.ListParams) (*models.Page[models.Category], error) {
	return api.List[models.Category](ctx, r.gw, basePath, p)
}

func (r *httpRepository) All(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := r.gw.GetJSON(ctx, basePath+"/all", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *httpRepository) Get(ctx context.Context, id string) (*models.Category, error) {
	var c models.Category
	if err := r.gw.GetJSON(ctx, basePath+"/"+id, nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *httpRepository) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	var created models.Category
	if err := r.gw.PostJSON(ctx, basePath, c, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *httpRepository) Update(ctx context.Context, id string, c *models.Category) (*models.Category, error) {
	var updated models.Category
	if err := r.gw.PutJSON(ctx, basePath+"/"+id, c, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *httpRepository) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, basePath+"/"+id)
}
