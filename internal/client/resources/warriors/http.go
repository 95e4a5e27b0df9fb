package warriors

import (
	"context"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/api"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
)

const basePath = "/api/admin/warriors"

type httpRepository struct {
	gw *api.Gateway
}

// NewHTTPRepository binds the repository to the gateway.
func NewHTTPRepository(gw *api.Gateway) Repository {
	return &httpRepository{gw: gw}
}

func (r *httpRepository) List(ctx context.Context, p api.ListParams) (*models.Page[models.Warrior], error) {
	return api.List[models.Warrior](ctx, r.gw, basePath, p)
}

func (r *httpRepository) Get(ctx context.Context, id string) (*models.Warrior, error) {
	var w models.Warrior
	if err := r.gw.GetJSON(ctx, basePath+"/"+id, nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *httpRepository) Create(ctx context.Context, w *models.Warrior) (*models.Warrior, error) {
	var created models.Warrior
	if err := r.gw.PostJSON(ctx, basePath, w, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *httpRepository) Update(ctx context.Context, id string, w *models.Warrior) (*models.Warrior, error) {
	var updated models.Warrior
	if err := r.gw.PutJSON(ctx, basePath+"/"+id, w, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *httpRepository) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, basePath+"/"+id)
}
