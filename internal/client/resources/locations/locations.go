// Package locations serves the province/commune hometown cascade.
package locations

import (
	"context"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/api"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
)

type Repository interface {
	Provinces(ctx context.Context) ([]models.Province, error)
	// Communes lists the communes belonging to one province. A province
	// change in a form must re-fetch through this and discard the previous
	// commune selection.
	Communes(ctx context.Context, provinceID string) ([]models.Commune, error)
}

type httpRepository struct {
	gw *api.Gateway
}

func NewHTTPRepository(gw *api.Gateway) Repository {
	return &httpRepository{gw: gw}
}

func (r *httpRepository) Provinces(ctx context.Context) ([]models.Province, error) {
	var out []models.Province
	if err := r.gw.GetJSON(ctx, "/api/locations/provinces", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *httpRepository) Communes(ctx context.Context, provinceID string) ([]models.Commune, error) {
	var out []models.Commune
	if err := r.gw.GetJSON(ctx, "/api/locations/provinces/"+provinceID+"/communes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
