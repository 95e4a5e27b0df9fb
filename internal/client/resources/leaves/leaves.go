// Package leaves is the client for warrior leave requests.
package leaves

import (
	"context"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/api"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
)

type Repository interface {
	List(ctx context.Context, p api.ListParams) (*models.Page[models.LeaveRequest], error)
	Get(ctx context.Context, id string) (*models.LeaveRequest, error)
	Create(ctx context.Context, l *models.LeaveRequest) (*models.LeaveRequest, error)
	Update(ctx context.Context, id string, l *models.LeaveRequest) (*models.LeaveRequest, error)
	Delete(ctx context.Context, id string) error
}

const basePath = "/api/admin/leaves"

type httpRepository struct {
	gw *api.Gateway
}

func NewHTTPRepository(gw *api.Gateway) Repository {
	return &httpRepository{gw: gw}
}

func (r *httpRepository) List(ctx context.Context, p api.ListParams) (*models.Page[models.LeaveRequest], error) {
	return api.List[models.LeaveRequest](ctx, r.gw, basePath, p)
}

func (r *httpRepository) Get(ctx context.Context, id string) (*models.LeaveRequest, error) {
	var l models.LeaveRequest
	if err := r.gw.GetJSON(ctx, basePath+"/"+id, nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *httpRepository) Create(ctx context.Context, l *models.LeaveRequest) (*models.LeaveRequest, error) {
	var created models.LeaveRequest
	if err := r.gw.PostJSON(ctx, basePath, l, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *httpRepository) Update(ctx context.Context, id string, l *models.LeaveRequest) (*models.LeaveRequest, error) {
	var updated models.LeaveRequest
	if err := r.gw.PutJSON(ctx, basePath+"/"+id, l, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *httpRepository) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, basePath+"/"+id)
}
