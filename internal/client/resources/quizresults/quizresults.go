// Package quizresults is the client for the quiz leaderboard records.
// Results are backend-scored and read-only except for cleanup deletes.
package quizresults

import (
	"context"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/api"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
)

type Repository interface {
	List(ctx context.Context, p api.ListParams) (*models.Page[models.QuizResult], error)
	Delete(ctx context.Context, id string) error
}

const basePath = "/api/admin/quiz-results"

type httpRepository struct {
	gw *api.Gateway
}

func NewHTTPRepository(gw *api.Gateway) Repository {
	return &httpRepository{gw: gw}
}

func (r *httpRepository) List(ctx context.Context, p api.ListParams) (*models.Page[models.QuizResult], error) {
	return api.List[models.QuizResult](ctx, r.gw, basePath, p)
}

func (r *httpRepository) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, basePath+"/"+id)
}
