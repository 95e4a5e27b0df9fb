// Package articles is the client for the admin article resource.
package articles

import (
	"context"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/api"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
)

type Repository interface {
	List(ctx context.Context, p api.ListParams) (*models.Page[models.Article], error)
	Get(ctx context.Context, id string) (*models.Article, error)
	Create(ctx context.Context, a *models.Article) (*models.Article, error)
	Update(ctx context.Context, id string, a *models.Article) (*models.Article, error)
	Delete(ctx context.Context, id string) error
}
