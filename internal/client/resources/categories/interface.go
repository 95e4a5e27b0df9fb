// Package categories is the client for the article category resource.
package categories

import (
	"context"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/api"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
)

type Repository interface {
	List(ctx context.Context, p api.ListParams) (*models.Page[models.Category], error)
	// All fetches every category in one call, for filter dropdowns and the
	// article form's category selector.
	All(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) (*models.Category, error)
	Update(ctx context.Context, id string, c *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}
