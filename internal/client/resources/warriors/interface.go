// Package warriors is the client for the personnel records resource.
package warriors

import (
	"context"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/api"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
)

// Repository defines the operations the admin screens need.
//
// All methods honor context cancellation. Get returns common.ErrNotFound
// (wrapped) when the backend has no record for the id.
type Repository interface {
	List(ctx context.Context, p api.ListParams) (*models.Page[models.Warrior], error)
	Get(ctx context.Context, id string) (*models.Warrior, error)
	Create(ctx context.Context, w *models.Warrior) (*models.Warrior, error)
	Update(ctx context.Context, id string, w *models.Warrior) (*models.Warrior, error)
	Delete(ctx context.Context, id string) error
}
