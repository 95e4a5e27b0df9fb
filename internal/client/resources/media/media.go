// Package media uploads files to the backend's media store and returns the
// stored reference.
package media

import (
	"context"
	"io"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/api"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
)

type Repository interface {
	// Upload sends one file and returns the stored reference. The reference
	// may be relative; resolve it through models.MediaRef.Resolve.
	Upload(ctx context.Context, filename string, file io.Reader) (models.MediaRef, error)
}

type httpRepository struct {
	gw *api.Gateway
}

func NewHTTPRepository(gw *api.Gateway) Repository {
	return &httpRepository{gw: gw}
}

func (r *httpRepository) Upload(ctx context.Context, filename string, file io.Reader) (models.MediaRef, error) {
	var out struct {
		URL models.MediaRef `json:"url"`
	}
	err := r.gw.PostMultipart(ctx, "/api/admin/media/upload", "file", filename, file, &out)
	if err != nil {
		return "", err
	}
	return out.URL, nil
}
