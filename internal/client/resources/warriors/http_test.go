package warriors

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/api"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/session"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/common"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/logging"
)

func newRepo(t *testing.T, handler http.Handler) Repository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	sess := session.NewStore(filepath.Join(t.TempDir(), "token"))
	return NewHTTPRepository(api.New(srv.URL, 5*time.Second, sess, logging.NewNop()))
}

func envelope(data any) []byte {
	b, _ := json.Marshal(map[string]any{"success": true, "statusCode": "00", "data": data})
	return b
}

func TestList_HitsListEndpoint(t *testing.T) {
	repo := newRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/warriors", r.URL.Path)
		require.Equal(t, "0", r.URL.Query().Get("page"))
		_, _ = w.Write(envelope(map[string]any{
			"content":    []models.Warrior{{ID: "w1", Name: "Nguyễn Văn A"}},
			"totalPages": 1,
		}))
	}))

	page, err := repo.List(context.Background(), api.ListParams{Page: 0, Size: 10})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	require.Equal(t, "Nguyễn Văn A", page.Content[0].Name)
}

func TestCreateUpdateDelete_Paths(t *testing.T) {
	var calls []string
	repo := newRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		_, _ = w.Write(envelope(models.Warrior{ID: "w9"}))
	}))

	ctx := context.Background()
	created, err := repo.Create(ctx, &models.Warrior{Name: "B"})
	require.NoError(t, err)
	require.Equal(t, "w9", created.ID)

	_, err = repo.Update(ctx, "w9", created)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, "w9"))

	require.Equal(t, []string{
		"POST /api/admin/warriors",
		"PUT /api/admin/warriors/w9",
		"DELETE /api/admin/warriors/w9",
	}, calls)
}

func TestGet_NotFound(t *testing.T) {
	repo := newRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}
