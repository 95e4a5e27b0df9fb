package quizzes

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

func TestListGetDelete_Paths(t *testing.T) {
	var calls []string
	repo := newRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/api/admin/quizzes":
			_, _ = w.Write(envelope(map[string]any{
				"content":    []models.Quiz{{ID: "q1", Title: "Lịch sử đơn vị", QuestionCount: 12}},
				"totalPages": 1,
			}))
		default:
			_, _ = w.Write(envelope(models.Quiz{ID: "q1", Title: "Lịch sử đơn vị"}))
		}
	}))

	ctx := context.Background()
	page, err := repo.List(ctx, api.ListParams{Size: 10})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	require.Equal(t, 12, page.Content[0].QuestionCount)

	q, err := repo.Get(ctx, "q1")
	require.NoError(t, err)
	require.Equal(t, "Lịch sử đơn vị", q.Title)

	require.NoError(t, repo.Delete(ctx, "q1"))

	require.Equal(t, []string{
		"GET /api/admin/quizzes",
		"GET /api/admin/quizzes/q1",
		"DELETE /api/admin/quizzes/q1",
	}, calls)
}
