package public

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

func TestArticles_PublishedListing(t *testing.T) {
	repo := newRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/articles", r.URL.Path)
		require.Equal(t, "news", r.URL.Query().Get("type"))
		_, _ = w.Write([]byte(`{"success":true,"data":{
			"content":[{"id":"a1","title":"Diễn tập","type":"news"}],
			"totalPages":2}}`))
	}))

	page, err := repo.Articles(context.Background(), api.ListParams{
		Page: 0, Size: 9, Filters: map[string]string{"type": "news"},
	})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	require.Equal(t, "Diễn tập", page.Content[0].Title)
	require.Equal(t, 2, page.TotalPages)
}

func TestCountView_PostsToViewEndpoint(t *testing.T) {
	var got string
	repo := newRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Method + " " + r.URL.Path
		_, _ = w.Write([]byte(`{"success":true}`))
	}))

	require.NoError(t, repo.CountView(context.Background(), "a1"))
	require.Equal(t, "POST /api/articles/a1/view", got)
}

func TestSubmitQuiz_SendsAnswersReturnsScore(t *testing.T) {
	repo := newRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "Chiến sĩ B", req.PlayerName)
		require.Len(t, req.Answers, 2)

		_, _ = w.Write([]byte(`{"success":true,"data":
			{"id":"r1","quizId":"q1","playerName":"Chiến sĩ B","score":8,"total":10}}`))
	}))

	res, err := repo.SubmitQuiz(context.Background(), "q1", "Chiến sĩ B", []QuizAnswer{
		{QuestionID: "qq1", Option: 2},
		{QuestionID: "qq2", Option: 0},
	})
	require.NoError(t, err)
	require.Equal(t, 8, res.Score)
	require.Equal(t, 10, res.Total)
}

func TestContact_PostsMessage(t *testing.T) {
	repo := newRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg models.ContactMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		require.Equal(t, "hello", msg.Message)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))

	err := repo.Contact(context.Background(), &models.ContactMessage{Name: "A", Message: "hello"})
	require.NoError(t, err)
}
