// Package public is the client for the unauthenticated site endpoints:
// published article listings, quiz play, and the contact form.
package public

import (
	"context"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/api"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
)

// QuizAnswer pairs a question with the chosen option index.
type QuizAnswer struct {
	QuestionID string `json:"questionId"`
	Option     int    `json:"option"`
}

type Repository interface {
	// Articles lists published articles; the type and category filters use
	// the same descriptor as the admin lists.
	Articles(ctx context.Context, p api.ListParams) (*models.Page[models.Article], error)
	Article(ctx context.Context, id string) (*models.Article, error)
	// CountView bumps an article's view counter, best-effort: failures are
	// logged by the caller and never block content display.
	CountView(ctx context.Context, id string) error
	PlayQuiz(ctx context.Context, id string) ([]models.QuizQuestion, error)
	// SubmitQuiz sends answers for backend scoring and returns the recorded
	// result.
	SubmitQuiz(ctx context.Context, id, playerName string, answers []QuizAnswer) (*models.QuizResult, error)
	Contact(ctx context.Context, msg *models.ContactMessage) error
}

type httpRepository struct {
	gw *api.Gateway
}

func NewHTTPRepository(gw *api.Gateway) Repository {
	return &httpRepository{gw: gw}
}

func (r *httpRepository) Articles(ctx context.Context, p api.ListParams) (*models.Page[models.Article], error) {
	return api.List[models.Article](ctx, r.gw, "/api/articles", p)
}

func (r *httpRepository) Article(ctx context.Context, id string) (*models.Article, error) {
	var a models.Article
	if err := r.gw.GetJSON(ctx, "/api/articles/"+id, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *httpRepository) CountView(ctx context.Context, id string) error {
	return r.gw.PostJSON(ctx, "/api/articles/"+id+"/view", nil, nil)
}

func (r *httpRepository) PlayQuiz(ctx context.Context, id string) ([]models.QuizQuestion, error) {
	var qs []models.QuizQuestion
	if err := r.gw.GetJSON(ctx, "/api/quizzes/"+id+"/play", nil, &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

type submitRequest struct {
	PlayerName string       `json:"playerName"`
	Answers    []QuizAnswer `json:"answers"`
}

func (r *httpRepository) SubmitQuiz(ctx context.Context, id, playerName string, answers []QuizAnswer) (*models.QuizResult, error) {
	var res models.QuizResult
	err := r.gw.PostJSON(ctx, "/api/quizzes/"+id+"/submit", submitRequest{PlayerName: playerName, Answers: answers}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *httpRepository) Contact(ctx context.Context, msg *models.ContactMessage) error {
	return r.gw.PostJSON(ctx, "/api/contact", msg, nil)
}
