package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/ui"
)

func newQuizzesCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quizzes",
		Short: "Browse quizzes",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			return (*app).requireLogin()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Browse quizzes interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*app).browseQuizzes(cmd.Context())
		},
	})
	return cmd
}

func (a *App) browseQuizzes(ctx context.Context) error {
	cfg := ui.ListConfig[models.Quiz]{
		Title: "Quizzes",
		Columns: []table.Column{
			{Title: "Title", Width: 32},
			{Title: "Questions", Width: 10},
			{Title: "Status", Width: 10},
			{Title: "Description", Width: 36},
		},
		Row: func(q models.Quiz) table.Row {
			return table.Row{q.Title, fmt.Sprintf("%d", q.QuestionCount), q.Status, q.Description}
		},
		ID:     func(q models.Quiz) string { return q.ID },
		Label:  func(q models.Quiz) string { return q.Title },
		Delete: a.quizzes.Delete,
	}

	return browseLoop(a, ctx, cfg, a.quizzes.List, func(ctx context.Context, res ui.Result) error {
		// Quizzes are authored elsewhere; the admin list only inspects and
		// retires them.
		return nil
	})
}

func newQuizResultsCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz-results",
		Short: "Browse quiz results",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			return (*app).requireLogin()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Browse quiz results interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*app).browseQuizResults(cmd.Context())
		},
	})
	return cmd
}

func (a *App) browseQuizResults(ctx context.Context) error {
	cfg := ui.ListConfig[models.QuizResult]{
		Title: "Quiz results",
		Columns: []table.Column{
			{Title: "Player", Width: 24},
			{Title: "Quiz", Width: 28},
			{Title: "Score", Width: 10},
			{Title: "Completed", Width: 12},
		},
		Row: func(r models.QuizResult) table.Row {
			return table.Row{r.PlayerName, r.QuizTitle, fmt.Sprintf("%d/%d", r.Score, r.Total), r.CompletedAt.Display()}
		},
		ID:     func(r models.QuizResult) string { return r.ID },
		Label:  func(r models.QuizResult) string { return r.PlayerName + " on " + r.QuizTitle },
		Delete: a.quizResults.Delete,
	}

	return browseLoop(a, ctx, cfg, a.quizResults.List, func(ctx context.Context, res ui.Result) error {
		return nil
	})
}
