package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/resources/public"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/ui"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/common"
)

// newNewsCmd exposes the public site endpoints; no login is required.
func newNewsCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Read the public news site",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Browse published articles",
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).browseNews(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "read <id>",
			Short: "Read one article",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).readNews(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "play <quiz-id>",
			Short: "Play a quiz",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).playQuiz(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "contact",
			Short: "Send a message through the contact form",
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).sendContact(cmd.Context())
			},
		},
	)
	return cmd
}

func (a *App) browseNews(ctx context.Context) error {
	cfg := ui.ListConfig[models.Article]{
		Title: "Tin tức Lữ đoàn 72",
		Columns: []table.Column{
			{Title: "Title", Width: 40},
			{Title: "Category", Width: 14},
			{Title: "Published", Width: 12},
			{Title: "Views", Width: 7},
		},
		Row: func(art models.Article) table.Row {
			cat := ""
			if art.Category != nil {
				cat = art.Category.Name
			}
			return table.Row{art.Title, cat, art.PublishedAt.Display(), fmt.Sprintf("%d", art.ViewCount)}
		},
		ID:    func(art models.Article) string { return art.ID },
		Label: func(art models.Article) string { return art.Title },
		Filters: []models.Filter{
			models.AllFilter(),
			models.LabelFilter(models.ArticleTypeNews),
			models.LabelFilter(models.ArticleTypeActivity),
		},
		FilterKey: "type",
	}

	return browseLoop(a, ctx, cfg, a.public.Articles, func(ctx context.Context, res ui.Result) error {
		if res.Action == ui.ActionShow {
			return a.readNews(ctx, res.ID)
		}
		return nil
	})
}

func (a *App) readNews(ctx context.Context, id string) error {
	art, err := a.public.Article(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "Article not found.")
			return nil
		}
		return err
	}

	// View counting is best-effort: a failure is logged, never surfaced.
	if err := a.public.CountView(ctx, id); err != nil {
		a.log.Debug(ctx, "view count failed", "article", id, "error", err)
	}

	fmt.Fprintf(a.out, "%s\n", art.Title)
	if art.Category != nil {
		fmt.Fprintf(a.out, "%s | ", art.Category.Name)
	}
	fmt.Fprintf(a.out, "%s | %d views\n\n", art.PublishedAt.Display(), art.ViewCount)
	fmt.Fprintf(a.out, "%s\n\n%s\n", art.Summary, art.Content)
	return nil
}

func (a *App) playQuiz(ctx context.Context, id string) error {
	questions, err := a.public.PlayQuiz(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "Quiz not found.")
			return nil
		}
		return err
	}
	if len(questions) == 0 {
		fmt.Fprintln(a.out, "This quiz has no questions yet.")
		return nil
	}

	name, err := GetSimpleText(a.reader, "Your name", a.out)
	if err != nil {
		return err
	}

	answers := make([]public.QuizAnswer, 0, len(questions))
	for i, q := range questions {
		fmt.Fprintf(a.out, "\nQuestion %d/%d\n", i+1, len(questions))
		pick, err := GetChoice(a.reader, q.Text, q.Options, -1, a.out)
		if err != nil {
			return err
		}
		answers = append(answers, public.QuizAnswer{QuestionID: q.ID, Option: pick})
	}

	result, err := a.public.SubmitQuiz(ctx, id, name, answers)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "\n%s scored %d/%d on %s.\n", result.PlayerName, result.Score, result.Total, result.QuizTitle)
	return nil
}

func (a *App) sendContact(ctx context.Context) error {
	var msg models.ContactMessage
	var err error
	if msg.Name, err = GetSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if msg.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if msg.Phone, err = GetSimpleText(a.reader, "Phone", a.out); err != nil {
		return err
	}
	if msg.Message, err = GetMultiline(a.reader, "Message", a.out); err != nil {
		return err
	}

	if err := a.public.Contact(ctx, &msg); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Message sent.")
	return nil
}
