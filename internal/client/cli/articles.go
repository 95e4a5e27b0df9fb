package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/form"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/ui"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/common"
)

func newArticlesCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "articles",
		Short: "Manage news and activity posts",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			return (*app).requireLogin()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Browse articles interactively",
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).browseArticles(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "add",
			Short: "Create an article",
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).articleForm(cmd.Context(), "")
			},
		},
		&cobra.Command{
			Use:   "edit <id>",
			Short: "Edit an article",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).articleForm(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show one article",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).showArticle(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete an article",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).deleteByID(cmd.Context(), "article", args[0], (*app).articles.Delete)
			},
		},
	)
	return cmd
}

func (a *App) browseArticles(ctx context.Context) error {
	// The category filter is loaded fresh each time the list opens so newly
	// created categories appear without restarting.
	filters := []models.Filter{models.AllFilter()}
	if cats, err := a.categories.All(ctx); err == nil {
		for _, c := range cats {
			filters = append(filters, models.CategoryFilter(c.Ref()))
		}
	} else {
		a.log.Warn(ctx, "category filter unavailable", "error", err)
	}

	cfg := ui.ListConfig[models.Article]{
		Title: "Articles",
		Columns: []table.Column{
			{Title: "Title", Width: 36},
			{Title: "Type", Width: 9},
			{Title: "Category", Width: 14},
			{Title: "Status", Width: 10},
			{Title: "Published", Width: 12},
			{Title: "Views", Width: 7},
		},
		Row: func(art models.Article) table.Row {
			cat := ""
			if art.Category != nil {
				cat = art.Category.Name
			}
			return table.Row{art.Title, art.Type, cat, art.Status, art.PublishedAt.Display(), fmt.Sprintf("%d", art.ViewCount)}
		},
		ID:        func(art models.Article) string { return art.ID },
		Label:     func(art models.Article) string { return art.Title },
		Filters:   filters,
		FilterKey: "categoryId",
		Delete:    a.articles.Delete,
	}

	return browseLoop(a, ctx, cfg, a.articles.List, func(ctx context.Context, res ui.Result) error {
		switch res.Action {
		case ui.ActionAdd:
			return a.articleForm(ctx, "")
		case ui.ActionEdit:
			return a.articleForm(ctx, res.ID)
		case ui.ActionShow:
			return a.showArticle(ctx, res.ID)
		}
		return nil
	})
}

func (a *App) articleForm(ctx context.Context, id string) error {
	a.warnExpiring()

	slot := a.newUploadSlot()
	defer slot.Release()

	f := form.NewArticleForm(a.articles, a.categories, newExternalEditor(), slot)
	if err := f.Load(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "Article not found.")
			return nil
		}
		return err
	}

	var err error
	if f.Draft.Title, err = GetTextDefault(a.reader, "Title", f.Draft.Title, a.out); err != nil {
		return err
	}
	if f.Draft.Summary, err = GetTextDefault(a.reader, "Summary", f.Draft.Summary, a.out); err != nil {
		return err
	}

	types := []string{models.ArticleTypeNews, models.ArticleTypeActivity}
	typeIdx, err := GetChoice(a.reader, "Type", types, indexOf(types, f.Draft.Type), a.out)
	if err != nil {
		return err
	}
	f.Draft.Type = types[typeIdx]

	if err := a.promptCategory(f); err != nil {
		return err
	}

	if f.Draft.PublishedAt, err = a.promptDate("Published date", f.Draft.PublishedAt); err != nil {
		return err
	}

	statuses := []string{models.ArticleStatusDraft, models.ArticleStatusPublished}
	statusIdx, err := GetChoice(a.reader, "Status", statuses, indexOf(statuses, f.Draft.Status), a.out)
	if err != nil {
		return err
	}
	f.Draft.Status = statuses[statusIdx]

	featured, err := GetConfirm(a.reader, "Feature on the front page?", a.out)
	if err != nil {
		return err
	}
	f.Draft.Featured = featured

	editBody, err := GetConfirm(a.reader, "Open the body in $EDITOR?", a.out)
	if err != nil {
		return err
	}
	if editBody {
		if err := f.EditBody(); err != nil {
			return err
		}
	}

	if err := a.promptUpload(ctx, slot, "Thumbnail"); err != nil {
		return err
	}

	saved, err := f.Submit(ctx)
	if err != nil {
		return reportSubmit(a, err)
	}
	fmt.Fprintf(a.out, "Saved article %q (%s, slug %s).\n", saved.Title, saved.ID, saved.Slug)
	return nil
}

func (a *App) promptCategory(f *form.ArticleForm) error {
	if len(f.Categories) == 0 {
		fmt.Fprintln(a.out, "No categories exist yet; create one with `newsadmin categories add`.")
		return nil
	}
	names := make([]string, len(f.Categories))
	cur := 0
	for i, c := range f.Categories {
		names[i] = c.Name
		if f.Draft.Category != nil && c.ID == f.Draft.Category.ID {
			cur = i
		}
	}
	idx, err := GetChoice(a.reader, "Category", names, cur, a.out)
	if err != nil {
		return err
	}
	return f.SetCategory(f.Categories[idx].ID)
}

func (a *App) showArticle(ctx context.Context, id string) error {
	art, err := a.articles.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "Article not found.")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "%s\n", art.Title)
	fmt.Fprintf(a.out, "  Slug:      %s\n", art.Slug)
	fmt.Fprintf(a.out, "  Type:      %s  Status: %s  Featured: %v\n", art.Type, art.Status, art.Featured)
	if art.Category != nil {
		fmt.Fprintf(a.out, "  Category:  %s\n", art.Category.Name)
	}
	fmt.Fprintf(a.out, "  Published: %s  Views: %d\n", art.PublishedAt.Display(), art.ViewCount)
	if art.Thumbnail != "" {
		fmt.Fprintf(a.out, "  Thumbnail: %s\n", art.Thumbnail.Resolve(a.cfg.MediaBase()))
	}
	fmt.Fprintf(a.out, "\n%s\n\n%s\n", art.Summary, art.Content)
	return nil
}

// promptDate loops until the input parses or is left at the default.
func (a *App) promptDate(label string, cur models.WireDate) (models.WireDate, error) {
	for {
		s, err := GetTextDefault(a.reader, label+" (yyyy-mm-dd)", cur.Display(), a.out)
		if err != nil {
			return models.WireDate{}, err
		}
		d, err := models.ParseDisplayDate(s)
		if err == nil {
			return d, nil
		}
		fmt.Fprintf(a.out, "%q is not a date; use yyyy-mm-dd\n", s)
	}
}
