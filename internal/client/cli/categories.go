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

func newCategoriesCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage article categories",
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
			Short: "Browse categories interactively",
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).browseCategories(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "add",
			Short: "Create a category",
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).categoryForm(cmd.Context(), "")
			},
		},
		&cobra.Command{
			Use:   "edit <id>",
			Short: "Edit a category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).categoryForm(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).deleteByID(cmd.Context(), "category", args[0], (*app).categories.Delete)
			},
		},
	)
	return cmd
}

func (a *App) browseCategories(ctx context.Context) error {
	cfg := ui.ListConfig[models.Category]{
		Title: "Categories",
		Columns: []table.Column{
			{Title: "Name", Width: 24},
			{Title: "Color", Width: 9},
			{Title: "Articles", Width: 9},
			{Title: "Description", Width: 36},
		},
		Row: func(c models.Category) table.Row {
			return table.Row{c.Name, c.ColorCode, fmt.Sprintf("%d", c.ArticleCount), c.Description}
		},
		ID:     func(c models.Category) string { return c.ID },
		Label:  func(c models.Category) string { return c.Name },
		Delete: a.categories.Delete,
	}

	return browseLoop(a, ctx, cfg, a.categories.List, func(ctx context.Context, res ui.Result) error {
		switch res.Action {
		case ui.ActionAdd:
			return a.categoryForm(ctx, "")
		case ui.ActionEdit, ui.ActionShow:
			return a.categoryForm(ctx, res.ID)
		}
		return nil
	})
}

func (a *App) categoryForm(ctx context.Context, id string) error {
	a.warnExpiring()

	f := form.NewCategoryForm(a.categories)
	if err := f.Load(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "Category not found.")
			return nil
		}
		return err
	}

	var err error
	if f.Draft.Name, err = GetTextDefault(a.reader, "Name", f.Draft.Name, a.out); err != nil {
		return err
	}
	if f.Draft.ColorCode, err = GetTextDefault(a.reader, "Color code (#RRGGBB)", f.Draft.ColorCode, a.out); err != nil {
		return err
	}
	if f.Draft.Description, err = GetTextDefault(a.reader, "Description", f.Draft.Description, a.out); err != nil {
		return err
	}

	saved, err := f.Submit(ctx)
	if err != nil {
		return reportSubmit(a, err)
	}
	fmt.Fprintf(a.out, "Saved category %s (%s).\n", saved.Name, saved.ID)
	return nil
}
