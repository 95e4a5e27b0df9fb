package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/api"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/form"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/ui"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/common"
)

func newLeavesCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaves",
		Short: "Manage leave requests",
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
			Short: "Browse leave requests interactively",
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).browseLeaves(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "add",
			Short: "Create a leave request",
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).leaveForm(cmd.Context(), "")
			},
		},
		&cobra.Command{
			Use:   "edit <id>",
			Short: "Edit a leave request",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).leaveForm(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a leave request",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).deleteByID(cmd.Context(), "leave request", args[0], (*app).leaves.Delete)
			},
		},
	)
	return cmd
}

func (a *App) browseLeaves(ctx context.Context) error {
	cfg := ui.ListConfig[models.LeaveRequest]{
		Title: "Leave requests",
		Columns: []table.Column{
			{Title: "Warrior", Width: 24},
			{Title: "From", Width: 12},
			{Title: "To", Width: 12},
			{Title: "Status", Width: 10},
			{Title: "Reason", Width: 30},
		},
		Row: func(l models.LeaveRequest) table.Row {
			return table.Row{l.WarriorName, l.FromDate.Display(), l.ToDate.Display(), l.Status, l.Reason}
		},
		ID:    func(l models.LeaveRequest) string { return l.ID },
		Label: func(l models.LeaveRequest) string { return l.WarriorName + " " + l.FromDate.Display() },
		Filters: []models.Filter{
			models.AllFilter(),
			models.LabelFilter(models.LeaveStatusPending),
			models.LabelFilter(models.LeaveStatusApproved),
			models.LabelFilter(models.LeaveStatusRejected),
		},
		FilterKey: "status",
		Delete:    a.leaves.Delete,
	}

	return browseLoop(a, ctx, cfg, a.leaves.List, func(ctx context.Context, res ui.Result) error {
		switch res.Action {
		case ui.ActionAdd:
			return a.leaveForm(ctx, "")
		case ui.ActionEdit, ui.ActionShow:
			return a.leaveForm(ctx, res.ID)
		}
		return nil
	})
}

func (a *App) leaveForm(ctx context.Context, id string) error {
	a.warnExpiring()

	f := form.NewLeaveForm(a.leaves)
	if err := f.Load(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "Leave request not found.")
			return nil
		}
		return err
	}

	if f.Draft.WarriorID == "" {
		if err := a.promptWarrior(ctx, f); err != nil {
			return err
		}
	}

	var err error
	if f.Draft.FromDate, err = a.promptDate("From", f.Draft.FromDate); err != nil {
		return err
	}
	if f.Draft.ToDate, err = a.promptDate("To", f.Draft.ToDate); err != nil {
		return err
	}
	if f.Draft.Reason, err = GetTextDefault(a.reader, "Reason", f.Draft.Reason, a.out); err != nil {
		return err
	}

	statuses := []string{models.LeaveStatusPending, models.LeaveStatusApproved, models.LeaveStatusRejected}
	statusIdx, err := GetChoice(a.reader, "Status", statuses, indexOf(statuses, f.Draft.Status), a.out)
	if err != nil {
		return err
	}
	f.Draft.Status = statuses[statusIdx]

	saved, err := f.Submit(ctx)
	if err != nil {
		return reportSubmit(a, err)
	}
	fmt.Fprintf(a.out, "Saved leave request %s.\n", saved.ID)
	return nil
}

// promptWarrior searches the personnel list by name and picks from matches.
func (a *App) promptWarrior(ctx context.Context, f *form.LeaveForm) error {
	for {
		search, err := GetSimpleText(a.reader, "Warrior name (search)", a.out)
		if err != nil {
			return err
		}
		page, err := a.warriors.List(ctx, api.ListParams{Size: a.cfg.PageSize, Search: search})
		if err != nil {
			return err
		}
		if len(page.Content) == 0 {
			fmt.Fprintln(a.out, "No matches; try again.")
			continue
		}

		names := make([]string, len(page.Content))
		for i, w := range page.Content {
			names[i] = fmt.Sprintf("%s (%s, %s)", w.Name, w.Rank, w.Unit)
		}
		idx, err := GetChoice(a.reader, "Pick a warrior", names, -1, a.out)
		if err != nil {
			return err
		}
		f.Draft.WarriorID = page.Content[idx].ID
		f.Draft.WarriorName = page.Content[idx].Name
		return nil
	}
}
