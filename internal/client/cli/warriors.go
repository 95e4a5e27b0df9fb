package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/api"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/form"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/ui"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/upload"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/common"
)

func newWarriorsCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "warriors",
		Short: "Manage personnel records",
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
			Short: "Browse warriors interactively",
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).browseWarriors(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "add",
			Short: "Create a warrior",
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).warriorForm(cmd.Context(), "")
			},
		},
		&cobra.Command{
			Use:   "edit <id>",
			Short: "Edit a warrior",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).warriorForm(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show one warrior",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).showWarrior(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a warrior",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).deleteByID(cmd.Context(), "warrior", args[0], (*app).warriors.Delete)
			},
		},
	)
	return cmd
}

func (a *App) browseWarriors(ctx context.Context) error {
	cfg := ui.ListConfig[models.Warrior]{
		Title: "Warriors",
		Columns: []table.Column{
			{Title: "Name", Width: 24},
			{Title: "Rank", Width: 12},
			{Title: "Unit", Width: 10},
			{Title: "Status", Width: 10},
			{Title: "Joined", Width: 12},
		},
		Row: func(w models.Warrior) table.Row {
			return table.Row{w.Name, w.Rank, w.Unit, w.Status, w.JoinDate.Display()}
		},
		ID:    func(w models.Warrior) string { return w.ID },
		Label: func(w models.Warrior) string { return w.Name },
		Filters: []models.Filter{
			models.AllFilter(),
			models.LabelFilter(models.WarriorStatusActive),
			models.LabelFilter(models.WarriorStatusInactive),
		},
		FilterKey: "status",
		Delete:    a.warriors.Delete,
	}

	return browseLoop(a, ctx, cfg, a.warriors.List, func(ctx context.Context, res ui.Result) error {
		switch res.Action {
		case ui.ActionAdd:
			return a.warriorForm(ctx, "")
		case ui.ActionEdit:
			return a.warriorForm(ctx, res.ID)
		case ui.ActionShow:
			return a.showWarrior(ctx, res.ID)
		}
		return nil
	})
}

// browse runs the list page, dispatches the chosen action, and loops back to
// the list until the user quits it outright.
func browseLoop[T any](a *App, ctx context.Context, cfg ui.ListConfig[T], fetch func(context.Context, api.ListParams) (*models.Page[T], error), act func(context.Context, ui.Result) error) error {
	for {
		page := ui.NewListPage(cfg, fetch, a.cfg.PageSize, a.cfg.SearchDebounce)
		if _, err := tea.NewProgram(page).Run(); err != nil {
			return err
		}
		res := page.Result()
		if res.Action == ui.ActionNone {
			return nil
		}
		if err := act(ctx, res); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				fmt.Fprintln(a.out, "Record not found; it may have been deleted elsewhere.")
				continue
			}
			return err
		}
	}
}

// newUploadSlot adapts the media repository into an upload slot.
func (a *App) newUploadSlot() *upload.Slot {
	return upload.NewSlot(a.cfg.MaxUploadSize, func(ctx context.Context, filename string, file *os.File) (models.MediaRef, error) {
		return a.media.Upload(ctx, filename, file)
	})
}

func (a *App) warriorForm(ctx context.Context, id string) error {
	a.warnExpiring()

	slot := a.newUploadSlot()
	defer slot.Release()

	f := form.NewWarriorForm(a.warriors, a.locations, slot)
	if err := f.Load(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "Warrior not found.")
			return nil
		}
		return err
	}

	var err error
	if f.Draft.Name, err = GetTextDefault(a.reader, "Name", f.Draft.Name, a.out); err != nil {
		return err
	}

	rankIdx := indexOf(models.WarriorRanks, f.Draft.Rank)
	rankIdx, err = GetChoice(a.reader, "Rank", models.WarriorRanks, rankIdx, a.out)
	if err != nil {
		return err
	}
	f.Draft.Rank = models.WarriorRanks[rankIdx]

	if f.Draft.Unit, err = GetTextDefault(a.reader, "Unit", f.Draft.Unit, a.out); err != nil {
		return err
	}

	statuses := []string{models.WarriorStatusActive, models.WarriorStatusInactive}
	statusIdx, err := GetChoice(a.reader, "Status", statuses, indexOf(statuses, f.Draft.Status), a.out)
	if err != nil {
		return err
	}
	f.Draft.Status = statuses[statusIdx]

	if f.Draft.JoinDate, err = a.promptDate("Join date", f.Draft.JoinDate); err != nil {
		return err
	}

	if err := a.promptHometown(ctx, f); err != nil {
		return err
	}
	if err := a.promptFamily(f); err != nil {
		return err
	}
	if err := a.promptUpload(ctx, slot, "Avatar"); err != nil {
		return err
	}

	saved, err := f.Submit(ctx)
	if err != nil {
		return reportSubmit(a, err)
	}
	fmt.Fprintf(a.out, "Saved warrior %s (%s).\n", saved.Name, saved.ID)
	return nil
}

func (a *App) promptHometown(ctx context.Context, f *form.WarriorForm) error {
	names := make([]string, len(f.Provinces)+1)
	names[0] = "(none)"
	cur := 0
	for i, p := range f.Provinces {
		names[i+1] = p.Name
		if p.ID == f.Draft.ProvinceID {
			cur = i + 1
		}
	}
	idx, err := GetChoice(a.reader, "Province", names, cur, a.out)
	if err != nil {
		return err
	}

	var provinceID string
	if idx > 0 {
		provinceID = f.Provinces[idx-1].ID
	}
	if err := f.SetProvince(ctx, provinceID); err != nil {
		return err
	}
	if provinceID == "" || len(f.Communes) == 0 {
		return nil
	}

	communeNames := make([]string, len(f.Communes)+1)
	communeNames[0] = "(none)"
	curCommune := 0
	for i, c := range f.Communes {
		communeNames[i+1] = c.Name
		if c.ID == f.Draft.CommuneID {
			curCommune = i + 1
		}
	}
	cIdx, err := GetChoice(a.reader, "Commune", communeNames, curCommune, a.out)
	if err != nil {
		return err
	}
	if cIdx == 0 {
		return f.SetCommune("")
	}
	return f.SetCommune(f.Communes[cIdx-1].ID)
}

func (a *App) promptFamily(f *form.WarriorForm) error {
	for {
		if len(f.Draft.Family) > 0 {
			fmt.Fprintln(a.out, "Family members:")
			for i, m := range f.Draft.Family {
				fmt.Fprintf(a.out, "  %d. %s (%s) %s\n", i+1, m.Name, m.Relationship, m.Phone)
			}
		}
		action, err := GetChoice(a.reader, "Family", []string{"done", "add member", "remove member"}, 0, a.out)
		if err != nil {
			return err
		}
		switch action {
		case 0:
			return nil
		case 1:
			var m models.FamilyMember
			if m.Name, err = GetSimpleText(a.reader, "Member name", a.out); err != nil {
				return err
			}
			if m.Relationship, err = GetSimpleText(a.reader, "Relationship", a.out); err != nil {
				return err
			}
			if m.Phone, err = GetSimpleText(a.reader, "Phone", a.out); err != nil {
				return err
			}
			f.AddFamilyMember(m)
		case 2:
			s, err := GetSimpleText(a.reader, "Remove which number?", a.out)
			if err != nil {
				return err
			}
			if n, convErr := strconv.Atoi(s); convErr == nil {
				f.RemoveFamilyMember(n - 1)
			}
		}
	}
}

// promptUpload drives the staged upload flow: pick a file, then explicitly
// confirm before anything is sent.
func (a *App) promptUpload(ctx context.Context, slot *upload.Slot, label string) error {
	prompt := label + " file path (empty to keep current)"
	if slot.Committed() == "" {
		prompt = label + " file path (empty to skip)"
	}

	for {
		path, err := GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		if path == "" {
			return nil
		}
		if err := slot.Select(path); err != nil {
			if errors.Is(err, common.ErrFileTooLarge) {
				fmt.Fprintf(a.out, "%v\n", err)
				continue
			}
			return err
		}

		fmt.Fprintf(a.out, "Staged %s (preview at %s)\n", path, slot.Preview())
		ok, err := GetConfirm(a.reader, "Upload this file?", a.out)
		if err != nil {
			return err
		}
		if !ok {
			slot.Cancel()
			return nil
		}
		ref, err := slot.Confirm(ctx)
		if err != nil {
			fmt.Fprintf(a.out, "Upload failed: %v\n", err)
			retry, rerr := GetConfirm(a.reader, "Retry?", a.out)
			if rerr != nil {
				return rerr
			}
			if retry {
				continue
			}
			slot.Cancel()
			return nil
		}
		fmt.Fprintf(a.out, "Uploaded: %s\n", ref.Resolve(a.cfg.MediaBase()))
		return nil
	}
}

func (a *App) showWarrior(ctx context.Context, id string) error {
	w, err := a.warriors.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "Warrior not found.")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "%s\n", w.Name)
	fmt.Fprintf(a.out, "  Rank:     %s\n", w.Rank)
	fmt.Fprintf(a.out, "  Unit:     %s\n", w.Unit)
	fmt.Fprintf(a.out, "  Status:   %s\n", w.Status)
	fmt.Fprintf(a.out, "  Joined:   %s\n", w.JoinDate.Display())
	if w.Avatar != "" {
		fmt.Fprintf(a.out, "  Avatar:   %s\n", w.Avatar.Resolve(a.cfg.MediaBase()))
	}
	for _, m := range w.Family {
		fmt.Fprintf(a.out, "  Family:   %s (%s) %s\n", m.Name, m.Relationship, m.Phone)
	}
	return nil
}

// deleteByID is the non-interactive delete path shared by every resource.
func (a *App) deleteByID(ctx context.Context, kind, id string, del func(context.Context, string) error) error {
	ok, err := GetConfirm(a.reader, fmt.Sprintf("Delete %s %s? This cannot be undone.", kind, id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}
	if err := del(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintf(a.out, "No %s with id %s.\n", kind, id)
			return nil
		}
		return err
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

// reportSubmit prints validation details instead of failing the command.
func reportSubmit(a *App, err error) error {
	var verr *form.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(a.out, "Not saved; fix these fields:")
		for field, msg := range verr.Fields {
			fmt.Fprintf(a.out, "  %s %s\n", field, msg)
		}
		return nil
	}
	var berr *api.BusinessError
	if errors.As(err, &berr) {
		fmt.Fprintf(a.out, "Rejected by the server: %s\n", berr.Message)
		return nil
	}
	return err
}

func indexOf(options []string, v string) int {
	for i, o := range options {
		if o == v {
			return i
		}
	}
	return 0
}
