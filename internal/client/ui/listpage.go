package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/query"
)

// PageRadius is how many page numbers are shown on each side of the current
// one in the pagination footer.
const PageRadius = 2

// Action is what the user asked the surrounding command to do when the list
// page quit.
type Action int

const (
	ActionNone Action = iota
	ActionAdd
	ActionEdit
	ActionShow
)

// Result is handed back to the command that ran the page.
type Result struct {
	Action Action
	ID     string
}

// ListConfig describes one resource's list screen.
type ListConfig[T any] struct {
	Title   string
	Columns []table.Column
	Row     func(T) table.Row
	ID      func(T) string
	// Label is the display name used in the delete confirmation modal.
	Label func(T) string

	// Filters are the options cycled by the filter key; the first must be
	// the "all" sentinel. Empty disables filtering.
	Filters   []models.Filter
	FilterKey string

	// Delete enables the delete flow when non-nil.
	Delete func(ctx context.Context, id string) error
}

type snapshotMsg struct{}

type deleteDoneMsg struct{ err error }

// ListPage is the generic bubbletea model behind every admin list screen.
type ListPage[T any] struct {
	cfg    ListConfig[T]
	ctrl   *query.Controller[T]
	wake   chan struct{}
	styles Styles

	table  table.Model
	search textinput.Model
	spin   spinner.Model

	filterIdx int
	confirm   DeleteFlow
	snap      query.Snapshot[T]
	actionErr error
	result    Result
}

// NewListPage wires a list page to its fetch function. The controller's
// notifications wake the bubbletea loop through a one-slot channel; the
// model always re-reads the latest snapshot, so coalesced wakeups are fine.
func NewListPage[T any](cfg ListConfig[T], fetch query.FetchFunc[T], pageSize int, debounce time.Duration) *ListPage[T] {
	wake := make(chan struct{}, 1)
	ctrl := query.NewController(fetch, pageSize, debounce, func(query.Snapshot[T]) {
		select {
		case wake <- struct{}{}:
		default:
		}
	})

	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 120

	tbl := table.New(table.WithColumns(cfg.Columns), table.WithFocused(true), table.WithHeight(12))

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &ListPage[T]{
		cfg:    cfg,
		ctrl:   ctrl,
		wake:   wake,
		styles: DefaultStyles(),
		table:  tbl,
		search: search,
		spin:   sp,
	}
}

// Result returns what the user chose when the page quit.
func (p *ListPage[T]) Result() Result { return p.result }

func (p *ListPage[T]) Init() tea.Cmd {
	p.ctrl.Refresh()
	return tea.Batch(p.spin.Tick, p.waitWake())
}

func (p *ListPage[T]) waitWake() tea.Cmd {
	return func() tea.Msg {
		<-p.wake
		return snapshotMsg{}
	}
}

func (p *ListPage[T]) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{err: p.cfg.Delete(context.Background(), id)}
	}
}

func (p *ListPage[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		p.snap = p.ctrl.Snapshot()
		p.reloadRows()
		return p, p.waitWake()

	case deleteDoneMsg:
		p.confirm.Finish()
		p.actionErr = msg.err
		if msg.err == nil {
			p.ctrl.Refresh()
		}
		return p, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *ListPage[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The modal swallows every key while it is up.
	switch p.confirm.Phase() {
	case DeleteRunning:
		return p, nil
	case DeleteConfirming:
		switch msg.String() {
		case "y", "enter":
			if p.confirm.Confirm() {
				return p, p.deleteCmd(p.confirm.Target())
			}
		case "n", "esc":
			p.confirm.Dismiss()
		}
		return p, nil
	}

	if p.search.Focused() {
		switch msg.String() {
		case "enter", "esc":
			p.search.Blur()
			return p, nil
		}
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(msg)
		p.ctrl.SetSearch(p.search.Value())
		return p, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		p.quit(Result{})
		return p, tea.Quit
	case "/":
		p.search.Focus()
		return p, textinput.Blink
	case "f":
		p.cycleFilter()
		return p, nil
	case "right", "n":
		if s := p.snap; s.Records != nil && HasNextPage(s.Records.PageIndex, s.Records.TotalPages) {
			p.ctrl.SetPage(s.Records.PageIndex + 1)
		}
		return p, nil
	case "left", "p":
		if s := p.snap; s.Records != nil && HasPrevPage(s.Records.PageIndex) {
			p.ctrl.SetPage(s.Records.PageIndex - 1)
		}
		return p, nil
	case "a":
		p.quit(Result{Action: ActionAdd})
		return p, tea.Quit
	case "e":
		if id := p.selectedID(); id != "" {
			p.quit(Result{Action: ActionEdit, ID: id})
			return p, tea.Quit
		}
		return p, nil
	case "enter":
		if id := p.selectedID(); id != "" {
			p.quit(Result{Action: ActionShow, ID: id})
			return p, tea.Quit
		}
		return p, nil
	case "d":
		if p.cfg.Delete == nil {
			return p, nil
		}
		if row, ok := p.selectedRecord(); ok {
			p.confirm.Request(p.cfg.ID(row), p.cfg.Label(row))
		}
		return p, nil
	}

	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

func (p *ListPage[T]) quit(r Result) {
	p.result = r
	p.ctrl.Close()
}

func (p *ListPage[T]) cycleFilter() {
	if len(p.cfg.Filters) == 0 {
		return
	}
	p.filterIdx = (p.filterIdx + 1) % len(p.cfg.Filters)
	p.ctrl.SetFilter(p.cfg.FilterKey, p.cfg.Filters[p.filterIdx].Value())
}

func (p *ListPage[T]) selectedRecord() (T, bool) {
	var zero T
	s := p.snap
	if s.Records == nil || len(s.Records.Content) == 0 {
		return zero, false
	}
	i := p.table.Cursor()
	if i < 0 || i >= len(s.Records.Content) {
		return zero, false
	}
	return s.Records.Content[i], true
}

func (p *ListPage[T]) selectedID() string {
	if row, ok := p.selectedRecord(); ok {
		return p.cfg.ID(row)
	}
	return ""
}

func (p *ListPage[T]) reloadRows() {
	if p.snap.Records == nil {
		p.table.SetRows(nil)
		return
	}
	rows := make([]table.Row, 0, len(p.snap.Records.Content))
	for _, rec := range p.snap.Records.Content {
		rows = append(rows, p.cfg.Row(rec))
	}
	p.table.SetRows(rows)
}

func (p *ListPage[T]) View() string {
	var b strings.Builder
	b.WriteString(p.styles.Title.Render(p.cfg.Title))
	b.WriteString("\n\n")

	b.WriteString(p.search.View())
	if len(p.cfg.Filters) > 0 {
		b.WriteString(p.styles.Muted.Render("   filter: " + p.cfg.Filters[p.filterIdx].Display()))
	}
	b.WriteString("\n\n")

	switch {
	case p.snap.Loading && p.snap.Records == nil:
		// First load: nothing to show yet, so a spinner instead of a
		// misleading empty table.
		b.WriteString(p.spin.View() + " loading\n")
	case p.snap.Records == nil || len(p.snap.Records.Content) == 0:
		b.WriteString(p.styles.Empty.Render("No records found") + "\n")
	default:
		b.WriteString(p.table.View() + "\n")
		b.WriteString(p.pagerView() + "\n")
	}

	if p.snap.Err != nil {
		b.WriteString(p.styles.Error.Render("error: "+p.snap.Err.Error()) + "\n")
	}
	if p.actionErr != nil {
		b.WriteString(p.styles.Error.Render("delete failed: "+p.actionErr.Error()) + "\n")
	}

	b.WriteString(p.styles.Muted.Render("/ search  f filter  ←/→ page  a add  e edit  d delete  enter show  q quit"))

	if p.confirm.Phase() != DeleteIdle {
		b.WriteString("\n\n" + p.modalView())
	}
	return b.String()
}

func (p *ListPage[T]) pagerView() string {
	s := p.snap.Records
	window := PageWindow(s.PageIndex, s.TotalPages, PageRadius)
	if window == nil {
		return ""
	}

	var b strings.Builder
	if HasPrevPage(s.PageIndex) {
		b.WriteString(p.styles.PageNum.Render("‹ prev"))
	} else {
		b.WriteString(p.styles.Muted.Render(" ‹ prev "))
	}
	for _, n := range window {
		// One-based for display.
		label := fmt.Sprintf("%d", n+1)
		if n == s.PageIndex {
			b.WriteString(p.styles.PageCur.Render(label))
		} else {
			b.WriteString(p.styles.PageNum.Render(label))
		}
	}
	if HasNextPage(s.PageIndex, s.TotalPages) {
		b.WriteString(p.styles.PageNum.Render("next ›"))
	} else {
		b.WriteString(p.styles.Muted.Render(" next › "))
	}
	return b.String()
}

func (p *ListPage[T]) modalView() string {
	switch p.confirm.Phase() {
	case DeleteConfirming:
		return p.styles.ModalBox.Render(
			p.styles.ModalWarn.Render("Delete "+p.confirm.Label()+"?") +
				"\n\nThis cannot be undone.\n\n[y] delete   [n] cancel")
	case DeleteRunning:
		return p.styles.ModalBox.Render("Deleting " + p.confirm.Label() + "...")
	}
	return ""
}
