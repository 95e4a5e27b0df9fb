package ui

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/api"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
)

type item struct {
	ID   string
	Name string
}

func itemPage(pageIndex, totalPages, n int) *models.Page[item] {
	content := make([]item, n)
	for i := range content {
		content[i] = item{ID: fmt.Sprintf("id-%d", i), Name: fmt.Sprintf("Item %02d", i)}
	}
	return &models.Page[item]{Content: content, PageIndex: pageIndex, PageSize: 10, TotalPages: totalPages}
}

type listEnv struct {
	page    *ListPage[item]
	fetches int32
	deletes int32
}

func newListEnv(t *testing.T, records *models.Page[item]) *listEnv {
	t.Helper()
	env := &listEnv{}
	cfg := ListConfig[item]{
		Title:   "Items",
		Columns: []table.Column{{Title: "ID", Width: 8}, {Title: "Name", Width: 24}},
		Row:     func(i item) table.Row { return table.Row{i.ID, i.Name} },
		ID:      func(i item) string { return i.ID },
		Label:   func(i item) string { return i.Name },
		Filters: []models.Filter{models.AllFilter(), models.LabelFilter("active"), models.LabelFilter("inactive")},
		FilterKey: "status",
		Delete: func(ctx context.Context, id string) error {
			atomic.AddInt32(&env.deletes, 1)
			return nil
		},
	}
	fetch := func(ctx context.Context, p api.ListParams) (*models.Page[item], error) {
		atomic.AddInt32(&env.fetches, 1)
		cp := *records
		cp.PageIndex = p.Page
		return &cp, nil
	}
	env.page = NewListPage(cfg, fetch, 10, time.Millisecond)
	t.Cleanup(func() { env.page.ctrl.Close() })
	return env
}

// sync pumps one fetched snapshot into the model the way the wake channel
// would.
func (e *listEnv) sync(t *testing.T) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s := e.page.ctrl.Snapshot(); s.Records != nil && !s.Loading {
			e.page.Update(snapshotMsg{})
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("snapshot never settled")
}

func (e *listEnv) key(s string) tea.Cmd {
	var msg tea.KeyMsg
	switch s {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	_, cmd := e.page.Update(msg)
	return cmd
}

func TestListPage_RendersRowsAndPager(t *testing.T) {
	env := newListEnv(t, itemPage(0, 5, 10))
	env.page.ctrl.Refresh()
	env.sync(t)

	view := env.page.View()
	require.Contains(t, view, "Items")
	require.Contains(t, view, "Item 00")
	require.Contains(t, view, "Item 09")
	// Page numbers display one-based: current 1 plus two to the right.
	require.Contains(t, view, "1")
	require.Contains(t, view, "3")
	require.NotContains(t, view, "No records found")
}

func TestListPage_EmptyStateDistinctFromLoading(t *testing.T) {
	env := newListEnv(t, itemPage(0, 0, 0))

	// Before any fetch resolves the page shows a loading spinner.
	env.page.snap.Loading = true
	require.Contains(t, env.page.View(), "loading")
	require.NotContains(t, env.page.View(), "No records found")

	env.page.ctrl.Refresh()
	env.sync(t)
	require.Contains(t, env.page.View(), "No records found")
}

func TestListPage_PrevDisabledOnFirstPage(t *testing.T) {
	env := newListEnv(t, itemPage(0, 5, 10))
	env.page.ctrl.Refresh()
	env.sync(t)
	require.Equal(t, int32(1), atomic.LoadInt32(&env.fetches))

	// Prev at page 0 issues nothing; next does.
	env.key("left")
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, int32(1), atomic.LoadInt32(&env.fetches))

	env.key("right")
	env.sync(t)
	require.Equal(t, int32(2), atomic.LoadInt32(&env.fetches))
	require.Equal(t, 1, env.page.snap.Records.PageIndex)
}

func TestListPage_DeleteRequiresConfirmation(t *testing.T) {
	env := newListEnv(t, itemPage(0, 1, 3))
	env.page.ctrl.Refresh()
	env.sync(t)

	// A stray confirm key with no modal up deletes nothing.
	env.key("y")
	require.Equal(t, int32(0), atomic.LoadInt32(&env.deletes))

	// Opening the modal alone still deletes nothing.
	env.key("d")
	require.Equal(t, DeleteConfirming, env.page.confirm.Phase())
	require.Contains(t, env.page.View(), "Delete Item 00?")
	require.Equal(t, int32(0), atomic.LoadInt32(&env.deletes))

	// Dismissing closes the modal without a request.
	env.key("esc")
	require.Equal(t, DeleteIdle, env.page.confirm.Phase())
	require.Equal(t, int32(0), atomic.LoadInt32(&env.deletes))

	// Confirming fires exactly one request.
	env.key("d")
	cmd := env.key("y")
	require.NotNil(t, cmd)
	require.Equal(t, DeleteRunning, env.page.confirm.Phase())

	// Keys are inert while the request runs.
	require.Nil(t, env.key("y"))

	msg := cmd()
	done, ok := msg.(deleteDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	require.Equal(t, int32(1), atomic.LoadInt32(&env.deletes))

	env.page.Update(done)
	require.Equal(t, DeleteIdle, env.page.confirm.Phase())
}

func TestListPage_FilterCycling(t *testing.T) {
	env := newListEnv(t, itemPage(0, 1, 3))
	env.page.ctrl.Refresh()
	env.sync(t)

	env.key("f")
	env.sync(t)
	require.Equal(t, "active", env.page.ctrl.Params().Filters["status"])

	env.key("f")
	env.sync(t)
	env.key("f")
	// Back to the sentinel, which never reaches the query string.
	require.False(t, env.page.ctrl.Params().Values().Has("status"))
}

func TestListPage_QuitActions(t *testing.T) {
	env := newListEnv(t, itemPage(0, 1, 3))
	env.page.ctrl.Refresh()
	env.sync(t)

	env.key("a")
	require.Equal(t, ActionAdd, env.page.Result().Action)
}

func TestListPage_EditUsesSelectedRow(t *testing.T) {
	env := newListEnv(t, itemPage(0, 1, 3))
	env.page.ctrl.Refresh()
	env.sync(t)

	env.key("e")
	require.Equal(t, ActionEdit, env.page.Result().Action)
	require.Equal(t, "id-0", env.page.Result().ID)
}
