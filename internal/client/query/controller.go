// Package query holds the paginated list state behind every admin screen:
// filter criteria, page coordinates, and the fetch lifecycle. It guarantees
// that rapid search keystrokes coalesce into one request and that a stale
// response never overwrites the state of a later one.
package query

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/api"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
)

// FetchFunc loads one page for the current query descriptor.
type FetchFunc[T any] func(ctx context.Context, p api.ListParams) (*models.Page[T], error)

// Snapshot is the observable state of a controller at one point in time.
// On fetch failure Records keeps the previously displayed page so the view
// does not flicker to empty.
type Snapshot[T any] struct {
	Records *models.Page[T]
	Loading bool
	Err     error
}

// Controller owns the query state for one list view. All mutating methods
// may be called from any goroutine; the notify callback is invoked without
// internal locks held and may call back into the controller.
type Controller[T any] struct {
	mu       sync.Mutex
	fetch    FetchFunc[T]
	notify   func(Snapshot[T])
	debounce *Debouncer

	search  string
	filters map[string]string
	sort    string
	page    int
	size    int

	seq     uint64
	records *models.Page[T]
	loading bool
	err     error

	cancel context.CancelFunc
	closed bool
}

// NewController builds a controller with the given default page size and
// search debounce delay. notify may be nil.
func NewController[T any](fetch FetchFunc[T], size int, delay time.Duration, notify func(Snapshot[T])) *Controller[T] {
	return &Controller[T]{
		fetch:    fetch,
		notify:   notify,
		debounce: NewDebouncer(delay),
		filters:  map[string]string{},
		size:     size,
	}
}

// Snapshot returns the current observable state.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Params returns the descriptor the next fetch would use.
func (c *Controller[T]) Params() api.ListParams {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paramsLocked()
}

// Refresh re-issues the current query immediately.
func (c *Controller[T]) Refresh() {
	c.mu.Lock()
	snap, issued := c.issueLocked()
	c.mu.Unlock()
	if issued {
		c.emit(snap)
	}
}

// SetSearch updates the free-text query. The page index resets at once; the
// fetch itself waits out the debounce quiet period so keystrokes coalesce.
func (c *Controller[T]) SetSearch(text string) {
	c.mu.Lock()
	if c.closed || text == c.search {
		c.mu.Unlock()
		return
	}
	c.search = text
	c.page = 0
	c.mu.Unlock()

	c.debounce.Debounce(func() {
		c.mu.Lock()
		snap, issued := c.issueLocked()
		c.mu.Unlock()
		if issued {
			c.emit(snap)
		}
	})
}

// SetFilter updates one field filter and re-fetches from page 0. The
// sentinel value models.AllFilter().Value() (empty) or common.FilterAll
// simply drops the constraint; omission is handled by ListParams.
func (c *Controller[T]) SetFilter(key, value string) {
	c.mu.Lock()
	if c.closed || c.filters[key] == value {
		c.mu.Unlock()
		return
	}
	c.filters[key] = value
	c.page = 0
	snap, issued := c.issueLocked()
	c.mu.Unlock()
	if issued {
		c.emit(snap)
	}
}

// SetSort changes the sort descriptor ("field,direction") and re-fetches
// from page 0.
func (c *Controller[T]) SetSort(sort string) {
	c.mu.Lock()
	if c.closed || c.sort == sort {
		c.mu.Unlock()
		return
	}
	c.sort = sort
	c.page = 0
	snap, issued := c.issueLocked()
	c.mu.Unlock()
	if issued {
		c.emit(snap)
	}
}

// SetPage moves to the given zero-based page, clamped to the known range.
func (c *Controller[T]) SetPage(index int) {
	c.mu.Lock()
	if index < 0 {
		index = 0
	}
	if c.records != nil && c.records.TotalPages > 0 && index > c.records.TotalPages-1 {
		index = c.records.TotalPages - 1
	}
	if c.closed || index == c.page {
		c.mu.Unlock()
		return
	}
	c.page = index
	snap, issued := c.issueLocked()
	c.mu.Unlock()
	if issued {
		c.emit(snap)
	}
}

// SetPageSize changes the page size and always restarts from page 0.
func (c *Controller[T]) SetPageSize(size int) {
	c.mu.Lock()
	if c.closed || size <= 0 || size == c.size {
		c.mu.Unlock()
		return
	}
	c.size = size
	c.page = 0
	snap, issued := c.issueLocked()
	c.mu.Unlock()
	if issued {
		c.emit(snap)
	}
}

// Close tears the controller down: the pending debounce timer is cancelled,
// the in-flight fetch context is cancelled, and any result that still
// arrives is dropped instead of being applied to a dead view.
func (c *Controller[T]) Close() {
	c.debounce.Cancel()
	c.mu.Lock()
	c.closed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.mu.Unlock()
}

func (c *Controller[T]) snapshotLocked() Snapshot[T] {
	return Snapshot[T]{Records: c.records, Loading: c.loading, Err: c.err}
}

func (c *Controller[T]) paramsLocked() api.ListParams {
	return api.ListParams{
		Page:    c.page,
		Size:    c.size,
		Search:  c.search,
		Sort:    c.sort,
		Filters: maps.Clone(c.filters),
	}
}

// issueLocked starts a fetch tagged with a fresh sequence number. The
// response is applied only if its tag is still the latest when it lands;
// anything older is discarded regardless of arrival order.
func (c *Controller[T]) issueLocked() (Snapshot[T], bool) {
	if c.closed {
		return Snapshot[T]{}, false
	}

	c.seq++
	tag := c.seq
	c.loading = true
	c.err = nil
	params := c.paramsLocked()

	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	go func() {
		page, err := c.fetch(ctx, params)

		c.mu.Lock()
		if c.closed || tag != c.seq {
			c.mu.Unlock()
			return
		}
		c.loading = false
		if err != nil {
			c.err = err
		} else {
			c.records = page
		}
		c.cancel = nil
		snap := c.snapshotLocked()
		c.mu.Unlock()

		c.emit(snap)
	}()

	return c.snapshotLocked(), true
}

func (c *Controller[T]) emit(snap Snapshot[T]) {
	if c.notify != nil {
		c.notify(snap)
	}
}
