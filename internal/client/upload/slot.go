// Package upload implements the staged media upload flow used by article
// thumbnails and warrior avatars: select a local file, preview it, and only
// upload after an explicit confirmation.
package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/common"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/filex"
)

// State of the staging slot.
type State int

const (
	// Empty: nothing staged, nothing committed.
	Empty State = iota
	// Selected: a local file is staged and previewable, not yet uploaded.
	Selected
	// Uploading: the staged file is on its way to the backend.
	Uploading
	// Committed: a remote reference is stored; no local staging remains.
	Committed
)

// UploadFunc ships the staged file and returns the stored reference.
type UploadFunc func(ctx context.Context, filename string, file *os.File) (models.MediaRef, error)

// Slot holds at most one not-yet-confirmed file plus its local preview copy.
// Selection never uploads implicitly; only Confirm does.
type Slot struct {
	maxSize   int64
	upload    UploadFunc
	state     State
	committed models.MediaRef
	staged    string // preview copy path, owned by the slot
	original  string // user-chosen filename, for the upload form field
}

// NewSlot builds a slot that rejects files larger than maxSize bytes.
func NewSlot(maxSize int64, upload UploadFunc) *Slot {
	return &Slot{maxSize: maxSize, upload: upload, state: Empty}
}

// SetCommitted primes the slot with an already-stored reference (edit mode).
func (s *Slot) SetCommitted(ref models.MediaRef) {
	s.committed = ref
	if ref != "" && s.state == Empty {
		s.state = Committed
	}
}

// State returns the current phase of the flow.
func (s *Slot) State() State { return s.state }

// Committed returns the confirmed remote reference, if any.
func (s *Slot) Committed() models.MediaRef { return s.committed }

// Preview returns the staged local copy's path, for display.
func (s *Slot) Preview() string { return s.staged }

// Select stages path for upload. An oversized file is rejected before
// anything is staged, leaving the previous state untouched. Selecting while
// already Selected replaces the pending file and releases its preview.
func (s *Slot) Select(path string) error {
	if s.state == Uploading {
		return common.ErrUploadPending
	}

	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.Size() > s.maxSize {
		return fmt.Errorf("%w: %s is %d bytes, limit %d", common.ErrFileTooLarge, filepath.Base(path), fi.Size(), s.maxSize)
	}

	staged, err := filex.StageCopy(path)
	if err != nil {
		return fmt.Errorf("stage preview: %w", err)
	}

	// Release the superseded preview only after the new one is in place.
	if s.staged != "" {
		_ = filex.Release(s.staged)
	}
	s.staged = staged
	s.original = filepath.Base(path)
	s.state = Selected
	return nil
}

// Cancel discards the pending selection, releases its preview, and restores
// the previously committed reference (or Empty when there was none).
func (s *Slot) Cancel() {
	if s.state != Selected {
		return
	}
	_ = filex.Release(s.staged)
	s.staged = ""
	s.original = ""
	if s.committed != "" {
		s.state = Committed
	} else {
		s.state = Empty
	}
}

// Confirm uploads the staged file. On success the preview is released and
// the returned reference becomes the committed one; on failure the slot
// returns to Selected so the user may retry or cancel.
func (s *Slot) Confirm(ctx context.Context) (models.MediaRef, error) {
	switch s.state {
	case Uploading:
		return "", common.ErrUploadPending
	case Selected:
	default:
		return "", common.ErrNothingStaged
	}

	f, err := os.Open(s.staged)
	if err != nil {
		return "", fmt.Errorf("open staged file: %w", err)
	}

	s.state = Uploading
	ref, err := s.upload(ctx, s.original, f)
	f.Close()
	if err != nil {
		s.state = Selected
		return "", err
	}

	_ = filex.Release(s.staged)
	s.staged = ""
	s.original = ""
	s.committed = ref
	s.state = Committed
	return ref, nil
}

// Release drops any staged preview without touching the committed
// reference. Call when the owning form goes away.
func (s *Slot) Release() {
	if s.staged != "" {
		_ = filex.Release(s.staged)
		s.staged = ""
	}
	if s.state == Selected || s.state == Uploading {
		if s.committed != "" {
			s.state = Committed
		} else {
			s.state = Empty
		}
	}
}
