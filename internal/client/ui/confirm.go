package ui

// DeletePhase is the phase of the delete confirmation flow.
type DeletePhase int

const (
	// DeleteIdle: no deletion in progress.
	DeleteIdle DeletePhase = iota
	// DeleteConfirming: the modal is up, waiting for the user.
	DeleteConfirming
	// DeleteRunning: the request is in flight; confirm is disabled.
	DeleteRunning
)

// DeleteFlow is the state machine behind the delete confirmation modal.
// The delete request may fire only on the Idle→Confirming→Running path;
// dismissing the modal or confirming twice can never issue a request.
type DeleteFlow struct {
	phase DeletePhase
	id    string
	label string
}

// Phase returns the current phase.
func (f *DeleteFlow) Phase() DeletePhase { return f.phase }

// Target returns the id the flow is about, or "" when idle.
func (f *DeleteFlow) Target() string { return f.id }

// Label returns the display name shown in the modal.
func (f *DeleteFlow) Label() string { return f.label }

// Request opens the modal for one record. Ignored while a deletion is
// already running.
func (f *DeleteFlow) Request(id, label string) {
	if f.phase == DeleteRunning {
		return
	}
	f.phase = DeleteConfirming
	f.id = id
	f.label = label
}

// Confirm moves Confirming to Running and reports whether the caller should
// now issue the request. Any other phase returns false.
func (f *DeleteFlow) Confirm() bool {
	if f.phase != DeleteConfirming {
		return false
	}
	f.phase = DeleteRunning
	return true
}

// Dismiss closes the modal without deleting. A running request cannot be
// dismissed; it finishes and reports through Finish.
func (f *DeleteFlow) Dismiss() {
	if f.phase == DeleteRunning {
		return
	}
	*f = DeleteFlow{}
}

// Finish records the outcome of the in-flight request and resets the flow.
func (f *DeleteFlow) Finish() {
	*f = DeleteFlow{}
}
