package service

import (
	"errors"
	"sync"

	"github.com/biochemsafety/site/internal/auth"
	"github.com/rs/zerolog"
)

// EditPhase is the state of an editable unit inside the management panel.
type EditPhase int

const (
	PhaseViewing EditPhase = iota
	PhaseEditing
	PhaseSaving
)

var (
	ErrNotEditing   = errors.New("no edit session for that unit")
	ErrSaveInFlight = errors.New("a save is already in flight")
)

type editSession[T any] struct {
	unitID   string
	phase    EditPhase
	draft    T
	original T
}

// EditManager owns the working copies of one admin view. At most one unit is
// in PhaseEditing at a time; beginning an edit on a second unit returns the
// first to PhaseViewing and discards its draft without saving. That silent
// discard mirrors the panel's historical behavior and is logged so it stays
// visible until a confirmation prompt is decided on.
type EditManager[T any] struct {
	mu          sync.Mutex
	clone       func(T) T
	log         zerolog.Logger
	active      *editSession[T]
	unsubscribe func()
}

// NewEditManager constructs a manager. clone must produce an independent
// deep copy so drafts never alias the resolved source values.
func NewEditManager[T any](clone func(T) T) *EditManager[T] {
	return &EditManager[T]{clone: clone, log: zerolog.Nop()}
}

// SetLogger replaces the no-op logger.
func (m *EditManager[T]) SetLogger(log zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log = log
}

// Bind subscribes the manager to auth-state changes for its lifetime: a
// sign-out discards any open draft. Call Close on teardown.
func (m *EditManager[T]) Bind(notifier *auth.Notifier) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.unsubscribe = notifier.Subscribe(func(change auth.Change) {
		if change.Event == auth.EventSignedOut {
			m.DiscardAll()
		}
	})
}

// Close releases the auth subscription and drops any open draft.
func (m *EditManager[T]) Close() {
	m.mu.Lock()
	unsubscribe := m.unsubscribe
	m.unsubscribe = nil
	m.active = nil
	m.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Begin seeds a working copy for unitID from the resolved value and returns
// the draft. An already-editing unit is restarted; a different unit already
// editing is silently returned to viewing first.
func (m *EditManager[T]) Begin(unitID string, seed T) T {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active != nil && m.active.unitID != unitID {
		m.log.Warn().
			Str("unit", m.active.unitID).
			Str("replaced_by", unitID).
			Msg("discarding unsaved draft")
	}

	m.active = &editSession[T]{
		unitID:   unitID,
		phase:    PhaseEditing,
		draft:    m.clone(seed),
		original: m.clone(seed),
	}
	return m.clone(m.active.draft)
}

// Draft returns a copy of the current working copy for unitID.
func (m *EditManager[T]) Draft(unitID string) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero T
	if m.active == nil || m.active.unitID != unitID {
		return zero, false
	}
	return m.clone(m.active.draft), true
}

// Update applies a mutation to the working copy only; the source value stays
// untouched until save.
func (m *EditManager[T]) Update(unitID string, mutate func(*T)) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero T
	if m.active == nil || m.active.unitID != unitID {
		return zero, ErrNotEditing
	}
	if m.active.phase == PhaseSaving {
		return zero, ErrSaveInFlight
	}

	mutate(&m.active.draft)
	return m.clone(m.active.draft), nil
}

// Save persists the working copy through the supplied store operation. On
// success the unit returns to viewing and the session ends; on failure the
// session stays in editing with the attempted values retained and the error
// propagates for display.
func (m *EditManager[T]) Save(unitID string, persist func(T) error) error {
	m.mu.Lock()
	if m.active == nil || m.active.unitID != unitID {
		m.mu.Unlock()
		return ErrNotEditing
	}
	if m.active.phase == PhaseSaving {
		m.mu.Unlock()
		return ErrSaveInFlight
	}
	m.active.phase = PhaseSaving
	draft := m.clone(m.active.draft)
	m.mu.Unlock()

	err := persist(draft)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil || m.active.unitID != unitID {
		// The session was discarded while the save was in flight; the result
		// is accepted as applied and the draft stays gone.
		return err
	}
	if err != nil {
		m.active.phase = PhaseEditing
		return err
	}
	m.active = nil
	return nil
}

// Cancel discards the working copy and returns the unit to viewing.
func (m *EditManager[T]) Cancel(unitID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active != nil && m.active.unitID == unitID {
		m.active = nil
	}
}

// DiscardAll drops whatever draft is open, if any.
func (m *EditManager[T]) DiscardAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = nil
}

// Phase reports the state of unitID; units without a session are viewing.
func (m *EditManager[T]) Phase(unitID string) EditPhase {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil || m.active.unitID != unitID {
		return PhaseViewing
	}
	return m.active.phase
}

// Editing returns the id of the unit currently being edited, if any.
func (m *EditManager[T]) Editing() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil {
		return "", false
	}
	return m.active.unitID, true
}

// Repeated-entry helpers for fields arrays and education arrays. All operate
// on working-copy slices only and tolerate out-of-range positions.

// AppendEntry adds an empty-or-seeded entry at the end.
func AppendEntry[T any](list []T, entry T) []T {
	return append(list, entry)
}

// RemoveEntry deletes the entry at idx, returning the list unchanged when
// idx is out of range.
func RemoveEntry[T any](list []T, idx int) []T {
	if idx < 0 || idx >= len(list) {
		return list
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:idx]...)
	return append(out, list[idx+1:]...)
}

// SetEntry replaces the entry at idx, returning the list unchanged when idx
// is out of range.
func SetEntry[T any](list []T, idx int, v T) []T {
	if idx < 0 || idx >= len(list) {
		return list
	}
	out := make([]T, len(list))
	copy(out, list)
	out[idx] = v
	return out
}
