// Package edit implements the inline edit session of a single cell.
//
//	Idle ──open──▶ Editing ──commit──▶ Committing ──settle──▶ Idle
//	                  │
//	                  └──cancel──▶ Cancelled ──settle──▶ Idle
//
// Committing and Cancelled are transient: Commit and Cancel pass through
// them and return to Idle before they return.
package edit

import (
	"errors"
	"fmt"

	"github.com/zjrosen/gridline/internal/grid"
)

// State is the session state.
type State int

const (
	StateIdle State = iota
	StateEditing
	StateCommitting
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateCommitting:
		return "committing"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Trigger is an event that moves the session between states.
type Trigger int

const (
	TriggerOpen Trigger = iota
	TriggerCommit
	TriggerCancel
	TriggerSettle
)

func (t Trigger) String() string {
	return [...]string{"open", "commit", "cancel", "settle"}[t]
}

// ErrInvalidTransition is returned when a trigger is not valid in the current state.
var ErrInvalidTransition = errors.New("invalid edit transition")

var transitions = map[State]map[Trigger]State{
	StateIdle:       {TriggerOpen: StateEditing},
	StateEditing:    {TriggerCommit: StateCommitting, TriggerCancel: StateCancelled},
	StateCommitting: {TriggerSettle: StateIdle},
	StateCancelled:  {TriggerSettle: StateIdle},
}

// CanFire reports whether t is valid from s.
func CanFire(s State, t Trigger) bool {
	_, ok := transitions[s][t]
	return ok
}

// Outcome describes a finished commit.
type Outcome struct {
	Target   grid.Coord
	Original string
	Value    string
}

// Changed reports whether the commit needs a persistence call.
func (o Outcome) Changed() bool { return o.Value != o.Original }

// Session is the single inline edit of the grid.
type Session struct {
	state    State
	target   grid.Coord
	original string
	draft    string

	// OnTransition, when set, observes every state change.
	OnTransition func(from, to State, t Trigger)
}

func (s *Session) State() State { return s.state }
func (s *Session) Active() bool { return s.state == StateEditing }
func (s *Session) Target() grid.Coord { return s.target }
func (s *Session) Original() string { return s.original }
func (s *Session) Draft() string { return s.draft }

// Begin opens an edit of target whose current value is original. The
// draft starts as draft, which is original for F2 and the typed text for
// type-to-edit.
func (s *Session) Begin(target grid.Coord, original, draft string) error {
	if err := s.fire(TriggerOpen); err != nil {
		return err
	}
	s.target = target
	s.original = original
	s.draft = draft
	return nil
}

// SetDraft replaces the draft text. Local only.
func (s *Session) SetDraft(v string) error {
	if s.state != StateEditing {
		return fmt.Errorf("%w: set draft while %s", ErrInvalidTransition, s.state)
	}
	s.draft = v
	return nil
}

// Commit closes the session and returns what should be written.
func (s *Session) Commit() (Outcome, error) {
	if err := s.fire(TriggerCommit); err != nil {
		return Outcome{}, err
	}
	out := Outcome{Target: s.target, Original: s.original, Value: s.draft}
	s.reset()
	if err := s.fire(TriggerSettle); err != nil {
		return Outcome{}, err
	}
	return out, nil
}

// Cancel closes the session discarding the draft.
func (s *Session) Cancel() error {
	if err := s.fire(TriggerCancel); err != nil {
		return err
	}
	s.reset()
	return s.fire(TriggerSettle)
}

// Discard drops an open session without firing transitions, used when
// the grid is rebuilt under it.
func (s *Session) Discard() {
	s.reset()
	s.state = StateIdle
}

func (s *Session) reset() {
	s.target = grid.Coord{}
	s.original = ""
	s.draft = ""
}

func (s *Session) fire(t Trigger) error {
	if !CanFire(s.state, t) {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, t, s.state)
	}
	next := transitions[s.state][t]
	from := s.state
	s.state = next
	if s.OnTransition != nil {
		s.OnTransition(from, next, t)
	}
	return nil
}
