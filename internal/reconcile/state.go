package reconcile

import (
	"context"
	"log/slog"
)

// State is one step of a reconciliation.
type State string

// Reconciliation states.
const (
	StateStart            State = "start"
	StateAuthorChecked    State = "author_checked"
	StateResourceLookedUp State = "resource_looked_up"
	StateCreateViaPatch   State = "create_via_patch"
	StateUpdateViaPatch   State = "update_via_patch"
	StateApplied          State = "applied"
	StateValidated        State = "validated"
	StateCommitted        State = "committed"
	StateRejected         State = "rejected"
)

// allowed lists the legal successors of each state.
var allowed = map[State][]State{
	StateStart:            {StateAuthorChecked, StateRejected},
	StateAuthorChecked:    {StateResourceLookedUp, StateRejected},
	StateResourceLookedUp: {StateCreateViaPatch, StateUpdateViaPatch},
	StateCreateViaPatch:   {StateApplied, StateRejected},
	StateUpdateViaPatch:   {StateApplied, StateRejected},
	StateApplied:          {StateValidated, StateRejected},
	StateValidated:        {StateCommitted, StateRejected},
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return len(allowed[s]) == 0
}

// CanTransition reports whether next is a legal successor of s.
func (s State) CanTransition(next State) bool {
	for _, candidate := range allowed[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// machine tracks the current state of one reconciliation and logs each
// transition at debug level.
type machine struct {
	ctx     context.Context
	log     *slog.Logger
	current State
}

func newMachine(ctx context.Context, log *slog.Logger) *machine {
	return &machine{ctx: ctx, log: log, current: StateStart}
}

// enter moves to next. Illegal transitions panic: they can only come from a
// programming error in this package.
func (m *machine) enter(next State) {
	if !m.current.CanTransition(next) {
		panic("reconcile: illegal transition " + string(m.current) + " -> " + string(next))
	}
	m.log.DebugContext(m.ctx, "reconciliation transition",
		slog.String("from", string(m.current)),
		slog.String("to", string(next)))
	m.current = next
}
