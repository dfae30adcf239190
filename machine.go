// Package cfsm provides a minimal finite state execution engine for control
// loops. A Machine walks a fixed collection of states, each wrapping one
// callback with an input and an output slot, following successor references
// until it reaches a state without a successor. Cycles are allowed, so a walk
// may never end. The package allocates nothing per step and takes no locks.
// It is built with types from the github.com/enetx/g library.
package cfsm

import (
	"context"

	"github.com/enetx/g"
)

// Initialize validates the topology of states and, on success, makes the
// machine ready to execute. The machine keeps a view of the caller's slice;
// later changes to the elements are seen by the machine.
//
// Every successor must be an index into states. A failed Initialize leaves
// the machine uninitialized, even if it was initialized before.
func (m *Machine[I, O]) Initialize(states []State[I, O]) error {
	if m == nil {
		return &ErrNullArgument{Arg: "machine"}
	}

	if states == nil {
		return &ErrNullArgument{Arg: "states"}
	}

	m.initialized = false

	if err := validateTopology(states); err != nil {
		return err
	}

	m.states = states
	m.running = g.None[StateID]()
	m.initialized = true

	return nil
}

// validateTopology checks that every present successor stays inside states.
func validateTopology[I, O any](states []State[I, O]) error {
	for i := range states {
		next := states[i].next
		if next.IsNone() {
			continue
		}

		if !inRange(next.Some(), len(states)) {
			return &ErrInvalidTopology{State: StateID(i), Next: next.Some()}
		}
	}

	return nil
}

func inRange(id StateID, count int) bool {
	return id >= 0 && int(id) < count
}

// Execute runs the machine from start until a state without a successor has
// run. There is no iteration bound: on a cyclic topology Execute does not
// return unless a callback makes some state terminal.
func (m *Machine[I, O]) Execute(start StateID) error {
	if err := m.check(start); err != nil {
		return err
	}

	return m.walk(nil, start)
}

// check runs the preconditions shared by Execute and ExecuteContext.
func (m *Machine[I, O]) check(start StateID) error {
	if m == nil {
		return &ErrNullArgument{Arg: "machine"}
	}

	if !m.initialized {
		return &ErrNotInitialized{}
	}

	if !m.registered(start) {
		return &ErrNotRegistered{State: start, Count: len(m.states)}
	}

	return nil
}

// registered reports whether id is a member of the machine's collection.
func (m *Machine[I, O]) registered(id StateID) bool {
	return inRange(id, len(m.states))
}

// walk is the execution loop. The cursor lives in cur; the machine's running
// field only records the snapshot at entry and exit. A nil ctx is never checked.
func (m *Machine[I, O]) walk(ctx context.Context, cur StateID) error {
	m.running = g.Some(cur)

	for {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				m.running = g.Some(cur)
				return &ErrCanceled{At: cur, Err: err}
			}
		}

		next := m.states[cur].Execute()
		if next.IsNone() {
			break
		}

		// states may be re-initialized by callbacks after validation.
		if !m.registered(next.Some()) {
			m.running = g.None[StateID]()
			return &ErrInvalidTopology{State: cur, Next: next.Some()}
		}

		cur = next.Some()
	}

	m.running = g.None[StateID]()

	return nil
}

// Running returns the state the machine is executing, or the state it stopped
// before when a context-aware run was canceled. None means the machine is idle.
func (m *Machine[I, O]) Running() g.Option[StateID] {
	if m == nil {
		return g.None[StateID]()
	}

	return m.running
}

// Initialized reports whether the last Initialize call succeeded.
func (m *Machine[I, O]) Initialized() bool {
	return m != nil && m.initialized
}

// Len returns the number of registered states.
func (m *Machine[I, O]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.states)
}
