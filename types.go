package cfsm

import (
	"sync"

	"github.com/enetx/g"
)

type (
	// StateID is the position of a State inside the collection handed to Machine.Initialize.
	StateID int

	// Callback is the computation a State performs. It receives the state's input
	// value and writes into the state's output slot. It cannot report failure.
	Callback[I, O any] func(in I, out *O)

	// State is a single computational step: a callback, its input and output
	// references and an optional successor.
	State[I, O any] struct {
		callback Callback[I, O]
		input    *I
		output   *O
		next     g.Option[StateID]
	}

	// Machine walks a fixed, caller-owned collection of states.
	// It holds a view of the caller's slice and never copies or reallocates it.
	// The zero value is an uninitialized machine.
	Machine[I, O any] struct {
		states      g.Slice[State[I, O]]
		running     g.Option[StateID]
		initialized bool
	}

	// SyncMachine serializes access to a Machine with a sync.Mutex.
	// Machine itself takes no locks; use SyncMachine when several goroutines
	// share one machine.
	SyncMachine[I, O any] struct {
		machine *Machine[I, O]
		mu      sync.Mutex
	}
)
