package cfsm

import (
	"context"

	"github.com/enetx/g"
)

// Runner is the set of operations shared by Machine and SyncMachine.
type Runner[I, O any] interface {
	Initialize([]State[I, O]) error
	Execute(StateID) error
	ExecuteContext(context.Context, StateID) error
	Resume(context.Context) error
	Running() g.Option[StateID]
	Initialized() bool
	Len() int
}

// Interface compliance checks.
var (
	_ Runner[int, int] = (*Machine[int, int])(nil)
	_ Runner[int, int] = (*SyncMachine[int, int])(nil)
)
