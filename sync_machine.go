package cfsm

import (
	"context"

	"github.com/enetx/g"
)

// NewSyncMachine wraps m for use from several goroutines. A nil m gets a fresh,
// uninitialized Machine.
func NewSyncMachine[I, O any](m *Machine[I, O]) *SyncMachine[I, O] {
	if m == nil {
		m = new(Machine[I, O])
	}

	return &SyncMachine[I, O]{machine: m}
}

// Initialize is the serialized version of Machine.Initialize.
func (sm *SyncMachine[I, O]) Initialize(states []State[I, O]) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.machine.Initialize(states)
}

// Execute is the serialized version of Machine.Execute.
// The lock is held for the whole walk, so on a cyclic topology every other
// call blocks until a terminal state is reached.
func (sm *SyncMachine[I, O]) Execute(start StateID) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.machine.Execute(start)
}

// ExecuteContext is the serialized version of Machine.ExecuteContext.
func (sm *SyncMachine[I, O]) ExecuteContext(ctx context.Context, start StateID) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.machine.ExecuteContext(ctx, start)
}

// Resume is the serialized version of Machine.Resume.
func (sm *SyncMachine[I, O]) Resume(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.machine.Resume(ctx)
}

// Running is the serialized version of Machine.Running.
// While a walk holds the lock it waits for the walk to finish, so it only ever
// observes idle or canceled snapshots.
func (sm *SyncMachine[I, O]) Running() g.Option[StateID] {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.machine.Running()
}

// Initialized is the serialized version of Machine.Initialized.
func (sm *SyncMachine[I, O]) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.machine.Initialized()
}

// Len is the serialized version of Machine.Len.
func (sm *SyncMachine[I, O]) Len() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.machine.Len()
}
