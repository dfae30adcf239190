package cfsm

import "context"

// ExecuteContext is Execute with a cancellation signal. ctx is checked before
// every step; once it is done the walk stops with *ErrCanceled and the machine
// keeps the state that would have run next as its running state.
//
// A callback that blocks is not interrupted. Cancellation only takes effect
// between steps.
func (m *Machine[I, O]) ExecuteContext(ctx context.Context, start StateID) error {
	if ctx == nil {
		return &ErrNullArgument{Arg: "ctx"}
	}

	if err := m.check(start); err != nil {
		return err
	}

	return m.walk(ctx, start)
}

// Resume continues a walk stopped by ExecuteContext or Resume from the
// machine's running state. An idle machine returns nil without running anything.
func (m *Machine[I, O]) Resume(ctx context.Context) error {
	if ctx == nil {
		return &ErrNullArgument{Arg: "ctx"}
	}

	if m == nil {
		return &ErrNullArgument{Arg: "machine"}
	}

	if !m.initialized {
		return &ErrNotInitialized{}
	}

	if m.running.IsNone() {
		return nil
	}

	return m.ExecuteContext(ctx, m.running.Some())
}
