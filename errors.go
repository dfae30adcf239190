package cfsm

import "fmt"

// ErrNullArgument is returned when a required argument is absent: a nil machine,
// state, callback or states list.
type ErrNullArgument struct {
	// Arg names the missing argument ("machine", "state", "callback" or "states").
	Arg string
}

func (e *ErrNullArgument) Error() string {
	return fmt.Sprintf("cfsm: required argument %q is nil", e.Arg)
}

// ErrNotInitialized is returned when a machine is executed before Initialize
// succeeded on it.
type ErrNotInitialized struct{}

func (e *ErrNotInitialized) Error() string {
	return "cfsm: machine is not initialized"
}

// ErrNotRegistered is returned when the requested start state is not a member of
// the machine's collection.
type ErrNotRegistered struct {
	State StateID
	Count int
}

func (e *ErrNotRegistered) Error() string {
	return fmt.Sprintf("cfsm: state %d is not registered in a machine of %d states", e.State, e.Count)
}

// ErrInvalidTopology is returned when a state's successor points outside the
// registered collection.
type ErrInvalidTopology struct {
	State StateID
	Next  StateID
}

func (e *ErrInvalidTopology) Error() string {
	return fmt.Sprintf("cfsm: state %d has successor %d outside the registered states", e.State, e.Next)
}

// ErrCanceled is returned by ExecuteContext and Resume when the context is done
// before a terminal state is reached. At is the state that would have run next;
// the machine keeps it as its running state so the walk can be resumed.
type ErrCanceled struct {
	At  StateID
	Err error
}

func (e *ErrCanceled) Error() string {
	return fmt.Sprintf("cfsm: execution canceled before state %d: %v", e.At, e.Err)
}

// Unwrap returns the context error, so errors.Is(err, context.Canceled) and
// errors.Is(err, context.DeadlineExceeded) work.
func (e *ErrCanceled) Unwrap() error { return e.Err }
