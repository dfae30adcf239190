package cfsm_test

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/enetx/cfsm"
	"github.com/enetx/g"
)

// pingPong builds A<->B where the callback of every step calls stop once the
// total number of steps reaches *limit.
func pingPong(t *testing.T, log *g.Slice[g.String], limit *int, stop func()) []State[int, int] {
	t.Helper()

	steps := 0
	step := func(name g.String) Callback[int, int] {
		return func(int, *int) {
			steps++
			log.Push(name)
			if steps == *limit {
				stop()
			}
		}
	}

	states := make([]State[int, int], 2)
	assertNoError(t, states[0].Initialize(step("A"), nil, nil, g.Some[StateID](1)))
	assertNoError(t, states[1].Initialize(step("B"), nil, nil, g.Some[StateID](0)))

	return states
}

func TestExecuteContext_CanceledBeforeStart(t *testing.T) {
	var log g.Slice[g.String]
	states := chain(t, &log, "A", "B")

	var m Machine[int, int]
	assertNoError(t, m.Initialize(states))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.ExecuteContext(ctx, 1)
	canceled := assertErrorAs[*ErrCanceled](t, err)
	assertEqual(t, canceled.At, StateID(1))
	assertTrue(t, errors.Is(err, context.Canceled))

	assertTrue(t, log.Empty())
	assertSome(t, m.Running(), 1)
}

func TestExecuteContext_StopsCycleAndResumes(t *testing.T) {
	var log g.Slice[g.String]

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	limit := 5
	states := pingPong(t, &log, &limit, func() { cancel() })

	var m Machine[int, int]
	assertNoError(t, m.Initialize(states))

	err := m.ExecuteContext(ctx, 0)
	assertEqual(t, assertErrorAs[*ErrCanceled](t, err).At, StateID(1))
	assertTrue(t, log.Eq(g.SliceOf[g.String]("A", "B", "A", "B", "A")))
	assertSome(t, m.Running(), 1)

	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	limit = 8

	err = m.Resume(ctx)
	assertEqual(t, assertErrorAs[*ErrCanceled](t, err).At, StateID(0))
	assertTrue(t, log.Eq(g.SliceOf[g.String]("A", "B", "A", "B", "A", "B", "A", "B")))
	assertSome(t, m.Running(), 0)
}

func TestExecuteContext_Deadline(t *testing.T) {
	steps := 0
	tick := func(int, *int) {
		steps++
		time.Sleep(time.Millisecond)
	}

	states := make([]State[int, int], 2)
	assertNoError(t, states[0].Initialize(tick, nil, nil, g.Some[StateID](1)))
	assertNoError(t, states[1].Initialize(tick, nil, nil, g.Some[StateID](0)))

	var m Machine[int, int]
	assertNoError(t, m.Initialize(states))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := m.ExecuteContext(ctx, 0)
	assertErrorAs[*ErrCanceled](t, err)
	assertTrue(t, errors.Is(err, context.DeadlineExceeded))
	assertTrue(t, steps > 0)
	assertTrue(t, m.Running().IsSome())
}

func TestExecuteContext_TerminalCompletes(t *testing.T) {
	var log g.Slice[g.String]

	var m Machine[int, int]
	assertNoError(t, m.Initialize(chain(t, &log, "A", "B", "C")))

	assertNoError(t, m.ExecuteContext(context.Background(), 0))
	assertTrue(t, log.Eq(g.SliceOf[g.String]("A", "B", "C")))
	assertNone(t, m.Running())
}

func TestExecuteContext_Preconditions(t *testing.T) {
	var m Machine[int, int]
	var nilCtx context.Context

	assertEqual(t, assertErrorAs[*ErrNullArgument](t, m.ExecuteContext(nilCtx, 0)).Arg, "ctx")
	assertErrorAs[*ErrNotInitialized](t, m.ExecuteContext(context.Background(), 0))

	var log g.Slice[g.String]
	assertNoError(t, m.Initialize(chain(t, &log, "A")))
	assertErrorAs[*ErrNotRegistered](t, m.ExecuteContext(context.Background(), 1))
}

func TestResume_IdleMachine(t *testing.T) {
	var log g.Slice[g.String]

	var m Machine[int, int]
	assertNoError(t, m.Initialize(chain(t, &log, "A")))

	assertNoError(t, m.Resume(context.Background()))
	assertTrue(t, log.Empty())
}

func TestResume_Preconditions(t *testing.T) {
	var nilMachine *Machine[int, int]
	var nilCtx context.Context

	assertEqual(t, assertErrorAs[*ErrNullArgument](t, nilMachine.Resume(context.Background())).Arg, "machine")

	var m Machine[int, int]
	assertEqual(t, assertErrorAs[*ErrNullArgument](t, m.Resume(nilCtx)).Arg, "ctx")
	assertErrorAs[*ErrNotInitialized](t, m.Resume(context.Background()))
}

func TestInitialize_ClearsCanceledSnapshot(t *testing.T) {
	var log g.Slice[g.String]
	states := chain(t, &log, "A", "B")

	var m Machine[int, int]
	assertNoError(t, m.Initialize(states))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assertError(t, m.ExecuteContext(ctx, 0))
	assertSome(t, m.Running(), 0)

	assertNoError(t, m.Initialize(states))
	assertNone(t, m.Running())
}
