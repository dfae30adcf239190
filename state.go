package cfsm

import "github.com/enetx/g"

// NewState returns a State initialized with the given callback, input, output and successor.
func NewState[I, O any](cb Callback[I, O], in *I, out *O, next g.Option[StateID]) (State[I, O], error) {
	var s State[I, O]
	if err := s.Initialize(cb, in, out, next); err != nil {
		return s, err
	}

	return s, nil
}

// Initialize assigns all fields of the state. The callback is required; input,
// output and next may be absent if the callback does not need them.
// On failure the state is left untouched.
func (s *State[I, O]) Initialize(cb Callback[I, O], in *I, out *O, next g.Option[StateID]) error {
	if s == nil {
		return &ErrNullArgument{Arg: "state"}
	}

	if cb == nil {
		return &ErrNullArgument{Arg: "callback"}
	}

	s.callback = cb
	s.input = in
	s.output = out
	s.next = next

	return nil
}

// Execute runs the callback once and returns the successor.
// A nil or never initialized state runs nothing and has no successor.
// A nil input is passed to the callback as the zero value of I.
func (s *State[I, O]) Execute() g.Option[StateID] {
	if s == nil || s.callback == nil {
		return g.None[StateID]()
	}

	var in I
	if s.input != nil {
		in = *s.input
	}

	s.callback(in, s.output)

	return s.next
}

// Next returns the successor of the state. None marks a terminal state.
func (s *State[I, O]) Next() g.Option[StateID] {
	if s == nil {
		return g.None[StateID]()
	}

	return s.next
}
