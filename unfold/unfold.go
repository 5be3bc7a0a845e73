// Package unfold builds infinite, lazily-evaluated sequences from a seed and a
// state-transition function.
//
// Each pull applies the transition to the current state once, stores the new
// state and emits the transition's value. A Sequence never reports the end of
// iteration: bound it with seq.Take, seq.TakeWhile or a break before draining.
//
// Example:
//
//	fib := unfold.New(func(p seq.Pair[int, int]) (seq.Pair[int, int], int) {
//		return seq.Pair[int, int]{First: p.Second, Second: p.First + p.Second}, p.First
//	}, seq.Pair[int, int]{First: 0, Second: 1})
//	fmt.Println(seq.ToSlice(seq.Take(fib.Iterator(), 5))) // [0 1 1 2 3]
package unfold

import (
	"errors"
	"fmt"
	"iter"

	"github.com/charmingruby/unfold/result"
	"github.com/charmingruby/unfold/seq"
)

// ErrFaulted is reported by any pull on a Sequence whose transition
// previously failed.
var ErrFaulted = errors.New("unfold: sequence faulted")

// Transition maps the current state to the next state and the value emitted
// for this step. It must be defined for every state it will receive.
type Transition[S any, T any] func(S) (S, T)

// Sequence is an infinite, single-pass producer of T values. It is not safe
// for concurrent use and cannot be rewound.
type Sequence[S any, T any] struct {
	state      S
	transition Transition[S, T]
	pulls      uint64
	faulted    bool
}

// New returns a Sequence seeded with initial. transition is not called until
// the first pull.
func New[S any, T any](transition Transition[S, T], initial S) *Sequence[S, T] {
	if transition == nil {
		panic("unfold: nil transition")
	}
	return &Sequence[S, T]{state: initial, transition: transition}
}

// Next performs one pull: it applies the transition to the current state,
// commits the new state and returns the emitted value.
//
// A panic raised by the transition propagates unchanged; the state is left as
// it was before the call and the Sequence becomes faulted. Every later pull
// panics with an error wrapping ErrFaulted.
func (s *Sequence[S, T]) Next() T {
	if s.faulted {
		panic(fmt.Errorf("%w: transition failed on pull %d", ErrFaulted, s.pulls))
	}
	committed := false
	defer func() {
		if !committed {
			s.faulted = true
		}
	}()
	next, value := s.transition(s.state)
	s.state = next
	s.pulls++
	committed = true
	return value
}

// TryNext performs one pull like Next but reports a failing transition as an
// error instead of a panic. The error is a *TransitionError, or wraps
// ErrFaulted when the Sequence had already faulted.
func (s *Sequence[S, T]) TryNext() (res result.Result[T]) {
	if s.faulted {
		return result.Err[T](fmt.Errorf("%w: transition failed on pull %d", ErrFaulted, s.pulls))
	}
	pull := s.pulls
	defer func() {
		if r := recover(); r != nil {
			res = result.Err[T](&TransitionError{Pull: pull, Cause: r})
		}
	}()
	return result.Ok(s.Next())
}

// Pulls returns the number of successful pulls so far.
func (s *Sequence[S, T]) Pulls() uint64 {
	return s.pulls
}

// Faulted reports whether a transition failed on this Sequence.
func (s *Sequence[S, T]) Faulted() bool {
	return s.faulted
}

// Iterator returns a seq.Iterator view whose Next always reports ok. Pulling
// from the view advances s.
func (s *Sequence[S, T]) Iterator() seq.Iterator[T] {
	return seq.Generate(s.Next)
}

// All returns a range-over-func view of s. Loops over it must break.
func (s *Sequence[S, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(s.Next()) {
		}
	}
}

// TransitionError describes a transition that panicked during a pull.
type TransitionError struct {
	// Pull is the 0-based index of the pull that failed.
	Pull  uint64
	Cause any
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("unfold: transition failed on pull %d: %v", e.Pull, e.Cause)
}

// Unwrap returns the panic value when it is an error.
func (e *TransitionError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}
