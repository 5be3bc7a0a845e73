package unfold

import (
	"github.com/charmingruby/unfold/option"
	"github.com/charmingruby/unfold/seq"
)

// Iterate returns the sequence initial, fn(initial), fn(fn(initial)), ...
// Emitting a value also computes its successor, so fn runs once per pull.
//
// Example:
//
//	countdown := unfold.Iterate(func(x int) int { return x - 1 }, 100)
func Iterate[T any](fn func(T) T, initial T) *Sequence[T, T] {
	if fn == nil {
		panic("unfold: nil transition")
	}
	return New(func(cur T) (T, T) {
		return fn(cur), cur
	}, initial)
}

// Take returns the first n values of a fresh Sequence as a bounded iterator.
//
// Example:
//
//	odds := unfold.Take(func(x int) (int, int) { return x + 2, x }, 1, 3)
func Take[S any, T any](transition Transition[S, T], initial S, n int) seq.Iterator[T] {
	return seq.Take(New(transition, initial).Iterator(), n)
}

// Slice collects the first n values of a fresh Sequence.
func Slice[S any, T any](transition Transition[S, T], initial S, n int) []T {
	if n <= 0 {
		return []T{}
	}
	s := New(transition, initial)
	out := make([]T, n)
	for i := range out {
		out[i] = s.Next()
	}
	return out
}

// Nth returns the value emitted by pull n (0-based) of a fresh Sequence, or
// None when n is negative.
//
// n is a pull index, not a count: Nth does not return the last of the first
// n values. For x+1 from 0, Nth(step, 0, 10) is 10 while "last of the first
// 10" is 9; Nth(step, initial, n-1) gives the latter.
func Nth[S any, T any](transition Transition[S, T], initial S, n int) option.Option[T] {
	if n < 0 {
		return option.None[T]()
	}
	s := New(transition, initial)
	for range n {
		s.Next()
	}
	return option.Some(s.Next())
}
