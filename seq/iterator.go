// Package seq offers lazy, pull-based iterators and the combinators used to
// bound, transform and drain them.
//
// Sources may be infinite (see Generate, Repeat and the unfold package). Any
// pipeline over an infinite source must be bounded with Take or TakeWhile
// before it reaches a draining operation such as ToSlice or Fold.
package seq

import (
	"iter"

	"github.com/charmingruby/unfold/option"
)

// Iterator is a lazy, pull-based iterator. The zero value is empty.
type Iterator[T any] struct {
	next func() (T, bool)
}

// Next yields the next value. When ok is false, iteration is complete.
func (it Iterator[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	return it.next()
}

// FromFunc wraps a pull function into an Iterator. next reports ok=false once
// the source is exhausted; after that the Iterator stays exhausted and next
// is never called again.
func FromFunc[T any](next func() (T, bool)) Iterator[T] {
	if next == nil {
		return Iterator[T]{}
	}
	done := false
	return Iterator[T]{next: func() (T, bool) {
		if done {
			var zero T
			return zero, false
		}
		v, ok := next()
		if !ok {
			done = true
		}
		return v, ok
	}}
}

// Generate creates an infinite iterator that calls fn on every pull.
func Generate[T any](fn func() T) Iterator[T] {
	return Iterator[T]{
		next: func() (T, bool) {
			return fn(), true
		},
	}
}

// FromSlice creates an iterator over the provided slice without copying.
func FromSlice[T any](values []T) Iterator[T] {
	idx := 0
	return Iterator[T]{
		next: func() (T, bool) {
			if idx >= len(values) {
				var zero T
				return zero, false
			}
			v := values[idx]
			idx++
			return v, true
		},
	}
}

// Range yields start, start+1, ... up to but excluding end.
func Range(start, end int) Iterator[int] {
	cur := start
	return Iterator[int]{
		next: func() (int, bool) {
			if cur >= end {
				return 0, false
			}
			v := cur
			cur++
			return v, true
		},
	}
}

// Repeat yields v forever.
func Repeat[T any](v T) Iterator[T] {
	return Iterator[T]{
		next: func() (T, bool) {
			return v, true
		},
	}
}

// MapIter lazily transforms iterator values.
func MapIter[A any, B any](it Iterator[A], fn func(A) B) Iterator[B] {
	return Iterator[B]{
		next: func() (B, bool) {
			v, ok := it.Next()
			if !ok {
				var zero B
				return zero, false
			}
			return fn(v), true
		},
	}
}

// FilterIter keeps values satisfying predicate. Over an infinite source with
// no further matches it never returns.
func FilterIter[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	return Iterator[T]{
		next: func() (T, bool) {
			for {
				v, ok := it.Next()
				if !ok {
					var zero T
					return zero, false
				}
				if predicate(v) {
					return v, true
				}
			}
		},
	}
}

// Take returns an iterator that yields at most n elements. The source is not
// pulled again once n elements were produced.
func Take[T any](it Iterator[T], n int) Iterator[T] {
	if n <= 0 {
		return Iterator[T]{}
	}
	count := 0
	return Iterator[T]{
		next: func() (T, bool) {
			if count >= n {
				var zero T
				return zero, false
			}
			v, ok := it.Next()
			if !ok {
				var zero T
				return zero, false
			}
			count++
			return v, true
		},
	}
}

// Drop skips the first n elements.
func Drop[T any](it Iterator[T], n int) Iterator[T] {
	if n <= 0 {
		return it
	}
	skipped := false
	return Iterator[T]{
		next: func() (T, bool) {
			if !skipped {
				skipped = true
				for range n {
					if _, ok := it.Next(); !ok {
						var zero T
						return zero, false
					}
				}
			}
			return it.Next()
		},
	}
}

// TakeWhile yields values while predicate holds. The first failing value is
// consumed from the source and discarded.
func TakeWhile[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	done := false
	return Iterator[T]{
		next: func() (T, bool) {
			var zero T
			if done {
				return zero, false
			}
			v, ok := it.Next()
			if !ok || !predicate(v) {
				done = true
				return zero, false
			}
			return v, true
		},
	}
}

// DropWhile skips leading values satisfying predicate.
func DropWhile[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	dropping := true
	return Iterator[T]{
		next: func() (T, bool) {
			if !dropping {
				return it.Next()
			}
			dropping = false
			for {
				v, ok := it.Next()
				if !ok {
					var zero T
					return zero, false
				}
				if !predicate(v) {
					return v, true
				}
			}
		},
	}
}

// Scan yields the running accumulation of the source, starting with init
// itself: init, fn(init, v0), fn(fn(init, v0), v1), ...
func Scan[A any, B any](it Iterator[A], init B, fn func(B, A) B) Iterator[B] {
	acc := init
	started := false
	return Iterator[B]{
		next: func() (B, bool) {
			if !started {
				started = true
				return acc, true
			}
			v, ok := it.Next()
			if !ok {
				var zero B
				return zero, false
			}
			acc = fn(acc, v)
			return acc, true
		},
	}
}

// Tap calls fn with every value as it passes through.
func Tap[T any](it Iterator[T], fn func(T)) Iterator[T] {
	return Iterator[T]{
		next: func() (T, bool) {
			v, ok := it.Next()
			if ok {
				fn(v)
			}
			return v, ok
		},
	}
}

// Zip pairs values from a and b until either side ends.
func Zip[A any, B any](a Iterator[A], b Iterator[B]) Iterator[Pair[A, B]] {
	return Iterator[Pair[A, B]]{
		next: func() (Pair[A, B], bool) {
			av, ok := a.Next()
			if !ok {
				return Pair[A, B]{}, false
			}
			bv, ok := b.Next()
			if !ok {
				return Pair[A, B]{}, false
			}
			return Pair[A, B]{First: av, Second: bv}, true
		},
	}
}

// ToSlice exhausts the iterator and collects its values.
func ToSlice[T any](it Iterator[T]) []T {
	var result []T
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		result = append(result, v)
	}
	if result == nil {
		return []T{}
	}
	return result
}

// Fold exhausts the iterator, reducing values from left to right.
func Fold[A any, B any](it Iterator[A], init B, fn func(B, A) B) B {
	acc := init
	for {
		v, ok := it.Next()
		if !ok {
			return acc
		}
		acc = fn(acc, v)
	}
}

// Last exhausts the iterator and returns its final value.
func Last[T any](it Iterator[T]) option.Option[T] {
	last := option.None[T]()
	for {
		v, ok := it.Next()
		if !ok {
			return last
		}
		last = option.Some(v)
	}
}

// Find returns the first value satisfying predicate, pulling no further.
func Find[T any](it Iterator[T], predicate func(T) bool) option.Option[T] {
	v, ok := FilterIter(it, predicate).Next()
	return option.FromOk(v, ok)
}

// Nth returns the value at 0-based position n.
func Nth[T any](it Iterator[T], n int) option.Option[T] {
	if n < 0 {
		return option.None[T]()
	}
	v, ok := Drop(it, n).Next()
	return option.FromOk(v, ok)
}

// All adapts the iterator to a range-over-func sequence.
//
// Example:
//
//	for v := range seq.All(it) {
//		if v > 100 {
//			break
//		}
//	}
func All[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Pair represents two related values.
type Pair[A any, B any] struct {
	First  A
	Second B
}
