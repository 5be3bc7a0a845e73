// Package result provides a success/error abstraction similar to Go's (T, error).
//
// unfold.Sequence.TryNext reports a pull as a Result so that a failing
// transition can be observed without unwinding the caller.
//
// Example:
//
//	res := s.TryNext()
//	value, err := res.Unwrap()
//	if err != nil {
//		return err
//	}
package result

import "errors"

// Result represents the outcome of a computation that may succeed with a value
// or fail with an error.
type Result[T any] struct {
	value T
	err   error
}

// Ok constructs a successful Result carrying value.
//
// Example:
//
//	res := result.Ok(200)
//	fmt.Println(res.IsOk()) // true
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err constructs a failed Result. Passing a nil error automatically converts it
// into a descriptive placeholder to avoid silent successes.
//
// Example:
//
//	res := result.Err[int](errors.New("boom"))
//	_, err := res.Unwrap()
//	fmt.Println(err)
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("result: nil error")
	}
	return Result[T]{err: err}
}

// IsOk reports whether the Result represents success.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the Result represents failure.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Err returns the stored error, if any.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the value and error, mirroring standard Go semantics.
//
// Example:
//
//	value, err := res.Unwrap()
//	if err != nil {
//		return err
//	}
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// UnwrapOr returns the value when ok, otherwise returns fallback.
//
// Example:
//
//	approx := s.TryNext().UnwrapOr(math.NaN())
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err == nil {
		return r.value
	}
	return fallback
}

// Map transforms the value on success.
//
// Example:
//
//	label := result.Map(s.TryNext(), func(n int) string { return strconv.Itoa(n) })
func Map[T any, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err == nil {
		return Ok(fn(r.value))
	}
	return Err[U](r.err)
}
