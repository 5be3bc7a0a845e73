// Package catalog holds the named sequences served by the unfold command.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/spf13/cast"

	"github.com/charmingruby/unfold/internal/exprstep"
	"github.com/charmingruby/unfold/result"
	"github.com/charmingruby/unfold/unfold"
)

var (
	ErrUnknownSequence = errors.New("catalog: unknown sequence")
	ErrInvalidSeed     = errors.New("catalog: invalid seed")
	ErrOverflow        = errors.New("catalog: integer overflow")
)

// Source is the type-erased view of an unfold.Sequence.
type Source interface {
	TryNext() result.Result[any]
	Pulls() uint64
}

// Entry describes one named sequence.
type Entry struct {
	Name        string
	Description string
	DefaultSeed string
	build       func(seed, step string) (Source, error)
}

var entries = []Entry{
	{Name: "counter", Description: "n, n+1, n+2, ... from the seed", DefaultSeed: "0", build: counter},
	{Name: "fibonacci", Description: "Fibonacci numbers F(0), F(1), ... (uint64)", build: fibonacci},
	{Name: "powers", Description: "seed, 2*seed, 4*seed, ...", DefaultSeed: "1", build: powers},
	{Name: "collatz", Description: "Collatz trajectory from the seed", DefaultSeed: "27", build: collatz},
	{Name: "sqrt", Description: "Newton approximations of the square root of the seed", DefaultSeed: "2", build: sqrt},
	{Name: "expr", Description: "seed and step given as expressions, step yields [next, value]", build: expression},
}

// Entries returns the catalog in display order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup finds an entry by name.
func Lookup(name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Build creates a fresh Source for name. An empty seed selects the entry's
// default; step is only used by the expr entry.
func Build(name, seed, step string) (Source, error) {
	e, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSequence, name)
	}
	if seed == "" {
		seed = e.DefaultSeed
	}
	return e.build(seed, step)
}

type erased[S any, T any] struct {
	s *unfold.Sequence[S, T]
}

func erase[S any, T any](s *unfold.Sequence[S, T]) Source {
	return erased[S, T]{s: s}
}

func (e erased[S, T]) TryNext() result.Result[any] {
	return result.Map(e.s.TryNext(), func(v T) any { return v })
}

func (e erased[S, T]) Pulls() uint64 {
	return e.s.Pulls()
}

func parseInt(seed string) (int64, error) {
	n, err := cast.ToInt64E(seed)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidSeed, seed, err)
	}
	return n, nil
}

func counter(seed, _ string) (Source, error) {
	start, err := parseInt(seed)
	if err != nil {
		return nil, err
	}
	return erase(unfold.New(func(n int64) (int64, int64) {
		if n == math.MaxInt64 {
			panic(fmt.Errorf("%w: counter past %d", ErrOverflow, n))
		}
		return n + 1, n
	}, start)), nil
}

// fibState holds the next two terms. A term flagged as not fitting stays
// in the state until it is due, so every representable term is emitted.
type fibState struct {
	a, b     uint64
	aOK, bOK bool
}

func fibonacci(_, _ string) (Source, error) {
	return erase(unfold.New(func(p fibState) (fibState, uint64) {
		if !p.aOK {
			panic(fmt.Errorf("%w: fibonacci term does not fit in uint64", ErrOverflow))
		}
		sum, carry := bits.Add64(p.a, p.b, 0)
		return fibState{a: p.b, aOK: p.bOK, b: sum, bOK: p.bOK && carry == 0}, p.a
	}, fibState{a: 0, b: 1, aOK: true, bOK: true})), nil
}

func powers(seed, _ string) (Source, error) {
	start, err := parseInt(seed)
	if err != nil {
		return nil, err
	}
	return erase(unfold.Iterate(func(x int64) int64 {
		if x > math.MaxInt64/2 || x < math.MinInt64/2 {
			panic(fmt.Errorf("%w: doubling %d", ErrOverflow, x))
		}
		return 2 * x
	}, start)), nil
}

func collatz(seed, _ string) (Source, error) {
	start, err := parseInt(seed)
	if err != nil {
		return nil, err
	}
	if start <= 0 {
		return nil, fmt.Errorf("%w %q: collatz needs a positive start", ErrInvalidSeed, seed)
	}
	return erase(unfold.Iterate(func(n int64) int64 {
		if n%2 == 0 {
			return n / 2
		}
		if n > (math.MaxInt64-1)/3 {
			panic(fmt.Errorf("%w: 3*%d+1", ErrOverflow, n))
		}
		return 3*n + 1
	}, start)), nil
}

func sqrt(seed, _ string) (Source, error) {
	n, err := cast.ToFloat64E(seed)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSeed, seed, err)
	}
	if n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, fmt.Errorf("%w %q: sqrt needs a finite non-negative number", ErrInvalidSeed, seed)
	}
	return erase(unfold.Iterate(func(x float64) float64 {
		if x == 0 {
			return 0
		}
		return (x + n/x) / 2
	}, n)), nil
}

func expression(seed, step string) (Source, error) {
	p, err := exprstep.Compile(seed, step)
	if err != nil {
		return nil, err
	}
	initial, err := p.Seed()
	if err != nil {
		return nil, err
	}
	return erase(unfold.New(p.Transition(), initial)), nil
}
