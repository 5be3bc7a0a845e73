package option_test

import (
	"testing"
	"testing/quick"

	"github.com/charmingruby/unfold/option"
)

func TestOptionFunctorLaws(t *testing.T) {
	identity := func(x int) int { return x }
	composition := func(x int) int { return x + 1 }
	other := func(x int) int { return x * 2 }

	check := func(value int, present bool) bool {
		var opt option.Option[int]
		if present {
			opt = option.Some(value)
		} else {
			opt = option.None[int]()
		}
		idMapped := option.Map(opt, identity)
		compMapped := option.Map(option.Map(opt, composition), other)
		composed := option.Map(opt, func(x int) int { return other(composition(x)) })
		return equalOption(opt, idMapped) && equalOption(compMapped, composed)
	}

	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("functor law failed: %v", err)
	}
}

func equalOption[T comparable](a, b option.Option[T]) bool {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok != bok {
		return false
	}
	if !aok {
		return true
	}
	return av == bv
}
