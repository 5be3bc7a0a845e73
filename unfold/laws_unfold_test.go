package unfold_test

import (
	"reflect"
	"testing"
	"testing/quick"

	"github.com/charmingruby/unfold/seq"
	"github.com/charmingruby/unfold/unfold"
)

// lcg is a linear congruential step emitting a value derived from the old
// state only.
func lcg(state uint32) (uint32, uint32) {
	return state*1664525 + 1013904223, state ^ (state >> 7)
}

func TestNthPullLaw(t *testing.T) {
	law := func(seed uint32, n uint8) bool {
		state := seed
		var want uint32
		for range int(n) + 1 {
			state, want = lcg(state)
		}
		s := unfold.New(lcg, seed)
		for range int(n) {
			s.Next()
		}
		return s.Next() == want && unfold.Nth(lcg, seed, int(n)).UnsafeGet() == want
	}
	if err := quick.Check(law, nil); err != nil {
		t.Fatalf("n-th pull law failed: %v", err)
	}
}

func TestDeterminism(t *testing.T) {
	check := func(seed uint32, n uint8) bool {
		a := unfold.Slice(lcg, seed, int(n))
		b := seq.ToSlice(unfold.Take(lcg, seed, int(n)))
		return len(a) == int(n) && reflect.DeepEqual(a, b)
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("determinism failed: %v", err)
	}
}

func TestContinuationLaw(t *testing.T) {
	// k pulls then m more on one instance equal the k..k+m-1 slice of a fresh run.
	check := func(seed uint32, k, m uint8) bool {
		s := unfold.New(lcg, seed)
		for range int(k) {
			s.Next()
		}
		tail := seq.ToSlice(seq.Take(s.Iterator(), int(m)))
		full := unfold.Slice(lcg, seed, int(k)+int(m))
		return reflect.DeepEqual(tail, full[int(k):])
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("continuation law failed: %v", err)
	}
}
