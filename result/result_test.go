package result_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/charmingruby/unfold/result"
)

func TestOkErr(t *testing.T) {
	ok := result.Ok(10)
	if !ok.IsOk() || ok.IsErr() || ok.Err() != nil {
		t.Fatalf("expected ok result")
	}
	value, err := ok.Unwrap()
	if err != nil || value != 10 {
		t.Fatalf("unexpected unwrap %v %v", value, err)
	}

	boom := errors.New("boom")
	failed := result.Err[int](boom)
	if failed.IsOk() || !errors.Is(failed.Err(), boom) {
		t.Fatalf("expected err result, got %v", failed.Err())
	}
	if failed.UnwrapOr(-1) != -1 {
		t.Fatalf("expected fallback")
	}
}

func TestErrNilPlaceholder(t *testing.T) {
	res := result.Err[string](nil)
	if res.IsOk() {
		t.Fatalf("nil error must not become success")
	}
	if res.Err().Error() != "result: nil error" {
		t.Fatalf("unexpected placeholder %q", res.Err())
	}
}

func TestMapKeepsError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	mapped := result.Map(result.Err[int](boom), func(v int) string {
		calls++
		return strconv.Itoa(v)
	})
	if calls != 0 || !errors.Is(mapped.Err(), boom) {
		t.Fatalf("map should not run on error")
	}
	if got := result.Map(result.Ok(7), strconv.Itoa).UnwrapOr(""); got != "7" {
		t.Fatalf("unexpected mapped value %q", got)
	}
}
