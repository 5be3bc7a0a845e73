package exprstep_test

import (
	"testing"

	"github.com/charmingruby/unfold/internal/exprstep"
	"github.com/charmingruby/unfold/seq"
	"github.com/charmingruby/unfold/unfold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFibonacciExpression(t *testing.T) {
	p, err := exprstep.Compile("[0, 1]", "[[s[1], s[0] + s[1]], s[0]]")
	require.NoError(t, err)
	seed, err := p.Seed()
	require.NoError(t, err)

	s := unfold.New(p.Transition(), seed)
	got := seq.ToSlice(seq.Take(s.Iterator(), 6))
	assert.Equal(t, []any{0, 1, 1, 2, 3, 5}, got)
}

func TestCounterExpression(t *testing.T) {
	p, err := exprstep.Compile("10", "[s + 1, s * s]")
	require.NoError(t, err)
	seed, err := p.Seed()
	require.NoError(t, err)

	values := unfold.Slice(p.Transition(), seed, 3)
	assert.Equal(t, []any{100, 121, 144}, values)
}

func TestCompileErrors(t *testing.T) {
	tests := map[string]struct {
		seed, step string
	}{
		"empty seed":  {seed: "", step: "[s, s]"},
		"empty step":  {seed: "1", step: ""},
		"syntax step": {seed: "1", step: "[s, "},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := exprstep.Compile(tc.seed, tc.step)
			var evalErr *exprstep.EvaluationError
			require.ErrorAs(t, err, &evalErr)
		})
	}
}

func TestBadStepShape(t *testing.T) {
	p, err := exprstep.Compile("1", "s + 1")
	require.NoError(t, err)

	_, _, err = p.Step(1)
	require.ErrorIs(t, err, exprstep.ErrBadStep)
	assert.ErrorContains(t, err, `expr="s + 1"`)
}

func TestRuntimeFailureSurfacesThroughTryNext(t *testing.T) {
	p, err := exprstep.Compile("2", "[s - 1, s * 10]")
	require.NoError(t, err)

	s := unfold.New(p.Transition(), any("x"))
	res := s.TryNext()
	require.True(t, res.IsErr())
	var terr *unfold.TransitionError
	require.ErrorAs(t, res.Err(), &terr)
	assert.Equal(t, uint64(0), terr.Pull)
	var evalErr *exprstep.EvaluationError
	assert.ErrorAs(t, res.Err(), &evalErr)
	assert.True(t, s.Faulted())
}
