// Package exprstep compiles user-supplied expressions into unfold transitions.
//
// The step expression sees the current state as s and must evaluate to a
// two-element array [next_state, value]:
//
//	seed: [0, 1]
//	step: [[s[1], s[0] + s[1]], s[0]]
package exprstep

import (
	"errors"
	"fmt"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"github.com/charmingruby/unfold/unfold"
)

// StateVar is the name the current state is bound to in step expressions.
const StateVar = "s"

// ErrBadStep reports a step result that is not a [next_state, value] pair.
var ErrBadStep = errors.New("step must evaluate to [next_state, value]")

// EvaluationError captures the failing expression alongside the originating error.
type EvaluationError struct {
	Expr string
	Err  error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("exprstep: expr=%q: %v", e.Expr, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// Program holds the compiled seed and step expressions.
type Program struct {
	seedExpr string
	stepExpr string
	seed     *exprvm.Program
	step     *exprvm.Program
}

// Compile compiles both expressions. Neither may be empty.
func Compile(seedExpr, stepExpr string) (*Program, error) {
	seed, err := compile(seedExpr)
	if err != nil {
		return nil, err
	}
	step, err := compile(stepExpr)
	if err != nil {
		return nil, err
	}
	return &Program{seedExpr: seedExpr, stepExpr: stepExpr, seed: seed, step: step}, nil
}

func compile(expression string) (*exprvm.Program, error) {
	if expression == "" {
		return nil, &EvaluationError{Expr: expression, Err: errors.New("expression must not be empty")}
	}
	program, err := exprlang.Compile(expression,
		exprlang.Env(map[string]any{}),
		exprlang.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, &EvaluationError{Expr: expression, Err: err}
	}
	return program, nil
}

// Seed evaluates the seed expression.
func (p *Program) Seed() (any, error) {
	out, err := exprlang.Run(p.seed, map[string]any{})
	if err != nil {
		return nil, &EvaluationError{Expr: p.seedExpr, Err: err}
	}
	return out, nil
}

// Transition returns the step expression as an unfold transition. Evaluation
// failures panic with an *EvaluationError.
func (p *Program) Transition() unfold.Transition[any, any] {
	return func(state any) (any, any) {
		next, value, err := p.Step(state)
		if err != nil {
			panic(err)
		}
		return next, value
	}
}

// Step evaluates the step expression once against state.
func (p *Program) Step(state any) (next any, value any, err error) {
	out, err := exprlang.Run(p.step, map[string]any{StateVar: state})
	if err != nil {
		return nil, nil, &EvaluationError{Expr: p.stepExpr, Err: err}
	}
	pair, ok := out.([]any)
	if !ok || len(pair) != 2 {
		return nil, nil, &EvaluationError{Expr: p.stepExpr, Err: fmt.Errorf("%w, got %v", ErrBadStep, out)}
	}
	return pair[0], pair[1], nil
}
