package postfix

import (
	"errors"
	"fmt"

	"github.com/viant/alds/container"
	"github.com/viant/alds/container/stack"
)

// Evaluate runs tokens against st and returns the single remaining value.
// st is expected to be empty; it is left empty on success.
func Evaluate(tokens []Token, st stack.Stack[int64]) (int64, error) {
	for i, token := range tokens {
		if !token.IsOperator() {
			if err := st.Push(token.Value()); err != nil {
				return 0, fmt.Errorf("token %d: %w", i, err)
			}
			continue
		}
		right, err := st.Pop()
		if err != nil {
			return 0, underflow(i, token, err)
		}
		left, err := st.Pop()
		if err != nil {
			return 0, underflow(i, token, err)
		}
		value, err := token.Operator().Apply(left, right)
		if err != nil {
			return 0, fmt.Errorf("token %d: %w", i, err)
		}
		if err = st.Push(value); err != nil {
			return 0, fmt.Errorf("token %d: %w", i, err)
		}
	}
	result, err := st.Pop()
	if err != nil {
		return 0, fmt.Errorf("%w: no value left: %w", ErrMalformedExpression, err)
	}
	if !st.IsEmpty() {
		return 0, fmt.Errorf("%w: %d values left", ErrMalformedExpression, st.Len()+1)
	}
	return result, nil
}

func underflow(i int, token Token, err error) error {
	if errors.Is(err, container.ErrEmpty) {
		return fmt.Errorf("%w: operator %v at %d lacks operand: %w", ErrMalformedExpression, token, i, err)
	}
	return err
}

// Evaluator allocates a fresh stack for every evaluation
type Evaluator struct {
	kind     container.Kind
	capacity int
}

// Evaluate evaluates tokens
func (e *Evaluator) Evaluate(tokens []Token) (int64, error) {
	st, err := stack.New[int64](e.kind, e.capacity)
	if err != nil {
		return 0, err
	}
	return Evaluate(tokens, st)
}

// EvaluateExpression parses and evaluates expression
func (e *Evaluator) EvaluateExpression(expression string) (int64, error) {
	tokens, err := Parse(expression)
	if err != nil {
		return 0, err
	}
	return e.Evaluate(tokens)
}

// New creates an evaluator backed by the default array stack
func New(options ...Option) *Evaluator {
	ret := &Evaluator{kind: container.KindArray, capacity: stack.DefaultCapacity}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
