package postfix

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/alds/container"
	"github.com/viant/alds/container/stack"
)

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		expression  string
		expect      []Token
		expectErr   error
	}{
		{
			description: "mixed tokens",
			expression:  "1 2 + 3 4 - *",
			expect:      []Token{Literal(1), Literal(2), Op(Plus), Literal(3), Literal(4), Op(Minus), Op(Mul)},
		},
		{
			description: "negative literal and minus",
			expression:  "  -5\t3 -\n",
			expect:      []Token{Literal(-5), Literal(3), Op(Minus)},
		},
		{
			description: "explicitly positive literal",
			expression:  "+5 1 +",
			expect:      []Token{Literal(5), Literal(1), Op(Plus)},
		},
		{
			description: "empty",
			expression:  "   ",
		},
		{
			description: "unknown operator",
			expression:  "1 2 /",
			expectErr:   ErrInvalidToken,
		},
		{
			description: "glued tokens",
			expression:  "12+ 3",
			expectErr:   ErrInvalidToken,
		},
		{
			description: "literal out of range",
			expression:  "99999999999999999999 1 +",
			expectErr:   ErrOverflow,
		},
	}

	for _, testCase := range testCases {
		actual, err := Parse(testCase.expression)
		if testCase.expectErr == nil && len(testCase.expect) > 0 {
			fields, fieldsErr := ParseTokens(strings.Fields(testCase.expression))
			require.NoError(t, fieldsErr, testCase.description)
			assert.Equal(t, fields, actual, testCase.description)
		}
		if testCase.expectErr != nil {
			assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestParseToken(t *testing.T) {
	token, err := ParseToken("-")
	require.NoError(t, err)
	assert.True(t, token.IsOperator())
	assert.Equal(t, Minus, token.Operator())

	token, err = ParseToken("-42")
	require.NoError(t, err)
	assert.False(t, token.IsOperator())
	assert.EqualValues(t, -42, token.Value())
	assert.Equal(t, "-42", token.String())

	_, err = ParseToken("x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestEvaluate(t *testing.T) {
	var testCases = []struct {
		description string
		tokens      []string
		expect      int64
		expectErr   []error
	}{
		{description: "round trip", tokens: []string{"1", "2", "+", "3", "4", "-", "*"}, expect: -3},
		{description: "single literal", tokens: []string{"42"}, expect: 42},
		{description: "operand order", tokens: []string{"10", "3", "-"}, expect: 7},
		{description: "operator underflow", tokens: []string{"1", "+"}, expectErr: []error{ErrMalformedExpression, container.ErrEmpty}},
		{description: "bare operator", tokens: []string{"*"}, expectErr: []error{ErrMalformedExpression, container.ErrEmpty}},
		{description: "residual values", tokens: []string{"1", "2"}, expectErr: []error{ErrMalformedExpression}},
		{description: "no tokens", tokens: nil, expectErr: []error{ErrMalformedExpression, container.ErrEmpty}},
		{description: "add overflow", tokens: []string{"9223372036854775807", "1", "+"}, expectErr: []error{ErrOverflow}},
		{description: "sub overflow", tokens: []string{"-9223372036854775808", "1", "-"}, expectErr: []error{ErrOverflow}},
		{description: "mul overflow", tokens: []string{"-9223372036854775808", "-1", "*"}, expectErr: []error{ErrOverflow}},
	}

	for _, testCase := range testCases {
		tokens, err := ParseTokens(testCase.tokens)
		require.NoError(t, err, testCase.description)
		actual, err := New().Evaluate(tokens)
		if len(testCase.expectErr) > 0 {
			for _, expectErr := range testCase.expectErr {
				assert.ErrorIs(t, err, expectErr, testCase.description)
			}
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestEvaluate_StackFull(t *testing.T) {
	for _, kind := range []container.Kind{container.KindArray, container.KindVec} {
		evaluator := New(WithStackKind(kind), WithCapacity(2))
		_, err := evaluator.EvaluateExpression("1 2 3 + +")
		assert.ErrorIs(t, err, container.ErrFull, string(kind))

		actual, err := evaluator.EvaluateExpression("1 2 + 3 +")
		require.NoError(t, err, string(kind))
		assert.EqualValues(t, 6, actual, string(kind))
	}
}

func TestEvaluate_LeavesStackEmpty(t *testing.T) {
	st := stack.NewArray[int64](4)
	tokens, err := Parse("2 3 * 4 -")
	require.NoError(t, err)
	actual, err := Evaluate(tokens, st)
	require.NoError(t, err)
	assert.EqualValues(t, 2, actual)
	assert.True(t, st.IsEmpty())
}

func TestEvaluator_Idempotent(t *testing.T) {
	evaluator := New()
	first, err := evaluator.EvaluateExpression("5 1 2 + 4 * + 3 -")
	require.NoError(t, err)
	second, err := evaluator.EvaluateExpression("5 1 2 + 4 * + 3 -")
	require.NoError(t, err)
	assert.EqualValues(t, 14, first)
	assert.Equal(t, first, second)
}

func TestOperator_Apply(t *testing.T) {
	actual, err := Mul.Apply(math.MaxInt32, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 2*math.MaxInt32, actual)

	actual, err = Mul.Apply(0, math.MinInt64)
	require.NoError(t, err)
	assert.Zero(t, actual)

	_, err = Mul.Apply(math.MaxInt64/2+1, 2)
	assert.True(t, errors.Is(err, ErrOverflow))

	_, err = Operator('/').Apply(1, 1)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Evaluate(t *testing.T) {
	srv := NewService()
	method, err := srv.Method("Evaluate")
	require.NoError(t, err)

	output := &Output{}
	require.NoError(t, method(context.Background(), &Input{Expression: "1 2 + 3 4 - *"}, output))
	assert.EqualValues(t, -3, output.Result)

	output = &Output{}
	require.NoError(t, method(context.Background(), &Input{Tokens: []string{"7", "6", "*"}}, output))
	assert.EqualValues(t, 42, output.Result)

	err = method(context.Background(), &Input{}, &Output{})
	assert.ErrorIs(t, err, ErrMalformedExpression)

	err = method(context.Background(), Input{}, &Output{})
	assert.Error(t, err)

	_, err = srv.Method("unknown")
	assert.Error(t, err)
}
