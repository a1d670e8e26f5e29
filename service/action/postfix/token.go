package postfix

import (
	"errors"
	"fmt"
	"strconv"
)

// Operator is a binary arithmetic operator
type Operator byte

const (
	Plus  Operator = '+'
	Minus Operator = '-'
	Mul   Operator = '*'
)

// String returns operator symbol
func (o Operator) String() string {
	return string(o)
}

// IsValid returns true for supported operators
func (o Operator) IsValid() bool {
	switch o {
	case Plus, Minus, Mul:
		return true
	}
	return false
}

// Apply computes left op right, failing with ErrOverflow when the result
// does not fit into int64
func (o Operator) Apply(left, right int64) (int64, error) {
	switch o {
	case Plus:
		sum := left + right
		if (right > 0 && sum < left) || (right < 0 && sum > left) {
			return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, left, right)
		}
		return sum, nil
	case Minus:
		diff := left - right
		if (right > 0 && diff > left) || (right < 0 && diff < left) {
			return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, left, right)
		}
		return diff, nil
	case Mul:
		if left == 0 || right == 0 {
			return 0, nil
		}
		product := left * right
		if product/right != left || (left == -1 && right == minInt64) || (right == -1 && left == minInt64) {
			return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, left, right)
		}
		return product, nil
	}
	return 0, fmt.Errorf("%w: operator %q", ErrInvalidToken, byte(o))
}

const minInt64 = -1 << 63

// Token is either an integer literal or an operator
type Token struct {
	operator Operator
	value    int64
}

// Literal creates an integer literal token
func Literal(value int64) Token {
	return Token{value: value}
}

// Op creates an operator token
func Op(operator Operator) Token {
	return Token{operator: operator}
}

// IsOperator returns true if token is an operator
func (t Token) IsOperator() bool {
	return t.operator != 0
}

// Operator returns token operator, zero for literals
func (t Token) Operator() Operator {
	return t.operator
}

// Value returns literal value, zero for operators
func (t Token) Value() int64 {
	return t.value
}

func (t Token) String() string {
	if t.IsOperator() {
		return t.operator.String()
	}
	return strconv.FormatInt(t.value, 10)
}

// ParseToken parses a single token: "+", "-", "*" or a signed integer
func ParseToken(text string) (Token, error) {
	if len(text) == 1 {
		if op := Operator(text[0]); op.IsValid() {
			return Op(op), nil
		}
	}
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Token{}, fmt.Errorf("%w: literal %v", ErrOverflow, text)
		}
		return Token{}, fmt.Errorf("%w: %q", ErrInvalidToken, text)
	}
	return Literal(value), nil
}

// ParseTokens parses pre-split token texts
func ParseTokens(texts []string) ([]Token, error) {
	result := make([]Token, 0, len(texts))
	for i, text := range texts {
		token, err := ParseToken(text)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		result = append(result, token)
	}
	return result, nil
}
