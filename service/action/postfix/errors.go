package postfix

import "errors"

var (
	// ErrMalformedExpression is returned when an operator lacks operands or
	// the stream leaves other than exactly one value on the stack.
	ErrMalformedExpression = errors.New("postfix: malformed expression")
	// ErrOverflow is returned when a literal or an intermediate result does
	// not fit into a signed 64-bit integer.
	ErrOverflow = errors.New("postfix: integer overflow")
	// ErrInvalidToken is returned when text is neither an integer nor an operator.
	ErrInvalidToken = errors.New("postfix: invalid token")
)
