package postfix

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceCode = iota + 1
	integerCode
	operatorCode
)

var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	integerToken    = parsly.NewToken(integerCode, "Integer", &integerMatcher{})
	operatorToken   = parsly.NewToken(operatorCode, "Operator", &operatorMatcher{})
)

// integerMatcher matches an optionally signed run of digits ending at whitespace or input end
type integerMatcher struct{}

func (m *integerMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos >= size {
		return 0
	}
	i := pos
	if input[i] == '-' || input[i] == '+' {
		i++
	}
	digits := 0
	for ; i < size && isDigit(input[i]); i++ {
		digits++
	}
	if digits == 0 || !isBoundary(input, i) {
		return 0
	}
	return i - pos
}

// operatorMatcher matches a single operator byte ending at whitespace or input end
type operatorMatcher struct{}

func (m *operatorMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	if pos >= cursor.InputSize || !Operator(input[pos]).IsValid() {
		return 0
	}
	if !isBoundary(input, pos+1) {
		return 0
	}
	return 1
}

func isBoundary(input []byte, pos int) bool {
	if pos >= len(input) {
		return true
	}
	switch input[pos] {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
