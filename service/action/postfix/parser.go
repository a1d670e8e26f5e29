package postfix

import (
	"fmt"
	"strings"

	"github.com/viant/parsly"
)

// Parse tokenizes a whitespace separated postfix expression
func Parse(expression string) ([]Token, error) {
	cursor := parsly.NewCursor("", []byte(strings.TrimSpace(expression)), 0)
	var tokens []Token
	for cursor.Pos < cursor.InputSize {
		matched := cursor.MatchAfterOptional(whitespaceToken, integerToken, operatorToken)
		switch matched.Code {
		case integerCode, operatorCode:
			text := matched.Text(cursor)
			token, err := ParseToken(text)
			if err != nil {
				return nil, fmt.Errorf("at %d: %w", cursor.Pos-len(text), err)
			}
			tokens = append(tokens, token)
		case parsly.EOF:
			return tokens, nil
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, cursor.NewError(integerToken, operatorToken))
		}
	}
	return tokens, nil
}
