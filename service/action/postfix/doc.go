// Package postfix evaluates integer expressions written in reverse polish
// notation, using a bounded stack as the only working store.
//
//	tokens, _ := postfix.Parse("1 2 + 3 4 - *")
//	result, _ := postfix.New().Evaluate(tokens) // -3
package postfix
