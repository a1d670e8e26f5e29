package postfix

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/alds/model/types"
)

// Name is the action service name
const Name = "postfix"

// Input represents evaluate input, Tokens take precedence over Expression
type Input struct {
	Expression string   `json:"expression,omitempty" yaml:"expression,omitempty"`
	Tokens     []string `json:"tokens,omitempty" yaml:"tokens,omitempty"`
}

// Output represents evaluate output
type Output struct {
	Result int64 `json:"result" yaml:"result"`
}

// Service exposes the evaluator as an action service
type Service struct {
	evaluator *Evaluator
}

// Name returns the service name
func (s *Service) Name() string {
	return Name
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "evaluate",
			Description: "Evaluates an integer postfix expression with +, - and * operators.",
			Input:       reflect.TypeOf(&Input{}),
			Output:      reflect.TypeOf(&Output{}),
		},
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "evaluate":
		return s.evaluate, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) evaluate(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*Input)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*Output)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	var tokens []Token
	var err error
	switch {
	case len(input.Tokens) > 0:
		tokens, err = ParseTokens(input.Tokens)
	case strings.TrimSpace(input.Expression) != "":
		tokens, err = Parse(input.Expression)
	default:
		return fmt.Errorf("%w: empty expression", ErrMalformedExpression)
	}
	if err != nil {
		return err
	}
	output.Result, err = s.evaluator.Evaluate(tokens)
	return err
}

// NewService creates a postfix action service
func NewService(options ...Option) *Service {
	return &Service{evaluator: New(options...)}
}
