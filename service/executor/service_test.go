package executor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/alds/extension"
	"github.com/viant/alds/model/run"
	"github.com/viant/alds/policy"
	"github.com/viant/alds/service/action/postfix"
	"github.com/viant/alds/service/action/scheduler"
	"github.com/viant/alds/service/event"
	"github.com/viant/alds/service/messaging"
)

func newActions() *extension.Actions {
	actions := extension.NewActions()
	actions.Register(postfix.NewService())
	actions.Register(scheduler.NewService())
	return actions
}

func TestService_Execute(t *testing.T) {
	var testCases = []struct {
		description string
		service     string
		method      string
		input       interface{}
		policy      *policy.Policy
		expect      interface{}
		expectErr   error
	}{
		{
			description: "typed input",
			service:     "postfix",
			method:      "evaluate",
			input:       &postfix.Input{Expression: "1 2 + 3 4 - *"},
			expect:      &postfix.Output{Result: -3},
		},
		{
			description: "struct value input",
			service:     "scheduler",
			method:      "Schedule",
			input: scheduler.Input{Quantum: 10, Processes: []scheduler.Process{
				{Name: "a", Remaining: 15}, {Name: "b", Remaining: 5},
			}},
			expect: &scheduler.Output{Completed: []scheduler.Process{
				{Name: "b", Elapsed: 15}, {Name: "a", Elapsed: 20},
			}},
		},
		{
			description: "map input",
			service:     "postfix",
			method:      "evaluate",
			input:       map[string]interface{}{"Expression": "6 7 *"},
			expect:      &postfix.Output{Result: 42},
		},
		{
			description: "unknown service",
			service:     "printer",
			method:      "print",
			expectErr:   ErrServiceNotFound,
		},
		{
			description: "unknown method",
			service:     "postfix",
			method:      "parse",
			expectErr:   ErrMethodNotFound,
		},
		{
			description: "denied",
			service:     "postfix",
			method:      "evaluate",
			input:       &postfix.Input{Expression: "1"},
			policy:      &policy.Policy{Mode: policy.ModeAuto, BlockList: []string{"postfix.evaluate"}},
			expectErr:   ErrActionDenied,
		},
		{
			description: "action error",
			service:     "postfix",
			method:      "evaluate",
			input:       &postfix.Input{Expression: "1 +"},
			expectErr:   postfix.ErrMalformedExpression,
		},
	}

	executor := NewService(newActions())
	for _, testCase := range testCases {
		ctx := context.Background()
		if testCase.policy != nil {
			ctx = policy.WithPolicy(ctx, testCase.policy)
		}
		aRun := run.New(testCase.service, testCase.method, testCase.input)
		err := executor.Execute(ctx, aRun)
		require.NotNil(t, aRun.CompletedAt, testCase.description)
		if testCase.expectErr != nil {
			assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
			assert.Equal(t, run.StateFailed, aRun.State, testCase.description)
			assert.NotEmpty(t, aRun.Error, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, run.StateCompleted, aRun.State, testCase.description)
		assert.Equal(t, testCase.expect, aRun.Output, testCase.description)
	}
}

func TestService_ListenerAndEvents(t *testing.T) {
	events, err := event.New(messaging.VendorMemory)
	require.NoError(t, err)
	defer events.Close()

	var listened []string
	executor := NewService(newActions(),
		WithEvents(events),
		WithListener(func(aRun *run.Run, input, output interface{}) {
			listened = append(listened, aRun.Action())
		}))

	aRun := run.New("postfix", "evaluate", &postfix.Input{Tokens: []string{"2", "3", "+"}})
	require.NoError(t, executor.Execute(context.Background(), aRun))
	assert.Equal(t, []string{"postfix.evaluate"}, listened)

	topic, err := run.Events(events)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	anEvent, err := topic.Next(ctx)
	require.NoError(t, err)
	require.NotNil(t, anEvent)
	assert.Equal(t, aRun.ID, anEvent.Context.RunID)
	assert.Equal(t, string(run.StateCompleted), anEvent.Context.EventType)
	assert.Equal(t, &postfix.Output{Result: 5}, anEvent.Data.Output)
}
