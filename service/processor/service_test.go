package processor

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
	rmemory "github.com/viant/alds/service/dao/run/memory"
	"github.com/viant/alds/service/executor"
	"github.com/viant/alds/service/messaging/memory"
)

func TestService_Submit(t *testing.T) {
	actions := extension.NewActions()
	actions.Register(postfix.NewService())
	runDAO := rmemory.New()
	queue := memory.NewQueue[run.Run](memory.DefaultConfig())

	srv, err := New(WithExecutor(executor.NewService(actions)), WithMessageQueue(queue), WithRunDAO(runDAO), WithWorkers(2))
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, srv.Start(ctx))
	defer srv.Shutdown()

	var testCases = []struct {
		description string
		input       *postfix.Input
		policy      *policy.Policy
		expectState run.State
		expect      interface{}
	}{
		{
			description: "completed",
			input:       &postfix.Input{Expression: "1 2 + 3 4 - *"},
			expectState: run.StateCompleted,
			expect:      &postfix.Output{Result: -3},
		},
		{
			description: "failed",
			input:       &postfix.Input{Expression: "+"},
			expectState: run.StateFailed,
		},
		{
			description: "policy travels with run",
			input:       &postfix.Input{Expression: "1"},
			policy:      &policy.Policy{Mode: policy.ModeDeny},
			expectState: run.StateFailed,
		},
	}

	for _, testCase := range testCases {
		runCtx := ctx
		if testCase.policy != nil {
			runCtx = policy.WithPolicy(ctx, testCase.policy)
		}
		aRun := run.New(postfix.Name, "evaluate", testCase.input)
		require.NoError(t, srv.Submit(runCtx, aRun), testCase.description)
		actual, err := srv.Wait(ctx, aRun.ID, 2*time.Second)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expectState, actual.State, testCase.description)
		if testCase.expect != nil {
			assert.Equal(t, testCase.expect, actual.Output, testCase.description)
		}
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New()
	assert.Error(t, err)
	_, err = New(WithExecutor(executor.NewService(extension.NewActions())))
	assert.Error(t, err)
}
