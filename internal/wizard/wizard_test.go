package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoStepFlow builds a flow whose first step passes only when *gate is
// true and whose final step always passes.
func twoStepFlow(gate *bool) *Flow {
	return NewFlow([]Step{
		{Name: "first", Validate: func() Result {
			if !*gate {
				return Fail("gate", "gate is closed")
			}
			return OK()
		}},
		{Name: "second", Validate: func() Result { return OK() }},
	})
}

func TestFlow_NextRequiresValidStep(t *testing.T) {
	gate := false
	flow := twoStepFlow(&gate)

	result, err := flow.Next()
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "gate is closed", result.Reason)
	assert.Equal(t, 1, flow.CurrentStep())

	gate = true
	result, err = flow.Next()
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, 2, flow.CurrentStep())
}

func TestFlow_NextDoesNotAdvancePastLastStep(t *testing.T) {
	gate := true
	flow := twoStepFlow(&gate)

	_, err := flow.Next()
	require.NoError(t, err)
	require.Equal(t, 2, flow.CurrentStep())

	result, err := flow.Next()
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, 2, flow.CurrentStep())
}

func TestFlow_PreviousNeverValidates(t *testing.T) {
	gate := true
	flow := twoStepFlow(&gate)

	_, err := flow.Next()
	require.NoError(t, err)

	// Close the gate; going back must still succeed
	gate = false
	assert.True(t, flow.Previous())
	assert.Equal(t, 1, flow.CurrentStep())

	// No step before the first
	assert.False(t, flow.Previous())
	assert.Equal(t, 1, flow.CurrentStep())
}

func TestFlow_SubmitFromEarlierStepRefused(t *testing.T) {
	gate := true
	flow := twoStepFlow(&gate)

	called := false
	result, err := flow.Submit(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.False(t, called)
	assert.Equal(t, StateEditing, flow.State())
}

func TestFlow_SubmitSuccessIsTerminal(t *testing.T) {
	gate := true
	flow := twoStepFlow(&gate)
	_, err := flow.Next()
	require.NoError(t, err)

	result, err := flow.Submit(context.Background(), func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, StateSubmitted, flow.State())

	_, err = flow.Next()
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.False(t, flow.Previous())

	_, err = flow.Submit(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestFlow_SubmitFailureLeavesFlowRetryable(t *testing.T) {
	gate := true
	flow := twoStepFlow(&gate)
	_, err := flow.Next()
	require.NoError(t, err)

	submitErr := errors.New("simulated network error")
	_, err = flow.Submit(context.Background(), func(context.Context) error { return submitErr })
	assert.ErrorIs(t, err, submitErr)
	assert.Equal(t, StateEditing, flow.State())
	assert.Equal(t, 2, flow.CurrentStep())

	// Retry succeeds
	_, err = flow.Submit(context.Background(), func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, StateSubmitted, flow.State())
}

func TestFlow_SubmitCancellation(t *testing.T) {
	gate := true
	flow := twoStepFlow(&gate)
	_, err := flow.Next()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = flow.Submit(ctx, func(ctx context.Context) error { return ctx.Err() })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateEditing, flow.State())
}

func TestFlow_ValidateCurrentDoesNotAdvance(t *testing.T) {
	gate := true
	flow := twoStepFlow(&gate)

	result := flow.ValidateCurrent()
	assert.True(t, result.Valid)
	assert.Equal(t, 1, flow.CurrentStep())
}
