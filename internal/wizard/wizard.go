// Package wizard drives multi-step, client-validated data-entry flows.
// A flow owns an ordered list of steps, each gating forward progress on
// a predicate over the accumulated draft. Validation failures are
// recoverable results handed back to the caller, never errors that
// abort the flow.
package wizard

import (
	"context"
	"errors"
	"sync"
)

// FlowState represents where a flow is in its lifecycle
type FlowState string

const (
	StateEditing    FlowState = "editing"
	StateSubmitting FlowState = "submitting"
	StateSubmitted  FlowState = "submitted"
)

// ErrAlreadySubmitted is returned when a transition is attempted on a
// flow that has reached its terminal state.
var ErrAlreadySubmitted = errors.New("flow already submitted")

// Result is the outcome of validating one step. A failed result names
// the offending field (when one field is at fault) and carries a
// user-facing reason.
type Result struct {
	Valid  bool   `json:"valid"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// OK is the passing validation result
func OK() Result {
	return Result{Valid: true}
}

// Fail builds a failed result for the given field
func Fail(field, reason string) Result {
	return Result{Field: field, Reason: reason}
}

// Step is one stage of a flow. Its predicate reads the draft the flow
// was built around (validators close over it) and reports whether the
// user may advance.
type Step struct {
	Name     string
	Validate func() Result
}

// Flow is a fixed, ordered sequence of steps. Next advances only when
// the current step validates; Previous always steps back; Submit gates
// on the final step and runs a terminal side effect. A Flow is safe for
// use from multiple goroutines, though its expected owner is a single
// UI session.
type Flow struct {
	mu      sync.Mutex
	steps   []Step
	current int // 1-based
	state   FlowState
}

// NewFlow creates a flow positioned at its first step
func NewFlow(steps []Step) *Flow {
	return &Flow{
		steps:   steps,
		current: 1,
		state:   StateEditing,
	}
}

// CurrentStep returns the 1-based index of the active step
func (f *Flow) CurrentStep() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// StepCount returns the number of steps in the flow
func (f *Flow) StepCount() int {
	return len(f.steps)
}

// StepName returns the name of the active step
func (f *Flow) StepName() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.steps[f.current-1].Name
}

// State returns the flow lifecycle state
func (f *Flow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// ValidateCurrent runs the active step's predicate without advancing
func (f *Flow) ValidateCurrent() Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.steps[f.current-1].Validate()
}

// Next advances to the following step when the current step validates.
// The validation result is returned either way so the caller can
// surface the refusal reason. On the last step Next validates but does
// not advance; submission is the only way past it.
func (f *Flow) Next() (Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSubmitted {
		return Result{}, ErrAlreadySubmitted
	}

	result := f.steps[f.current-1].Validate()
	if result.Valid && f.current < len(f.steps) {
		f.current++
	}
	return result, nil
}

// Previous steps back without validating. It reports false from the
// first step, where there is nowhere to go.
func (f *Flow) Previous() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSubmitted || f.current <= 1 {
		return false
	}
	f.current--
	return true
}

// Submit validates the final step and, when it passes, runs submit
// under ctx. The flow is in the submitting state while the side effect
// runs; a failure (including cancellation) returns the flow to editing
// at the final step with the draft intact, so the user may retry.
// Success is terminal: no further transitions are accepted.
func (f *Flow) Submit(ctx context.Context, submit func(context.Context) error) (Result, error) {
	f.mu.Lock()
	if f.state == StateSubmitted {
		f.mu.Unlock()
		return Result{}, ErrAlreadySubmitted
	}
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return Result{}, errors.New("submission already in flight")
	}

	if f.current != len(f.steps) {
		f.mu.Unlock()
		return Fail("", "complete the remaining steps before submitting"), nil
	}

	result := f.steps[f.current-1].Validate()
	if !result.Valid {
		f.mu.Unlock()
		return result, nil
	}

	f.state = StateSubmitting
	f.mu.Unlock()

	err := submit(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = StateEditing
		return result, err
	}

	f.state = StateSubmitted
	return result, nil
}
