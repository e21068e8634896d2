package widget

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Stage names a step of the map readiness wait.
type Stage string

const (
	StageLoadingIndicator Stage = "loading indicator detached"
	StageCanvas           Stage = "map canvas visible"
)

// StageError reports which readiness stage stalled and the budget it had.
type StageError struct {
	Stage   Stage
	Timeout time.Duration
	Err     error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%v: waiting for %s (%s): %v", ErrMapNotReady, e.Stage, e.Timeout, e.Err)
}

// Unwrap exposes both ErrMapNotReady and the underlying Playwright error.
func (e *StageError) Unwrap() []error {
	return []error{ErrMapNotReady, e.Err}
}

type waiter interface {
	WaitFor(options ...playwright.LocatorWaitForOptions) error
}

// waitForMapReady runs the two readiness stages. The canvas stage starts only after the
// indicator detached and gets its own budget.
func waitForMapReady(indicator, canvas waiter, spinnerTimeout, canvasTimeout time.Duration) error {
	err := indicator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateDetached,
		Timeout: millis(spinnerTimeout),
	})
	if err != nil {
		return &StageError{Stage: StageLoadingIndicator, Timeout: spinnerTimeout, Err: err}
	}

	err = canvas.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: millis(canvasTimeout),
	})
	if err != nil {
		return &StageError{Stage: StageCanvas, Timeout: canvasTimeout, Err: err}
	}

	return nil
}
