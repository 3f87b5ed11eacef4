package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// RunWithSpinner executes action while a spinner is shown on stdout.
// Without a TTY the action runs directly. Returns the action's error.
func RunWithSpinner(ctx context.Context, action func(ctx context.Context) error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title: "Working...",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if !IsTTY() {
		return action(ctx)
	}

	return runWithIndicator(ctx, action, func(ctx context.Context, done <-chan struct{}) error {
		return spinner.New().
			Title(cfg.title).
			Context(ctx).
			Action(func() { <-done }).
			Run()
	})
}

// runWithIndicator runs action in its own goroutine while show displays
// progress until done is closed. If show returns first, the action's context
// is cancelled and runWithIndicator still waits for the action to return.
func runWithIndicator(
	ctx context.Context,
	action func(ctx context.Context) error,
	show func(ctx context.Context, done <-chan struct{}) error,
) error {
	actionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	errCh := make(chan error, 1)
	go func() {
		defer close(done)
		errCh <- action(actionCtx)
	}()

	showErr := show(actionCtx, done)
	cancel()
	err := <-errCh

	if err != nil {
		return err
	}
	if showErr != nil {
		return fmt.Errorf("spinner error: %w", showErr)
	}
	return nil
}
