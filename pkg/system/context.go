package system

import (
	"context"
)

// Runs operation on its own goroutine and waits for it while watching ctx.
// When ctx is done the operation's context is cancelled and RunWithContext
// still waits for the operation to return.
//
// Returns:
//   - ctx.Err() if ctx was already done before the operation started.
//   - the operation's own error otherwise.
func RunWithContext(ctx context.Context, operation func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	opCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Buffered so the goroutine never blocks on send.
	done := make(chan error, 1)

	go func() {
		done <- operation(opCtx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		cancel()
		return <-done
	}
}
