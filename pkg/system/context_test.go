package system

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunWithContext(t *testing.T) {
	t.Run("returns operation result", func(t *testing.T) {
		cause := errors.New("read failed")
		err := RunWithContext(context.Background(), func(context.Context) error { return cause })
		require.ErrorIs(t, err, cause)

		require.NoError(t, RunWithContext(context.Background(), func(context.Context) error { return nil }))
	})

	t.Run("already cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		err := RunWithContext(ctx, func(context.Context) error {
			called = true
			return nil
		})
		require.ErrorIs(t, err, context.Canceled)
		require.False(t, called)
	})

	t.Run("cancellation reaches operation", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		finished := false
		err := RunWithContext(ctx, func(opCtx context.Context) error {
			<-opCtx.Done()
			finished = true
			return opCtx.Err()
		})
		require.ErrorIs(t, err, context.Canceled)
		require.True(t, finished)
	})
}
