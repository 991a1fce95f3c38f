package app

import (
	"context"
	"os/signal"
	"syscall"
)

// SetupSignals creates a context that is canceled when the process receives
// SIGINT (Ctrl+C) or SIGTERM. The returned stop function releases the signal
// registration and should be deferred.
func SetupSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}
