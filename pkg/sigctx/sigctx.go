// Package sigctx derives contexts that end on shutdown signals.
package sigctx

import (
	"context"
	"os/signal"
	"syscall"
)

// NotifyContext returns a child of parent that is cancelled on SIGINT,
// SIGTERM or SIGQUIT. The stop function releases the signal registration,
// so a second signal after cancellation falls through to the default
// handler and a hung shutdown stays interruptible.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
}
