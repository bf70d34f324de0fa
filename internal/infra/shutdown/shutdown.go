// Package shutdown provides interrupt handling for CLI invocations.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Signals are the termination signals that cancel an invocation.
var Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// NotifyContext returns a context that is canceled when the process
// receives one of Signals. The returned stop function releases the
// signal registration; a second signal after cancellation terminates
// the process with the default behavior.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, Signals...)
}
