// SPDX-License-Identifier: MIT
package types

import (
	"context"
	"errors"
	"fmt"
)

// Synchronization errors.
var (
	ErrInvalidGoroutineCount = errors.New("invalid goroutine count")
)

// MonitorChannels `error`s & completion status.
//
// Every one of the `operations` must send exactly once on either `done` or `errChan`; buffer both
// channels to `operations` so senders never block after a context cancellation.
//
// errPrefix should be in the singular form.
func MonitorChannels(ctx context.Context, operations int, done <-chan bool, errChan <-chan error, errPrefix string) (err error) {
	if operations < 1 {
		err = fmt.Errorf("%s %w: %d", errPrefix, ErrInvalidGoroutineCount, operations)
		return
	}

	for index := 0; index < operations; index++ {
		select {
		case <-ctx.Done():
			err = fmt.Errorf("%s: %w", errPrefix, ctx.Err())
			return
		case <-done:
		case e := <-errChan:
			if err != nil {
				err = fmt.Errorf("%w, %w", err, e)
			} else {
				err = fmt.Errorf("%s %w", errPrefix, e)
			}
		}
	}

	return
}
