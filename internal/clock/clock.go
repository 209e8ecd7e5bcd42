// Package clock provides an injectable time source so the undo expiry
// timer can be driven deterministically in tests.
//
// Production code uses Real(). Tests use Fake() and move time forward
// with Advance; AfterFunc callbacks whose deadline is reached fire
// synchronously inside Advance.
package clock

import "time"

// Clock is the subset of the time package the list controller needs.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc calls f once d has elapsed. The returned Timer cancels
	// the pending call.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending AfterFunc call.
type Timer interface {
	// Stop prevents the call from happening. Returns false if the
	// timer already fired or was already stopped.
	Stop() bool
}
