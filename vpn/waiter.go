// Package vpn drives the external Mullvad daemon through its command
// line client. This file contains the connection waiter.
package vpn

import (
	"time"

	"github.com/yllada/relay-cycler/common"
)

// StatusFunc reports whether the daemon is currently connected.
type StatusFunc func() (bool, error)

// SleepFunc suspends the caller for the given duration. Injected so the
// poll loop is testable without real sleeping.
type SleepFunc func(time.Duration)

// WaitUntilConnected polls the status capability until it reports
// connected or the attempt budget (timeout divided by interval) is
// exhausted. The first check happens immediately. A failed status query
// aborts the wait; an exhausted budget is common.ErrConnectionTimeout.
// The caller does not get retried on its behalf beyond this loop.
func WaitUntilConnected(status StatusFunc, interval, timeout time.Duration, sleep SleepFunc) error {
	if sleep == nil {
		sleep = time.Sleep
	}

	attempts := int(timeout / interval)
	if attempts < 1 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		connected, err := status()
		if err != nil {
			return err
		}
		if connected {
			return nil
		}
		sleep(interval)
	}

	return common.ErrConnectionTimeout
}
