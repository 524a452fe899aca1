// Package common provides shared constants, types, and utilities
// used across Relay Cycler.
package common

import "errors"

// Sentinel errors for relay cycling operations.
// These can be checked with errors.Is() for proper error handling.
// Every one of them is fatal for the current invocation; none is
// retried internally.
var (
	// ErrDaemonUnavailable indicates the VPN daemon could not be
	// reached for a status or relay-list query.
	ErrDaemonUnavailable = errors.New("VPN daemon unavailable")
	// ErrNoConnectivity indicates the pre-flight network reachability
	// check failed.
	ErrNoConnectivity = errors.New("no network connectivity")
	// ErrMissingHomeReference indicates no usable home location record
	// was found. This is a signal to run the external setup flow, not
	// something this tool can recover from.
	ErrMissingHomeReference = errors.New("home reference not found")
	// ErrNoCandidateRelays indicates the ranked candidate list for the
	// resolved country is empty.
	ErrNoCandidateRelays = errors.New("no relays for country")
	// ErrCommandFailed indicates a relay-set, connect or reconnect
	// command was rejected by the daemon.
	ErrCommandFailed = errors.New("daemon command failed")
	// ErrConnectionTimeout indicates the daemon never reported a
	// connected state within the polling budget.
	ErrConnectionTimeout = errors.New("connection timed out")

	// ErrLockHeld indicates another invocation currently holds the
	// advisory lock.
	ErrLockHeld = errors.New("another invocation is in progress")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
