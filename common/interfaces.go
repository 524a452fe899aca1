// Package common provides shared constants, types, and utilities
// used across Relay Cycler.
package common

// CommandRunner executes one invocation of the external VPN client and
// returns its combined output. Implementations wrap os/exec in
// production and canned transcripts in tests.
type CommandRunner interface {
	// Run executes the VPN client with the given arguments.
	Run(args ...string) (string, error)
}

// Notifier defines the interface for sending desktop notifications.
type Notifier interface {
	// Notify sends a notification with the given title and message.
	Notify(title, message string) error
	// NotifyWithIcon sends a notification with a custom icon.
	NotifyWithIcon(title, message, icon string) error
}

// Logger defines the interface for structured logging.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...interface{})
	// Info logs an informational message.
	Info(msg string, args ...interface{})
	// Warn logs a warning message.
	Warn(msg string, args ...interface{})
	// Error logs an error message.
	Error(msg string, args ...interface{})
}
