// Package common provides shared constants, types, utilities, and interfaces
// used throughout Relay Cycler.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: application-wide constants like timeouts and file names
//   - Errors: sentinel errors for consistent error handling across packages
//   - Interfaces: abstractions for daemon command execution, notifications, and logging
//   - Logger: structured logging with file rotation
//
// # Usage
//
//	// Use constants
//	timeout := common.ConnectTimeout
//
//	// Use logger
//	common.LogInfo("switching relay to %s", relay)
//
//	// Check errors
//	if errors.Is(err, common.ErrNoCandidateRelays) {
//	    // Handle empty candidate list
//	}
package common
