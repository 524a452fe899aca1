// Package common provides shared constants, types, and utilities
// used across Relay Cycler.
package common

import "time"

// Application metadata.
const (
	// AppName is the display name of the application.
	AppName = "Relay Cycler"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "relay-cycler"
	// DaemonBinary is the VPN client executable driven by this tool.
	DaemonBinary = "mullvad"
)

// File names used by the application.
const (
	ConfigFileName = "config.yaml"
	HomeFileName   = "home.yaml"
	LogFileName    = "relay-cycler.log"
	LockFileName   = "relay-cycler.lock"
)

// Default timeouts and intervals.
const (
	// ConnectTimeout is the maximum time to wait for the daemon to
	// report a connected state after issuing connect/reconnect.
	ConnectTimeout = 15 * time.Second
	// PollInterval is the delay between daemon status polls while
	// waiting for a connection to establish.
	PollInterval = 500 * time.Millisecond
	// PreflightTimeout is the per-host dial timeout of the network
	// reachability check performed before any daemon mutation.
	PreflightTimeout = 5 * time.Second
	// CommandTimeout bounds a single daemon CLI invocation.
	CommandTimeout = 10 * time.Second
)
