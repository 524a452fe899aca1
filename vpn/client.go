// Package vpn drives the external Mullvad daemon through its command
// line client. This file contains the exec-backed runner and the typed
// command surface the rest of the application uses.
package vpn

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/yllada/relay-cycler/common"
)

// ExecRunner runs the VPN client binary via os/exec.
type ExecRunner struct {
	// Binary is the client executable, normally common.DaemonBinary.
	Binary string
}

// NewExecRunner returns a runner for the default VPN client binary.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Binary: common.DaemonBinary}
}

// Run executes the VPN client with the given arguments and returns its
// combined output. A non-zero exit status is an error; the trailing
// output is attached for diagnostics.
func (r *ExecRunner) Run(args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), common.CommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.Binary, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(out))
		if detail != "" {
			return "", fmt.Errorf("%s %s: %w: %s", r.Binary, strings.Join(args, " "), err, detail)
		}
		return "", fmt.Errorf("%s %s: %w", r.Binary, strings.Join(args, " "), err)
	}
	return string(out), nil
}

// Client is the typed interface to the VPN daemon. Queries are
// read-only; the mutating commands are fire-and-forget, with success
// indicated by exit status only.
type Client struct {
	runner common.CommandRunner
}

// NewClient creates a daemon client on top of the given runner.
func NewClient(runner common.CommandRunner) *Client {
	return &Client{runner: runner}
}

// Installed reports whether the VPN client binary is available.
func Installed() bool {
	_, err := exec.LookPath(common.DaemonBinary)
	return err == nil
}

// RelayList fetches the raw relay catalog text.
func (c *Client) RelayList() (string, error) {
	out, err := c.runner.Run("relay", "list")
	if err != nil {
		return "", common.WrapError(common.ErrDaemonUnavailable, err.Error())
	}
	return out, nil
}

// Status queries the daemon and parses its connection state.
// This call never mutates daemon state.
func (c *Client) Status() (ConnectionStatus, error) {
	out, err := c.runner.Run("status")
	if err != nil {
		return ConnectionStatus{}, common.WrapError(common.ErrDaemonUnavailable, err.Error())
	}
	return ParseStatus(out), nil
}

// SetLocation points the daemon's relay constraint at a country+city.
func (c *Client) SetLocation(country, city string) error {
	if _, err := c.runner.Run("relay", "set", "location", country, city); err != nil {
		return common.WrapError(common.ErrCommandFailed, err.Error())
	}
	return nil
}

// Connect asks the daemon to establish a tunnel.
func (c *Client) Connect() error {
	if _, err := c.runner.Run("connect"); err != nil {
		return common.WrapError(common.ErrCommandFailed, err.Error())
	}
	return nil
}

// Reconnect asks the daemon to tear down and re-establish the tunnel,
// picking up a changed relay constraint.
func (c *Client) Reconnect() error {
	if _, err := c.runner.Run("reconnect"); err != nil {
		return common.WrapError(common.ErrCommandFailed, err.Error())
	}
	return nil
}

// Disconnect asks the daemon to tear down the tunnel.
func (c *Client) Disconnect() error {
	if _, err := c.runner.Run("disconnect"); err != nil {
		return common.WrapError(common.ErrCommandFailed, err.Error())
	}
	return nil
}
