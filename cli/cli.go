// Package cli provides the terminal interface for Relay Cycler.
// It wires the cycle controller to the daemon client, renders results,
// and forwards outcomes to the desktop notifier when configured.
package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/yllada/relay-cycler/common"
	"github.com/yllada/relay-cycler/config"
	"github.com/yllada/relay-cycler/cycle"
	"github.com/yllada/relay-cycler/lockfile"
	"github.com/yllada/relay-cycler/notify"
	"github.com/yllada/relay-cycler/vpn"
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// CLI represents the command-line interface.
type CLI struct {
	client     *vpn.Client
	controller *cycle.Controller
	cfg        *config.Config
	notifier   *notify.Notifier
}

// New creates a CLI instance. It loads the home reference record and
// fails with common.ErrMissingHomeReference when the setup flow has not
// produced one yet.
func New(cfg *config.Config) (*CLI, error) {
	home, err := config.LoadHome()
	if err != nil {
		return nil, err
	}

	client := vpn.NewClient(vpn.NewExecRunner())
	return &CLI{
		client:     client,
		controller: cycle.New(client, home, cfg.PollInterval(), cfg.ConnectTimeout()),
		cfg:        cfg,
		notifier:   notify.New(),
	}, nil
}

// Cycle switches to the next or previous relay in geographic order.
// noLock skips the advisory lock for compatibility with callers that
// manage their own serialization.
func (c *CLI) Cycle(dirArg string, noLock bool) error {
	dir, err := cycle.ParseDirection(dirArg)
	if err != nil {
		return err
	}

	// Fail before any daemon mutation when the machine is offline.
	if err := vpn.CheckConnectivity(c.cfg.PreflightHosts, common.PreflightTimeout); err != nil {
		return err
	}

	if c.cfg.UseLock && !noLock {
		lock, err := lockfile.Acquire()
		if err != nil {
			return err
		}
		defer lock.Release()
	}

	result, err := c.controller.Run(dir)
	if err != nil {
		c.notifyError(err)
		return err
	}

	line := fmt.Sprintf("✓ %s", result.Message())
	if isTerminal() {
		line = okStyle.Render(line)
	}
	fmt.Println(line)
	if c.cfg.ShowNotifications {
		title := "VPN Connected"
		if result.From != "" {
			title = "VPN Relay Switched"
		}
		if err := c.notifier.Notify(title, result.Message()); err != nil {
			common.LogWarn("notification failed: %v", err)
		}
	}
	return nil
}

// List prints the distance-ranked candidate list for the active
// country, marking the currently connected relay. Read-only.
func (c *CLI) List() error {
	ranked, status, err := c.controller.Candidates()
	if err != nil {
		return err
	}

	// Styling goes around the table, not inside it: escape sequences
	// would throw off tabwriter's column widths.
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  #\tRELAY\tDISTANCE")
	fmt.Fprintln(w, "  -\t-----\t--------")

	for i, cand := range ranked {
		marker := " "
		if status.Connected && cand.Ident() == status.Ident() {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %d\t%s\t%.1f km\n", marker, i+1, cand.Ident(), cand.DistanceKm)
	}

	return w.Flush()
}

// Status prints the daemon's current connection state.
func (c *CLI) Status() error {
	status, err := c.client.Status()
	if err != nil {
		return err
	}

	if !status.Connected {
		msg := "Disconnected"
		if isTerminal() {
			msg = dimStyle.Render(msg)
		}
		fmt.Println(msg)
		return nil
	}

	ident := status.Ident()
	if ident == "" {
		ident = "unknown relay"
	}
	msg := fmt.Sprintf("Connected to %s", ident)
	if isTerminal() {
		msg = activeStyle.Render(msg)
	}
	fmt.Println(msg)
	return nil
}

// Disconnect tears down the tunnel.
func (c *CLI) Disconnect() error {
	if err := c.client.Disconnect(); err != nil {
		return err
	}

	fmt.Println("✓ Disconnected")
	if c.cfg.ShowNotifications {
		if err := c.notifier.NotifyWithIcon("VPN Disconnected", "Tunnel closed", "network-vpn-disconnected"); err != nil {
			common.LogWarn("notification failed: %v", err)
		}
	}
	return nil
}

func (c *CLI) notifyError(err error) {
	if !c.cfg.ShowNotifications {
		return
	}
	if nerr := c.notifier.NotifyError("VPN Error", err.Error()); nerr != nil {
		common.LogWarn("notification failed: %v", nerr)
	}
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// PrintHelp prints CLI usage help.
func PrintHelp() {
	fmt.Println(`Relay Cycler - cycle the VPN exit relay by distance from home

Usage:
  relay-cycler [OPTIONS] [next|previous]

Arguments:
  next              Switch to the next-farther relay (default)
  previous          Switch to the next-nearer relay

Options:
  --list            Show the ranked relay list for the active country
  --status          Show current connection status
  --disconnect      Disconnect the VPN
  --no-lock         Skip the advisory invocation lock
  --verbose         Enable verbose logging
  --version         Show version and exit
  --help            Show this help message

Examples:
  relay-cycler
  relay-cycler previous
  relay-cycler --list

Notes:
  - Requires the Mullvad VPN client to be installed
  - The home reference record must exist (created by the setup flow)`)
}
