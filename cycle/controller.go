// Package cycle selects the next VPN exit relay by geographic proximity
// to the home reference and drives the daemon through the switch.
package cycle

import (
	"fmt"
	"time"

	"github.com/yllada/relay-cycler/common"
	"github.com/yllada/relay-cycler/config"
	"github.com/yllada/relay-cycler/relay"
	"github.com/yllada/relay-cycler/vpn"
)

// Direction selects which neighbor in the candidate list to move to.
type Direction int

const (
	// Next moves toward the farther candidate, wrapping to the nearest.
	Next Direction = iota
	// Previous moves toward the nearer candidate, wrapping to the farthest.
	Previous
)

// ParseDirection maps the CLI argument onto a Direction. An empty
// argument defaults to Next.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "next":
		return Next, nil
	case "previous", "prev":
		return Previous, nil
	default:
		return Next, fmt.Errorf("unknown direction %q (want next or previous)", s)
	}
}

func (d Direction) String() string {
	if d == Previous {
		return "previous"
	}
	return "next"
}

// step is the index delta a direction applies to the candidate list.
func (d Direction) step() int {
	if d == Previous {
		return -1
	}
	return 1
}

// Daemon is the slice of the VPN client the controller drives.
// *vpn.Client satisfies it; tests substitute fakes.
type Daemon interface {
	Status() (vpn.ConnectionStatus, error)
	RelayList() (string, error)
	SetLocation(country, city string) error
	Connect() error
	Reconnect() error
}

// Result describes a completed relay switch.
type Result struct {
	// From is the previous relay identifier, empty when the daemon was
	// disconnected before the switch.
	From string
	// To is the relay now targeted.
	To string
	// Position is the 1-based rank of To in the candidate list.
	Position int
	// Total is the candidate list size.
	Total int
}

// Message renders the outcome the way the notifier and terminal show it.
func (r Result) Message() string {
	if r.From == "" {
		return fmt.Sprintf("%s [%d/%d]", r.To, r.Position, r.Total)
	}
	return fmt.Sprintf("%s -> %s [%d/%d]", r.From, r.To, r.Position, r.Total)
}

// Controller computes the relay to switch to and issues the switch.
// All state is derived fresh per Run: ranked candidates from the
// catalog, the current position from the daemon's status. Nothing is
// persisted between invocations.
type Controller struct {
	daemon   Daemon
	home     *config.HomeReference
	interval time.Duration
	timeout  time.Duration
	sleep    vpn.SleepFunc
	log      common.Logger
}

// New creates a controller over the given daemon and home reference,
// with the poll interval and connect timeout used after every
// connect/reconnect command.
func New(daemon Daemon, home *config.HomeReference, interval, timeout time.Duration) *Controller {
	return &Controller{
		daemon:   daemon,
		home:     home,
		interval: interval,
		timeout:  timeout,
		sleep:    time.Sleep,
		log:      common.GetLogger(),
	}
}

// Candidates resolves the active country and returns its ranked
// candidate list along with the current relay identifier ("" when
// disconnected). Read-only: no daemon mutation happens here.
func (c *Controller) Candidates() ([]relay.Ranked, vpn.ConnectionStatus, error) {
	status, err := c.daemon.Status()
	if err != nil {
		return nil, vpn.ConnectionStatus{}, err
	}

	country := c.home.CountryCode
	if status.Connected && status.Country != "" {
		country = status.Country
	}

	catalog, err := c.daemon.RelayList()
	if err != nil {
		return nil, status, err
	}

	records := relay.ParseCatalog(catalog, country)
	ranked := relay.Rank(c.home.Latitude, c.home.Longitude, records)
	if len(ranked) == 0 {
		return nil, status, common.WrapError(common.ErrNoCandidateRelays, country)
	}

	c.log.Debug("%d candidate relays for %s", len(ranked), country)
	return ranked, status, nil
}

// Run performs one cycle invocation: it resolves the candidate list,
// picks the target relay, issues the switch, and waits for the daemon
// to report connected. Disconnected daemons are pointed at the nearest
// candidate and connected; connected ones move one step in the given
// direction with wraparound.
func (c *Controller) Run(dir Direction) (Result, error) {
	ranked, status, err := c.Candidates()
	if err != nil {
		return Result{}, err
	}
	total := len(ranked)

	if !status.Connected {
		target := ranked[0]
		c.log.Info("disconnected, connecting to nearest relay %s", target.Ident())

		if err := c.switchTo(target, false); err != nil {
			return Result{}, err
		}
		return Result{To: target.Ident(), Position: 1, Total: total}, nil
	}

	current := relay.LocateIndex(ranked, status.Country, status.City)
	next := (current + dir.step() + total) % total
	target := ranked[next]
	c.log.Info("cycling %s: %s -> %s", dir, status.Ident(), target.Ident())

	if err := c.switchTo(target, true); err != nil {
		return Result{}, err
	}
	return Result{
		From:     status.Ident(),
		To:       target.Ident(),
		Position: next + 1,
		Total:    total,
	}, nil
}

// switchTo points the daemon at the target relay, triggers the tunnel,
// and blocks until the daemon reports connected or the poll budget runs
// out. Command failures are fatal immediately; only the wait polls.
func (c *Controller) switchTo(target relay.Ranked, reconnect bool) error {
	if err := c.daemon.SetLocation(target.Country, target.City); err != nil {
		return err
	}

	if reconnect {
		if err := c.daemon.Reconnect(); err != nil {
			return err
		}
	} else {
		if err := c.daemon.Connect(); err != nil {
			return err
		}
	}

	return vpn.WaitUntilConnected(func() (bool, error) {
		st, err := c.daemon.Status()
		if err != nil {
			return false, err
		}
		return st.Connected, nil
	}, c.interval, c.timeout, c.sleep)
}
