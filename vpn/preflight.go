// Package vpn drives the external Mullvad daemon through its command
// line client. This file contains the pre-flight reachability check.
package vpn

import (
	"net"
	"time"

	"github.com/yllada/relay-cycler/common"
)

// CheckConnectivity dials the given hosts until one answers. It runs
// before the daemon is told to move so an offline machine fails with a
// clear error instead of a connect timeout. All hosts unreachable means
// common.ErrNoConnectivity.
func CheckConnectivity(hosts []string, timeout time.Duration) error {
	for _, host := range hosts {
		conn, err := net.DialTimeout("tcp", host, timeout)
		if err == nil {
			conn.Close()
			return nil
		}
		common.LogDebug("preflight dial %s failed: %v", host, err)
	}
	return common.ErrNoConnectivity
}
