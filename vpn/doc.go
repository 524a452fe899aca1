// Package vpn provides the interface to the external Mullvad daemon.
//
// The package is organized around three pieces:
//
//   - Client: the typed command surface (status, relay list, relay set
//     location, connect, reconnect, disconnect) on top of a
//     common.CommandRunner, which hides os/exec from tests
//   - ParseStatus: extraction of the connection state and active relay
//     identifier from the daemon's status text
//   - WaitUntilConnected: the bounded poll loop used after every
//     connect/reconnect command
//
// # Daemon contract
//
// All interaction goes through the `mullvad` command line client as a
// synchronous request/response exchange. Queries (status, relay list)
// are read-only. Mutations (relay set location, connect, reconnect,
// disconnect) signal success through their exit status only; whether
// the tunnel actually came up is observed by polling status afterwards.
//
// There is no partial-result semantics anywhere: each call either
// succeeds or fails as a whole, and nothing is cached between calls.
package vpn
