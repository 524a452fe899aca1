// Package vpn drives the external Mullvad daemon through its command
// line client. This file parses the daemon's status output.
package vpn

import "strings"

// connectedToken is the first-line prefix the daemon prints when a
// tunnel is up. Any other first line counts as disconnected.
const connectedToken = "Connected"

// ConnectionStatus is one fresh read of the daemon's state. It is never
// cached across polls.
type ConnectionStatus struct {
	// Connected reports whether a tunnel is established.
	Connected bool
	// Country and City are the lowercase codes of the active relay,
	// empty when disconnected or when the relay line is missing.
	Country string
	City    string
}

// Ident returns the country-city identifier of the active relay, or ""
// when unknown.
func (s ConnectionStatus) Ident() string {
	if s.Country == "" || s.City == "" {
		return ""
	}
	return s.Country + "-" + s.City
}

// ParseStatus extracts the connection state from the daemon's status
// output. The first line decides connectedness; the active relay is
// taken from the relay-description line, whose identifier joins country
// and city as a hyphenated prefix ("de-ber-wg-001"). The server suffix
// is ignored.
func ParseStatus(out string) ConnectionStatus {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) == 0 {
		return ConnectionStatus{}
	}

	status := ConnectionStatus{
		Connected: strings.HasPrefix(strings.TrimSpace(lines[0]), connectedToken),
	}
	if !status.Connected {
		return status
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Relay:") {
			continue
		}
		ident := strings.TrimSpace(strings.TrimPrefix(line, "Relay:"))
		status.Country, status.City = splitRelayIdent(ident)
		break
	}

	return status
}

// splitRelayIdent takes the first two hyphen-delimited tokens of a
// relay identifier. Identifiers with fewer tokens yield empty codes.
func splitRelayIdent(ident string) (country, city string) {
	parts := strings.SplitN(ident, "-", 3)
	if len(parts) < 2 {
		return "", ""
	}
	return strings.ToLower(parts[0]), strings.ToLower(parts[1])
}
