// Package hostcheck implements the "running locally" predicate that gates
// the one-time repository bootstrap. Creating and deleting the user table is
// an operator action performed from the machine the service runs on, never
// over the network in production.
package hostcheck

import "net"

// IsLocalRequest reports whether remoteAddr (as found in http.Request
// RemoteAddr, typically "host:port") resolves to a loopback address.
func IsLocalRequest(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		// RemoteAddr without a port, e.g. in tests.
		host = remoteAddr
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}

	return ip.IsLoopback()
}
