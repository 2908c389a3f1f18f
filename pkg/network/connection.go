package network

import (
	"net"
	"strconv"
	"time"
)

// CheckHost reports whether a TCP connection to host:port succeeds within
// timeout. Used to probe upstream origins (asset CDN) for the health check.
func CheckHost(host string, port int, timeout time.Duration) bool {
	if host == "" {
		return false
	}

	address := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return false
	}
	defer conn.Close()

	return true
}
