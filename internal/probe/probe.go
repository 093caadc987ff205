// Where: internal/probe/probe.go
// What: Single-attempt TCP liveness probe.
// Why: Separate the network readiness signal from the wait policy.
package probe

import (
	"context"
	"fmt"
	"net"
	"time"
)

// Prober reports whether a TCP endpoint accepts a connection in one attempt.
type Prober interface {
	Probe(ctx context.Context, host string, port int) bool
}

// TCPProber dials the endpoint with a short per-attempt timeout.
type TCPProber struct {
	Timeout time.Duration
}

func NewTCPProber() TCPProber {
	return TCPProber{Timeout: time.Second}
}

func (p TCPProber) Probe(ctx context.Context, host string, port int) bool {
	dialer := net.Dialer{Timeout: p.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, fmt.Sprintf("%d", port)))
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
