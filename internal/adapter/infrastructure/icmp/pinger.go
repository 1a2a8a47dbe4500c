// Package icmp provides the ICMP echo adapter implementation.
package icmp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"tftp-router-flasher/internal/pkg/logging"
	"tftp-router-flasher/internal/port"

	probing "github.com/prometheus-community/pro-bing"
)

// echoFunc sends one echo request and reports whether a reply arrived.
type echoFunc func(ctx context.Context, ip string, timeout time.Duration, privileged bool) (bool, error)

// PingerAdapter is an adapter that implements the Pinger port using prometheus-community/pro-bing.
type PingerAdapter struct {
	privileged atomic.Bool
	echo       echoFunc
}

// Ensure PingerAdapter implements the Pinger port
var _ port.Pinger = (*PingerAdapter)(nil)

// NewPingerAdapter creates a new ICMP adapter. Raw sockets are tried first except on macOS,
// which allows unprivileged datagram ICMP sockets out of the box. Without CAP_NET_RAW the
// adapter drops to datagram sockets, which Linux permits within net.ipv4.ping_group_range.
func NewPingerAdapter() *PingerAdapter {
	p := &PingerAdapter{echo: echo}
	p.privileged.Store(runtime.GOOS != "darwin")
	return p
}

// Ping sends a single echo request to ip and reports whether a reply arrived within timeout.
func (p *PingerAdapter) Ping(ctx context.Context, ip string, timeout time.Duration) (bool, error) {
	privileged := p.privileged.Load()
	ok, err := p.echo(ctx, ip, timeout, privileged)
	if err != nil && privileged && errors.Is(err, os.ErrPermission) {
		logging.WithComponentAndHost("icmp", ip).WithError(err).
			Debug("Raw ICMP socket not permitted, switching to datagram sockets")
		p.privileged.Store(false)
		ok, err = p.echo(ctx, ip, timeout, false)
	}
	if err != nil {
		return false, fmt.Errorf("ping %s failed: %w", ip, err)
	}
	return ok, nil
}

func echo(ctx context.Context, ip string, timeout time.Duration, privileged bool) (bool, error) {
	pinger, err := probing.NewPinger(ip)
	if err != nil {
		return false, fmt.Errorf("failed to create pinger for %s: %w", ip, err)
	}
	pinger.Count = 1
	pinger.Timeout = timeout
	pinger.SetPrivileged(privileged)

	if err := pinger.RunWithContext(ctx); err != nil {
		return false, err
	}
	return pinger.Statistics().PacketsRecv > 0, nil
}
