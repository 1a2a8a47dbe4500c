// Package probe inspects local IPv4 state and checks whether hosts answer ICMP echo.
package probe

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"tftp-router-flasher/internal/pkg/logging"
	"tftp-router-flasher/internal/pkg/wait"
	"tftp-router-flasher/internal/port"
	"tftp-router-flasher/internal/types"
)

const (
	// Retries is the number of echo attempts before a host is declared unreachable.
	Retries = 3
	// RetryDelay is the pause between failed echo attempts.
	RetryDelay = time.Second
	// EchoTimeout bounds the wait for a single echo reply.
	EchoTimeout = time.Second
)

// Probe implements the NetworkProbe port on top of the NetworkManager and Pinger ports.
type Probe struct {
	networkMgr port.NetworkManager
	pinger     port.Pinger
	bypass     bool
	retryDelay time.Duration
}

// Ensure Probe implements the NetworkProbe port
var _ port.NetworkProbe = (*Probe)(nil)

// NewProbe creates a probe. With bypass set, IsReachable reports every host as reachable
// without sending anything, for bootloaders whose TFTP responder ignores ICMP.
func NewProbe(networkMgr port.NetworkManager, pinger port.Pinger, bypass bool) *Probe {
	return &Probe{
		networkMgr: networkMgr,
		pinger:     pinger,
		bypass:     bypass,
		retryDelay: RetryDelay,
	}
}

// GetInterfaceAddress returns the first IPv4 address of the interface and its prefix length.
func (p *Probe) GetInterfaceAddress(interfaceName string) (types.InterfaceAddress, error) {
	link, err := p.networkMgr.GetLinkByName(interfaceName)
	if err != nil {
		return types.InterfaceAddress{}, fmt.Errorf("failed to get netlink interface: %w", err)
	}

	addrs, err := p.networkMgr.ListAddresses(link)
	if err != nil {
		return types.InterfaceAddress{}, fmt.Errorf("failed to list addresses: %w", err)
	}

	for _, addr := range addrs {
		if addr.IPNet == nil || addr.IPNet.IP.To4() == nil {
			continue
		}
		ones, _ := addr.IPNet.Mask.Size()
		return types.InterfaceAddress{
			IP:      addr.IPNet.IP.String(),
			Netmask: strconv.Itoa(ones),
		}, nil
	}

	return types.InterfaceAddress{}, nil
}

// GetDefaultGateway returns the gateway of the first IPv4 default route.
func (p *Probe) GetDefaultGateway() (types.RouteInfo, error) {
	routes, err := p.networkMgr.ListDefaultRoutes()
	if err != nil {
		return types.RouteInfo{}, fmt.Errorf("failed to list routes: %w", err)
	}

	for _, route := range routes {
		if route.Gw != nil {
			return types.RouteInfo{Gateway: route.Gw.String()}, nil
		}
	}

	return types.RouteInfo{}, nil
}

// IsReachable sends up to Retries echo requests to ip and returns true on the first reply.
func (p *Probe) IsReachable(ctx context.Context, ip string) bool {
	logger := logging.WithComponentAndHost("probe", ip)

	if p.bypass {
		logger.Debug("Reachability probing disabled, assuming host is up")
		return true
	}

	for attempt := 1; attempt <= Retries; attempt++ {
		logger.WithField("attempt", fmt.Sprintf("%d/%d", attempt, Retries)).Info("Pinging host")

		ok, err := p.pinger.Ping(ctx, ip, EchoTimeout)
		if err != nil {
			logger.WithError(err).WithField("attempt", attempt).Warn("Ping failed")
		}
		if ok {
			return true
		}

		if attempt < Retries {
			if err := wait.Sleep(ctx, p.retryDelay); err != nil {
				logger.WithError(err).Debug("Probe cancelled")
				return false
			}
		}
	}

	logger.Debug("Host did not answer")
	return false
}
