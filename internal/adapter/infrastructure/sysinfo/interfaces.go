// Package sysinfo provides the OS interface enumeration adapter implementation.
package sysinfo

import (
	"context"
	"fmt"
	"sort"

	"tftp-router-flasher/internal/port"

	psnet "github.com/shirou/gopsutil/v3/net"
)

// Interface is a summary of one OS network interface.
type Interface struct {
	Name         string
	HardwareAddr string
	Addrs        []string
	Flags        []string
}

// InterfaceAdapter is an adapter that implements the InterfaceLister port using shirou/gopsutil.
type InterfaceAdapter struct{}

// Ensure InterfaceAdapter implements the InterfaceLister port
var _ port.InterfaceLister = (*InterfaceAdapter)(nil)

// NewInterfaceAdapter creates a new interface enumeration adapter.
func NewInterfaceAdapter() *InterfaceAdapter {
	return &InterfaceAdapter{}
}

// InterfaceNames returns the sorted names of all interfaces the OS reports.
func (a *InterfaceAdapter) InterfaceNames(ctx context.Context) ([]string, error) {
	ifaces, err := a.Interfaces(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(ifaces))
	for _, iface := range ifaces {
		names = append(names, iface.Name)
	}
	return names, nil
}

// Interfaces returns every interface with its addresses, sorted by name.
func (a *InterfaceAdapter) Interfaces(ctx context.Context) ([]Interface, error) {
	stats, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate interfaces: %w", err)
	}

	ifaces := make([]Interface, 0, len(stats))
	for _, stat := range stats {
		iface := Interface{
			Name:         stat.Name,
			HardwareAddr: stat.HardwareAddr,
			Flags:        stat.Flags,
		}
		for _, addr := range stat.Addrs {
			iface.Addrs = append(iface.Addrs, addr.Addr)
		}
		ifaces = append(ifaces, iface)
	}
	sort.Slice(ifaces, func(i, j int) bool { return ifaces[i].Name < ifaces[j].Name })
	return ifaces, nil
}
