// Package network reads and changes the IPv4 state of a link through rtnetlink.
package network

import (
	"fmt"

	"tftp-router-flasher/internal/port"

	"github.com/vishvananda/netlink"
)

// LinkManager implements the NetworkManager port on top of vishvananda/netlink.
type LinkManager struct{}

var _ port.NetworkManager = (*LinkManager)(nil)

func NewLinkManager() *LinkManager {
	return &LinkManager{}
}

func (m *LinkManager) GetLinkByName(name string) (netlink.Link, error) {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to get netlink interface %s: %w", name, err)
	}
	return link, nil
}

// ListAddresses returns the IPv4 addresses assigned to link, primary first.
func (m *LinkManager) ListAddresses(link netlink.Link) ([]netlink.Addr, error) {
	addrs, err := netlink.AddrList(link, netlink.FAMILY_V4)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses on %s: %w", link.Attrs().Name, err)
	}
	return addrs, nil
}

func (m *LinkManager) AddAddress(link netlink.Link, addr *netlink.Addr) error {
	if err := netlink.AddrAdd(link, addr); err != nil {
		return fmt.Errorf("failed to assign %s to %s: %w", addr.IPNet, link.Attrs().Name, err)
	}
	return nil
}

func (m *LinkManager) DeleteAddress(link netlink.Link, addr *netlink.Addr) error {
	if err := netlink.AddrDel(link, addr); err != nil {
		return fmt.Errorf("failed to remove %s from %s: %w", addr.IPNet, link.Attrs().Name, err)
	}
	return nil
}

// ListDefaultRoutes returns the IPv4 default routes of the main table.
func (m *LinkManager) ListDefaultRoutes() ([]netlink.Route, error) {
	routes, err := netlink.RouteList(nil, netlink.FAMILY_V4)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}

	defaults := make([]netlink.Route, 0, 1)
	for _, route := range routes {
		if isDefaultRoute(route) {
			defaults = append(defaults, route)
		}
	}
	return defaults, nil
}

// ReplaceRoute installs route, overwriting any route to the same destination.
func (m *LinkManager) ReplaceRoute(route *netlink.Route) error {
	if err := netlink.RouteReplace(route); err != nil {
		return fmt.Errorf("failed to install route via %s: %w", route.Gw, err)
	}
	return nil
}

func (m *LinkManager) SetLinkUp(link netlink.Link) error {
	if err := netlink.LinkSetUp(link); err != nil {
		return fmt.Errorf("failed to bring %s up: %w", link.Attrs().Name, err)
	}
	return nil
}

// Newer kernels report 0.0.0.0/0 instead of a nil destination.
func isDefaultRoute(route netlink.Route) bool {
	if route.Dst == nil {
		return true
	}
	ones, _ := route.Dst.Mask.Size()
	return ones == 0 && route.Dst.IP.IsUnspecified()
}
