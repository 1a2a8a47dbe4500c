//go:build unit

package network

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vishvananda/netlink"
)

func TestNewLinkManager(t *testing.T) {
	manager := NewLinkManager()
	assert.NotNil(t, manager)
}

func TestLinkManager_GetLinkByName(t *testing.T) {
	manager := NewLinkManager()

	t.Run("ValidInterface", func(t *testing.T) {
		link, err := manager.GetLinkByName("lo")
		if err != nil {
			t.Skip("Loopback interface not available, skipping test")
		}
		assert.NotNil(t, link)
		assert.Equal(t, "lo", link.Attrs().Name)
	})

	t.Run("InvalidInterface", func(t *testing.T) {
		_, err := manager.GetLinkByName("nonexistent0")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get netlink interface")
	})
}

func TestLinkManager_ListAddresses(t *testing.T) {
	manager := NewLinkManager()

	link, err := manager.GetLinkByName("lo")
	if err != nil {
		t.Skip("Loopback interface not available, skipping test")
	}

	addresses, err := manager.ListAddresses(link)
	assert.NoError(t, err)
	for _, addr := range addresses {
		assert.NotNil(t, addr.IPNet.IP.To4(), "only IPv4 addresses are listed")
	}
}

func TestLinkManager_ListDefaultRoutes(t *testing.T) {
	manager := NewLinkManager()

	routes, err := manager.ListDefaultRoutes()
	if err != nil {
		t.Skip("Route listing not available, skipping test")
	}
	for _, route := range routes {
		assert.True(t, isDefaultRoute(route))
	}
}

func TestIsDefaultRoute(t *testing.T) {
	_, anyNet, _ := net.ParseCIDR("0.0.0.0/0")
	_, lan, _ := net.ParseCIDR("192.168.1.0/24")

	assert.True(t, isDefaultRoute(netlink.Route{Gw: net.ParseIP("192.168.1.1")}))
	assert.True(t, isDefaultRoute(netlink.Route{Dst: anyNet, Gw: net.ParseIP("192.168.1.1")}))
	assert.False(t, isDefaultRoute(netlink.Route{Dst: lan}))
}

// AddAddress, DeleteAddress, ReplaceRoute and SetLinkUp need CAP_NET_ADMIN and
// change host state; the configurator tests cover them through the mock port.
