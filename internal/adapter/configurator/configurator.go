// Package configurator applies a static IPv4 address, netmask and default gateway to an interface.
package configurator

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"syscall"

	"tftp-router-flasher/internal/pkg/logging"
	"tftp-router-flasher/internal/port"
	"tftp-router-flasher/internal/types"

	"github.com/sirupsen/logrus"
	"github.com/vishvananda/netlink"
	"go.uber.org/multierr"
)

// Configurator implements the InterfaceConfigurator port with netlink through the NetworkManager port.
// Every Apply overwrites the previous IPv4 configuration of the interface.
type Configurator struct {
	networkMgr port.NetworkManager
}

// Ensure Configurator implements the InterfaceConfigurator port
var _ port.InterfaceConfigurator = (*Configurator)(nil)

// NewConfigurator creates a new interface configurator.
func NewConfigurator(networkMgr port.NetworkManager) *Configurator {
	return &Configurator{networkMgr: networkMgr}
}

// Apply is the netlink equivalent of
//
//	ip addr flush dev IFACE
//	ip addr add IP/MASK dev IFACE
//	ip link set IFACE up
//	ip route replace default via GW dev IFACE
//
// Any failure is logged and returned wrapping types.ErrConfiguration; permission
// problems additionally wrap types.ErrPermission.
func (c *Configurator) Apply(ctx context.Context, interfaceName string, config types.StaticIPConfig) error {
	logger := logging.WithComponentAndInterface("configurator", interfaceName).WithFields(logrus.Fields{
		"ip":      config.IPAddress,
		"netmask": config.Netmask,
		"gateway": config.Gateway,
	})

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := c.apply(interfaceName, config, logger); err != nil {
		logger.WithError(err).Error("Failed to configure interface")
		return err
	}

	logger.Info("Interface configured")
	return nil
}

func (c *Configurator) apply(interfaceName string, config types.StaticIPConfig, logger *logrus.Entry) error {
	ipNet, err := ParseIPNet(config.IPAddress, config.Netmask)
	if err != nil {
		return configurationError("parse address", err)
	}

	var gateway net.IP
	if config.Gateway != "" {
		gateway = net.ParseIP(config.Gateway).To4()
		if gateway == nil {
			return configurationError("parse gateway", fmt.Errorf("invalid gateway address: %s", config.Gateway))
		}
	}

	link, err := c.networkMgr.GetLinkByName(interfaceName)
	if err != nil {
		return configurationError("get link", err)
	}

	if err := c.flushAddresses(link, logger); err != nil {
		return configurationError("flush addresses", err)
	}

	addr := &netlink.Addr{IPNet: ipNet}
	if err := c.networkMgr.AddAddress(link, addr); err != nil {
		if !isExists(err) {
			return configurationError("add address", err)
		}
		logger.Debug("Address already present, ignoring error")
	}
	logger.WithField("address", ipNet.String()).Debug("Added address")

	if err := c.networkMgr.SetLinkUp(link); err != nil {
		return configurationError("set link up", err)
	}

	if gateway != nil {
		route := &netlink.Route{
			LinkIndex: link.Attrs().Index,
			Gw:        gateway,
		}
		if err := c.networkMgr.ReplaceRoute(route); err != nil {
			return configurationError("set default route", err)
		}
		logger.Debug("Default route installed")
	}

	return nil
}

// flushAddresses removes every IPv4 address from the link. An empty link is a no-op.
// Deletion keeps going after a failure so the log shows every address that could not be removed.
func (c *Configurator) flushAddresses(link netlink.Link, logger *logrus.Entry) error {
	existing, err := c.networkMgr.ListAddresses(link)
	if err != nil {
		return err
	}

	var errs error
	for _, addr := range existing {
		if err := c.networkMgr.DeleteAddress(link, &addr); err != nil {
			logger.WithError(err).WithField("address", addr.IPNet.String()).Warn("Failed to remove existing address")
			errs = multierr.Append(errs, err)
			continue
		}
		logger.WithField("address", addr.IPNet.String()).Debug("Removed existing address")
	}
	return errs
}

// ParseIPNet builds an IPv4 network from an address and a netmask given either as
// a prefix length ("24") or in dotted decimal ("255.255.255.0").
func ParseIPNet(ipAddress, netmask string) (*net.IPNet, error) {
	ip := net.ParseIP(ipAddress).To4()
	if ip == nil {
		return nil, fmt.Errorf("invalid IP address: %s", ipAddress)
	}

	var mask net.IPMask
	if ones, err := strconv.Atoi(netmask); err == nil {
		if ones < 0 || ones > 32 {
			return nil, fmt.Errorf("invalid netmask: %s", netmask)
		}
		mask = net.CIDRMask(ones, 32)
	} else {
		dotted := net.ParseIP(netmask).To4()
		if dotted == nil {
			return nil, fmt.Errorf("invalid netmask: %s", netmask)
		}
		mask = net.IPMask(dotted)
		if _, bits := mask.Size(); bits == 0 {
			return nil, fmt.Errorf("non-contiguous netmask: %s", netmask)
		}
	}

	return &net.IPNet{IP: ip, Mask: mask}, nil
}

func configurationError(step string, err error) error {
	if errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%s: %w: %w: %w", step, types.ErrConfiguration, types.ErrPermission, err)
	}
	return fmt.Errorf("%s: %w: %w", step, types.ErrConfiguration, err)
}

func isExists(err error) bool {
	return errors.Is(err, syscall.EEXIST) || strings.Contains(err.Error(), "file exists")
}
