// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

//go:generate mockgen -source=infrastructure.go -destination=../mock/mock_infrastructure.go -package=mock

import (
	"context"
	"io"
	"time"

	"github.com/vishvananda/netlink"
)

// NetworkManager is a port for network interface operations.
// This interface abstracts netlink operations for network configuration.
type NetworkManager interface {
	// GetLinkByName returns a network link by interface name
	GetLinkByName(interfaceName string) (netlink.Link, error)

	// ListAddresses returns IPv4 addresses configured on the link
	ListAddresses(link netlink.Link) ([]netlink.Addr, error)

	// AddAddress adds an IP address to the interface
	AddAddress(link netlink.Link, addr *netlink.Addr) error

	// DeleteAddress removes an IP address from the interface
	DeleteAddress(link netlink.Link, addr *netlink.Addr) error

	// ListDefaultRoutes returns the IPv4 default routes
	ListDefaultRoutes() ([]netlink.Route, error)

	// ReplaceRoute installs a route, replacing any route with the same destination
	ReplaceRoute(route *netlink.Route) error

	// SetLinkUp brings the interface up
	SetLinkUp(link netlink.Link) error
}

// Pinger is a port for ICMP echo.
type Pinger interface {
	// Ping sends a single echo request and reports whether a reply arrived within timeout
	Ping(ctx context.Context, ip string, timeout time.Duration) (bool, error)
}

// TFTPClient is a port for TFTP write requests.
type TFTPClient interface {
	// Send writes src to host as remoteName in octet mode. The context deadline bounds the transfer.
	Send(ctx context.Context, host, remoteName string, src io.Reader) error
}

// FileManager is a port for file system operations.
// This interface abstracts file read operations.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// IsRegularFile checks that a path exists and is a regular file
	IsRegularFile(filename string) bool
}

// InterfaceLister is a port for OS interface enumeration.
type InterfaceLister interface {
	// InterfaceNames returns the names of all interfaces the OS reports
	InterfaceNames(ctx context.Context) ([]string, error)
}

// Confirmer is a port for interactive yes/no questions.
type Confirmer interface {
	// Confirm asks the operator a question and reports an affirmative answer
	Confirm(question string) (bool, error)
}
