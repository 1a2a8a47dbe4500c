// Package types defines common types used across the application.
package types

import (
	"fmt"
	"time"
)

// InterfaceAddress is a snapshot of the IPv4 configuration of an interface.
// Both fields are empty when the interface has no IPv4 address.
type InterfaceAddress struct {
	IP      string // e.g. "192.168.1.10"
	Netmask string // prefix length as reported by the OS, e.g. "24"
}

// RouteInfo is a snapshot of the default route. Gateway is empty when no default route exists.
type RouteInfo struct {
	Gateway string
}

// StaticIPConfig is the address triple applied to an interface.
type StaticIPConfig struct {
	IPAddress string `yaml:"ip"`      // IP address in dotted decimal notation (e.g., "192.168.1.2")
	Netmask   string `yaml:"netmask"` // Prefix length ("24") or dotted decimal ("255.255.255.0")
	Gateway   string `yaml:"gateway"` // Default gateway IP address (optional)
}

// UploadRequest describes one firmware upload attempt.
type UploadRequest struct {
	TargetHost     string
	FirmwarePath   string
	TimeoutSeconds int
}

// Timeout returns the transfer timeout as a duration.
func (r UploadRequest) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// WithTarget returns a copy of the request aimed at another host.
func (r UploadRequest) WithTarget(host string) UploadRequest {
	r.TargetHost = host
	return r
}

// FallbackRange is the ordered set of local addresses tried during a fallback sweep.
// Every candidate shares the same netmask and expects the router at Gateway.
type FallbackRange struct {
	Candidates []string
	Netmask    string
	Gateway    string
}

// DefaultFallbackRange returns 192.168.1.2 through 192.168.1.25 on a /24 with the router at 192.168.1.1.
func DefaultFallbackRange() FallbackRange {
	candidates := make([]string, 0, 24)
	for i := 2; i <= 25; i++ {
		candidates = append(candidates, fmt.Sprintf("192.168.1.%d", i))
	}
	return FallbackRange{
		Candidates: candidates,
		Netmask:    "24",
		Gateway:    "192.168.1.1",
	}
}

// Config returns the interface configuration for a single candidate.
func (f FallbackRange) Config(candidate string) StaticIPConfig {
	return StaticIPConfig{
		IPAddress: candidate,
		Netmask:   f.Netmask,
		Gateway:   f.Gateway,
	}
}
