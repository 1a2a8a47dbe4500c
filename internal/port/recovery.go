// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

//go:generate mockgen -source=recovery.go -destination=../mock/mock_recovery.go -package=mock

import (
	"context"

	"tftp-router-flasher/internal/types"
)

// NetworkProbe inspects local network state and checks whether hosts answer.
type NetworkProbe interface {
	// GetInterfaceAddress returns the IPv4 address of the interface, empty if none
	GetInterfaceAddress(interfaceName string) (types.InterfaceAddress, error)

	// GetDefaultGateway returns the default gateway, empty if none
	GetDefaultGateway() (types.RouteInfo, error)

	// IsReachable reports whether ip answers within the fixed retry budget
	IsReachable(ctx context.Context, ip string) bool
}

// InterfaceConfigurator applies an address triple to a network interface.
type InterfaceConfigurator interface {
	// Apply flushes the interface, assigns the address, brings it up and sets the default route
	Apply(ctx context.Context, interfaceName string, config types.StaticIPConfig) error
}

// FirmwareUploader pushes a firmware image to a host.
type FirmwareUploader interface {
	// Upload transfers the firmware once and reports the outcome
	Upload(ctx context.Context, req types.UploadRequest) types.AttemptResult
}

// RecoveryRunner is the primary port: it drives a complete recovery.
// It returns nil on success and an error wrapping one of the types sentinels otherwise.
type RecoveryRunner interface {
	Run(ctx context.Context, req types.UploadRequest) error
}
