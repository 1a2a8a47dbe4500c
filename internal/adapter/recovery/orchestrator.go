// Package recovery drives a complete firmware recovery: a direct attempt at the
// configured router address, then an operator-approved sweep of local addresses.
package recovery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tftp-router-flasher/internal/pkg/logging"
	"tftp-router-flasher/internal/pkg/wait"
	"tftp-router-flasher/internal/port"
	"tftp-router-flasher/internal/types"

	"github.com/sirupsen/logrus"
)

// SettleDelay is the pause after reconfiguring the interface, giving link and ARP time to come up.
const SettleDelay = 2 * time.Second

// FallbackQuestion is put to the operator before any interface is reconfigured.
const FallbackQuestion = "Try default IP configurations?"

// State is a step of the recovery state machine.
type State string

const (
	StateIdle                    State = "idle"
	StateDirectAttempt           State = "direct_attempt"
	StateAwaitingFallbackConsent State = "awaiting_fallback_consent"
	StateFallbackSweep           State = "fallback_sweep"
	StateDone                    State = "done"
)

// Orchestrator implements the RecoveryRunner port.
type Orchestrator struct {
	ifaceName    string
	probe        port.NetworkProbe
	configurator port.InterfaceConfigurator
	uploader     port.FirmwareUploader
	confirmer    port.Confirmer
	fallback     types.FallbackRange
	settleDelay  time.Duration
	state        State
}

// Ensure Orchestrator implements the RecoveryRunner port
var _ port.RecoveryRunner = (*Orchestrator)(nil)

// NewOrchestrator creates an orchestrator for one interface using the default fallback range.
func NewOrchestrator(
	ifaceName string,
	probe port.NetworkProbe,
	configurator port.InterfaceConfigurator,
	uploader port.FirmwareUploader,
	confirmer port.Confirmer,
) *Orchestrator {
	return &Orchestrator{
		ifaceName:    ifaceName,
		probe:        probe,
		configurator: configurator,
		uploader:     uploader,
		confirmer:    confirmer,
		fallback:     types.DefaultFallbackRange(),
		settleDelay:  SettleDelay,
		state:        StateIdle,
	}
}

// State returns the state the last Run ended in.
func (o *Orchestrator) State() State {
	return o.state
}

// Run performs the recovery. It returns nil once the firmware has been transferred, and
// otherwise an error wrapping one of the types sentinels.
func (o *Orchestrator) Run(ctx context.Context, req types.UploadRequest) error {
	logger := logging.WithComponentAndInterface("recovery", o.ifaceName)
	defer o.transition(logger, StateDone)

	o.transition(logger, StateDirectAttempt)
	o.logConnectionInfo(logger, req.TargetHost)

	if o.probe.IsReachable(ctx, req.TargetHost) {
		logger.WithField("host", req.TargetHost).Info("Router is reachable")
		return o.uploader.Upload(ctx, req).Err()
	}

	logger.WithField("host", req.TargetHost).Warn("Router not reachable with current config")
	if err := ctx.Err(); err != nil {
		return err
	}

	o.transition(logger, StateAwaitingFallbackConsent)
	consent, err := o.confirmer.Confirm(FallbackQuestion)
	if err != nil {
		logger.WithError(err).Error("Failed to read operator answer")
		return fmt.Errorf("%w: %w: %w", types.Unreachable(req.TargetHost).Err(), types.ErrConsentDeclined, err)
	}
	if !consent {
		logger.Info("Fallback sweep declined")
		return fmt.Errorf("%w: %w", types.Unreachable(req.TargetHost).Err(), types.ErrConsentDeclined)
	}

	o.transition(logger, StateFallbackSweep)
	return o.sweep(ctx, req, logger)
}

// sweep walks the fallback candidates in order. The router address stays fixed at the
// range gateway; only the local address changes between candidates.
func (o *Orchestrator) sweep(ctx context.Context, req types.UploadRequest, logger *logrus.Entry) error {
	gateway := o.fallback.Gateway

	for i, candidate := range o.fallback.Candidates {
		candidateLogger := logger.WithFields(logrus.Fields{
			"candidate": candidate,
			"progress":  fmt.Sprintf("%d/%d", i+1, len(o.fallback.Candidates)),
		})
		candidateLogger.Info("Trying fallback address")

		if err := o.configurator.Apply(ctx, o.ifaceName, o.fallback.Config(candidate)); err != nil {
			if errors.Is(err, types.ErrPermission) || ctx.Err() != nil {
				return err
			}
			candidateLogger.WithError(err).Warn("Candidate not usable, moving on")
			continue
		}

		if err := wait.Sleep(ctx, o.settleDelay); err != nil {
			return err
		}

		if o.probe.IsReachable(ctx, gateway) {
			candidateLogger.WithField("host", gateway).Info("Router is reachable")
			return o.uploader.Upload(ctx, req.WithTarget(gateway)).Err()
		}
	}

	logger.WithField("candidates", len(o.fallback.Candidates)).Error("No fallback address reached the router")
	return fmt.Errorf("%w: %w", types.Unreachable(gateway).Err(), types.ErrFallbackExhausted)
}

// logConnectionInfo reports the current local configuration. Lookup errors are not fatal.
func (o *Orchestrator) logConnectionInfo(logger *logrus.Entry, host string) {
	addr, err := o.probe.GetInterfaceAddress(o.ifaceName)
	if err != nil {
		logger.WithError(err).Warn("Failed to read interface address")
	}
	route, err := o.probe.GetDefaultGateway()
	if err != nil {
		logger.WithError(err).Warn("Failed to read default gateway")
	}

	logger.WithFields(logrus.Fields{
		"hostname":   host,
		"ip_address": addr.IP,
		"netmask":    addr.Netmask,
		"gateway":    route.Gateway,
	}).Info("Connection info")
}

func (o *Orchestrator) transition(logger *logrus.Entry, next State) {
	logger.WithFields(logrus.Fields{"from": o.state, "to": next}).Debug("State transition")
	o.state = next
}
