//go:build unit

package recovery

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tftp-router-flasher/internal/mock"
	"tftp-router-flasher/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	orchestrator *Orchestrator
	probe        *mock.MockNetworkProbe
	configurator *mock.MockInterfaceConfigurator
	uploader     *mock.MockFirmwareUploader
	confirmer    *mock.MockConfirmer
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		probe:        mock.NewMockNetworkProbe(ctrl),
		configurator: mock.NewMockInterfaceConfigurator(ctrl),
		uploader:     mock.NewMockFirmwareUploader(ctrl),
		confirmer:    mock.NewMockConfirmer(ctrl),
	}
	f.orchestrator = NewOrchestrator("eth0", f.probe, f.configurator, f.uploader, f.confirmer)
	f.orchestrator.settleDelay = 0

	// Connection info is diagnostic only.
	f.probe.EXPECT().GetInterfaceAddress("eth0").Return(types.InterfaceAddress{IP: "10.0.0.7", Netmask: "24"}, nil).AnyTimes()
	f.probe.EXPECT().GetDefaultGateway().Return(types.RouteInfo{Gateway: "10.0.0.1"}, nil).AnyTimes()
	return f
}

var request = types.UploadRequest{
	TargetHost:     "192.168.50.1",
	FirmwarePath:   "/firmware.bin",
	TimeoutSeconds: 120,
}

func TestNewOrchestrator(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, StateIdle, f.orchestrator.State())
	assert.Equal(t, SettleDelay, NewOrchestrator("eth0", nil, nil, nil, nil).settleDelay)
	assert.Len(t, f.orchestrator.fallback.Candidates, 24)
}

func TestOrchestrator_DirectAttempt(t *testing.T) {
	ctx := context.Background()

	t.Run("ReachableUploadsOnceToOriginalHost", func(t *testing.T) {
		f := newFixture(t)

		f.probe.EXPECT().IsReachable(gomock.Any(), "192.168.50.1").Return(true)
		f.uploader.EXPECT().Upload(gomock.Any(), request).Return(types.Succeeded("192.168.50.1")).Times(1)
		f.confirmer.EXPECT().Confirm(gomock.Any()).Times(0)
		f.configurator.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		require.NoError(t, f.orchestrator.Run(ctx, request))
		assert.Equal(t, StateDone, f.orchestrator.State())
	})

	t.Run("ReachableUploadFailsWithoutFallback", func(t *testing.T) {
		f := newFixture(t)

		f.probe.EXPECT().IsReachable(gomock.Any(), "192.168.50.1").Return(true)
		f.uploader.EXPECT().Upload(gomock.Any(), request).
			Return(types.UploadFailed("192.168.50.1", errors.New("timeout waiting for ACK"))).Times(1)
		f.confirmer.EXPECT().Confirm(gomock.Any()).Times(0)
		f.configurator.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := f.orchestrator.Run(ctx, request)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrTransport)
		assert.Contains(t, err.Error(), "timeout waiting for ACK")
	})

	t.Run("DiagnosticLookupFailuresAreNotFatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		probe := mock.NewMockNetworkProbe(ctrl)
		uploader := mock.NewMockFirmwareUploader(ctrl)
		o := NewOrchestrator("eth0", probe, mock.NewMockInterfaceConfigurator(ctrl), uploader, mock.NewMockConfirmer(ctrl))

		probe.EXPECT().GetInterfaceAddress("eth0").Return(types.InterfaceAddress{}, errors.New("Link not found"))
		probe.EXPECT().GetDefaultGateway().Return(types.RouteInfo{}, errors.New("netlink unavailable"))
		probe.EXPECT().IsReachable(gomock.Any(), "192.168.50.1").Return(true)
		uploader.EXPECT().Upload(gomock.Any(), request).Return(types.Succeeded("192.168.50.1"))

		require.NoError(t, o.Run(ctx, request))
	})
}

func TestOrchestrator_Consent(t *testing.T) {
	ctx := context.Background()

	t.Run("DeclinedNeverConfigures", func(t *testing.T) {
		f := newFixture(t)

		f.probe.EXPECT().IsReachable(gomock.Any(), "192.168.50.1").Return(false)
		f.confirmer.EXPECT().Confirm(FallbackQuestion).Return(false, nil)
		f.configurator.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.uploader.EXPECT().Upload(gomock.Any(), gomock.Any()).Times(0)

		err := f.orchestrator.Run(ctx, request)
		assert.ErrorIs(t, err, types.ErrConsentDeclined)
		assert.ErrorIs(t, err, types.ErrUnreachable)
		assert.Contains(t, err.Error(), "192.168.50.1")
	})

	t.Run("PromptErrorCountsAsDeclined", func(t *testing.T) {
		f := newFixture(t)

		f.probe.EXPECT().IsReachable(gomock.Any(), "192.168.50.1").Return(false)
		f.confirmer.EXPECT().Confirm(FallbackQuestion).Return(false, errors.New("stdin closed"))
		f.configurator.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := f.orchestrator.Run(ctx, request)
		assert.ErrorIs(t, err, types.ErrConsentDeclined)
		assert.ErrorIs(t, err, types.ErrUnreachable)
		assert.Contains(t, err.Error(), "stdin closed")
	})
}

func TestOrchestrator_FallbackSweep(t *testing.T) {
	ctx := context.Background()
	fallback := types.DefaultFallbackRange()

	t.Run("ExhaustedAfterEveryCandidate", func(t *testing.T) {
		f := newFixture(t)

		f.probe.EXPECT().IsReachable(gomock.Any(), "192.168.50.1").Return(false)
		f.confirmer.EXPECT().Confirm(FallbackQuestion).Return(true, nil)

		var applied []string
		f.configurator.EXPECT().Apply(gomock.Any(), "eth0", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, cfg types.StaticIPConfig) error {
				assert.Equal(t, "24", cfg.Netmask)
				assert.Equal(t, "192.168.1.1", cfg.Gateway)
				applied = append(applied, cfg.IPAddress)
				return nil
			}).Times(24)
		f.probe.EXPECT().IsReachable(gomock.Any(), "192.168.1.1").Return(false).Times(24)
		f.uploader.EXPECT().Upload(gomock.Any(), gomock.Any()).Times(0)

		err := f.orchestrator.Run(ctx, request)
		assert.ErrorIs(t, err, types.ErrFallbackExhausted)
		assert.ErrorIs(t, err, types.ErrUnreachable)
		assert.Contains(t, err.Error(), "192.168.1.1")
		assert.Equal(t, fallback.Candidates, applied, "candidates are tried in increasing order")
		assert.Equal(t, "192.168.1.2", applied[0])
		assert.Equal(t, "192.168.1.25", applied[23])
	})

	for _, n := range []int{1, 7, 24} {
		t.Run(fmt.Sprintf("StopsAtFirstReachableCandidate%d", n), func(t *testing.T) {
			f := newFixture(t)

			f.probe.EXPECT().IsReachable(gomock.Any(), "192.168.50.1").Return(false)
			f.confirmer.EXPECT().Confirm(FallbackQuestion).Return(true, nil)

			calls := 0
			f.configurator.EXPECT().Apply(gomock.Any(), "eth0", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, cfg types.StaticIPConfig) error {
					calls++
					assert.Equal(t, fallback.Candidates[calls-1], cfg.IPAddress)
					return nil
				}).Times(n)

			probes := 0
			f.probe.EXPECT().IsReachable(gomock.Any(), "192.168.1.1").
				DoAndReturn(func(context.Context, string) bool {
					probes++
					return probes == n
				}).Times(n)

			want := request
			want.TargetHost = "192.168.1.1"
			f.uploader.EXPECT().Upload(gomock.Any(), want).Return(types.Succeeded("192.168.1.1")).Times(1)

			require.NoError(t, f.orchestrator.Run(ctx, request))
		})
	}

	t.Run("UploadFailureAfterSweepIsTerminal", func(t *testing.T) {
		f := newFixture(t)

		f.probe.EXPECT().IsReachable(gomock.Any(), "192.168.50.1").Return(false)
		f.confirmer.EXPECT().Confirm(FallbackQuestion).Return(true, nil)
		f.configurator.EXPECT().Apply(gomock.Any(), "eth0", fallback.Config("192.168.1.2")).Return(nil).Times(1)
		f.probe.EXPECT().IsReachable(gomock.Any(), "192.168.1.1").Return(true).Times(1)
		f.uploader.EXPECT().Upload(gomock.Any(), gomock.Any()).
			Return(types.UploadFailed("192.168.1.1", errors.New("access violation"))).Times(1)

		err := f.orchestrator.Run(ctx, request)
		assert.ErrorIs(t, err, types.ErrTransport)
		assert.NotErrorIs(t, err, types.ErrUnreachable)
	})

	t.Run("ConfigurationFailureSkipsCandidate", func(t *testing.T) {
		f := newFixture(t)

		f.probe.EXPECT().IsReachable(gomock.Any(), "192.168.50.1").Return(false)
		f.confirmer.EXPECT().Confirm(FallbackQuestion).Return(true, nil)
		gomock.InOrder(
			f.configurator.EXPECT().Apply(gomock.Any(), "eth0", fallback.Config("192.168.1.2")).
				Return(fmt.Errorf("add address: %w: device busy", types.ErrConfiguration)),
			f.configurator.EXPECT().Apply(gomock.Any(), "eth0", fallback.Config("192.168.1.3")).Return(nil),
		)
		f.probe.EXPECT().IsReachable(gomock.Any(), "192.168.1.1").Return(true).Times(1)
		f.uploader.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(types.Succeeded("192.168.1.1"))

		require.NoError(t, f.orchestrator.Run(ctx, request))
	})

	t.Run("PermissionErrorAbortsSweep", func(t *testing.T) {
		f := newFixture(t)

		f.probe.EXPECT().IsReachable(gomock.Any(), "192.168.50.1").Return(false)
		f.confirmer.EXPECT().Confirm(FallbackQuestion).Return(true, nil)
		f.configurator.EXPECT().Apply(gomock.Any(), "eth0", gomock.Any()).
			Return(fmt.Errorf("add address: %w: %w", types.ErrConfiguration, types.ErrPermission)).Times(1)
		f.probe.EXPECT().IsReachable(gomock.Any(), "192.168.1.1").Times(0)
		f.uploader.EXPECT().Upload(gomock.Any(), gomock.Any()).Times(0)

		err := f.orchestrator.Run(ctx, request)
		assert.ErrorIs(t, err, types.ErrPermission)
	})

	t.Run("CancelledDuringSettle", func(t *testing.T) {
		f := newFixture(t)
		f.orchestrator.settleDelay = SettleDelay

		cancelled, cancel := context.WithCancel(ctx)
		f.probe.EXPECT().IsReachable(gomock.Any(), "192.168.50.1").Return(false)
		f.confirmer.EXPECT().Confirm(FallbackQuestion).Return(true, nil)
		f.configurator.EXPECT().Apply(gomock.Any(), "eth0", gomock.Any()).
			DoAndReturn(func(context.Context, string, types.StaticIPConfig) error {
				cancel()
				return nil
			}).Times(1)
		f.probe.EXPECT().IsReachable(gomock.Any(), "192.168.1.1").Times(0)

		err := f.orchestrator.Run(cancelled, request)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
