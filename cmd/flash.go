package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tftp-router-flasher/internal/adapter/configurator"
	"tftp-router-flasher/internal/adapter/infrastructure/file"
	"tftp-router-flasher/internal/adapter/infrastructure/icmp"
	"tftp-router-flasher/internal/adapter/infrastructure/network"
	"tftp-router-flasher/internal/adapter/infrastructure/prompt"
	"tftp-router-flasher/internal/adapter/infrastructure/sysinfo"
	"tftp-router-flasher/internal/adapter/infrastructure/tftp"
	"tftp-router-flasher/internal/adapter/probe"
	"tftp-router-flasher/internal/adapter/recovery"
	"tftp-router-flasher/internal/adapter/uploader"
	"tftp-router-flasher/internal/pkg/config"
	"tftp-router-flasher/internal/pkg/logging"
	"tftp-router-flasher/internal/port"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type flashOptions struct {
	configPath string
	firmware   string
	hostname   string
	timeout    int
	iface      string
	noPing     bool
	debug      bool
	logFile    string
	logFormat  string
}

var flashOpts flashOptions

// flashDeps are the collaborators of a run. Validation only uses lister and files.
type flashDeps struct {
	lister port.InterfaceLister
	files  port.FileManager
	runner port.RecoveryRunner
}

// newFlashDeps wires the production adapters for the configured interface.
func newFlashDeps(cfg *config.Config) flashDeps {
	networkMgr := network.NewLinkManager()
	fileMgr := file.NewFirmwareStore()

	netProbe := probe.NewProbe(networkMgr, icmp.NewPingerAdapter(), cfg.Flash.NoPing)
	ifaceConfigurator := configurator.NewConfigurator(networkMgr)
	fwUploader := uploader.NewUploader(tftp.NewClientAdapter(), fileMgr)
	confirmer := prompt.NewConfirmerAdapter(os.Stdin, os.Stdout)

	return flashDeps{
		lister: sysinfo.NewInterfaceAdapter(),
		files:  fileMgr,
		runner: recovery.NewOrchestrator(cfg.Flash.Interface, netProbe, ifaceConfigurator, fwUploader, confirmer),
	}
}

func runFlash(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flashOpts.configPath)
	if err != nil {
		return err
	}
	flashOpts.applyTo(cmd.Flags(), cfg)

	logging.InitLogger(cfg.Logging)
	defer logging.Close()

	// Usage is only useful for flag parsing errors, which cobra reports before RunE.
	cmd.SilenceUsage = true

	if err := cfg.Validate(); err != nil {
		logging.WithError(err).Error("Invalid configuration")
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return flash(ctx, cfg, newFlashDeps(cfg))
}

// flash validates the host environment and then runs the recovery.
// Nothing touches the network unless validation passes.
func flash(ctx context.Context, cfg *config.Config, deps flashDeps) error {
	logger := logging.WithComponentAndInterface("flash", cfg.Flash.Interface)

	if err := cfg.ValidateEnvironment(ctx, deps.lister, deps.files); err != nil {
		logger.WithError(err).Error("Validation failed")
		return err
	}

	logger.WithField("firmware", cfg.Flash.Firmware).Info("Starting firmware recovery")

	if err := deps.runner.Run(ctx, cfg.UploadRequest()); err != nil {
		logger.WithError(err).Error("Firmware upload failed")
		return err
	}

	logger.Info("Firmware upload complete. Please restart your router.")
	return nil
}

// applyTo overlays explicitly set flags on the loaded configuration.
func (o *flashOptions) applyTo(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("firmware") {
		cfg.Flash.Firmware = o.firmware
	}
	if flags.Changed("hostname") {
		cfg.Flash.Hostname = o.hostname
	}
	if flags.Changed("timeout") {
		cfg.Flash.Timeout = o.timeout
	}
	if flags.Changed("interface") {
		cfg.Flash.Interface = o.iface
	}
	if flags.Changed("no-ping") {
		cfg.Flash.NoPing = o.noPing
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = o.logFile
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = o.logFormat
	}
	if o.debug {
		cfg.Logging.Level = "debug"
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&flashOpts.configPath, "config", "c", "", "Path to config file (YAML)")
	flags.StringVarP(&flashOpts.firmware, "firmware", "f", "", "Path to the firmware file (required)")
	flags.StringVar(&flashOpts.hostname, "hostname", config.DefaultHostname, "Router IP address")
	flags.IntVarP(&flashOpts.timeout, "timeout", "t", config.DefaultTimeout, "TFTP timeout in seconds")
	flags.StringVarP(&flashOpts.iface, "interface", "i", config.DefaultInterface(), "Network interface to use")
	flags.BoolVar(&flashOpts.noPing, "no-ping", false, "Disable ping check. Useful on some models")
	flags.BoolVarP(&flashOpts.debug, "debug", "d", false, "Enable debug logging")
	flags.StringVar(&flashOpts.logFile, "log-file", logging.DefaultLogFile, "Append-only log file, empty to disable")
	flags.StringVar(&flashOpts.logFormat, "log-format", "text", "Log format: text, json, simple or compact")
}
