package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strings"

	"tftp-router-flasher/internal/pkg/logging"
	"tftp-router-flasher/internal/port"
	"tftp-router-flasher/internal/types"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultHostname = "192.168.1.1"
	DefaultTimeout  = 120
)

// FlashConfig holds the parameters of a recovery run.
type FlashConfig struct {
	Firmware  string `yaml:"firmware" validate:"required"`
	Hostname  string `yaml:"hostname" validate:"required,ipv4|hostname_rfc1123"`
	Timeout   int    `yaml:"timeout" validate:"gte=1"`
	Interface string `yaml:"interface" validate:"required"`
	NoPing    bool   `yaml:"no_ping"`
}

// Config represents the main configuration structure
type Config struct {
	Logging logging.LogConfig `yaml:"logging"`
	Flash   FlashConfig       `yaml:"flash"`
}

var validate = validator.New()

// DefaultInterface returns the usual wired interface name for the platform.
func DefaultInterface() string {
	if runtime.GOOS == "darwin" {
		return "en0"
	}
	return "eth0"
}

// Default returns a configuration with every optional value filled in.
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "info",
			Format: "text",
			File:   logging.DefaultLogFile,
		},
		Flash: FlashConfig{
			Hostname:  DefaultHostname,
			Timeout:   DefaultTimeout,
			Interface: DefaultInterface(),
		},
	}
}

// Load reads configuration from a YAML file on top of the defaults. An empty path returns the defaults.
func Load(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// UploadRequest builds the request for the orchestrator.
func (c *Config) UploadRequest() types.UploadRequest {
	return types.UploadRequest{
		TargetHost:     c.Flash.Hostname,
		FirmwarePath:   c.Flash.Firmware,
		TimeoutSeconds: c.Flash.Timeout,
	}
}

// Validate checks field syntax. It does not look at the host.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q check (value %q)", strings.ToLower(fe.Namespace()), fe.Tag(), fmt.Sprint(fe.Value())))
			}
			return fmt.Errorf("%w: %s", types.ErrValidation, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %w", types.ErrValidation, err)
	}
	return nil
}

// ValidateEnvironment checks that the interface exists and the firmware is a regular file.
// It runs before anything touches the network.
func (c *Config) ValidateEnvironment(ctx context.Context, lister port.InterfaceLister, files port.FileManager) error {
	names, err := lister.InterfaceNames(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrValidation, err)
	}
	if !slices.Contains(names, c.Flash.Interface) {
		return fmt.Errorf("%w: interface %s not found", types.ErrValidation, c.Flash.Interface)
	}

	if !files.IsRegularFile(c.Flash.Firmware) {
		return fmt.Errorf("%w: invalid firmware path: %s", types.ErrValidation, c.Flash.Firmware)
	}

	return nil
}
