package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/writer"
)

// DefaultLogFile is the append-only diagnostic log written next to the working directory.
const DefaultLogFile = "tftp-router-flasher.log"

var (
	Logger  *logrus.Logger
	logFile *os.File
)

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format" validate:"omitempty,oneof=json text simple compact"`
	File   string `yaml:"file"` // empty disables the file sink
}

// bracketFields are rendered as [value] prefixes by CompactFormatter, in this order.
var bracketFields = []string{"component", "interface", "host"}

// CompactFormatter implements a custom formatter for compact logging
type CompactFormatter struct {
	ShowTime bool
}

// Format renders a single log entry
func (f *CompactFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	if f.ShowTime {
		fmt.Fprintf(b, "[%s]", entry.Time.Format("15:04:05"))
	}
	fmt.Fprintf(b, "[%s]", strings.ToUpper(entry.Level.String()))

	for _, key := range bracketFields {
		if v, ok := entry.Data[key]; ok {
			fmt.Fprintf(b, "[%v]", v)
		}
	}

	b.WriteByte(' ')
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if !isBracketField(k) {
			keys = append(keys, k)
		}
	}
	if len(keys) > 0 {
		sort.Strings(keys)
		b.WriteString(" (")
		for i, key := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s=%v", key, entry.Data[key])
		}
		b.WriteString(")")
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func isBracketField(key string) bool {
	for _, k := range bracketFields {
		if k == key {
			return true
		}
	}
	return false
}

// InitLogger initializes the global logger with the provided configuration.
// Entries go to stdout and, when config.File is set, are appended to that file as well.
// The file records debug entries whatever the configured level.
func InitLogger(config LogConfig) {
	Close()
	Logger = logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		// Default to info if invalid level
		level = logrus.InfoLevel
		Logger.Warnf("Invalid log level '%s', defaulting to 'info'", config.Level)
	}
	Logger.SetLevel(level)

	switch strings.ToLower(config.Format) {
	case "json":
		Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	case "simple":
		Logger.SetFormatter(&CompactFormatter{ShowTime: false})
	case "compact":
		Logger.SetFormatter(&CompactFormatter{ShowTime: true})
	case "text", "":
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
		Logger.Warnf("Invalid log format '%s', defaulting to 'text'", config.Format)
	}

	if config.File == "" {
		Logger.SetOutput(os.Stdout)
		Logger.Debugf("Logger initialized with level: %s, format: %s", level.String(), config.Format)
		return
	}

	f, err := os.OpenFile(config.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		Logger.SetOutput(os.Stdout)
		Logger.WithError(err).WithField("file", config.File).Warn("Failed to open log file, logging to stdout only")
		return
	}
	logFile = f

	// The file always receives debug entries; stdout keeps the configured level.
	Logger.SetOutput(io.Discard)
	Logger.SetLevel(logrus.DebugLevel)
	Logger.AddHook(&writer.Hook{Writer: os.Stdout, LogLevels: levelsUpTo(level)})
	Logger.AddHook(&writer.Hook{Writer: f, LogLevels: levelsUpTo(logrus.DebugLevel)})

	Logger.Debugf("Logger initialized with level: %s, format: %s, file: %q", level.String(), config.Format, config.File)
}

func levelsUpTo(lowest logrus.Level) []logrus.Level {
	var levels []logrus.Level
	for _, l := range logrus.AllLevels {
		if l <= lowest {
			levels = append(levels, l)
		}
	}
	return levels
}

// Close releases the log file, if one is open.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// GetLogger returns the global logger instance
func GetLogger() *logrus.Logger {
	if Logger == nil {
		// Initialize with default config if not already initialized
		InitLogger(LogConfig{
			Level:  "info",
			Format: "text",
		})
	}
	return Logger
}

// Helper functions for common logging patterns
func WithComponent(component string) *logrus.Entry {
	return GetLogger().WithField("component", component)
}

func WithComponentAndInterface(component, iface string) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"component": component,
		"interface": iface,
	})
}

func WithComponentAndHost(component, host string) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"component": component,
		"host":      host,
	})
}

func WithError(err error) *logrus.Entry {
	return GetLogger().WithError(err)
}
