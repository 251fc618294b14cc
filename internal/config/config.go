package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-mpdigest/internal/dateutil"
	"github.com/alnah/go-mpdigest/internal/fileutil"
	"github.com/alnah/go-mpdigest/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxAddrLength       = 255  // host:port
	MaxTimeoutLength    = 20   // "30s", "1m30s"
	MaxLevelLength      = 10   // "warning"
	MaxPathLength       = 4096 // PATH_MAX
	MaxLayoutLength     = 10   // "simple", "rich"
	MaxDateFormatLength = dateutil.MaxFormatLength
)

// Config holds all configuration for the CLI and the HTTP server.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Input  InputConfig  `yaml:"input"`
	Render RenderConfig `yaml:"render"`
}

// ServerConfig defines HTTP listener options.
type ServerConfig struct {
	Addr    string `yaml:"addr"`    // host:port (default "0.0.0.0:8000")
	Timeout string `yaml:"timeout"` // Go duration (default "30s")
}

// LogConfig defines logging options.
type LogConfig struct {
	Level string `yaml:"level"` // logrus level name (default "info")
}

// InputConfig defines the batch input source.
type InputConfig struct {
	File string `yaml:"file"` // JSON file read by the batch command (default "date.txt")
}

// RenderConfig defines digest rendering options.
type RenderConfig struct {
	Layout     string `yaml:"layout"`     // "auto", "simple", "rich"
	DateFormat string `yaml:"dateFormat"` // Preset or token pattern (default "MM月DD日")
}

// TimeoutDuration parses Server.Timeout.
func (s ServerConfig) TimeoutDuration() (time.Duration, error) {
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: server.timeout: %v", ErrInvalidField, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: server.timeout: must be positive, got %s", ErrInvalidField, s.Timeout)
	}
	return d, nil
}

// Validate checks field lengths and values.
func (c *Config) Validate() error {
	// Validate server fields
	if err := validateFieldLength("server.addr", c.Server.Addr, MaxAddrLength); err != nil {
		return err
	}
	if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
		return fmt.Errorf("%w: server.addr: %v", ErrInvalidField, err)
	}
	if err := validateFieldLength("server.timeout", c.Server.Timeout, MaxTimeoutLength); err != nil {
		return err
	}
	if _, err := c.Server.TimeoutDuration(); err != nil {
		return err
	}

	// Validate log fields
	if err := validateFieldLength("log.level", c.Log.Level, MaxLevelLength); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidField, err)
	}

	// Validate input fields
	if err := validateFieldLength("input.file", c.Input.File, MaxPathLength); err != nil {
		return err
	}
	if c.Input.File == "" {
		return fmt.Errorf("%w: input.file: required", ErrInvalidField)
	}

	// Validate render fields
	if err := validateFieldLength("render.layout", c.Render.Layout, MaxLayoutLength); err != nil {
		return err
	}
	switch strings.ToLower(c.Render.Layout) {
	case "", "auto", "simple", "rich":
		// valid
	default:
		return fmt.Errorf("%w: render.layout: %q (must be auto, simple, or rich)", ErrInvalidField, c.Render.Layout)
	}
	if err := validateFieldLength("render.dateFormat", c.Render.DateFormat, MaxDateFormatLength); err != nil {
		return err
	}
	if err := dateutil.Validate(c.Render.DateFormat); err != nil {
		return fmt.Errorf("%w: render.dateFormat: %v", ErrInvalidField, err)
	}

	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: "0.0.0.0:8000", Timeout: "30s"},
		Log:    LogConfig{Level: "info"},
		Input:  InputConfig{File: "date.txt"},
		Render: RenderConfig{Layout: "auto", DateFormat: dateutil.DefaultFormat},
	}
}

// LoadConfig loads a config by name or path.
// A path (contains '/' or '\\' or ends in .yaml/.yml) is read directly.
// A bare name is looked up as name.yaml then name.yml in the working
// directory, then in the user config directory under "mpdigest".
// Fields missing from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := fileutil.ReadLimited(configPath, int64(yamlutil.MaxInputSize))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if s looks like a file path rather than a config name.
func isFilePath(s string) bool {
	if strings.ContainsAny(s, `/\`) {
		return true
	}
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

// resolveConfigPath finds a config file by name in the standard locations.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "mpdigest", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
