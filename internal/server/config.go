package server

import (
	"errors"
	"fmt"
	"net"

	"github.com/ulule/limiter/v3"

	"github.com/prodinfra/infrademo/internal/logging"
	"github.com/prodinfra/infrademo/internal/utils"
)

const (
	DefaultAddr     = "0.0.0.0:5000"
	DefaultLogFile  = "/var/log/app.log"
	DefaultLogLevel = "info"
)

var (
	ErrInvalidAddr   = errors.New("invalid http address")
	ErrTLSIncomplete = errors.New("both cert_file and key_file are required for tls")
	ErrFileNotFound  = errors.New("file not found")
)

type Config struct {
	HTTP HTTPConfig `mapstructure:"http"`
	Log  LogConfig  `mapstructure:"log"`
}

type HTTPConfig struct {
	Addr      string `mapstructure:"addr"`
	CertFile  string `mapstructure:"cert_file"`
	KeyFile   string `mapstructure:"key_file"`
	RateLimit string `mapstructure:"rate_limit"`
}

type LogConfig struct {
	// File is the append-only log sink. Empty disables it.
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{Addr: DefaultAddr},
		Log:  LogConfig{File: DefaultLogFile, Level: DefaultLogLevel},
	}
}

func (c *HTTPConfig) TLSEnabled() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.HTTP.Addr); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidAddr, c.HTTP.Addr, err)
	}

	if (c.HTTP.CertFile == "") != (c.HTTP.KeyFile == "") {
		return ErrTLSIncomplete
	}
	for _, f := range []string{c.HTTP.CertFile, c.HTTP.KeyFile} {
		if f != "" && !utils.FileExists(f) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, f)
		}
	}

	if c.HTTP.RateLimit != "" {
		if _, err := limiter.NewRateFromFormatted(c.HTTP.RateLimit); err != nil {
			return fmt.Errorf("invalid rate_limit %q: %w", c.HTTP.RateLimit, err)
		}
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	if c.Log.File != "" {
		path, err := utils.ResolvePath(c.Log.File)
		if err != nil {
			return fmt.Errorf("invalid log file: %w", err)
		}
		c.Log.File = path
	}

	return nil
}
