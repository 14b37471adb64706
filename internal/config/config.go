// Package config loads command defaults from a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/arloliu/uvoxid/errs"
	"github.com/arloliu/uvoxid/format"
	"github.com/arloliu/uvoxid/internal/logging"
	"github.com/arloliu/uvoxid/tolerance"
)

// Environment variables read by Load.
const (
	EnvLogLevel    = "UVOXID_LOG_LEVEL"
	EnvJSONLog     = "UVOXID_JSON_LOG"
	EnvFormat      = "UVOXID_FORMAT"
	EnvSigChars    = "UVOXID_SIG_CHARS"
	EnvCompression = "UVOXID_COMPRESSION"
)

// DefaultEnvFile is loaded by Load when no file is given.
const DefaultEnvFile = ".env"

// Config holds the command defaults. Flags override every field.
type Config struct {
	LogLevel    string
	JSONLog     bool
	Format      format.TextFormat
	SigChars    int
	Compression format.CompressionType
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		LogLevel:    logging.DefaultLevel,
		Format:      format.TextBase32,
		SigChars:    tolerance.MaxSigChars,
		Compression: format.CompressionZstd,
	}
}

// Load reads envFiles (DefaultEnvFile when none is given) into the process
// environment and returns the resulting Config. Missing files are skipped;
// variables already set in the environment win over file values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, starting from Default.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	cfg.JSONLog = getenv(EnvJSONLog) == "1"

	if v := getenv(EnvFormat); v != "" {
		f, err := format.ParseTextFormat(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvFormat, err)
		}
		cfg.Format = f
	}

	if v := getenv(EnvSigChars); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w: %q is not an integer", EnvSigChars, errs.ErrOutOfRange, v)
		}
		if err := tolerance.Level(n).Validate(); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSigChars, err)
		}
		cfg.SigChars = n
	}

	if v := getenv(EnvCompression); v != "" {
		c, err := format.ParseCompressionType(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvCompression, err)
		}
		cfg.Compression = c
	}

	return cfg, nil
}
