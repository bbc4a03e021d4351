package config

import (
	"fmt"
	"os"
	"strings"

	"accuracycheck/internal/errors"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables read by Load
const (
	EnvExcelFile = "EXCEL_FILE_PATH"
	EnvLogFile   = "LOG_FILE"
	EnvLogLevel  = "LOG_LEVEL"
)

// DefaultLogFile is the log file appended to when nothing else is configured
const DefaultLogFile = "text_similarity.log"

// Config represents the complete application configuration
type Config struct {
	ExcelFile string       `toml:"excel_file"`
	Log       LogConfig    `toml:"log"`
	Output    OutputConfig `toml:"output"`
}

// LogConfig holds logging settings
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// OutputConfig holds console output settings
type OutputConfig struct {
	PrintResults bool `toml:"print_results"`
}

// FallbackLogFile names the log file used when Load fails: LOG_FILE when set, otherwise DefaultLogFile
func FallbackLogFile() string {
	return strings.TrimSpace(getEnvOrDefault(EnvLogFile, DefaultLogFile))
}

// Default returns the configuration used when no file or environment overrides exist
func Default() Config {
	return Config{
		Log: LogConfig{
			File:  DefaultLogFile,
			Level: "INFO",
		},
	}
}

// Load builds configuration from defaults, an optional TOML file and environment variables.
// An empty path skips the file; a non-empty path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.WithCode(errors.CodeConfigInvalid, fmt.Errorf("open config: %w", err))
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return errors.WithCode(errors.CodeConfigInvalid, fmt.Errorf("parse config %s: %w", path, err))
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.ExcelFile = getEnvOrDefault(EnvExcelFile, cfg.ExcelFile)
	cfg.Log.File = getEnvOrDefault(EnvLogFile, cfg.Log.File)
	cfg.Log.Level = getEnvOrDefault(EnvLogLevel, cfg.Log.Level)
}

func validateConfig(cfg *Config) error {
	cfg.ExcelFile = strings.TrimSpace(cfg.ExcelFile)
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)
	if cfg.Log.File == "" {
		return errors.ConfigInvalid("log file is required")
	}
	switch strings.ToUpper(strings.TrimSpace(cfg.Log.Level)) {
	case "ERROR", "WARN", "INFO", "DEBUG":
	default:
		return errors.ConfigInvalid(fmt.Sprintf("unsupported log level %q", cfg.Log.Level))
	}
	return nil
}

// getEnvOrDefault returns the environment value for key, or defaultValue when unset or blank
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); strings.TrimSpace(value) != "" {
		return value
	}
	return defaultValue
}
