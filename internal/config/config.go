// Package config loads gmid settings from an optional .env file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/OpenTraceLab/OpenTraceGMID/pkg/scaling"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/si"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/sizing"
)

const defaultEnvFile = ".env"

type Config struct {
	// Sizing limits and tolerance
	Sizing sizing.Options

	// Scaling classification of resizable columns
	Classification scaling.Classification

	// Default plot axes
	DefaultX string
	DefaultY string

	// EnvFile is the .env file that was loaded, empty if none
	EnvFile string
}

// Load reads the .env file (GMID_ENV_FILE, default ".env") if present and
// builds the configuration from the environment. Variables already set in
// the environment win over the file. Malformed values are errors.
func Load() (*Config, error) {
	cfg := &Config{}

	envFile, explicit := os.LookupEnv("GMID_ENV_FILE")
	if !explicit || envFile == "" {
		envFile = defaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	} else {
		cfg.EnvFile = envFile
	}

	defaults := sizing.DefaultOptions()
	var err error
	if cfg.Sizing.TolerancePercent, err = getEnvNumber("GMID_TOLERANCE_PERCENT", defaults.TolerancePercent); err != nil {
		return nil, err
	}
	if cfg.Sizing.WidthOverLengthMin, err = getEnvNumber("GMID_WOVERL_MIN", defaults.WidthOverLengthMin); err != nil {
		return nil, err
	}
	if cfg.Sizing.WidthMax, err = getEnvNumber("GMID_WMAX", defaults.WidthMax); err != nil {
		return nil, err
	}
	if err := cfg.Sizing.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.DefaultX = getEnv("GMID_DEFAULT_X", "area")
	cfg.DefaultY = getEnv("GMID_DEFAULT_Y", "id")

	if cfg.Classification, err = loadClassification(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadClassification overrides the default proportional and inverse column
// sets with GMID_PROPORTIONAL and GMID_INVERSE when they are set.
func loadClassification() (scaling.Classification, error) {
	def := scaling.Default()
	proportional, pSet := getEnvStringList("GMID_PROPORTIONAL")
	inverse, iSet := getEnvStringList("GMID_INVERSE")
	if !pSet && !iSet {
		return def, nil
	}
	if !pSet {
		proportional = def.Columns(scaling.Proportional)
	}
	if !iSet {
		inverse = def.Columns(scaling.Inverse)
	}
	cls, err := scaling.FromLists(proportional, inverse)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cls, nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getEnvNumber accepts plain floats and SI text such as "100u".
func getEnvNumber(key string, defaultValue float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	v, err := si.ParseNumber(value)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return v, nil
}

// getEnvStringList splits a comma list. The second result reports whether
// the variable was set at all, so an empty value clears the list.
func getEnvStringList(key string) ([]string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil, false
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result, true
}
