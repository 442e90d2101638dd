// Package config loads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ironsheep/floorplan-mcp/internal/detection"
	"github.com/ironsheep/floorplan-mcp/internal/digitizer"
	"github.com/ironsheep/floorplan-mcp/internal/ocr"
)

// Environment variable names.
const (
	EnvLogLevel        = "FLOORPLAN_MCP_LOG_LEVEL"
	EnvMinRegionPixels = "FLOORPLAN_MIN_REGION_PIXELS"
	EnvOCRWhitelist    = "FLOORPLAN_OCR_WHITELIST"
	EnvOCRLanguage     = "FLOORPLAN_OCR_LANGUAGE"
	EnvTessdataPrefix  = "FLOORPLAN_TESSDATA_PREFIX"
	EnvOCRTimeout      = "FLOORPLAN_OCR_TIMEOUT"
	EnvMaxPixels       = "FLOORPLAN_MAX_PIXELS"
	EnvOCRMinWidth     = "FLOORPLAN_OCR_MIN_WIDTH"
)

type Config struct {
	LogLevel        string
	MinRegionPixels int
	OCRWhitelist    string
	OCRLanguage     string
	TessdataPrefix  string
	OCRTimeout      time.Duration
	MaxPixels       int
	OCRMinWidth     int
}

// Load reads the configuration from environment variables. Unset or
// malformed values fall back to their defaults.
func Load() *Config {
	return &Config{
		LogLevel:        strings.ToLower(getEnv(EnvLogLevel, "info")),
		MinRegionPixels: getEnvAsInt(EnvMinRegionPixels, detection.DefaultMinRegionPixels),
		OCRWhitelist:    getEnv(EnvOCRWhitelist, digitizer.DefaultOCRWhitelist),
		OCRLanguage:     getEnv(EnvOCRLanguage, "eng"),
		TessdataPrefix:  getEnv(EnvTessdataPrefix, ""),
		OCRTimeout:      time.Duration(getEnvAsInt(EnvOCRTimeout, int(digitizer.DefaultOCRTimeout/time.Second))) * time.Second,
		MaxPixels:       getEnvAsInt(EnvMaxPixels, digitizer.DefaultMaxPixels),
		OCRMinWidth:     getEnvAsInt(EnvOCRMinWidth, ocr.DefaultOptions().MinWidth),
	}
}

// Debug reports whether debug logging was requested.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

// OCR returns the engine options.
func (c *Config) OCR() ocr.Options {
	opts := ocr.DefaultOptions()
	opts.Language = c.OCRLanguage
	opts.Whitelist = c.OCRWhitelist
	opts.TessdataPrefix = c.TessdataPrefix
	opts.MinWidth = c.OCRMinWidth
	return opts
}

// Digitize returns the per-call digitizer options.
func (c *Config) Digitize() digitizer.Options {
	return digitizer.Options{
		MinRegionPixels: c.MinRegionPixels,
		OCRWhitelist:    c.OCRWhitelist,
		MaxPixels:       c.MaxPixels,
		OCRTimeout:      c.OCRTimeout,
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil && intVal > 0 {
			return intVal
		}
	}
	return defaultVal
}
