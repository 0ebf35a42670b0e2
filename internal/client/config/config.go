package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	appDirName     = "calcms"
	defaultBaseURL = "http://app.acecms.in"
)

// Config holds runtime settings for the calcms CLI.
//
// Fields:
//   - BaseURL: root of the calibration service (token and /api endpoints).
//   - DatabasePath: local SQLite file holding the sealed token.
//   - KeyFilePath: device secret the token is sealed with.
//   - RequestTimeout: per-request HTTP timeout.
//   - LogLevel: zap level name (debug, info, warn, error).
//   - RestoreSession: resume from a stored token at startup.
//   - ClearTokenOnLogout: erase the stored token on confirmed sign-out.
type Config struct {
	BaseURL            string
	DatabasePath       string
	KeyFilePath        string
	RequestTimeout     time.Duration
	LogLevel           string
	RestoreSession     bool
	ClearTokenOnLogout bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	dir := defaultDataDir()

	c.BaseURL = defaultBaseURL
	c.DatabasePath = filepath.Join(dir, "calcms.db")
	c.KeyFilePath = filepath.Join(dir, "device.key")
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "warn"
	c.RestoreSession = false
	c.ClearTokenOnLogout = true
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return appDirName
	}
	return filepath.Join(base, appDirName)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment (including a .env file) and
// command-line flags (if present). Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg, ".env")
	parseFlags(cfg)
	return cfg
}
