package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "CALCMS_"

// parseEnv overlays Config with CALCMS_* environment variables. Variables
// from envFile are loaded first without overriding the real environment;
// a missing envFile is not an error.
//
// Recognised variables:
//
//	CALCMS_BASE_URL, CALCMS_DB_PATH, CALCMS_KEY_FILE, CALCMS_LOG_LEVEL,
//	CALCMS_REQUEST_TIMEOUT (e.g. "15s"), CALCMS_RESTORE_SESSION,
//	CALCMS_CLEAR_TOKEN_ON_LOGOUT (booleans as accepted by strconv.ParseBool).
//
// Panics on unreadable envFile or malformed values.
func parseEnv(cfg *Config, envFile string) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	if v, ok := lookup("BASE_URL"); ok {
		cfg.BaseURL = v
	}
	if v, ok := lookup("DB_PATH"); ok {
		cfg.DatabasePath = v
	}
	if v, ok := lookup("KEY_FILE"); ok {
		cfg.KeyFilePath = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup("REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup("RESTORE_SESSION"); ok {
		cfg.RestoreSession = mustBool(v)
	}
	if v, ok := lookup("CLEAR_TOKEN_ON_LOGOUT"); ok {
		cfg.ClearTokenOnLogout = mustBool(v)
	}
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func mustBool(v string) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		panic(err)
	}
	return b
}
