package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/calcms/internal/flagx"
	"github.com/dmitrijs2005/calcms/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the timeout either as a
// string like "15s" or as integer nanoseconds. Absent keys leave the
// corresponding Config field untouched.
type JsonConfig struct {
	BaseURL            string          `json:"base_url"`
	DatabasePath       string          `json:"db_path"`
	KeyFilePath        string          `json:"key_file"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	LogLevel           string          `json:"log_level"`
	RestoreSession     *bool           `json:"restore_session"`
	ClearTokenOnLogout *bool           `json:"clear_token_on_logout"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag nothing is loaded.
//
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.BaseURL, jc.BaseURL)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.KeyFilePath, jc.KeyFilePath)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RestoreSession != nil {
		cfg.RestoreSession = *jc.RestoreSession
	}
	if jc.ClearTokenOnLogout != nil {
		cfg.ClearTokenOnLogout = *jc.ClearTokenOnLogout
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
