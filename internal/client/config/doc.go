// Package config loads runtime configuration for the calcms CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment: a .env file in the working directory, then CALCMS_*
//     variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the calibration service
//	-t int      request timeout (seconds)
//	-d string   local database path
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "15s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://app.acecms.in",
//	  "db_path": "/home/me/.config/calcms/calcms.db",
//	  "key_file": "/home/me/.config/calcms/device.key",
//	  "request_timeout": "15s",
//	  "log_level": "info",
//	  "restore_session": false,
//	  "clear_token_on_logout": true
//	}
package config
