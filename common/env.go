// Package common provides names and defaults shared by the tasktide CLI and
// its configuration layer.
package common

// EnvPrefix is prepended to every configuration key looked up in the
// environment, so max_wait is read from TASKTIDE_MAX_WAIT.
const EnvPrefix = "TASKTIDE"

// Environment variable names for configuration.
const (
	// ConfigEnv is the environment variable for a custom config file.
	ConfigEnv = "TASKTIDE_CONFIG"

	// DatabaseEnv is the environment variable for the task database path.
	DatabaseEnv = "TASKTIDE_DATABASE"

	// LogFileEnv is the environment variable for the log file path.
	LogFileEnv = "TASKTIDE_LOG_FILE"

	// VerboseEnv is the environment variable to enable debug logging.
	VerboseEnv = "TASKTIDE_VERBOSE"
)
