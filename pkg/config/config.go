// Package config provides configuration management for pandata.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
//   - Default config (from New()) is always valid - no validation needed
//   - All mutations go through Option functions - the only way to modify Config
//   - Invalid options are rejected with gn.Warn() - config remains in valid state
//   - ToOptions() converts persistent fields (those in config.yaml)
//   - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Pangaea: base_url, terms_url, search_url, timeout_sec, retries,
//     auth_token
//   - Dataset: delete_flag, include_data, add_event_columns, expand_terms
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Dataset.ParamList (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use PANDATA_ prefix with underscores for nesting:
//
//	PANDATA_PANGAEA_AUTH_TOKEN=secret
//	PANDATA_DATASET_DELETE_FLAG=/
//	PANDATA_LOG_LEVEL=info
//	PANDATA_JOBS_NUMBER=4
package config

import (
	"runtime"
)

// Config represents the complete pandata configuration.
type Config struct {
	// Pangaea contains web service endpoints and transport settings.
	Pangaea PangaeaConfig `mapstructure:"pangaea" yaml:"pangaea"`

	// Dataset contains settings that change how a dataset is loaded.
	Dataset DatasetConfig `mapstructure:"dataset" yaml:"dataset"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of datasets loaded concurrently by the CLI.
	// Default value is set accoring to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// PangaeaConfig contains settings of the remote data repository.
type PangaeaConfig struct {
	// BaseURL is the prefix of dataset resources. The numeric dataset ID
	// is appended to it. Metadata and data share the same resource and are
	// distinguished by the Accept header.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// TermsURL is the prefix of the controlled vocabulary term service.
	// The numeric term ID is appended to it.
	TermsURL string `mapstructure:"terms_url" yaml:"terms_url"`

	// SearchURL is the search endpoint used to enumerate members of
	// collection datasets.
	SearchURL string `mapstructure:"search_url" yaml:"search_url"`

	// TimeoutSec is the timeout of a single HTTP request in seconds.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`

	// Retries is the number of repeated requests after a rate-limit
	// (429) response.
	Retries int `mapstructure:"retries" yaml:"retries"`

	// AuthToken is a bearer token required for restricted datasets.
	// Empty means anonymous access.
	AuthToken string `mapstructure:"auth_token" yaml:"auth_token"`
}

// DatasetConfig contains settings of the data matrix loading.
type DatasetConfig struct {
	// DeleteFlag is a quality flag sigil. Cells starting with this sigil
	// are emptied before further processing.
	// Valid values: "", "?", "/", "*", "#", "<", ">".
	DeleteFlag string `mapstructure:"delete_flag" yaml:"delete_flag"`

	// IncludeData is false when only metadata should be loaded.
	IncludeData bool `mapstructure:"include_data" yaml:"include_data"`

	// AddEventColumns enables backfill of Event, Latitude, Longitude,
	// Elevation and Date/Time columns from event metadata.
	AddEventColumns bool `mapstructure:"add_event_columns" yaml:"add_event_columns"`

	// ExpandTerms is a list of terminology IDs. Terms from these
	// terminologies get their classification resolved.
	ExpandTerms []int `mapstructure:"expand_terms" yaml:"expand_terms"`

	// ParamList restricts loaded columns to the given short names
	// (default geocode columns are always added). Empty means all columns.
	ParamList []string `mapstructure:"param_list" yaml:"param_list"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Pangaea: PangaeaConfig{
			BaseURL:    "https://doi.pangaea.de/10.1594/PANGAEA.",
			TermsURL:   "https://ws.pangaea.de/es/pangaea-terms/term/",
			SearchURL:  "https://www.pangaea.de/advanced/search.php",
			TimeoutSec: 10,
			Retries:    1,
		},
		Dataset: DatasetConfig{
			IncludeData:     true,
			AddEventColumns: true,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
