package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptPangaeaBaseURL sets the prefix of dataset resources.
func OptPangaeaBaseURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("Pangaea Base URL", s) {
			c.Pangaea.BaseURL = s
		}
	}
}

// OptPangaeaTermsURL sets the prefix of the term web service.
func OptPangaeaTermsURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("Pangaea Terms URL", s) {
			c.Pangaea.TermsURL = s
		}
	}
}

// OptPangaeaSearchURL sets the search endpoint used for collections.
func OptPangaeaSearchURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("Pangaea Search URL", s) {
			c.Pangaea.SearchURL = s
		}
	}
}

// OptPangaeaTimeoutSec sets HTTP request timeout in seconds.
func OptPangaeaTimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("Timeout", i) {
			c.Pangaea.TimeoutSec = i
		}
	}
}

// OptPangaeaRetries sets how many times a rate-limited request is repeated.
// Zero disables retries.
func OptPangaeaRetries(i int) Option {
	return func(c *Config) {
		if isValidNonNegative("Retries", i) {
			c.Pangaea.Retries = i
		}
	}
}

// OptPangaeaAuthToken sets the bearer token for restricted datasets.
func OptPangaeaAuthToken(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Auth Token", s) {
			c.Pangaea.AuthToken = s
		}
	}
}

// OptDatasetDeleteFlag sets a quality flag sigil of values to remove.
// Valid values: "?", "/", "*", "#", "<", ">".
func OptDatasetDeleteFlag(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidEnum("Dataset.DeleteFlag", s) {
			c.Dataset.DeleteFlag = s
		}
	}
}

// OptDatasetIncludeData sets whether the data matrix is downloaded.
func OptDatasetIncludeData(b bool) Option {
	return func(c *Config) {
		c.Dataset.IncludeData = b
	}
}

// OptDatasetAddEventColumns sets whether missing geocode columns are
// filled from event metadata.
func OptDatasetAddEventColumns(b bool) Option {
	return func(c *Config) {
		c.Dataset.AddEventColumns = b
	}
}

// OptDatasetExpandTerms sets terminology IDs for term classification
// lookup.
func OptDatasetExpandTerms(ii []int) Option {
	return func(c *Config) {
		var res []int
		for _, i := range ii {
			if isValidInt("Terminology ID", i) {
				res = append(res, i)
			}
		}
		if len(res) > 0 {
			c.Dataset.ExpandTerms = res
		}
	}
}

// OptDatasetParamList restricts loaded columns to given short names.
// Runtime-only field - not in ToOptions().
func OptDatasetParamList(ss []string) Option {
	return func(c *Config) {
		var res []string
		for _, s := range ss {
			s = strings.TrimSpace(s)
			if s != "" {
				res = append(res, s)
			}
		}
		if len(res) > 0 {
			c.Dataset.ParamList = res
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of datasets loaded concurrently.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
