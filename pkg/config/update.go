package config

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, ParamList).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int
	s = c.Pangaea.BaseURL
	if s != "" {
		res = append(res, OptPangaeaBaseURL(s))
	}
	s = c.Pangaea.TermsURL
	if s != "" {
		res = append(res, OptPangaeaTermsURL(s))
	}
	s = c.Pangaea.SearchURL
	if s != "" {
		res = append(res, OptPangaeaSearchURL(s))
	}
	i = c.Pangaea.TimeoutSec
	if i > 0 {
		res = append(res, OptPangaeaTimeoutSec(i))
	}
	i = c.Pangaea.Retries
	if i >= 0 {
		res = append(res, OptPangaeaRetries(i))
	}
	s = c.Pangaea.AuthToken
	if s != "" {
		res = append(res, OptPangaeaAuthToken(s))
	}

	s = c.Dataset.DeleteFlag
	if s != "" {
		res = append(res, OptDatasetDeleteFlag(s))
	}
	res = append(res,
		OptDatasetIncludeData(c.Dataset.IncludeData),
		OptDatasetAddEventColumns(c.Dataset.AddEventColumns),
	)
	if len(c.Dataset.ExpandTerms) > 0 {
		res = append(res, OptDatasetExpandTerms(c.Dataset.ExpandTerms))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidURL(name, s string) bool {
	if !isValidString(name, s) {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		gn.Warn("<em>%s</em> is not a valid URL: '%s', ignoring", name, s)
		return false
	}
	return true
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidNonNegative(name string, i int) bool {
	res := i >= 0
	if !res {
		gn.Warn("<em>%s</em> cannot be negative, ignoring %d", name, i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Dataset.DeleteFlag": {"?": s, "/": s, "*": s, "#": s, "<": s, ">": s},
		"Log.Level":          {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":         {"json": s, "text": s, "tint": s},
		"Log.Destination":    {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
