// Package env reads the handful of process settings that must be known before config
// loading, such as the log format.
package env

import (
	"os"
	"strconv"
	"strings"
)

func lookup(key string) (string, bool) {
	raw, ok := os.LookupEnv(key)
	raw = strings.TrimSpace(raw)
	return raw, ok && raw != ""
}

// Get returns the trimmed value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if raw, ok := lookup(key); ok {
		return raw
	}
	return fallback
}

// Bool accepts the strconv.ParseBool spellings; anything else yields fallback.
func Bool(key string, fallback bool) bool {
	raw, ok := lookup(key)
	if !ok {
		return fallback
	}
	if parsed, err := strconv.ParseBool(raw); err == nil {
		return parsed
	}
	return fallback
}
