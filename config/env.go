package config

import (
	"os"
	"strings"
)

// GetEnvOrDefault returns the environment variable's value, or fallback if unset.
func GetEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// EnvBool reports whether the environment variable is set to a truthy value.
func EnvBool(key string) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes"
}
