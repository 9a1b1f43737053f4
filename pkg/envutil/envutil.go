// Package envutil provides typed environment variable lookups with defaults.
package envutil

import (
	"os"

	"github.com/gitlab-lint/gll/pkg/logger"
)

var log = logger.New("envutil:envutil")

// GetStringFromEnv returns the value of the named environment variable, or
// defaultValue when the variable is unset or empty.
func GetStringFromEnv(name, defaultValue string) string {
	value := os.Getenv(name)
	if value == "" {
		return defaultValue
	}
	log.Printf("Using environment override: %s", name)
	return value
}
