//go:build !integration

package envutil

import (
	"testing"
)

func TestGetStringFromEnv(t *testing.T) {
	const testEnvVar = "GLL_TEST_STRING_VALUE"

	tests := []struct {
		name         string
		envValue     string
		defaultValue string
		expected     string
	}{
		{
			name:         "default when env var not set",
			envValue:     "",
			defaultValue: "gitlab.com",
			expected:     "gitlab.com",
		},
		{
			name:         "env value wins over default",
			envValue:     "gitlab.example.org",
			defaultValue: "gitlab.com",
			expected:     "gitlab.example.org",
		},
		{
			name:         "empty default",
			envValue:     "",
			defaultValue: "",
			expected:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(testEnvVar, tt.envValue)
			}
			if got := GetStringFromEnv(testEnvVar, tt.defaultValue); got != tt.expected {
				t.Errorf("GetStringFromEnv(%q, %q) = %q, want %q", testEnvVar, tt.defaultValue, got, tt.expected)
			}
		})
	}
}
