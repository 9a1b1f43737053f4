//go:build !integration

package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVerdictValid(t *testing.T) {
	v := newVerdict(".gitlab-ci.yml", &Response{Status: "valid"})
	assert.Equal(t, StatusValid, v.Status)
	assert.True(t, v.OK())
	assert.Empty(t, v.Errors)
}

func TestNewVerdictInvalidKeepsRemoteMessage(t *testing.T) {
	msg := "could not find expected ':' while scanning a simple key at line 26 column 1"
	v := newVerdict(".gitlab-ci.yml", &Response{Status: "invalid", Errors: []string{msg}})

	assert.Equal(t, StatusInvalid, v.Status)
	assert.False(t, v.OK())
	assert.Equal(t, []string{msg}, v.Errors)
}

func TestNewVerdictRewritesDefaultFileName(t *testing.T) {
	v := newVerdict("ci/deploy.yml", &Response{
		Status: "invalid",
		Errors: []string{".gitlab-ci.yml: jobs:deploy config should be a hash"},
	})

	assert.Equal(t, []string{"deploy.yml: jobs:deploy config should be a hash"}, v.Errors)
}

func TestNewVerdictKeepsDefaultFileNameForDefaultFile(t *testing.T) {
	v := newVerdict("project/.gitlab-ci.yml", &Response{
		Status: "invalid",
		Errors: []string{".gitlab-ci.yml: syntax error"},
	})

	assert.Equal(t, []string{".gitlab-ci.yml: syntax error"}, v.Errors)
}

func TestNewVerdictDowngradesIncludeNoise(t *testing.T) {
	// Include fragments are valid CI snippets without being complete
	// pipelines; the visible-job error alone must not fail them.
	v := newVerdict("templates/build.yml", &Response{
		Status: "invalid",
		Errors: []string{"jobs config should contain at least one visible job"},
	})

	assert.Equal(t, StatusWarning, v.Status)
	assert.True(t, v.OK())
	assert.Empty(t, v.Errors)
	assert.Len(t, v.Warnings, 1)
}

func TestNewVerdictNoDowngradeForDefaultFile(t *testing.T) {
	v := newVerdict(".gitlab-ci.yml", &Response{
		Status: "invalid",
		Errors: []string{"jobs config should contain at least one visible job"},
	})

	assert.Equal(t, StatusInvalid, v.Status)
	assert.Len(t, v.Errors, 1)
}

func TestNewVerdictMixedErrorsStayInvalid(t *testing.T) {
	v := newVerdict("templates/build.yml", &Response{
		Status: "invalid",
		Errors: []string{
			"jobs config should contain at least one visible job",
			"jobs:build config should be a hash",
		},
	})

	assert.Equal(t, StatusInvalid, v.Status)
	assert.Len(t, v.Errors, 1)
	assert.Len(t, v.Warnings, 1)
}

func TestNewVerdictValidWithWarnings(t *testing.T) {
	v := newVerdict(".gitlab-ci.yml", &Response{
		Status:   "valid",
		Warnings: []string{"jobs:build uses a deprecated keyword"},
	})

	assert.Equal(t, StatusWarning, v.Status)
	assert.True(t, v.OK())
}

func TestIsIncludeNoiseNormalizesBacktickedSegments(t *testing.T) {
	// Variable parts of remote messages arrive in backticks and must not
	// defeat the skip-list match once the list grows such entries.
	assert.False(t, isIncludeNoise(".gitlab-ci.yml", "jobs config should contain at least one visible job"))
	assert.True(t, isIncludeNoise("include.yml", "jobs config should contain at least one visible job"))
	assert.False(t, isIncludeNoise("include.yml", "jobs:`build` config should be a hash"))
}
