// Package constants defines shared constants for the gll CLI.
package constants

import "time"

// DefaultDomain is the GitLab instance used when neither the --domain flag
// nor the GITLAB_LINT_DOMAIN environment variable is set.
const DefaultDomain = "gitlab.com"

// DefaultFileName is the conventional GitLab CI configuration filename,
// linted when no --path flag is given. The remote lint endpoint also reports
// every error against this name regardless of the real filename.
const DefaultFileName = ".gitlab-ci.yml"

// CILintEndpoint is the API path of the CI lint endpoint.
// Reference: https://docs.gitlab.com/ee/api/lint.html
const CILintEndpoint = "/api/v4/ci/lint"

// Environment variables consumed as flag defaults.
const (
	// DomainEnvVar provides the default for --domain.
	DomainEnvVar = "GITLAB_LINT_DOMAIN"

	// TokenEnvVar provides the default for --token.
	TokenEnvVar = "GITLAB_LINT_TOKEN"
)

// DefaultTimeout bounds a single lint request.
const DefaultTimeout = 30 * time.Second

// ContentField is the JSON field carrying the configuration text in the
// lint request body.
const ContentField = "content"

// PrivateTokenHeader is GitLab's personal-access-token auth header. The
// token is sent as a header, never as a query parameter, so it cannot leak
// through URLs quoted in transport errors.
const PrivateTokenHeader = "PRIVATE-TOKEN"

// YAML file extensions recognized by --find-all.
var YAMLExtensions = []string{".yml", ".yaml"}
