// Package lint implements GitLab CI configuration linting against a remote
// GitLab instance's CI lint endpoint. The package performs no CI validation
// itself; it discovers candidate files, submits their text, and translates
// the endpoint's response into per-file verdicts.
package lint

import (
	"fmt"
	"time"

	"github.com/gitlab-lint/gll/pkg/fileutil"
	"github.com/gitlab-lint/gll/pkg/logger"
)

var optionsLog = logger.New("lint:options")

// Options is the fully resolved, immutable set of run parameters after
// applying flag > environment > default precedence. Resolution happens in the
// CLI layer; every other component receives Options as a value and never
// consults the environment.
type Options struct {
	// Domain is the GitLab instance host, e.g. "gitlab.com" or
	// "gitlab.example.org:8443". No format validation is performed locally;
	// a bad value surfaces as a request failure.
	Domain string

	// Token is an optional personal access token, sent as the PRIVATE-TOKEN
	// header. Needed when the configuration pulls includes from private
	// repositories.
	Token string

	// VerifyTLS enables certificate verification. Off by default to support
	// privately hosted instances with self-signed certificates.
	VerifyTLS bool

	// Paths is the ordered list of targets. Duplicates are kept.
	Paths []string

	// FindAll treats every entry of Paths as a directory root to walk for
	// YAML files instead of a literal file path.
	FindAll bool

	// Timeout bounds each lint request. Zero means constants.DefaultTimeout.
	Timeout time.Duration
}

// Validate cross-checks the path list against the FindAll mode: without
// FindAll a directory target is a usage error, with FindAll a file target is.
// Missing paths are not an error here; they surface as per-file read
// failures at lint time.
func (o Options) Validate() error {
	optionsLog.Printf("Validating options: domain=%s, findAll=%v, paths=%d", o.Domain, o.FindAll, len(o.Paths))

	if o.Domain == "" {
		return fmt.Errorf("domain must not be empty")
	}
	for _, p := range o.Paths {
		if !o.FindAll && fileutil.DirExists(p) {
			return fmt.Errorf("you have provided a directory %q, but not selected the --find-all option", p)
		}
		if o.FindAll && fileutil.FileExists(p) {
			return fmt.Errorf("you have provided a file %q, but selected the --find-all option", p)
		}
	}
	return nil
}
