package lint

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/gitlab-lint/gll/pkg/constants"
)

// Status is the outcome of linting one file.
type Status string

const (
	// StatusValid means the endpoint accepted the configuration.
	StatusValid Status = "valid"

	// StatusInvalid means the endpoint rejected the configuration, or a
	// local read / transport failure prevented a remote verdict.
	StatusInvalid Status = "invalid"

	// StatusWarning means every reported error was noise for this file
	// (see skippedErrorsForIncludes) or the endpoint attached warnings to an
	// otherwise valid configuration.
	StatusWarning Status = "valid with warnings"
)

// Verdict is the per-file lint result.
//
// Invariants: StatusValid carries no errors; StatusInvalid carries at least
// one error message (remote error text, or a local read/transport failure
// description).
type Verdict struct {
	Path     string   `json:"path" yaml:"path"`
	Status   Status   `json:"status" yaml:"status"`
	Errors   []string `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// OK reports whether the verdict counts as passing for the exit-code
// contract. Warnings pass, errors of any kind do not.
func (v Verdict) OK() bool {
	return v.Status != StatusInvalid
}

// The lint endpoint reports some errors that are useful for a top-level
// .gitlab-ci.yml but pure noise for include fragments, which are valid CI
// snippets without being complete pipelines. Messages are compared with
// backticked segments collapsed, so variable parts don't defeat the match.
var skippedErrorsForIncludes = []string{
	"jobs config should contain at least one visible job",
}

var backtickedSegment = regexp.MustCompile("`[^`]+`")

// isIncludeNoise reports whether an error message should be downgraded to a
// warning because the linted file is an include fragment rather than the
// conventional .gitlab-ci.yml.
func isIncludeNoise(path, message string) bool {
	if filepath.Base(path) == constants.DefaultFileName {
		return false
	}
	normalized := backtickedSegment.ReplaceAllString(message, "X")
	return slices.Contains(skippedErrorsForIncludes, normalized)
}

// rewriteFileName replaces the default filename the lint endpoint reports
// every error against with the linted file's actual basename, which makes
// multi-file output readable.
func rewriteFileName(message, path string) string {
	base := filepath.Base(path)
	if base == constants.DefaultFileName {
		return message
	}
	return strings.ReplaceAll(message, constants.DefaultFileName, base)
}

// newVerdict translates a lint endpoint response into a Verdict for path,
// applying filename rewriting and the include-noise downgrade.
func newVerdict(path string, resp *Response) Verdict {
	v := Verdict{Path: path, Status: Status(resp.Status)}

	for _, w := range resp.Warnings {
		v.Warnings = append(v.Warnings, rewriteFileName(w, path))
	}
	for _, e := range resp.Errors {
		if isIncludeNoise(path, e) {
			v.Warnings = append(v.Warnings, rewriteFileName(e, path))
			continue
		}
		v.Errors = append(v.Errors, rewriteFileName(e, path))
	}

	if v.Status == StatusInvalid && len(v.Errors) == 0 {
		v.Status = StatusWarning
	}
	if v.Status == StatusValid && len(v.Warnings) > 0 {
		v.Status = StatusWarning
	}
	return v
}
