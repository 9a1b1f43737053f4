// Package cli wires the gll command line: flag and environment resolution,
// file discovery, the lint pass, and report rendering.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitlab-lint/gll/pkg/constants"
	"github.com/gitlab-lint/gll/pkg/envutil"
	"github.com/gitlab-lint/gll/pkg/lint"
	"github.com/gitlab-lint/gll/pkg/logger"
)

var rootLog = logger.New("cli:root_command")

// ErrLintFailed signals that at least one file was invalid or could not be
// checked. The caller maps it to exit code 1; every other error is a
// configuration problem and maps to exit code 2.
var ErrLintFailed = errors.New("one or more files failed validation")

// NewRootCommand creates the gll command. Environment variables are read
// once here, as flag defaults, which gives the flag > environment > default
// precedence for free.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gll",
		Short:   "Lint GitLab CI configuration files using the GitLab API",
		Version: version,
		Long: `gll validates GitLab CI configuration files by submitting them to a GitLab
instance's CI lint endpoint (/api/v4/ci/lint) and reporting a verdict per
file. Validation itself happens entirely on the GitLab side; gll only
discovers files, submits their text, and renders the response.

HTTPS certificate verification is disabled by default to support privately
hosted instances with self-signed certificates; enable it with --verify.

Examples:
  gll                                  # Lint .gitlab-ci.yml in the current directory
  gll -p ci/deploy.yml -p ci/test.yml  # Lint specific files
  gll -p ci --find-all                 # Lint every .yml/.yaml file under ci/
  gll -d gitlab.example.org -t $TOKEN  # Lint against a private instance
  gll -o json                          # Machine-readable report
  gll --watch                          # Re-lint files as they change`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringP("domain", "d", envutil.GetStringFromEnv(constants.DomainEnvVar, constants.DefaultDomain),
		"GitLab domain (env "+constants.DomainEnvVar+")")
	flags.StringP("token", "t", envutil.GetStringFromEnv(constants.TokenEnvVar, ""),
		"GitLab personal access token, needed when the configuration includes files from private projects (env "+constants.TokenEnvVar+")")
	flags.StringArrayP("path", "p", nil,
		"path to a .yml file, or to a directory with --find-all; repeatable (default "+constants.DefaultFileName+")")
	flags.BoolP("verify", "v", false,
		"enable HTTPS certificate verification")
	flags.BoolP("find-all", "f", false,
		"treat each --path as a directory and lint every .yml/.yaml file under it")
	flags.StringP("output", "o", FormatText,
		"report format: text, json or yaml")
	flags.BoolP("watch", "w", false,
		"after the initial pass, watch the files and re-lint on change")
	flags.Duration("timeout", constants.DefaultTimeout,
		"timeout per lint request")

	return cmd
}

// resolveOptions turns parsed flags into an immutable lint.Options value.
// All environment lookups already happened at flag registration.
func resolveOptions(cmd *cobra.Command) lint.Options {
	flags := cmd.Flags()
	domain, _ := flags.GetString("domain")
	token, _ := flags.GetString("token")
	verify, _ := flags.GetBool("verify")
	findAll, _ := flags.GetBool("find-all")
	paths, _ := flags.GetStringArray("path")
	timeout, _ := flags.GetDuration("timeout")

	if len(paths) == 0 {
		paths = []string{constants.DefaultFileName}
	}

	return lint.Options{
		Domain:    domain,
		Token:     token,
		VerifyTLS: verify,
		Paths:     paths,
		FindAll:   findAll,
		Timeout:   timeout,
	}
}

func runLint(cmd *cobra.Command) error {
	opts := resolveOptions(cmd)
	if err := opts.Validate(); err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("output")
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q (expected %s, %s or %s)", format, FormatText, FormatJSON, FormatYAML)
	}

	watch, _ := cmd.Flags().GetBool("watch")
	if watch && format != FormatText {
		return fmt.Errorf("--watch supports only text output, got %q", format)
	}

	files, err := lint.Discover(opts)
	if err != nil {
		return err
	}
	rootLog.Printf("Discovered %d file(s)", len(files))

	linter := lint.New(opts)
	verdicts := linter.Run(cmd.Context(), files)

	report := NewReport(verdicts)
	if err := report.Render(cmd.OutOrStdout(), format); err != nil {
		return err
	}

	if watch {
		return watchAndRelint(cmd.Context(), linter, opts, files, verdicts, cmd.OutOrStdout())
	}

	if !report.Passed() {
		return ErrLintFailed
	}
	return nil
}
