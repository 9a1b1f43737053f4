// Command gll lints GitLab CI configuration files against a GitLab
// instance's CI lint API endpoint.
//
// Exit codes: 0 when every file validates, 1 when any file is invalid or
// could not be checked, 2 on configuration errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gitlab-lint/gll/pkg/cli"
	"github.com/gitlab-lint/gll/pkg/console"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, cli.ErrLintFailed) {
			// Verdicts were already printed; the exit code carries the rest.
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		os.Exit(2)
	}
}
