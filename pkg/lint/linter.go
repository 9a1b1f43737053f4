package lint

import (
	"context"
	"fmt"
	"os"

	"github.com/gitlab-lint/gll/pkg/logger"
)

var linterLog = logger.New("lint:linter")

// Linter lints files one at a time against a single GitLab instance.
type Linter struct {
	opts   Options
	client *Client
}

// New creates a Linter for the given options.
func New(opts Options) *Linter {
	return &Linter{opts: opts, client: NewClient(opts)}
}

// Run lints files strictly sequentially and returns one verdict per file, in
// input order. A file's failure never prevents the remaining files from
// being checked.
func (l *Linter) Run(ctx context.Context, files []string) []Verdict {
	linterLog.Printf("Linting %d file(s) against %s", len(files), l.opts.Domain)

	verdicts := make([]Verdict, 0, len(files))
	for _, path := range files {
		verdicts = append(verdicts, l.LintFile(ctx, path))
	}
	return verdicts
}

// LintFile reads one file and asks the remote endpoint for a verdict. Local
// read failures produce an invalid verdict without a network call; transport
// and protocol failures produce an invalid verdict carrying the failure
// description. Exactly one request is made per call.
func (l *Linter) LintFile(ctx context.Context, path string) Verdict {
	content, err := os.ReadFile(path)
	if err != nil {
		linterLog.Printf("Read failed: path=%s, err=%v", path, err)
		return Verdict{
			Path:   path,
			Status: StatusInvalid,
			Errors: []string{fmt.Sprintf("failed to read file: %v", err)},
		}
	}

	resp, err := l.client.Lint(ctx, string(content))
	if err != nil {
		return Verdict{
			Path:   path,
			Status: StatusInvalid,
			Errors: []string{err.Error()},
		}
	}

	return newVerdict(path, resp)
}
