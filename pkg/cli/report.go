package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/gitlab-lint/gll/pkg/console"
	"github.com/gitlab-lint/gll/pkg/lint"
	"github.com/gitlab-lint/gll/pkg/logger"
)

var reportLog = logger.New("cli:report")

// Output formats accepted by --output.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Summary counts verdicts by outcome.
type Summary struct {
	Total    int `json:"total" yaml:"total"`
	Valid    int `json:"valid" yaml:"valid"`
	Warnings int `json:"warnings" yaml:"warnings"`
	Invalid  int `json:"invalid" yaml:"invalid"`
}

// Report aggregates the verdicts of one lint pass.
type Report struct {
	Verdicts []lint.Verdict `json:"verdicts" yaml:"verdicts"`
	Summary  Summary        `json:"summary" yaml:"summary"`
}

// NewReport builds a Report with its summary from per-file verdicts.
func NewReport(verdicts []lint.Verdict) Report {
	r := Report{Verdicts: verdicts}
	r.Summary.Total = len(verdicts)
	for _, v := range verdicts {
		switch v.Status {
		case lint.StatusValid:
			r.Summary.Valid++
		case lint.StatusWarning:
			r.Summary.Warnings++
		default:
			r.Summary.Invalid++
		}
	}
	return r
}

// Passed reports whether every file came back valid or valid-with-warnings.
func (r Report) Passed() bool {
	return r.Summary.Invalid == 0
}

// Render writes the report to w in the requested format.
func (r Report) Render(w io.Writer, format string) error {
	reportLog.Printf("Rendering report: format=%s, verdicts=%d", format, r.Summary.Total)

	switch format {
	case FormatText:
		r.renderText(w)
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		return yaml.NewEncoder(w).Encode(r)
	default:
		return fmt.Errorf("unknown output format %q (expected %s, %s or %s)", format, FormatText, FormatJSON, FormatYAML)
	}
}

// renderText prints one styled verdict line per file, with tab-indented
// warning and error details underneath.
func (r Report) renderText(w io.Writer) {
	for _, v := range r.Verdicts {
		printVerdict(w, v)
	}
}

func printVerdict(w io.Writer, v lint.Verdict) {
	fmt.Fprintln(w, console.FormatVerdictLine(v.Path, string(v.Status), v.OK(), v.Status == lint.StatusWarning))
	for _, warning := range v.Warnings {
		fmt.Fprintln(w, console.FormatDetailLine(warning, true))
	}
	for _, msg := range v.Errors {
		fmt.Fprintln(w, console.FormatDetailLine(msg, false))
	}
}
