//go:build !integration

package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitlab-lint/gll/pkg/lint"
)

func sampleVerdicts() []lint.Verdict {
	return []lint.Verdict{
		{Path: ".gitlab-ci.yml", Status: lint.StatusValid},
		{Path: "ci/include.yml", Status: lint.StatusWarning, Warnings: []string{"jobs config should contain at least one visible job"}},
		{Path: "ci/broken.yml", Status: lint.StatusInvalid, Errors: []string{"could not find expected ':' while scanning a simple key at line 26 column 1"}},
	}
}

func TestNewReportSummary(t *testing.T) {
	r := NewReport(sampleVerdicts())

	assert.Equal(t, Summary{Total: 3, Valid: 1, Warnings: 1, Invalid: 1}, r.Summary)
	assert.False(t, r.Passed())
}

func TestReportPassedWithOnlyWarnings(t *testing.T) {
	r := NewReport([]lint.Verdict{
		{Path: "a.yml", Status: lint.StatusValid},
		{Path: "b.yml", Status: lint.StatusWarning},
	})
	assert.True(t, r.Passed())
}

func TestReportPassedEmptyRun(t *testing.T) {
	// Discovery refuses empty runs before a report is ever built; an empty
	// report still counts as passing so the invariant lives in one place.
	assert.True(t, NewReport(nil).Passed())
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReport(sampleVerdicts()).Render(&buf, FormatText))

	out := buf.String()
	assert.Contains(t, out, `".gitlab-ci.yml" is valid`)
	assert.Contains(t, out, `"ci/include.yml" is valid with warnings`)
	assert.Contains(t, out, `"ci/broken.yml" is invalid`)
	assert.Contains(t, out, "\tcould not find expected ':' while scanning a simple key at line 26 column 1")
	assert.Contains(t, out, "\tjobs config should contain at least one visible job")
}

func TestRenderTextOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReport(sampleVerdicts()).Render(&buf, FormatText))

	out := buf.String()
	valid := strings.Index(out, ".gitlab-ci.yml")
	warned := strings.Index(out, "ci/include.yml")
	invalid := strings.Index(out, "ci/broken.yml")
	assert.True(t, valid < warned && warned < invalid, "verdicts print in input order")
}

func TestRenderJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReport(sampleVerdicts()).Render(&buf, FormatJSON))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, NewReport(sampleVerdicts()), decoded)
}

func TestRenderYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReport(sampleVerdicts()).Render(&buf, FormatYAML))

	var decoded Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, NewReport(sampleVerdicts()), decoded)
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewReport(nil).Render(&buf, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}
