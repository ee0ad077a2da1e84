/*
 * © 2024 Snyk Limited
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	sglsp "github.com/sourcegraph/go-lsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snyk/snyk-highlight/application/config"
	"github.com/snyk/snyk-highlight/application/report"
	"github.com/snyk/snyk-highlight/domain/ide/hover"
	"github.com/snyk/snyk-highlight/internal/testutil"
)

const annotations = `
document: main.go
passes:
  - name: compiler
    annotations:
      - start: 14
        end: 18
        severity: ERROR
        message: "**broken**"
`

func Test_shouldSetLogLevelViaFlag(t *testing.T) {
	c := testutil.UnitTest(t)
	t.Setenv(config.LogLevelEnvVar, "")
	args := []string{"snyk-highlight", "-l", "debug"}

	_, _, err := parseFlags(c, args)

	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func Test_shouldSetOutputFormatViaFlag(t *testing.T) {
	c := testutil.UnitTest(t)
	args := []string{"snyk-highlight", "-o", config.FormatHtml}

	_, _, err := parseFlags(c, args)

	require.NoError(t, err)
	assert.Equal(t, config.FormatHtml, c.Format())
}

func Test_shouldShowUsageOnUnknownFlag(t *testing.T) {
	c := testutil.UnitTest(t)
	args := []string{"snyk-highlight", "--unknown", config.FormatHtml}

	_, output, err := parseFlags(c, args)

	assert.Contains(t, output, "Usage of snyk-highlight")
	assert.Error(t, err)
}

func Test_shouldLoadConfigFromFlag(t *testing.T) {
	c := testutil.UnitTest(t)
	t.Setenv(config.MinSeverityEnvVar, "")
	// the env file never overrides variables that are already set
	require.NoError(t, os.Unsetenv(config.MinSeverityEnvVar))
	path := filepath.Join(t.TempDir(), "config.env")
	testutil.CreateFileOrFail(t, path, []byte(config.MinSeverityEnvVar+"=WARNING\n"))
	args := []string{"snyk-highlight", "-c", path}

	_, _, err := parseFlags(c, args)

	require.NoError(t, err)
	assert.Equal(t, "WARNING", c.MinimumSeverity().Name)
}

func Test_shouldSetReportErrorsViaFlag(t *testing.T) {
	t.Setenv(config.ErrorReportingEnvVar, "")
	c := testutil.UnitTest(t)
	_, _, err := parseFlags(c, []string{"snyk-highlight"})
	require.NoError(t, err)
	assert.False(t, c.IsErrorReportingEnabled())

	_, _, err = parseFlags(c, []string{"snyk-highlight", "--reportErrors"})
	require.NoError(t, err)
	assert.True(t, c.IsErrorReportingEnabled())
}

func Test_shouldCollectAnnotationFiles(t *testing.T) {
	c := testutil.UnitTest(t)

	opts, _, err := parseFlags(c, []string{"snyk-highlight", "--output", report.OutputJson, "a.yaml", "b.json"})

	require.NoError(t, err)
	assert.Equal(t, report.OutputJson, opts.output)
	assert.Equal(t, []string{"a.yaml", "b.json"}, opts.files)
}

func Test_run_withoutFilesFails(t *testing.T) {
	testutil.UnitTest(t)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	code := run(context.Background(), []string{"snyk-highlight"}, stdout, stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "no annotation file given")
}

func Test_run_printsVersion(t *testing.T) {
	testutil.UnitTest(t)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	code := run(context.Background(), []string{"snyk-highlight", "-v"}, stdout, stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, config.Version+"\n", stdout.String())
}

func Test_run_printsDiagnostics(t *testing.T) {
	testutil.NotOnWindows(t, "file uris are platform specific")
	testutil.UnitTest(t)
	t.Setenv(config.FormatEnvVar, "")
	dir := t.TempDir()
	testutil.CreateFileOrFail(t, filepath.Join(dir, "main.go"), []byte("package main\n\nfunc main() {}\n"))
	path := filepath.Join(dir, "annotations.yaml")
	testutil.CreateFileOrFail(t, path, []byte(annotations))
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	code := run(context.Background(), []string{"snyk-highlight", "--output", report.OutputJson, "-o", config.FormatHtml, path}, stdout, stderr)

	require.Equal(t, 0, code, stderr.String())
	var params sglsp.PublishDiagnosticsParams
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &params))
	require.Len(t, params.Diagnostics, 1)
	d := params.Diagnostics[0]
	assert.Equal(t, sglsp.Error, d.Severity)
	assert.Equal(t, 2, d.Range.Start.Line)
	assert.Contains(t, d.Message, "<strong>broken</strong>")
}

func Test_run_printsHover(t *testing.T) {
	testutil.UnitTest(t)
	t.Setenv(config.FormatEnvVar, "")
	dir := t.TempDir()
	testutil.CreateFileOrFail(t, filepath.Join(dir, "main.go"), []byte("package main\n\nfunc main() {}\n"))
	path := filepath.Join(dir, "annotations.yaml")
	testutil.CreateFileOrFail(t, path, []byte(annotations))
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	code := run(context.Background(), []string{"snyk-highlight", "--hover", "3:2", path}, stdout, stderr)

	require.Equal(t, 0, code, stderr.String())
	var result hover.Result
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
	assert.Equal(t, "**broken**", result.Contents.Value)
}

func Test_run_rejectsInvalidHoverPosition(t *testing.T) {
	testutil.UnitTest(t)
	dir := t.TempDir()
	testutil.CreateFileOrFail(t, filepath.Join(dir, "main.go"), []byte("package main\n\nfunc main() {}\n"))
	path := filepath.Join(dir, "annotations.yaml")
	testutil.CreateFileOrFail(t, path, []byte(annotations))
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	code := run(context.Background(), []string{"snyk-highlight", "--hover", "zero", path}, stdout, stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "invalid hover position")
}

func Test_run_reportsBrokenFiles(t *testing.T) {
	testutil.UnitTest(t)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	code := run(context.Background(), []string{"snyk-highlight", filepath.Join(t.TempDir(), "missing.yaml")}, stdout, stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "couldn't read annotation file")
}
