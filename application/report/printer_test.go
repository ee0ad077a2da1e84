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

package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	sglsp "github.com/sourcegraph/go-lsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snyk/snyk-highlight/application/codeaction"
	"github.com/snyk/snyk-highlight/application/config"
	"github.com/snyk/snyk-highlight/application/watcher"
	"github.com/snyk/snyk-highlight/domain/highlight"
	"github.com/snyk/snyk-highlight/infrastructure/highlightcache"
	"github.com/snyk/snyk-highlight/internal/testutil"
	"github.com/snyk/snyk-highlight/internal/types"
)

type fix struct {
	title string
}

func (f *fix) Text() string       { return f.title }
func (f *fix) FamilyName() string { return f.title }

var document = types.NewTextDocument("/workspace/main.go", "package main\n\nfunc main() {\n\tx := 1\n}\n")

func records() []*highlight.Record {
	unused := highlight.NewRecord(highlight.UnusedSymbol, 29, 30, "x declared and not used", "", highlight.Options{})
	unused.RegisterQuickFix(highlight.NewQuickFixDescriptorWithOptions(&fix{"Remove variable"}, []highlight.Action{&fix{"Suppress"}}, ""), nil)
	local := highlight.NewRecord(highlight.LocalVariable, 29, 30, "", "", highlight.Options{})
	return []*highlight.Record{unused, local}
}

func withoutColor(t *testing.T) {
	t.Helper()
	previous := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = previous })
}

func TestNewPrinter(t *testing.T) {
	c := testutil.UnitTest(t)

	text, err := NewPrinter(c, "", &bytes.Buffer{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &TextPrinter{}, text)

	j, err := NewPrinter(c, OutputJson, &bytes.Buffer{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &JsonPrinter{}, j)

	_, err = NewPrinter(c, "xml", &bytes.Buffer{}, nil)
	assert.Error(t, err)
}

func TestTextPrinter(t *testing.T) {
	withoutColor(t)
	c := testutil.UnitTest(t)
	cache := highlightcache.NewHighlightCache(c.CacheExpiration(), c.Logger())
	recs := records()
	cache.Publish(document.Path(), 1, recs)
	actions := codeaction.NewService(c, cache, watcher.NewFileWatcher())
	out := &bytes.Buffer{}
	printer, err := NewPrinter(c, OutputText, out, actions)
	require.NoError(t, err)

	err = printer.Print(document, types.NoScope, recs)

	require.NoError(t, err)
	assert.Equal(t, "/workspace/main.go:4:2: WARNING [UNUSED_SYMBOL] x declared and not used\n"+
		"    fix: Remove variable\n"+
		"        - Suppress\n"+
		"/workspace/main.go:4:2: INFORMATION [LOCAL_VARIABLE] (LOCAL_VARIABLE)\n", out.String())
}

func TestJsonPrinter(t *testing.T) {
	testutil.NotOnWindows(t, "file uris are platform specific")
	c := testutil.UnitTest(t)
	c.SetFormat(config.FormatHtml)
	out := &bytes.Buffer{}
	printer, err := NewPrinter(c, OutputJson, out, nil)
	require.NoError(t, err)

	err = printer.Print(document, types.NoScope, records())

	require.NoError(t, err)
	var params sglsp.PublishDiagnosticsParams
	require.NoError(t, json.Unmarshal(out.Bytes(), &params))
	assert.Equal(t, sglsp.DocumentURI("file:///workspace/main.go"), params.URI)
	require.Len(t, params.Diagnostics, 1)
	assert.Equal(t, sglsp.Warning, params.Diagnostics[0].Severity)
	assert.Contains(t, params.Diagnostics[0].Message, "<p>x declared and not used</p>")
}
