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

package converter

import (
	"github.com/gomarkdown/markdown"
	sglsp "github.com/sourcegraph/go-lsp"

	"github.com/snyk/snyk-highlight/application/config"
	"github.com/snyk/snyk-highlight/domain/highlight"
	"github.com/snyk/snyk-highlight/internal/types"
	"github.com/snyk/snyk-highlight/internal/uri"
)

const diagnosticSource = "snyk-highlight"

func ToSeverity(severity types.Severity) sglsp.DiagnosticSeverity {
	switch {
	case severity.AtLeast(types.Error):
		return sglsp.Error
	case severity.AtLeast(types.Warning):
		return sglsp.Warning
	case severity.AtLeast(types.Info):
		return sglsp.Information
	default:
		return sglsp.Hint
	}
}

// ToMessage renders the description of a record in the requested format
func ToMessage(r *highlight.Record, format string) string {
	if format == config.FormatHtml {
		return string(markdown.ToHTML([]byte(r.Description()), nil, nil))
	}
	return r.Description()
}

func ToDiagnostic(index *LineIndex, r *highlight.Record, format string) sglsp.Diagnostic {
	return sglsp.Diagnostic{
		Range:    index.ToRange(r.Range()),
		Severity: ToSeverity(r.Severity()),
		Code:     r.Type().Name(),
		Source:   diagnosticSource,
		Message:  ToMessage(r, format),
	}
}

// ToDiagnostics converts the records of document. Records without a description are painted only and have no diagnostic.
func ToDiagnostics(document types.Document, records []*highlight.Record, format string) []sglsp.Diagnostic {
	// In JSON, `nil` serializes to `null`, while an empty slice serializes to `[]`.
	// Sending null instead of an empty array leads to stored diagnostics not being cleared.
	diagnostics := []sglsp.Diagnostic{}
	index := NewLineIndex(document.Text())
	for _, r := range records {
		if r.Description() == "" {
			continue
		}
		diagnostics = append(diagnostics, ToDiagnostic(index, r, format))
	}
	return diagnostics
}

func ToPublishDiagnosticsParams(document types.Document, records []*highlight.Record, format string) sglsp.PublishDiagnosticsParams {
	return sglsp.PublishDiagnosticsParams{
		URI:         uri.PathToUri(document.Path()),
		Diagnostics: ToDiagnostics(document, records, format),
	}
}
