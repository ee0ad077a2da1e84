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
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	sglsp "github.com/sourcegraph/go-lsp"

	"github.com/snyk/snyk-highlight/application/codeaction"
	"github.com/snyk/snyk-highlight/application/config"
	"github.com/snyk/snyk-highlight/domain/highlight"
	"github.com/snyk/snyk-highlight/domain/ide/converter"
	"github.com/snyk/snyk-highlight/internal/types"
)

const (
	OutputText = "text"
	OutputJson = "json"
)

// Printer writes the published highlights of a document
type Printer interface {
	Print(document types.Document, scope types.Scope, records []*highlight.Record) error
}

// NewPrinter returns the printer for output, one of OutputText and OutputJson
func NewPrinter(c *config.Config, output string, out io.Writer, actions *codeaction.CodeActionsService) (Printer, error) {
	logger := c.Logger().With().Str("service", "Printer").Str("output", output).Logger()
	switch output {
	case OutputText, "":
		return &TextPrinter{out: out, actions: actions, logger: logger}, nil
	case OutputJson:
		return &JsonPrinter{out: out, format: c.Format()}, nil
	default:
		return nil, errors.Errorf("unknown output %q, expected %q or %q", output, OutputText, OutputJson)
	}
}

// TextPrinter prints one line per highlight, colored by severity, followed by its quick fixes
type TextPrinter struct {
	out     io.Writer
	actions *codeaction.CodeActionsService
	logger  zerolog.Logger
}

var _ Printer = (*TextPrinter)(nil)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	hintColor    = color.New(color.Faint)
	fixColor     = color.New(color.FgGreen)
)

func severityColor(severity types.Severity) *color.Color {
	switch converter.ToSeverity(severity) {
	case sglsp.Error:
		return errorColor
	case sglsp.Warning:
		return warningColor
	case sglsp.Information:
		return infoColor
	default:
		return hintColor
	}
}

func (p *TextPrinter) Print(document types.Document, scope types.Scope, records []*highlight.Record) error {
	index := converter.NewLineIndex(document.Text())
	for _, r := range records {
		pos := index.ToPosition(r.StartOffset())
		label := severityColor(r.Severity()).Sprint(r.Severity().Name)
		description := r.Description()
		if description == "" {
			description = "(" + r.Type().Name() + ")"
		}
		_, err := fmt.Fprintf(p.out, "%s:%d:%d: %s [%s] %s\n", document.Path(), pos.Line+1, pos.Character+1, label, r.Type().Name(), description)
		if err != nil {
			return errors.Wrap(err, "couldn't print highlight")
		}
		if err = p.printFixes(document, scope, index, r); err != nil {
			return err
		}
	}
	return nil
}

func (p *TextPrinter) printFixes(document types.Document, scope types.Scope, index *converter.LineIndex, r *highlight.Record) error {
	if p.actions == nil || len(r.QuickFixes()) == 0 {
		return nil
	}
	actions := p.actions.GetCodeActions(codeaction.Params{Document: document, Scope: scope, Range: index.ToRange(r.Range())})
	for _, action := range actions {
		if action.Data != nil {
			resolved, err := p.actions.ResolveCodeAction(action)
			if err != nil {
				p.logger.Warn().Err(err).Str("method", "printFixes").Msg("couldn't resolve quick fix options")
			} else {
				action = resolved
			}
		}
		if _, err := fmt.Fprintf(p.out, "    %s %s\n", fixColor.Sprint("fix:"), action.Title); err != nil {
			return errors.Wrap(err, "couldn't print quick fix")
		}
		for _, option := range action.Options {
			if _, err := fmt.Fprintf(p.out, "        - %s\n", option); err != nil {
				return errors.Wrap(err, "couldn't print quick fix option")
			}
		}
	}
	return nil
}

// JsonPrinter writes one LSP publishDiagnostics payload per document
type JsonPrinter struct {
	out    io.Writer
	format string
}

var _ Printer = (*JsonPrinter)(nil)

func (p *JsonPrinter) Print(document types.Document, _ types.Scope, records []*highlight.Record) error {
	encoder := json.NewEncoder(p.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(converter.ToPublishDiagnosticsParams(document, records, p.format)), "couldn't encode diagnostics")
}
