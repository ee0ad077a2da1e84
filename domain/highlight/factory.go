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

package highlight

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/snyk/snyk-highlight/domain/observability/error_reporting"
	"github.com/snyk/snyk-highlight/internal/types"
)

// Factory builds records for analyzers. Element based paths run the filter chain; paths that take
// explicit attributes are used for internally synthesized highlights and skip it.
type Factory struct {
	resolver   *AttributeResolver
	filters    FilterChain
	logger     zerolog.Logger
	invariants invariantReporter
}

func NewFactory(resolver *AttributeResolver, filters FilterChain, logger *zerolog.Logger, reporter error_reporting.ErrorReporter) *Factory {
	l := zerolog.Nop()
	if logger != nil {
		l = logger.With().Str("service", "HighlightFactory").Logger()
	}
	return &Factory{
		resolver:   resolver,
		filters:    filters,
		logger:     l,
		invariants: invariantReporter{logger: l, reporter: reporter},
	}
}

// Create highlights the whole element, using the escaped description as tooltip.
// It returns false if a filter vetoed the record.
func (f *Factory) Create(t HighlightType, element types.Element, description string) (*Record, bool) {
	return f.CreateWithTooltip(t, element, description, EscapeTooltip(description))
}

func (f *Factory) CreateWithTooltip(t HighlightType, element types.Element, description string, tooltip string) (*Record, bool) {
	r := element.TextRange()
	return f.create(t, element, r.StartOffset, r.EndOffset, description, tooltip, Options{})
}

// CreateAfterEndOfLine highlights the last character of the element and marks the record to be painted after
// the end of the line, e.g. for a missing semicolon.
func (f *Factory) CreateAfterEndOfLine(t HighlightType, element types.Element, description string, tooltip string) (*Record, bool) {
	end := element.TextRange().EndOffset
	return f.create(t, element, end-1, end, description, tooltip, Options{AfterEndOfLine: true})
}

// CreateAt highlights an explicit span. element may be nil for default severities.
func (f *Factory) CreateAt(t HighlightType, element types.Element, start, end int, description string, tooltip string) (*Record, bool) {
	return f.create(t, element, start, end, description, tooltip, Options{})
}

// CreateForRange highlights a span that is not backed by an element. Filters see a nil document.
func (f *Factory) CreateForRange(t HighlightType, r types.TextRange, description string) (*Record, bool) {
	return f.CreateForRangeWithTooltip(t, r, description, EscapeTooltip(description))
}

func (f *Factory) CreateForRangeWithTooltip(t HighlightType, r types.TextRange, description string, tooltip string) (*Record, bool) {
	return f.create(t, nil, r.StartOffset, r.EndOffset, description, tooltip, Options{})
}

// CreateWithAttributes builds a trusted record with explicit attributes. Filters are not consulted.
func (f *Factory) CreateWithAttributes(t HighlightType, r types.TextRange, description string, tooltip string, attributes *types.TextAttributes) *Record {
	record := NewRecord(t, r.StartOffset, r.EndOffset, description, EscapeTooltip(tooltip), Options{ForcedAttributes: attributes})
	f.invariants.report(record.Validate())
	f.resolve(record, types.NoScope)
	return record
}

// CreateForElementWithAttributes builds a trusted record for element that never needs an update while typing.
// Filters are not consulted.
func (f *Factory) CreateForElementWithAttributes(t HighlightType, element types.Element, message string, attributes *types.TextAttributes) *Record {
	r := element.TextRange()
	record := NewRecord(t, r.StartOffset, r.EndOffset, message, EscapeTooltip(message), Options{
		ForcedAttributes: attributes,
		TypingUpdate:     TypingUpdateNever,
	})
	f.invariants.report(record.Validate())
	f.resolve(record, element.Scope())
	return record
}

func (f *Factory) create(t HighlightType, element types.Element, start, end int, description, tooltip string, opts Options) (*Record, bool) {
	if element == nil && !t.Severity().IsDefault() {
		f.invariants.report(errors.Wrapf(ErrMissingElement, "type=%s; severity=%s", t, t.Severity()))
	}
	record := NewRecord(t, start, end, description, tooltip, opts)
	f.invariants.report(record.Validate())
	f.resolve(record, types.ScopeOf(element))

	if !f.filters.Accept(record, types.DocumentOf(element)) {
		f.logger.Trace().Str("record", record.String()).Msg("record rejected by filter")
		return nil, false
	}
	return record, true
}

func (f *Factory) resolve(record *Record, scope types.Scope) {
	if f.resolver == nil {
		return
	}
	record.setAttributes(f.resolver.Resolve(record, scope))
}
