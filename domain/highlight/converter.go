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
	"github.com/rs/zerolog"

	"github.com/snyk/snyk-highlight/domain/observability/error_reporting"
	"github.com/snyk/snyk-highlight/internal/types"
)

// Converter turns annotations into records
type Converter struct {
	scheme     ColorScheme
	source     OptionsSource
	logger     zerolog.Logger
	invariants invariantReporter
}

func NewConverter(scheme ColorScheme, source OptionsSource, logger *zerolog.Logger, reporter error_reporting.ErrorReporter) *Converter {
	l := zerolog.Nop()
	if logger != nil {
		l = logger.With().Str("service", "AnnotationConverter").Logger()
	}
	return &Converter{
		scheme:     scheme,
		source:     source,
		logger:     l,
		invariants: invariantReporter{logger: l, reporter: reporter},
	}
}

// FromAnnotation converts a without consulting any filter. A non-nil fixedRange replaces the annotation's span
// and the span of every attached quick fix.
func (c *Converter) FromAnnotation(a *Annotation, fixedRange *types.TextRange) *Record {
	attributes := a.EnforcedAttributes
	if attributes == nil && c.scheme != nil {
		if key := a.TextAttributesKey(); key != "" {
			attributes = c.scheme.AttributesFor(key)
		}
	}

	start, end := a.StartOffset, a.EndOffset
	if fixedRange != nil {
		start, end = fixedRange.StartOffset, fixedRange.EndOffset
	}
	severity := a.Severity
	record := NewRecord(ConvertType(a), start, end, a.Message, a.Tooltip, Options{
		ForcedAttributes: attributes,
		Severity:         &severity,
		AfterEndOfLine:   a.AfterEndOfLine,
		TypingUpdate:     TypingUpdateOf(a.NeedsUpdateOnTyping),
	})
	c.invariants.report(record.Validate())
	record.setAttributes(attributes)
	record.SetGutterIconRenderer(a.GutterIconRenderer)
	record.SetFileLevel(a.FileLevel)

	for _, fix := range a.QuickFixes {
		if fix.Action == nil {
			continue
		}
		fixRange := fix.Range
		if fixedRange != nil {
			fixRange = *fixedRange
		}
		var descriptor *QuickFixDescriptor
		if fix.Key == nil && fix.Options != nil {
			descriptor = NewQuickFixDescriptorWithOptions(fix.Action, fix.Options, fix.DisplayName)
		} else {
			descriptor = NewQuickFixDescriptor(fix.Action, fix.Key, c.source)
		}
		record.RegisterQuickFix(descriptor, &fixRange)
	}
	c.logger.Trace().Str("record", record.String()).Int("quickFixes", len(a.QuickFixes)).Msg("converted annotation")
	return record
}

// ConvertType maps an annotation to a highlight type. The hint wins over the severity.
func ConvertType(a *Annotation) HighlightType {
	switch a.HighlightType {
	case LikeUnusedSymbol:
		return UnusedSymbol
	case LikeUnknownSymbol:
		return WrongRef
	case LikeDeprecated:
		return Deprecated
	}
	return ConvertSeverity(a.Severity)
}

// ConvertSeverity maps the built-in severities to their highlight types; anything else is Information
func ConvertSeverity(severity types.Severity) HighlightType {
	switch severity {
	case types.Error:
		return Error
	case types.Warning:
		return Warning
	case types.Info:
		return Info
	}
	return Information
}
