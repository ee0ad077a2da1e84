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
	"fmt"
	"strings"

	"github.com/snyk/snyk-highlight/internal/types"
)

// ProblemHighlightType is a hint an analyzer gives about how its annotation should look
type ProblemHighlightType int8

const (
	GenericErrorOrWarning ProblemHighlightType = iota
	LikeUnknownSymbol
	LikeDeprecated
	LikeUnusedSymbol
	GenericError
	WeakWarningHighlight
	InformationHighlight
)

var problemHighlightTypeNames = []string{
	GenericErrorOrWarning: "generic_error_or_warning",
	LikeUnknownSymbol:     "like_unknown_symbol",
	LikeDeprecated:        "like_deprecated",
	LikeUnusedSymbol:      "like_unused_symbol",
	GenericError:          "generic_error",
	WeakWarningHighlight:  "weak_warning",
	InformationHighlight:  "information",
}

func (p ProblemHighlightType) String() string {
	if int(p) < 0 || int(p) >= len(problemHighlightTypeNames) {
		return "unknown"
	}
	return problemHighlightTypeNames[p]
}

// ParseProblemHighlightType accepts the names returned by String; "" is GenericErrorOrWarning
func ParseProblemHighlightType(s string) (ProblemHighlightType, error) {
	if s == "" {
		return GenericErrorOrWarning, nil
	}
	for i, name := range problemHighlightTypeNames {
		if strings.EqualFold(name, s) {
			return ProblemHighlightType(i), nil
		}
	}
	return GenericErrorOrWarning, fmt.Errorf("unknown highlight type hint %q", s)
}

// QuickFixInfo is a quick fix attached to an annotation. Either Key (lazy options) or Options are set.
type QuickFixInfo struct {
	Action      Action
	Key         *DisplayKey
	Options     []Action
	DisplayName string
	Range       types.TextRange
}

// Annotation is the simple diagnostic shape produced by lightweight analyzers. Annotations are trusted:
// converting them into records skips the filter chain.
type Annotation struct {
	Severity           types.Severity
	Message            string
	Tooltip            string
	EnforcedAttributes *types.TextAttributes
	// AttributesKey selects a color scheme entry; when empty the key is derived from severity and hint
	AttributesKey       types.TextAttributesKey
	StartOffset         int
	EndOffset           int
	AfterEndOfLine      bool
	FileLevel           bool
	HighlightType       ProblemHighlightType
	NeedsUpdateOnTyping *bool
	GutterIconRenderer  GutterIconRenderer
	QuickFixes          []QuickFixInfo
}

// NewAnnotation creates an annotation whose tooltip defaults to the escaped message
func NewAnnotation(start, end int, severity types.Severity, message string) *Annotation {
	return &Annotation{
		Severity:    severity,
		Message:     message,
		Tooltip:     EscapeTooltip(message),
		StartOffset: start,
		EndOffset:   end,
	}
}

func (a *Annotation) Range() types.TextRange {
	return types.NewTextRange(a.StartOffset, a.EndOffset)
}

// RegisterFix attaches a fix whose options are resolved lazily from key. A nil fixRange targets the annotation.
func (a *Annotation) RegisterFix(action Action, fixRange *types.TextRange, key *DisplayKey) {
	a.QuickFixes = append(a.QuickFixes, QuickFixInfo{Action: action, Key: key, Range: a.fixRange(fixRange)})
}

// RegisterFixWithOptions attaches a fix with precomputed options
func (a *Annotation) RegisterFixWithOptions(action Action, fixRange *types.TextRange, options []Action, displayName string) {
	a.QuickFixes = append(a.QuickFixes, QuickFixInfo{
		Action:      action,
		Options:     options,
		DisplayName: displayName,
		Range:       a.fixRange(fixRange),
	})
}

func (a *Annotation) fixRange(fixRange *types.TextRange) types.TextRange {
	if fixRange != nil {
		return *fixRange
	}
	return a.Range()
}

// TextAttributesKey returns the explicit key or derives one from hint and severity.
// "" means the annotation is not highlighted through the color scheme.
func (a *Annotation) TextAttributesKey() types.TextAttributesKey {
	if a.AttributesKey != "" {
		return a.AttributesKey
	}
	switch a.HighlightType {
	case GenericErrorOrWarning:
		switch a.Severity {
		case types.Error:
			return types.ErrorsAttributes
		case types.Warning:
			return types.WarningsAttributes
		case types.WeakWarning:
			return types.WeakWarningAttributes
		case types.Info:
			return types.InfoAttributes
		case types.GenericServerErrorOrWarning:
			return types.ServerProblemAttributes
		}
	case LikeDeprecated:
		return types.DeprecatedAttributes
	case LikeUnusedSymbol:
		return types.NotUsedElementAttributes
	case LikeUnknownSymbol:
		return types.WrongReferencesAttributes
	case GenericError:
		return types.ErrorsAttributes
	case WeakWarningHighlight:
		return types.WeakWarningAttributes
	case InformationHighlight:
		return types.InformationAttributes
	}
	return ""
}
