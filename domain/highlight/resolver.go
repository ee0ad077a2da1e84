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
	"github.com/snyk/snyk-highlight/internal/types"
)

//go:generate go tool github.com/golang/mock/mockgen -source=resolver.go -destination mock_highlight/resolver_mock.go -package mock_highlight

// SeverityRegistry holds the attributes users configured for severities, per scope
type SeverityRegistry interface {
	AttributesFor(severity types.Severity, scope types.Scope) *types.TextAttributes
}

// ColorScheme is the global color scheme
type ColorScheme interface {
	AttributesFor(key types.TextAttributesKey) *types.TextAttributes
	// StripeColorFor returns the dedicated error stripe color of a built-in severity
	StripeColorFor(severity types.Severity) *types.Color
}

// AttributeResolver decides how a record is rendered: forced attributes win, then the severity registry,
// then the color scheme entry of the record's highlight type.
type AttributeResolver struct {
	registry SeverityRegistry
	scheme   ColorScheme
}

func NewAttributeResolver(registry SeverityRegistry, scheme ColorScheme) *AttributeResolver {
	return &AttributeResolver{registry: registry, scheme: scheme}
}

// Resolve returns nil if nothing is configured; callers render such records neutrally
func (a *AttributeResolver) Resolve(r *Record, scope types.Scope) *types.TextAttributes {
	if r.forcedAttributes != nil {
		return r.forcedAttributes
	}
	return a.attributesFor(r.severity, r.highlightType, scope)
}

// AttributesByType resolves attributes for the default severity of t
func (a *AttributeResolver) AttributesByType(t HighlightType, scope types.Scope) *types.TextAttributes {
	return a.attributesFor(t.Severity(), t, scope)
}

func (a *AttributeResolver) attributesFor(severity types.Severity, t HighlightType, scope types.Scope) *types.TextAttributes {
	if a.registry != nil {
		if attributes := a.registry.AttributesFor(severity, scope); attributes != nil {
			return attributes
		}
	}
	if a.scheme == nil {
		return nil
	}
	return a.scheme.AttributesFor(t.AttributesKey())
}

var stripeSeverities = []types.Severity{types.Error, types.Warning, types.Info, types.GenericServerErrorOrWarning}

// ResolveStripeColor returns the color of the error stripe mark of r. The built-in severities always use the
// scheme's dedicated stripe colors, so markers look the same with or without a severity registry.
func (a *AttributeResolver) ResolveStripeColor(r *Record, scope types.Scope) *types.Color {
	if r.forcedAttributes != nil && r.forcedAttributes.ErrorStripeColor.IsSet() {
		c := r.forcedAttributes.ErrorStripeColor
		return &c
	}
	if a.scheme != nil {
		for _, s := range stripeSeverities {
			if r.severity == s {
				return a.scheme.StripeColorFor(s)
			}
		}
	}
	attributes := a.Resolve(r, scope)
	if attributes == nil || !attributes.ErrorStripeColor.IsSet() {
		return nil
	}
	c := attributes.ErrorStripeColor
	return &c
}
