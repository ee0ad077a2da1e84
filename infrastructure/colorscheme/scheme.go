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

// Package colorscheme loads the color scheme used to render highlights
package colorscheme

import (
	"github.com/snyk/snyk-highlight/domain/highlight"
	"github.com/snyk/snyk-highlight/internal/types"
)

// Scheme maps attribute keys to attributes and built-in severities to their error stripe colors.
// A Scheme is immutable once built and safe for concurrent use.
type Scheme struct {
	name         string
	attributes   map[types.TextAttributesKey]*types.TextAttributes
	stripeColors map[string]types.Color
}

var _ highlight.ColorScheme = (*Scheme)(nil)

func (s *Scheme) Name() string {
	return s.name
}

// AttributesFor returns nil if the scheme has no entry for key
func (s *Scheme) AttributesFor(key types.TextAttributesKey) *types.TextAttributes {
	return s.attributes[key]
}

// StripeColorFor returns the error stripe color configured for a severity, nil if there is none
func (s *Scheme) StripeColorFor(severity types.Severity) *types.Color {
	c, ok := s.stripeColors[severity.Name]
	if !ok || !c.IsSet() {
		return nil
	}
	return &c
}

// Keys returns the number of attribute entries
func (s *Scheme) Keys() int {
	return len(s.attributes)
}

// merge returns a scheme with the entries of override on top of s
func (s *Scheme) merge(override *Scheme) *Scheme {
	merged := &Scheme{
		name:         override.name,
		attributes:   make(map[types.TextAttributesKey]*types.TextAttributes, len(s.attributes)+len(override.attributes)),
		stripeColors: make(map[string]types.Color, len(s.stripeColors)+len(override.stripeColors)),
	}
	for k, v := range s.attributes {
		merged.attributes[k] = v
	}
	for k, v := range override.attributes {
		merged.attributes[k] = v
	}
	for k, v := range s.stripeColors {
		merged.stripeColors[k] = v
	}
	for k, v := range override.stripeColors {
		merged.stripeColors[k] = v
	}
	return merged
}
