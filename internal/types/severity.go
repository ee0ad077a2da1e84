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

package types

import (
	"fmt"
	"strings"
)

// Severity classifies how important a highlight is. Severities are ordered by Value;
// two severities with the same value are ordered by name so the order stays total.
type Severity struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Value int    `json:"value" yaml:"value" toml:"value"`
}

var (
	// Information is used for highlights that carry no problem, e.g. syntax coloring
	Information = Severity{Name: "INFORMATION", Value: 10}
	// GenericServerErrorOrWarning is reported by external tools that do not map onto a local severity
	GenericServerErrorOrWarning = Severity{Name: "SERVER PROBLEM", Value: 100}
	Info                        = Severity{Name: "INFO", Value: 200}
	WeakWarning                 = Severity{Name: "WEAK WARNING", Value: 200}
	Warning                     = Severity{Name: "WARNING", Value: 300}
	Error                       = Severity{Name: "ERROR", Value: 400}
)

// DefaultSeverities are the severities that every color scheme knows how to render.
// Highlights with any other severity need a scope to resolve their attributes.
var DefaultSeverities = []Severity{Information, GenericServerErrorOrWarning, Info, Warning, Error}

var builtinSeverities = map[string]Severity{
	Information.Name:                 Information,
	GenericServerErrorOrWarning.Name: GenericServerErrorOrWarning,
	Info.Name:                        Info,
	WeakWarning.Name:                 WeakWarning,
	Warning.Name:                     Warning,
	Error.Name:                       Error,
}

// NewSeverity creates a custom severity
func NewSeverity(name string, value int) Severity {
	return Severity{Name: name, Value: value}
}

// ParseSeverity resolves the name of a built-in severity. Underscores are accepted in place of
// spaces and the lookup is case-insensitive.
func ParseSeverity(name string) (Severity, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "_", " "))
	if s, ok := builtinSeverities[normalized]; ok {
		return s, nil
	}
	return Severity{}, fmt.Errorf("unknown severity: %q", name)
}

func (s Severity) String() string {
	return s.Name
}

// IsDefault reports whether s is one of DefaultSeverities
func (s Severity) IsDefault() bool {
	for _, d := range DefaultSeverities {
		if d == s {
			return true
		}
	}
	return false
}

// Compare returns -1, 0 or +1 depending on whether s is less than, equal to or greater than other.
func (s Severity) Compare(other Severity) int {
	switch {
	case s.Value < other.Value:
		return -1
	case s.Value > other.Value:
		return 1
	}
	return strings.Compare(s.Name, other.Name)
}

func (s Severity) Less(other Severity) bool {
	return s.Compare(other) < 0
}

// AtLeast reports whether s is as important as threshold (by value only)
func (s Severity) AtLeast(threshold Severity) bool {
	return s.Value >= threshold.Value
}
