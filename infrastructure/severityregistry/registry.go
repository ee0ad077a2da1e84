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

// Package severityregistry keeps the severities users defined per scope and the attributes they render with
package severityregistry

import (
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"github.com/snyk/snyk-highlight/domain/highlight"
	"github.com/snyk/snyk-highlight/internal/types"
)

type registeredSeverity struct {
	severity   types.Severity
	attributes *types.TextAttributes
}

type scopedSeverities = *xsync.MapOf[string, registeredSeverity]

// Registry is safe for concurrent use. Lookups in a scope fall back to types.NoScope.
type Registry struct {
	scopes *xsync.MapOf[types.Scope, scopedSeverities]
	logger zerolog.Logger
}

var _ highlight.SeverityRegistry = (*Registry)(nil)

func New(logger *zerolog.Logger) *Registry {
	return &Registry{
		scopes: xsync.NewMapOf[types.Scope, scopedSeverities](),
		logger: logger.With().Str("service", "SeverityRegistry").Logger(),
	}
}

func (r *Registry) scope(scope types.Scope) scopedSeverities {
	severities, _ := r.scopes.LoadOrCompute(scope, func() scopedSeverities {
		return xsync.NewMapOf[string, registeredSeverity]()
	})
	return severities
}

// Register adds or replaces a severity in scope. attributes may be nil if the severity has no special rendering.
func (r *Registry) Register(scope types.Scope, severity types.Severity, attributes *types.TextAttributes) {
	r.scope(scope).Store(key(severity.Name), registeredSeverity{severity: severity, attributes: attributes})
	r.logger.Debug().Str("method", "Register").Str("scope", string(scope)).Str("severity", severity.Name).Msg("registered severity")
}

func (r *Registry) Unregister(scope types.Scope, name string) {
	if severities, ok := r.scopes.Load(scope); ok {
		severities.Delete(key(name))
	}
}

// AttributesFor returns the attributes registered for severity, nil if there are none
func (r *Registry) AttributesFor(severity types.Severity, scope types.Scope) *types.TextAttributes {
	registered, ok := r.lookup(severity.Name, scope)
	if !ok || registered.severity != severity {
		return nil
	}
	return registered.attributes
}

// SeverityByName resolves a custom severity registered in scope, then a built-in one
func (r *Registry) SeverityByName(name string, scope types.Scope) (types.Severity, bool) {
	if registered, ok := r.lookup(name, scope); ok {
		return registered.severity, true
	}
	severity, err := types.ParseSeverity(name)
	return severity, err == nil
}

// Severities lists the severities registered for scope, including global ones, least important first
func (r *Registry) Severities(scope types.Scope) []types.Severity {
	byName := map[string]types.Severity{}
	collect := func(s types.Scope) {
		if severities, ok := r.scopes.Load(s); ok {
			severities.Range(func(name string, registered registeredSeverity) bool {
				byName[name] = registered.severity
				return true
			})
		}
	}
	collect(types.NoScope)
	if scope != types.NoScope {
		collect(scope)
	}
	result := make([]types.Severity, 0, len(byName))
	for _, s := range byName {
		result = append(result, s)
	}
	slices.SortFunc(result, func(a, b types.Severity) int {
		return a.Compare(b)
	})
	return result
}

func (r *Registry) lookup(name string, scope types.Scope) (registeredSeverity, bool) {
	k := key(name)
	if severities, ok := r.scopes.Load(scope); ok {
		if registered, found := severities.Load(k); found {
			return registered, true
		}
	}
	if scope == types.NoScope {
		return registeredSeverity{}, false
	}
	if severities, ok := r.scopes.Load(types.NoScope); ok {
		return severities.Load(k)
	}
	return registeredSeverity{}, false
}

func key(name string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "_", " "))
}
