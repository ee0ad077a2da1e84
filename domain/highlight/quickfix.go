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
	"sync"

	"github.com/google/uuid"

	"github.com/snyk/snyk-highlight/internal/types"
)

//go:generate go tool github.com/golang/mock/mockgen -source=quickfix.go -destination mock_highlight/quickfix_mock.go -package mock_highlight

// Action is a remediation offered for a highlight. Applying it is up to the presentation layer.
type Action interface {
	// Text is the human-readable description shown in menus
	Text() string
	// FamilyName groups actions of the same kind, e.g. all "remove unused import" fixes
	FamilyName() string
}

// WrappedAction adapts another action, e.g. an inspection fix exposed as an intention
type WrappedAction interface {
	Action
	Unwrap() Action
}

// InspectionTool is the analysis that produced a highlight
type InspectionTool interface {
	ShortName() string
	DisplayName() string
	// IsLocal reports whether the tool inspects a single file, which allows a "fix all in file" cleanup
	IsLocal() bool
}

// SuppressibleTool is a tool that can offer suppression actions for an element
type SuppressibleTool interface {
	InspectionTool
	SuppressActions(element types.Element) []Action
}

// IntentionOptions provides the standard options registered for an inspection key
type IntentionOptions interface {
	StandardOptions(key DisplayKey, element types.Element) []Action
}

// InspectionProfiles resolves the tool registered for a key in the profile active for the element's scope
type InspectionProfiles interface {
	Tool(key DisplayKey, element types.Element) InspectionTool
}

// OptionsSource bundles the collaborators needed to resolve quick fix options lazily
type OptionsSource struct {
	Intentions IntentionOptions
	Profiles   InspectionProfiles
}

// CleanupAction applies every fix of one family reported by a tool across the whole file
type CleanupAction struct {
	Tool      InspectionTool
	FixFamily string
}

var _ Action = (*CleanupAction)(nil)

func (c *CleanupAction) Text() string {
	return fmt.Sprintf("Fix all '%s' problems in file", c.Tool.DisplayName())
}

func (c *CleanupAction) FamilyName() string {
	return "Cleanup code"
}

// QuickFixDescriptor is a quick fix together with its alternative and suppression options.
// Options are either given up front or computed from a display key on first access.
type QuickFixDescriptor struct {
	id          uuid.UUID
	action      Action
	displayName string
	source      OptionsSource

	m        sync.RWMutex
	key      *DisplayKey
	options  []Action
	resolved bool
}

// NewQuickFixDescriptor creates a descriptor whose options are computed lazily for key
func NewQuickFixDescriptor(action Action, key *DisplayKey, source OptionsSource) *QuickFixDescriptor {
	d := &QuickFixDescriptor{
		id:     uuid.New(),
		action: action,
		source: source,
	}
	if key != nil {
		k := *key
		d.key = &k
		d.displayName = k.DisplayName
	}
	return d
}

// NewQuickFixDescriptorWithOptions creates a descriptor with precomputed options
func NewQuickFixDescriptorWithOptions(action Action, options []Action, displayName string) *QuickFixDescriptor {
	return &QuickFixDescriptor{
		id:          uuid.New(),
		action:      action,
		displayName: displayName,
		options:     options,
		resolved:    true,
	}
}

// ID is used by clients to resolve the descriptor later
func (d *QuickFixDescriptor) ID() uuid.UUID {
	return d.id
}

func (d *QuickFixDescriptor) Action() Action {
	return d.action
}

func (d *QuickFixDescriptor) DisplayName() string {
	return d.displayName
}

// IsResolved reports whether the options have been computed
func (d *QuickFixDescriptor) IsResolved() bool {
	d.m.RLock()
	defer d.m.RUnlock()
	return d.resolved || d.key == nil
}

// Options returns the options for the descriptor. Lazy options are computed for element on the first call and
// cached; later calls return the cached slice regardless of element. When two goroutines race on the first
// call, the first stored result wins and the other computation is dropped.
func (d *QuickFixDescriptor) Options(element types.Element) []Action {
	d.m.RLock()
	if d.resolved || d.key == nil {
		options := d.options
		d.m.RUnlock()
		return options
	}
	key := *d.key
	d.m.RUnlock()

	computed := d.computeOptions(key, element)

	d.m.Lock()
	defer d.m.Unlock()
	if !d.resolved {
		d.options = computed
		d.key = nil
		d.resolved = true
	}
	return d.options
}

func (d *QuickFixDescriptor) computeOptions(key DisplayKey, element types.Element) []Action {
	options := make([]Action, 0)
	if d.source.Intentions != nil {
		options = append(options, d.source.Intentions.StandardOptions(key, element)...)
	}
	if d.source.Profiles == nil {
		return options
	}
	tool := d.source.Profiles.Tool(key, element)
	if tool == nil || !tool.IsLocal() {
		return options
	}
	options = append(options, &CleanupAction{Tool: tool, FixFamily: fixFamily(d.action)})
	if suppressible, ok := tool.(SuppressibleTool); ok {
		options = append(options, suppressible.SuppressActions(element)...)
	}
	return options
}

func fixFamily(action Action) string {
	if wrapped, ok := action.(WrappedAction); ok && wrapped.Unwrap() != nil {
		return wrapped.Unwrap().FamilyName()
	}
	return action.FamilyName()
}

func (d *QuickFixDescriptor) String() string {
	return "descriptor: " + d.action.Text()
}
