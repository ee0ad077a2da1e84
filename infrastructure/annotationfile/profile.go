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

package annotationfile

import (
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/snyk/snyk-highlight/domain/highlight"
	"github.com/snyk/snyk-highlight/internal/types"
)

// Inspection describes a tool that reported annotations, as declared in an annotation file
type Inspection struct {
	ID           string
	DisplayName  string
	Local        bool
	Suppressible bool
	// Options are offered for every fix that refers to the inspection
	Options []string
}

// Profile knows the inspections declared by loaded files. It serves the lazily computed options of quick fixes.
type Profile struct {
	inspections *xsync.MapOf[string, Inspection]
}

var _ highlight.IntentionOptions = (*Profile)(nil)
var _ highlight.InspectionProfiles = (*Profile)(nil)

func NewProfile() *Profile {
	return &Profile{inspections: xsync.NewMapOf[string, Inspection]()}
}

// Register adds or replaces an inspection
func (p *Profile) Register(inspection Inspection) {
	p.inspections.Store(inspection.ID, inspection)
}

func (p *Profile) StandardOptions(key highlight.DisplayKey, _ types.Element) []highlight.Action {
	inspection, ok := p.inspections.Load(key.ID)
	if !ok {
		return nil
	}
	options := make([]highlight.Action, 0, len(inspection.Options))
	for _, option := range inspection.Options {
		options = append(options, &Fix{Title: option, Family: inspection.DisplayName})
	}
	return options
}

func (p *Profile) Tool(key highlight.DisplayKey, _ types.Element) highlight.InspectionTool {
	inspection, ok := p.inspections.Load(key.ID)
	if !ok {
		return nil
	}
	if inspection.Suppressible {
		return &suppressibleTool{tool{inspection}}
	}
	return &tool{inspection}
}

type tool struct {
	inspection Inspection
}

func (t *tool) ShortName() string {
	return t.inspection.ID
}

func (t *tool) DisplayName() string {
	if t.inspection.DisplayName == "" {
		return t.inspection.ID
	}
	return t.inspection.DisplayName
}

func (t *tool) IsLocal() bool {
	return t.inspection.Local
}

type suppressibleTool struct {
	tool
}

var _ highlight.SuppressibleTool = (*suppressibleTool)(nil)

func (t *suppressibleTool) SuppressActions(element types.Element) []highlight.Action {
	family := "Suppress " + t.inspection.ID
	actions := []highlight.Action{&Fix{Title: "Suppress for statement", Family: family}}
	if element != nil && element.Document() != nil {
		actions = append(actions, &Fix{Title: "Suppress for file " + string(element.Document().Path()), Family: family})
	}
	return actions
}
