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
	"reflect"
	"sync"

	"github.com/mitchellh/hashstructure"

	"github.com/snyk/snyk-highlight/internal/types"
)

// GutterIconRenderer is painted next to the highlighted line. It is opaque to this package,
// records only carry and compare it.
type GutterIconRenderer interface {
	Icon() string
	Tooltip() string
}

// QuickFixRange pairs a quick fix with the span it applies to
type QuickFixRange struct {
	Descriptor *QuickFixDescriptor
	Range      types.TextRange
}

// Options holds the optional construction parameters of a Record
type Options struct {
	// ForcedAttributes take precedence over any attributes derived from severity or type
	ForcedAttributes *types.TextAttributes
	// Severity overrides the default severity of the highlight type
	Severity       *types.Severity
	AfterEndOfLine bool
	TypingUpdate   TypingUpdate
}

// Record is the canonical representation of a flagged span of text.
//
// Identity relevant fields are fixed at construction. Gutter icon, hint flag, quick fixes and a few
// presentation extras are attached afterwards while the record is being staged and before it is published.
type Record struct {
	highlightType    HighlightType
	severity         types.Severity
	startOffset      int
	endOffset        int
	fixStartOffset   int
	fixEndOffset     int
	description      string
	tooltip          string
	forcedAttributes *types.TextAttributes
	afterEndOfLine   bool
	typingUpdate     TypingUpdate

	m                  sync.RWMutex
	attributes         *types.TextAttributes
	fileLevel          bool
	navigationShift    int
	group              int
	gutterIconRenderer GutterIconRenderer
	quickFixes         []QuickFixRange
	hasHint            bool
}

// NewRecord builds a record without validation or filtering. Analyzers should go through Factory or Converter.
func NewRecord(t HighlightType, start, end int, description, tooltip string, opts Options) *Record {
	severity := t.Severity()
	if opts.Severity != nil {
		severity = *opts.Severity
	}
	return &Record{
		highlightType:    t,
		severity:         severity,
		startOffset:      start,
		endOffset:        end,
		fixStartOffset:   start,
		fixEndOffset:     end,
		description:      description,
		tooltip:          tooltip,
		forcedAttributes: opts.ForcedAttributes,
		afterEndOfLine:   opts.AfterEndOfLine,
		typingUpdate:     opts.TypingUpdate,
	}
}

// Validate checks the range invariant 0 <= start <= end
func (r *Record) Validate() error {
	if r.startOffset < 0 || r.startOffset > r.endOffset {
		return &InvalidRangeError{Start: r.startOffset, End: r.endOffset, Description: r.description, Type: r.highlightType}
	}
	return nil
}

func (r *Record) Type() HighlightType {
	return r.highlightType
}

func (r *Record) Severity() types.Severity {
	return r.severity
}

func (r *Record) StartOffset() int {
	return r.startOffset
}

func (r *Record) EndOffset() int {
	return r.endOffset
}

func (r *Record) Range() types.TextRange {
	return types.NewTextRange(r.startOffset, r.endOffset)
}

// FixRange is the span quick fixes registered without an explicit range apply to
func (r *Record) FixRange() types.TextRange {
	return types.NewTextRange(r.fixStartOffset, r.fixEndOffset)
}

func (r *Record) Description() string {
	return r.description
}

func (r *Record) Tooltip() string {
	return r.tooltip
}

func (r *Record) ForcedAttributes() *types.TextAttributes {
	return r.forcedAttributes
}

// Attributes returns the attributes resolved when the record was built, nil if nothing resolved
func (r *Record) Attributes() *types.TextAttributes {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.attributes
}

func (r *Record) setAttributes(attributes *types.TextAttributes) {
	r.m.Lock()
	defer r.m.Unlock()
	r.attributes = attributes
}

func (r *Record) IsAfterEndOfLine() bool {
	return r.afterEndOfLine
}

func (r *Record) IsFileLevel() bool {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.fileLevel
}

func (r *Record) SetFileLevel(fileLevel bool) {
	r.m.Lock()
	defer r.m.Unlock()
	r.fileLevel = fileLevel
}

func (r *Record) NavigationShift() int {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.navigationShift
}

func (r *Record) SetNavigationShift(shift int) {
	r.m.Lock()
	defer r.m.Unlock()
	r.navigationShift = shift
}

// Group identifies the analysis pass that produced the record
func (r *Record) Group() int {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.group
}

func (r *Record) SetGroup(group int) {
	r.m.Lock()
	defer r.m.Unlock()
	r.group = group
}

func (r *Record) TypingUpdate() TypingUpdate {
	return r.typingUpdate
}

// NeedsUpdateOnTyping returns the override given at construction, or classifies the record by its type
func (r *Record) NeedsUpdateOnTyping() bool {
	return r.typingUpdate.resolve(r.highlightType)
}

func (r *Record) GutterIconRenderer() GutterIconRenderer {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.gutterIconRenderer
}

func (r *Record) SetGutterIconRenderer(renderer GutterIconRenderer) {
	r.m.Lock()
	defer r.m.Unlock()
	r.gutterIconRenderer = renderer
}

func (r *Record) HasHint() bool {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.hasHint
}

func (r *Record) SetHint(hasHint bool) {
	r.m.Lock()
	defer r.m.Unlock()
	r.hasHint = hasHint
}

// QuickFixes returns the registered quick fixes in registration order
func (r *Record) QuickFixes() []QuickFixRange {
	r.m.RLock()
	defer r.m.RUnlock()
	fixes := make([]QuickFixRange, len(r.quickFixes))
	copy(fixes, r.quickFixes)
	return fixes
}

// RegisterQuickFix appends a descriptor. A nil fixRange means the fix applies to FixRange.
func (r *Record) RegisterQuickFix(descriptor *QuickFixDescriptor, fixRange *types.TextRange) {
	if descriptor == nil {
		return
	}
	target := r.FixRange()
	if fixRange != nil {
		target = *fixRange
	}
	r.m.Lock()
	defer r.m.Unlock()
	r.quickFixes = append(r.quickFixes, QuickFixRange{Descriptor: descriptor, Range: target})
}

// RegisterFix wraps action into a lazily resolved descriptor and registers it
func (r *Record) RegisterFix(action Action, fixRange *types.TextRange, key *DisplayKey, source OptionsSource) *QuickFixDescriptor {
	if action == nil {
		return nil
	}
	descriptor := NewQuickFixDescriptor(action, key, source)
	r.RegisterQuickFix(descriptor, fixRange)
	return descriptor
}

// Equal compares the identity of two records: severity, range, type, gutter icon, forced attributes and description.
// Tooltips and quick fixes are not part of the identity.
func (r *Record) Equal(other *Record) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	return r.severity == other.severity &&
		r.startOffset == other.startOffset &&
		r.endOffset == other.endOffset &&
		r.highlightType == other.highlightType &&
		equalRenderers(r.GutterIconRenderer(), other.GutterIconRenderer()) &&
		types.EqualAttributes(r.forcedAttributes, other.forcedAttributes) &&
		r.description == other.description
}

// Hash is deliberately coarse: records sharing a start offset collide and are told apart by Equal.
func (r *Record) Hash() int {
	return r.startOffset
}

type identity struct {
	SeverityName  string
	SeverityValue int
	Start         int
	End           int
	TypeName      string
	TypeKey       string
	HasForced     bool
	Forced        types.TextAttributes
	Description   string
}

// IdentityHash hashes all identity fields except the gutter icon. Records that are Equal have the same IdentityHash.
func (r *Record) IdentityHash() (uint64, error) {
	id := identity{
		SeverityName:  r.severity.Name,
		SeverityValue: r.severity.Value,
		Start:         r.startOffset,
		End:           r.endOffset,
		TypeName:      r.highlightType.name,
		TypeKey:       string(r.highlightType.attributesKey),
		Description:   r.description,
	}
	if r.forcedAttributes != nil {
		id.HasForced = true
		id.Forced = *r.forcedAttributes
	}
	return hashstructure.Hash(id, nil)
}

func (r *Record) String() string {
	return fmt.Sprintf("Record(type=%s, severity=%s, range=%s, description='%s', tooltip='%s')",
		r.highlightType, r.severity, r.Range(), r.description, r.tooltip)
}

type rendererEquality interface {
	Equal(other GutterIconRenderer) bool
}

func equalRenderers(a, b GutterIconRenderer) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if eq, ok := a.(rendererEquality); ok {
		return eq.Equal(b)
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
