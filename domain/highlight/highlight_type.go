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

// HighlightType identifies the kind of a highlight. It carries the default severity of highlights of this kind
// and the color scheme key used when no severity specific attributes are registered.
// HighlightType is comparable; two types are the same if name, severity and key match.
type HighlightType struct {
	name          string
	severity      types.Severity
	attributesKey types.TextAttributesKey
}

func NewHighlightType(name string, severity types.Severity, attributesKey types.TextAttributesKey) HighlightType {
	return HighlightType{name: name, severity: severity, attributesKey: attributesKey}
}

func (t HighlightType) Name() string {
	return t.name
}

func (t HighlightType) Severity() types.Severity {
	return t.severity
}

func (t HighlightType) AttributesKey() types.TextAttributesKey {
	return t.attributesKey
}

func (t HighlightType) String() string {
	return t.name
}

var (
	Error                       = NewHighlightType("ERROR", types.Error, types.ErrorsAttributes)
	Warning                     = NewHighlightType("WARNING", types.Warning, types.WarningsAttributes)
	WeakWarning                 = NewHighlightType("WEAK_WARNING", types.WeakWarning, types.WeakWarningAttributes)
	Info                        = NewHighlightType("INFO", types.Info, types.InfoAttributes)
	Information                 = NewHighlightType("INFORMATION", types.Information, types.InformationAttributes)
	GenericServerErrorOrWarning = NewHighlightType("GENERIC_SERVER_ERROR_OR_WARNING", types.GenericServerErrorOrWarning, types.ServerProblemAttributes)
	WrongRef                    = NewHighlightType("WRONG_REF", types.Error, types.WrongReferencesAttributes)
	UnusedSymbol                = NewHighlightType("UNUSED_SYMBOL", types.Warning, types.NotUsedElementAttributes)
	Deprecated                  = NewHighlightType("DEPRECATED", types.Warning, types.DeprecatedAttributes)
	UnmatchedBrace              = NewHighlightType("UNMATCHED_BRACE", types.Information, types.UnmatchedBraceAttributes)
	Todo                        = NewHighlightType("TODO", types.Information, types.TodoDefaultAttributes)
	LocalVariable               = NewHighlightType("LOCAL_VARIABLE", types.Information, types.LocalVariableAttributes)
	InstanceField               = NewHighlightType("INSTANCE_FIELD", types.Information, types.InstanceFieldAttributes)
	StaticField                 = NewHighlightType("STATIC_FIELD", types.Information, types.StaticFieldAttributes)
	Parameter                   = NewHighlightType("PARAMETER", types.Information, types.ParameterAttributes)
	MethodCall                  = NewHighlightType("METHOD_CALL", types.Information, types.MethodCallAttributes)
	MethodDeclaration           = NewHighlightType("METHOD_DECLARATION", types.Information, types.MethodDeclarationAttributes)
	StaticMethod                = NewHighlightType("STATIC_METHOD", types.Information, types.StaticMethodAttributes)
	ConstructorCall             = NewHighlightType("CONSTRUCTOR_CALL", types.Information, types.ConstructorCallAttributes)
	ConstructorDeclaration      = NewHighlightType("CONSTRUCTOR_DECLARATION", types.Information, types.ConstructorDeclarationAttributes)
	InterfaceName               = NewHighlightType("INTERFACE_NAME", types.Information, types.InterfaceNameAttributes)
	AbstractClassName           = NewHighlightType("ABSTRACT_CLASS_NAME", types.Information, types.AbstractClassNameAttributes)
	ClassName                   = NewHighlightType("CLASS_NAME", types.Information, types.ClassNameAttributes)
	JoinPoint                   = NewHighlightType("JOIN_POINT", types.Information, types.JoinPointAttributes)
)

// PredefinedTypes lists every built-in highlight type
var PredefinedTypes = []HighlightType{
	Error, Warning, WeakWarning, Info, Information, GenericServerErrorOrWarning,
	WrongRef, UnusedSymbol, Deprecated, UnmatchedBrace, Todo,
	LocalVariable, InstanceField, StaticField, Parameter,
	MethodCall, MethodDeclaration, StaticMethod, ConstructorCall, ConstructorDeclaration,
	InterfaceName, AbstractClassName, ClassName, JoinPoint,
}

// LookupHighlightType finds a predefined type by name
func LookupHighlightType(name string) (HighlightType, bool) {
	for _, t := range PredefinedTypes {
		if t.name == name {
			return t, true
		}
	}
	return HighlightType{}, false
}

// structural highlights whose validity does not change while the user types elsewhere in the document
var stableTypes = map[HighlightType]struct{}{
	Todo:                   {},
	LocalVariable:          {},
	InstanceField:          {},
	StaticField:            {},
	Parameter:              {},
	MethodCall:             {},
	MethodDeclaration:      {},
	StaticMethod:           {},
	ConstructorCall:        {},
	ConstructorDeclaration: {},
	InterfaceName:          {},
	AbstractClassName:      {},
	ClassName:              {},
}

// NeedsUpdateOnTyping reports whether highlights of type t must be re-evaluated while the user types
func NeedsUpdateOnTyping(t HighlightType) bool {
	_, stable := stableTypes[t]
	return !stable
}

// TypingUpdate overrides the typing classification of a single record
type TypingUpdate int8

const (
	// TypingUpdateFromType derives the behaviour from the highlight type
	TypingUpdateFromType TypingUpdate = iota
	TypingUpdateAlways
	TypingUpdateNever
)

// TypingUpdateOf converts an optional flag as produced by analyzers
func TypingUpdateOf(needsUpdate *bool) TypingUpdate {
	switch {
	case needsUpdate == nil:
		return TypingUpdateFromType
	case *needsUpdate:
		return TypingUpdateAlways
	default:
		return TypingUpdateNever
	}
}

func (u TypingUpdate) resolve(t HighlightType) bool {
	switch u {
	case TypingUpdateAlways:
		return true
	case TypingUpdateNever:
		return false
	default:
		return NeedsUpdateOnTyping(t)
	}
}
