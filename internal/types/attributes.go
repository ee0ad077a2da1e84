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
	"regexp"
	"strings"
)

// Color is a normalized "#rrggbb" value. The empty Color means "not set".
type Color string

var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{6}|[0-9a-fA-F]{3})$`)

// ParseColor accepts "#rgb", "#rrggbb" or the same without the leading hash.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	m := hexColor.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("invalid color %q", s)
	}
	digits := strings.ToLower(m[1])
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	return Color("#" + digits), nil
}

func (c Color) IsSet() bool {
	return c != ""
}

// RGB returns the color components, or zeros if the color is not set
func (c Color) RGB() (r, g, b uint8) {
	if !c.IsSet() {
		return 0, 0, 0
	}
	_, _ = fmt.Sscanf(string(c), "#%02x%02x%02x", &r, &g, &b)
	return r, g, b
}

type EffectType int8

const (
	NoEffect EffectType = iota
	LineUnderscore
	WaveUnderscore
	BoldLineUnderscore
	BoldDottedLine
	StrikeOut
	Boxed
)

var effectTypeNames = map[EffectType]string{
	NoEffect:           "none",
	LineUnderscore:     "line_underscore",
	WaveUnderscore:     "wave_underscore",
	BoldLineUnderscore: "bold_line_underscore",
	BoldDottedLine:     "bold_dotted_line",
	StrikeOut:          "strikeout",
	Boxed:              "boxed",
}

func (e EffectType) String() string {
	if name, ok := effectTypeNames[e]; ok {
		return name
	}
	return "unknown"
}

func ParseEffectType(s string) (EffectType, error) {
	if s == "" {
		return NoEffect, nil
	}
	for k, v := range effectTypeNames {
		if v == strings.ToLower(s) {
			return k, nil
		}
	}
	return NoEffect, fmt.Errorf("unknown effect type %q", s)
}

// FontType is a bit set of font styles
type FontType int8

const (
	Plain  FontType = 0
	Bold   FontType = 1
	Italic FontType = 2
)

// TextAttributes describe how a highlighted span is rendered. The zero value renders nothing special.
// TextAttributes is comparable with ==.
type TextAttributes struct {
	Foreground       Color
	Background       Color
	EffectColor      Color
	ErrorStripeColor Color
	EffectType       EffectType
	FontType         FontType
}

func (a TextAttributes) IsEmpty() bool {
	return a == TextAttributes{}
}

// EqualAttributes compares two optional attribute bundles by value
func EqualAttributes(a, b *TextAttributes) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// TextAttributesKey names an entry of a color scheme
type TextAttributesKey string

const (
	ErrorsAttributes                 TextAttributesKey = "ERRORS_ATTRIBUTES"
	WarningsAttributes               TextAttributesKey = "WARNING_ATTRIBUTES"
	WeakWarningAttributes            TextAttributesKey = "INFO_ATTRIBUTES"
	InfoAttributes                   TextAttributesKey = "INFO_ATTRIBUTES"
	InformationAttributes            TextAttributesKey = "INFORMATION_ATTRIBUTES"
	ServerProblemAttributes          TextAttributesKey = "GENERIC_SERVER_ERROR_OR_WARNING"
	WrongReferencesAttributes        TextAttributesKey = "WRONG_REFERENCES_ATTRIBUTES"
	NotUsedElementAttributes         TextAttributesKey = "NOT_USED_ELEMENT_ATTRIBUTES"
	DeprecatedAttributes             TextAttributesKey = "DEPRECATED_ATTRIBUTES"
	TodoDefaultAttributes            TextAttributesKey = "TODO_DEFAULT_ATTRIBUTES"
	LocalVariableAttributes          TextAttributesKey = "LOCAL_VARIABLE_ATTRIBUTES"
	InstanceFieldAttributes          TextAttributesKey = "INSTANCE_FIELD_ATTRIBUTES"
	StaticFieldAttributes            TextAttributesKey = "STATIC_FIELD_ATTRIBUTES"
	ParameterAttributes              TextAttributesKey = "PARAMETER_ATTRIBUTES"
	MethodCallAttributes             TextAttributesKey = "METHOD_CALL_ATTRIBUTES"
	MethodDeclarationAttributes      TextAttributesKey = "METHOD_DECLARATION_ATTRIBUTES"
	StaticMethodAttributes           TextAttributesKey = "STATIC_METHOD_ATTRIBUTES"
	ConstructorCallAttributes        TextAttributesKey = "CONSTRUCTOR_CALL_ATTRIBUTES"
	ConstructorDeclarationAttributes TextAttributesKey = "CONSTRUCTOR_DECLARATION_ATTRIBUTES"
	InterfaceNameAttributes          TextAttributesKey = "INTERFACE_NAME_ATTRIBUTES"
	AbstractClassNameAttributes      TextAttributesKey = "ABSTRACT_CLASS_NAME_ATTRIBUTES"
	ClassNameAttributes              TextAttributesKey = "CLASS_NAME_ATTRIBUTES"
	UnmatchedBraceAttributes         TextAttributesKey = "UNMATCHED_BRACE_ATTRIBUTES"
	JoinPointAttributes              TextAttributesKey = "JOIN_POINT"
)
