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

package colorscheme

import (
	"github.com/snyk/snyk-highlight/internal/types"
)

const DefaultSchemeName = "Default"

var (
	errorRed    = types.Color("#ff0000")
	warningGold = types.Color("#f0c000")
	infoGreen   = types.Color("#c0c080")
	serverBlue  = types.Color("#40a0ff")
	unusedGray  = types.Color("#808080")
)

// Default returns the built-in light scheme
func Default() *Scheme {
	attributes := map[types.TextAttributesKey]*types.TextAttributes{
		types.ErrorsAttributes: {
			EffectType: types.WaveUnderscore, EffectColor: errorRed, ErrorStripeColor: errorRed,
		},
		types.WarningsAttributes: {
			Background: "#f6ebbc", EffectType: types.WaveUnderscore, EffectColor: warningGold, ErrorStripeColor: warningGold,
		},
		types.InfoAttributes: {
			EffectType: types.WaveUnderscore, EffectColor: infoGreen, ErrorStripeColor: infoGreen,
		},
		types.InformationAttributes:   {},
		types.ServerProblemAttributes: {Background: "#e0f0ff", ErrorStripeColor: serverBlue},
		types.WrongReferencesAttributes: {
			Foreground: errorRed, ErrorStripeColor: errorRed,
		},
		types.NotUsedElementAttributes: {Foreground: unusedGray},
		types.DeprecatedAttributes: {
			EffectType: types.StrikeOut, EffectColor: "#404040",
		},
		types.TodoDefaultAttributes:            {Foreground: "#0073bf", FontType: types.Bold | types.Italic, ErrorStripeColor: "#0000ff"},
		types.LocalVariableAttributes:          {},
		types.InstanceFieldAttributes:          {Foreground: "#660e7a", FontType: types.Bold},
		types.StaticFieldAttributes:            {Foreground: "#660e7a", FontType: types.Italic},
		types.ParameterAttributes:              {},
		types.MethodCallAttributes:             {},
		types.MethodDeclarationAttributes:      {},
		types.StaticMethodAttributes:           {FontType: types.Italic},
		types.ConstructorCallAttributes:        {},
		types.ConstructorDeclarationAttributes: {},
		types.InterfaceNameAttributes:          {},
		types.AbstractClassNameAttributes:      {},
		types.ClassNameAttributes:              {},
		types.UnmatchedBraceAttributes:         {Background: "#ffdcdc"},
		types.JoinPointAttributes:              {EffectType: types.Boxed, EffectColor: "#0000ff"},
	}
	return &Scheme{
		name:       DefaultSchemeName,
		attributes: attributes,
		stripeColors: map[string]types.Color{
			types.Error.Name:                       errorRed,
			types.Warning.Name:                     warningGold,
			types.Info.Name:                        infoGreen,
			types.GenericServerErrorOrWarning.Name: serverBlue,
		},
	}
}
