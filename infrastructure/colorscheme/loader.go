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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/snyk/snyk-highlight/internal/types"
)

// AttributesEntry is the file representation of text attributes, shared by scheme and annotation files
type AttributesEntry struct {
	Foreground       string `yaml:"foreground" toml:"foreground" validate:"omitempty,hexcolor"`
	Background       string `yaml:"background" toml:"background" validate:"omitempty,hexcolor"`
	EffectColor      string `yaml:"effectColor" toml:"effect_color" validate:"omitempty,hexcolor"`
	ErrorStripeColor string `yaml:"errorStripeColor" toml:"error_stripe_color" validate:"omitempty,hexcolor"`
	EffectType       string `yaml:"effectType" toml:"effect_type"`
	Bold             bool   `yaml:"bold" toml:"bold"`
	Italic           bool   `yaml:"italic" toml:"italic"`
}

type schemeFile struct {
	Name         string                     `yaml:"name" toml:"name" validate:"required"`
	Attributes   map[string]AttributesEntry `yaml:"attributes" toml:"attributes" validate:"dive,keys,required,endkeys"`
	StripeColors map[string]string          `yaml:"stripeColors" toml:"stripe_colors" validate:"dive,keys,required,endkeys,hexcolor"`
}

var validate = validator.New()

// Load reads a scheme file. The format is picked by extension: .toml is TOML, anything else is parsed as YAML
// (which covers JSON). Entries of the file are layered over the built-in scheme.
func Load(path string) (*Scheme, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't read color scheme")
	}
	var file schemeFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.NewDecoder(bytes.NewReader(content)).Decode(&file)
	default:
		err = yaml.Unmarshal(content, &file)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't parse color scheme %s", path)
	}
	scheme, err := file.toScheme()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid color scheme %s", path)
	}
	return Default().merge(scheme), nil
}

// LoadOrDefault loads path, falling back to the built-in scheme if path is empty or broken
func LoadOrDefault(path string, logger *zerolog.Logger) *Scheme {
	if path == "" {
		return Default()
	}
	scheme, err := Load(path)
	if err != nil {
		logger.Warn().Err(err).Str("method", "LoadOrDefault").Str("path", path).Msg("using built-in color scheme")
		return Default()
	}
	logger.Debug().Str("method", "LoadOrDefault").Str("scheme", scheme.Name()).Int("keys", scheme.Keys()).Msg("color scheme loaded")
	return scheme
}

func (f *schemeFile) toScheme() (*Scheme, error) {
	if err := validate.Struct(f); err != nil {
		return nil, err
	}
	scheme := &Scheme{
		name:         f.Name,
		attributes:   make(map[types.TextAttributesKey]*types.TextAttributes, len(f.Attributes)),
		stripeColors: make(map[string]types.Color, len(f.StripeColors)),
	}
	for key, entry := range f.Attributes {
		attributes, err := entry.ToAttributes()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		scheme.attributes[types.TextAttributesKey(key)] = attributes
	}
	for severityName, value := range f.StripeColors {
		severity, err := types.ParseSeverity(severityName)
		if err != nil {
			return nil, err
		}
		c, err := types.ParseColor(value)
		if err != nil {
			return nil, fmt.Errorf("stripe color of %s: %w", severityName, err)
		}
		scheme.stripeColors[severity.Name] = c
	}
	return scheme, nil
}

// ToAttributes parses the colors and effect of the entry
func (e AttributesEntry) ToAttributes() (*types.TextAttributes, error) {
	effectType, err := types.ParseEffectType(e.EffectType)
	if err != nil {
		return nil, err
	}
	attributes := &types.TextAttributes{EffectType: effectType}
	for _, c := range []struct {
		value  string
		target *types.Color
	}{
		{e.Foreground, &attributes.Foreground},
		{e.Background, &attributes.Background},
		{e.EffectColor, &attributes.EffectColor},
		{e.ErrorStripeColor, &attributes.ErrorStripeColor},
	} {
		parsed, parseErr := types.ParseColor(c.value)
		if parseErr != nil {
			return nil, parseErr
		}
		*c.target = parsed
	}
	if e.Bold {
		attributes.FontType |= types.Bold
	}
	if e.Italic {
		attributes.FontType |= types.Italic
	}
	return attributes, nil
}
