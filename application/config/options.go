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

package config

import "github.com/rs/zerolog"

// ConfigOption is a function that configures a Config instance
type ConfigOption func(*Config)

// WithLogger replaces the default stderr logger
func WithLogger(logger *zerolog.Logger) ConfigOption {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithColorSchemePath sets the color scheme file to load
func WithColorSchemePath(path string) ConfigOption {
	return func(c *Config) {
		c.settings.ColorSchemePath = path
	}
}

// WithFormat sets the message format of LSP diagnostics
func WithFormat(format string) ConfigOption {
	return func(c *Config) {
		c.settings.Format = format
	}
}

// WithMinimumSeverity sets the filter threshold by severity name
func WithMinimumSeverity(severity string) ConfigOption {
	return func(c *Config) {
		c.settings.MinimumSeverity = severity
	}
}
