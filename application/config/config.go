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

// Package config implements the configuration functionality
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/creasty/defaults"
	"github.com/rs/zerolog"
	"github.com/subosito/gotenv"

	"github.com/snyk/snyk-highlight/internal/types"
)

const (
	FormatHtml = "html"
	FormatMd   = "md"

	LogLevelEnvVar       = "SNYK_LOG_LEVEL"
	ColorSchemeEnvVar    = "SNYK_HIGHLIGHT_COLOR_SCHEME"
	FormatEnvVar         = "SNYK_HIGHLIGHT_FORMAT"
	ErrorReportingEnvVar = "SNYK_HIGHLIGHT_REPORT_ERRORS"
	MinSeverityEnvVar    = "SNYK_HIGHLIGHT_MIN_SEVERITY"

	// relative to the XDG config directories
	defaultColorSchemeFile = "snyk-highlight/colors.yaml"
)

var (
	Version       = "SNAPSHOT"
	Development   = "true"
	currentConfig *Config
	mutex         = &sync.Mutex{}
)

// Settings holds the tunables of the highlighting pipeline
type Settings struct {
	LogLevel              string        `default:"info"`
	LogPath               string        `default:""`
	ColorSchemePath       string        `default:""`
	Format                string        `default:"md"`
	ErrorReportingEnabled bool          `default:"false"`
	CacheExpiration       time.Duration `default:"12h"`
	MaxParallelPasses     int           `default:"4"`
	MinimumSeverity       string        `default:"INFORMATION"`
}

type Config struct {
	m        sync.RWMutex
	settings Settings
	logger   *zerolog.Logger
	logFile  *os.File
}

func CurrentConfig() *Config {
	mutex.Lock()
	defer mutex.Unlock()
	if currentConfig == nil {
		currentConfig = New()
	}
	return currentConfig
}

func SetCurrentConfig(config *Config) {
	mutex.Lock()
	defer mutex.Unlock()
	currentConfig = config
}

func IsDevelopment() bool {
	parseBool, _ := strconv.ParseBool(Development)
	return parseBool
}

// New creates a configuration object with default values
func New(opts ...ConfigOption) *Config {
	c := &Config{}
	if err := defaults.Set(&c.settings); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "couldn't apply configuration defaults", err)
	}
	logger := zerolog.New(c.getConsoleWriter(os.Stderr)).With().Timestamp().Str("separator", "-").Str("method", "").Logger()
	c.logger = &logger

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoadEnvFile reads KEY=VALUE pairs and applies them as settings. Variables already set in the
// process environment win over the file.
func (c *Config) LoadEnvFile(fileName string) error {
	file, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer file.Close()
	env := gotenv.Parse(file)
	for k, v := range env {
		if _, exists := os.LookupEnv(k); !exists {
			if setErr := os.Setenv(k, v); setErr != nil {
				c.Logger().Warn().Str("method", "LoadEnvFile").Msg("Couldn't set environment variable " + k)
			}
		}
	}
	c.Logger().Debug().Str("fileName", fileName).Msg("loaded.")
	c.ApplyEnvironment()
	return nil
}

// ApplyEnvironment overrides settings from environment variables
func (c *Config) ApplyEnvironment() {
	if v := os.Getenv(ColorSchemeEnvVar); v != "" {
		c.SetColorSchemePath(v)
	}
	if v := os.Getenv(FormatEnvVar); v != "" {
		c.SetFormat(v)
	}
	if v := os.Getenv(MinSeverityEnvVar); v != "" {
		c.SetMinimumSeverity(v)
	}
	if v := os.Getenv(ErrorReportingEnvVar); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err == nil {
			c.SetErrorReportingEnabled(enabled)
		}
	}
}

// ConfigureLogging (re)creates the logger from the configured level and log path.
// SNYK_LOG_LEVEL overrides the configured level.
func (c *Config) ConfigureLogging() {
	logLevel, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Can't set log level from flag. Setting to default (=info)")
		logLevel = zerolog.InfoLevel
	}

	envLogLevel := os.Getenv(LogLevelEnvVar)
	if envLogLevel != "" {
		envLevel, levelErr := zerolog.ParseLevel(envLogLevel)
		if levelErr == nil {
			logLevel = envLevel
		}
	}
	c.SetLogLevel(logLevel.String())

	writers := []io.Writer{os.Stderr}
	if c.LogPath() != "" {
		c.logFile, err = os.OpenFile(c.LogPath(), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
		if err != nil {
			_, _ = fmt.Fprintln(os.Stderr, "couldn't open logfile")
		} else {
			_, _ = fmt.Fprintln(os.Stderr, fmt.Sprint("adding file logger to file ", c.LogPath()))
			writers = append(writers, c.logFile)
		}
	}

	c.m.Lock()
	defer c.m.Unlock()
	writer := c.getConsoleWriter(zerolog.MultiLevelWriter(writers...))
	logger := zerolog.New(writer).With().Timestamp().Str("separator", "-").Str("method", "").Logger().Level(logLevel)
	c.logger = &logger
}

func (c *Config) getConsoleWriter(writer io.Writer) zerolog.ConsoleWriter {
	w := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = writer
		w.NoColor = true
		w.TimeFormat = time.RFC3339Nano
		w.PartsOrder = []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			"method",
			"separator",
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		}
		w.FieldsExclude = []string{"method", "separator"}
	})
	return w
}

// DisableLoggingToFile closes the open log file
func (c *Config) DisableLoggingToFile() {
	c.Logger().Info().Msgf("Disabling file logging to %v", c.LogPath())
	c.m.Lock()
	defer c.m.Unlock()
	c.settings.LogPath = ""
	if c.logFile != nil {
		_ = c.logFile.Close()
		c.logFile = nil
	}
}

func (c *Config) Logger() *zerolog.Logger {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.logger
}

func (c *Config) SetLogger(logger *zerolog.Logger) {
	c.m.Lock()
	defer c.m.Unlock()
	c.logger = logger
}

func (c *Config) SetLogLevel(level string) {
	c.m.Lock()
	defer c.m.Unlock()
	c.settings.LogLevel = level
	parseLevel, err := zerolog.ParseLevel(level)
	if err == nil {
		zerolog.SetGlobalLevel(parseLevel)
	}
}

func (c *Config) LogLevel() string {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.settings.LogLevel
}

func (c *Config) SetLogPath(logPath string) {
	c.m.Lock()
	defer c.m.Unlock()
	c.settings.LogPath = logPath
}

func (c *Config) LogPath() string {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.settings.LogPath
}

func (c *Config) SetColorSchemePath(path string) {
	c.m.Lock()
	defer c.m.Unlock()
	c.settings.ColorSchemePath = path
}

// ColorSchemePath returns the configured scheme file, falling back to colors.yaml in the XDG config
// directories. "" means the built-in scheme is used.
func (c *Config) ColorSchemePath() string {
	c.m.RLock()
	configured := c.settings.ColorSchemePath
	c.m.RUnlock()
	if configured != "" {
		return configured
	}
	found, err := xdg.SearchConfigFile(defaultColorSchemeFile)
	if err != nil {
		return ""
	}
	return found
}

func (c *Config) SetFormat(format string) {
	c.m.Lock()
	defer c.m.Unlock()
	c.settings.Format = strings.ToLower(format)
}

func (c *Config) Format() string {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.settings.Format
}

func (c *Config) SetErrorReportingEnabled(enabled bool) {
	c.m.Lock()
	defer c.m.Unlock()
	c.settings.ErrorReportingEnabled = enabled
}

func (c *Config) IsErrorReportingEnabled() bool {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.settings.ErrorReportingEnabled
}

func (c *Config) SetCacheExpiration(expiration time.Duration) {
	c.m.Lock()
	defer c.m.Unlock()
	c.settings.CacheExpiration = expiration
}

// CacheExpiration is how long published highlights stay cached without being refreshed
func (c *Config) CacheExpiration() time.Duration {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.settings.CacheExpiration
}

func (c *Config) SetMaxParallelPasses(n int) {
	c.m.Lock()
	defer c.m.Unlock()
	c.settings.MaxParallelPasses = n
}

func (c *Config) MaxParallelPasses() int {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.settings.MaxParallelPasses
}

func (c *Config) SetMinimumSeverity(severity string) {
	c.m.Lock()
	defer c.m.Unlock()
	c.settings.MinimumSeverity = severity
}

// MinimumSeverity is the threshold below which highlights are filtered out. Unknown names fall back to
// types.Information, which lets everything through.
func (c *Config) MinimumSeverity() types.Severity {
	c.m.RLock()
	name := c.settings.MinimumSeverity
	c.m.RUnlock()
	severity, err := types.ParseSeverity(name)
	if err != nil {
		c.Logger().Warn().Str("method", "MinimumSeverity").Str("severity", name).Msg("unknown minimum severity, using INFORMATION")
		return types.Information
	}
	return severity
}
