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

package sentry

import (
	"os"
	"sync/atomic"

	"github.com/getsentry/sentry-go"

	"github.com/snyk/snyk-highlight/application/config"
)

// DsnEnvVar selects the Sentry project events are sent to. Without it events are dropped by the client.
const DsnEnvVar = "SNYK_HIGHLIGHT_SENTRY_DSN"

var initialized atomic.Bool

func initializeSentry() {
	if !initialized.CompareAndSwap(false, true) {
		return
	}
	logger := config.CurrentConfig().Logger().With().Str("method", "initializeSentry").Logger()
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              os.Getenv(DsnEnvVar),
		Environment:      sentryEnvironment(),
		Release:          config.Version,
		Debug:            config.IsDevelopment(),
		BeforeSend:       beforeSend,
		EnableTracing:    true,
		TracesSampleRate: 1,
		AttachStacktrace: true,
	})
	if err != nil {
		logger.Error().Err(err).Msg("couldn't initialize error reporting")
	} else {
		logger.Info().Msg("Error reporting initialized")
	}
}

func beforeSend(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	if config.CurrentConfig().IsErrorReportingEnabled() {
		return event
	}
	return nil
}

func sentryEnvironment() string {
	if config.IsDevelopment() {
		return "development"
	} else {
		return "production"
	}
}
