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
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/snyk/snyk-highlight/application/config"
	"github.com/snyk/snyk-highlight/domain/observability/error_reporting"
)

// A Sentry implementation of our error reporter that respects user preferences regarding tracking
type gdprAwareSentryErrorReporter struct{}

func NewSentryErrorReporter() error_reporting.ErrorReporter {
	initializeSentry()
	return &gdprAwareSentryErrorReporter{}
}

func (s *gdprAwareSentryErrorReporter) FlushErrorReporting() {
	// Set the timeout to the maximum duration the program can afford to wait
	defer sentry.Flush(2 * time.Second)
}

func (s *gdprAwareSentryErrorReporter) CaptureError(err error) bool {
	c := config.CurrentConfig()
	if c.IsErrorReportingEnabled() {
		eventId := sentry.CaptureException(err)
		c.Logger().Info().Err(err).Str("method", "CaptureError").Msgf("Sent error to Sentry (ID: %v)", eventId)
		return true
	}
	c.Logger().Debug().Err(err).Str("method", "CaptureError").Msg("error reporting disabled, not sending")
	return false
}
