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
	"context"
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"

	"github.com/snyk/snyk-highlight/application/config"
	"github.com/snyk/snyk-highlight/domain/observability/performance"
	"github.com/snyk/snyk-highlight/internal/testutil"
)

func Test_Sentry_Environment(t *testing.T) {
	testutil.UnitTest(t)
	original := config.Development
	t.Cleanup(func() { config.Development = original })

	config.Development = "true"
	curEnvironment := sentryEnvironment()
	assert.Equal(t, "development", curEnvironment)

	config.Development = "false"
	curEnvironment = sentryEnvironment()
	assert.Equal(t, "production", curEnvironment)
}

func Test_Sentry_BeforeSend(t *testing.T) {
	c := testutil.UnitTest(t)
	testEvent := sentry.NewEvent()

	c.SetErrorReportingEnabled(true)
	result := beforeSend(testEvent, nil)
	assert.Equal(t, testEvent, result)

	c.SetErrorReportingEnabled(false)
	result = beforeSend(testEvent, nil)
	assert.Equal(t, (*sentry.Event)(nil), result)
}

func TestErrorReporting_CaptureError(t *testing.T) {
	c := testutil.UnitTest(t)
	target := NewSentryErrorReporter()
	e := errors.New("test error")

	c.SetErrorReportingEnabled(false)
	captured := target.CaptureError(e)
	assert.False(t, captured)

	c.SetErrorReportingEnabled(true)
	captured = target.CaptureError(e)
	assert.True(t, captured)
}

func TestInstrumentor_RespectsErrorReportingPreference(t *testing.T) {
	c := testutil.UnitTest(t)
	instrumentor := NewInstrumentor()

	c.SetErrorReportingEnabled(false)
	noop := instrumentor.StartSpan(context.Background(), "pass")
	_, isNoop := noop.(*performance.NoopSpan)
	assert.True(t, isNoop)
	assert.NotEmpty(t, noop.GetTraceId())
	instrumentor.Finish(noop)

	c.SetErrorReportingEnabled(true)
	tx := instrumentor.NewTransaction(context.Background(), "highlighting", "pass")
	_, isSentry := tx.(*span)
	assert.True(t, isSentry)
	assert.Equal(t, "highlighting", tx.GetTxName())
	assert.Equal(t, "pass", tx.GetOperation())
	assert.NotEmpty(t, tx.GetTraceId())
	instrumentor.Finish(tx)
}

func TestSpan_SetTagReachesSentrySpan(t *testing.T) {
	c := testutil.UnitTest(t)
	c.SetErrorReportingEnabled(true)
	tx := NewInstrumentor().NewTransaction(context.Background(), "highlighting", "pass")

	tx.SetTag("document", "/workspace/main.go")

	assert.Equal(t, "/workspace/main.go", tx.(*span).span.Tags["document"])
	tx.Finish()
}
