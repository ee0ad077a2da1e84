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

	"github.com/snyk/snyk-highlight/application/config"
	"github.com/snyk/snyk-highlight/domain/observability/performance"
)

// gdprAwareSentryInstrumentor only creates Sentry spans when the user agreed to error reporting
type gdprAwareSentryInstrumentor struct{}

func NewInstrumentor() performance.Instrumentor {
	initializeSentry()
	return &gdprAwareSentryInstrumentor{}
}

func (i *gdprAwareSentryInstrumentor) Finish(span performance.Span) {
	span.Finish()
}

func (i *gdprAwareSentryInstrumentor) StartSpan(ctx context.Context, operation string) performance.Span {
	s := i.createSpan("", operation)
	s.StartSpan(ctx)
	return s
}

func (i *gdprAwareSentryInstrumentor) NewTransaction(ctx context.Context, txName string, operation string) performance.Span {
	s := i.createSpan(txName, operation)
	s.StartSpan(ctx)
	return s
}

func (i *gdprAwareSentryInstrumentor) createSpan(txName string, operation string) performance.Span {
	var s performance.Span
	if config.CurrentConfig().IsErrorReportingEnabled() {
		s = &span{operation: operation}
	} else {
		s = &performance.NoopSpan{Operation: operation}
	}
	s.SetTransactionName(txName)
	return s
}
