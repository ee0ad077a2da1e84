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

package performance

import (
	"context"
)

// Instrumentor creates spans that measure analysis passes
type Instrumentor interface {
	StartSpan(ctx context.Context, operation string) Span
	NewTransaction(ctx context.Context, txName string, operation string) Span
	Finish(span Span)
}

type Span interface {
	Context() context.Context
	SetTransactionName(name string)
	// SetTag attaches a searchable key/value pair, e.g. the analyzed document or pass
	SetTag(key string, value string)
	StartSpan(ctx context.Context)
	Finish()
	GetOperation() string
	GetTxName() string
	GetTraceId() string
}

// NoopInstrumentor hands out spans that only carry a trace id
type NoopInstrumentor struct{}

var _ Instrumentor = (*NoopInstrumentor)(nil)

func NewNoopInstrumentor() Instrumentor {
	return &NoopInstrumentor{}
}

func (n *NoopInstrumentor) StartSpan(ctx context.Context, operation string) Span {
	s := &NoopSpan{Operation: operation}
	s.StartSpan(ctx)
	return s
}

func (n *NoopInstrumentor) NewTransaction(ctx context.Context, txName string, operation string) Span {
	s := &NoopSpan{Operation: operation, TxName: txName}
	s.StartSpan(ctx)
	return s
}

func (n *NoopInstrumentor) Finish(span Span) {
	span.Finish()
}
