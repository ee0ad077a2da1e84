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

package di

import (
	"testing"

	"github.com/snyk/snyk-highlight/application/config"
	"github.com/snyk/snyk-highlight/application/highlighting"
	er "github.com/snyk/snyk-highlight/domain/observability/error_reporting"
	"github.com/snyk/snyk-highlight/domain/observability/performance"
)

// TestInit wires every service with the test error reporter and instrumentor instead of Sentry
func TestInit(t *testing.T, c *config.Config, passes ...highlighting.Pass) {
	t.Helper()
	initMutex.Lock()
	defer initMutex.Unlock()
	errorReporter = er.NewTestErrorReporter()
	instrumentor = performance.NewTestInstrumentor()
	initHighlightInfrastructure(c)
	initDomain(c)
	initApplication(c, passes...)
}
