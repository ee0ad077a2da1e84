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

package highlight

import (
	"github.com/rs/zerolog"

	"github.com/snyk/snyk-highlight/domain/observability/error_reporting"
)

// invariantReporter logs analyzer defects and forwards them to error reporting. Violations never abort
// construction: dropping the highlight would hide the problem the analyzer tried to report.
type invariantReporter struct {
	logger   zerolog.Logger
	reporter error_reporting.ErrorReporter
}

func (i invariantReporter) report(err error) {
	if err == nil {
		return
	}
	i.logger.Error().Err(err).Msg("highlight invariant violated")
	if i.reporter != nil {
		i.reporter.CaptureError(err)
	}
}
