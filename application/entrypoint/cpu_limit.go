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

package entrypoint

import (
	"os"
	"runtime"

	"github.com/snyk/snyk-highlight/application/config"
)

func desiredMaxProcs(numCPU int) int {
	desired := numCPU / 2
	if desired < 1 {
		return 1
	}
	return desired
}

// ApplyDefaultCPUCap halves GOMAXPROCS unless the user set it explicitly, and keeps the number of
// concurrently running passes within the available processors
func ApplyDefaultCPUCap(c *config.Config) {
	logger := c.Logger().With().Str("method", "ApplyDefaultCPUCap").Logger()
	procs := runtime.GOMAXPROCS(0)
	if os.Getenv("GOMAXPROCS") == "" {
		desired := desiredMaxProcs(runtime.NumCPU())
		previous := runtime.GOMAXPROCS(desired)
		procs = desired
		logger.Debug().Int("previous", previous).Int("current", desired).Msg("Applied default GOMAXPROCS CPU cap")
	}
	if c.MaxParallelPasses() > procs {
		logger.Debug().Int("configured", c.MaxParallelPasses()).Int("current", procs).Msg("Capped parallel passes")
		c.SetMaxParallelPasses(procs)
	}
}
