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

package testutil

import (
	"runtime"
	"testing"

	"github.com/rs/zerolog"

	"github.com/snyk/snyk-highlight/application/config"
)

// UnitTest installs a fresh configuration with a test logger as the current config and returns it
func UnitTest(t *testing.T) *config.Config {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t)).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	c := config.New(config.WithLogger(&logger))
	config.SetCurrentConfig(c)
	t.Cleanup(func() {
		config.SetCurrentConfig(nil)
	})
	return c
}

func NotOnWindows(t *testing.T, reason string) {
	t.Helper()
	if //goland:noinspection GoBoolExpressions
	runtime.GOOS == "windows" {
		t.Skipf("Not on windows, because %s", reason)
	}
}
